// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// SlogHandler is an slog.Handler that forwards records to zerolog. It exists
// for libraries that speak slog (sutureslog in particular) so their output
// lands in the same stream and format as the rest of the application.
//
//	slogger := slog.New(logging.NewSlogHandler())
type SlogHandler struct {
	logger zerolog.Logger

	// attrs holds attributes bound via WithAttrs, keys already qualified
	// with the group path that was open when they were bound.
	attrs []slog.Attr

	// prefix is the dot-joined open group path, empty or ending in ".".
	prefix string
}

// NewSlogHandler returns a handler backed by the global logger.
func NewSlogHandler() *SlogHandler {
	return &SlogHandler{logger: Logger()}
}

// NewSlogHandlerWithLogger returns a handler backed by a specific logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogHandlerWithLogger(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether records at the given level would be emitted.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.GetLevel() <= slogToZerologLevel(level)
}

// Handle forwards a record to zerolog at the equivalent level.
//
//nolint:gocritic // slog.Record is passed by value per the slog.Handler contract
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(slogToZerologLevel(record.Level))

	// Bound attributes are stored pre-qualified; record attributes take
	// the currently open group path.
	for _, attr := range h.attrs {
		event = writeAttr(event, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		event = writeAttr(event, h.prefix, attr)
		return true
	})

	event.Msg(record.Message)
	return nil
}

// WithAttrs returns a handler that adds the given attributes to every record.
// Keys are qualified with the group path open at bind time, not at Handle
// time, matching the slog.Handler contract.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	bound := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	bound = append(bound, h.attrs...)
	for _, attr := range attrs {
		attr.Key = h.prefix + attr.Key
		bound = append(bound, attr)
	}

	return &SlogHandler{logger: h.logger, attrs: bound, prefix: h.prefix}
}

// WithGroup returns a handler that qualifies subsequent keys with name.
// Zerolog has no native group concept, so groups flatten to dotted keys.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{logger: h.logger, attrs: h.attrs, prefix: h.prefix + name + "."}
}

// writeAttr appends one attribute to an event, flattening group values into
// dot-qualified keys.
func writeAttr(event *zerolog.Event, prefix string, attr slog.Attr) *zerolog.Event {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return event
	}

	key := prefix + attr.Key
	switch attr.Value.Kind() {
	case slog.KindGroup:
		sub := key + "."
		if attr.Key == "" {
			// Inline group: members keep the enclosing path.
			sub = prefix
		}
		for _, member := range attr.Value.Group() {
			event = writeAttr(event, sub, member)
		}
		return event
	case slog.KindBool:
		return event.Bool(key, attr.Value.Bool())
	case slog.KindDuration:
		return event.Dur(key, attr.Value.Duration())
	case slog.KindFloat64:
		return event.Float64(key, attr.Value.Float64())
	case slog.KindInt64:
		return event.Int64(key, attr.Value.Int64())
	case slog.KindString:
		return event.Str(key, attr.Value.String())
	case slog.KindTime:
		return event.Time(key, attr.Value.Time())
	case slog.KindUint64:
		return event.Uint64(key, attr.Value.Uint64())
	default:
		return event.Interface(key, attr.Value.Any())
	}
}

// slogToZerologLevel maps slog levels onto zerolog levels. Slog levels are
// sparse ints that admit custom values, so the mapping is by threshold.
func slogToZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// NewSlogLogger returns an *slog.Logger whose output goes through the global
// zerolog logger.
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
func NewSlogLogger() *slog.Logger {
	return slog.New(NewSlogHandler())
}
