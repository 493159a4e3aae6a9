// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// restoreGlobalLevel snapshots the zerolog global level and restores it when
// the test finishes. Tests that call Init or SetLevelString mutate it.
func restoreGlobalLevel(t *testing.T) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("default level = %q, want info", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("default format = %q, want json", cfg.Format)
	}
	if cfg.Caller {
		t.Error("caller should default to off")
	}
	if !cfg.Timestamp {
		t.Error("timestamp should default to on")
	}
}

func TestInit(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	Init(Config{
		Level:     "debug",
		Format:    "json",
		Timestamp: true,
		Output:    &buf,
	})

	Info().Msg("catalog service starting")

	output := buf.String()
	if !strings.Contains(output, "catalog service starting") {
		t.Errorf("expected message in output: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected level field in output: %s", output)
	}
	if !strings.Contains(output, `"time"`) {
		t.Errorf("expected timestamp field in output: %s", output)
	}
}

func TestInit_Defaults(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer

	// Empty level and format fall back to info/json.
	Init(Config{Output: &buf})

	Debug().Msg("should be filtered")
	Info().Msg("should appear")

	output := buf.String()
	if strings.Contains(output, "should be filtered") {
		t.Errorf("debug should be filtered at default level: %s", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("info should pass at default level: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		// case-insensitive, unknown falls back to info
		{"TRACE", zerolog.TraceLevel},
		{"Info", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogLevels(t *testing.T) {
	restoreGlobalLevel(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).With().Timestamp().Logger())

	emit := []struct {
		level string
		log   func()
	}{
		{"trace", func() { Trace().Msg("tokenizing query") }},
		{"debug", func() { Debug().Msg("snapshot revalidated") }},
		{"info", func() { Info().Msg("catalog loaded") }},
		{"warn", func() { Warn().Msg("reviews.csv missing") }},
		{"error", func() { Error().Msg("load failed") }},
	}

	for _, e := range emit {
		buf.Reset()
		e.log()
		if !strings.Contains(buf.String(), `"level":"`+e.level+`"`) {
			t.Errorf("expected level %q in output: %s", e.level, buf.String())
		}
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).With().Timestamp().Logger())

	logger := With().Str("component", "pricing").Logger()
	logger.Info().Msg("comparison computed")

	output := buf.String()
	if !strings.Contains(output, `"component":"pricing"`) {
		t.Errorf("expected component field in output: %s", output)
	}
	if !strings.Contains(output, "comparison computed") {
		t.Errorf("expected message in output: %s", output)
	}
}

func TestNewTestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	logger.Info().Str("product_id", "LT1001").Msg("indexed")

	output := buf.String()
	for _, want := range []string{"indexed", "product_id", "LT1001"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output: %s", want, output)
		}
	}
}

func TestSetLevelString(t *testing.T) {
	restoreGlobalLevel(t)

	SetLevelString("debug")
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("after SetLevelString(debug): %v, want DebugLevel", zerolog.GlobalLevel())
	}

	SetLevelString("error")
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Errorf("after SetLevelString(error): %v, want ErrorLevel", zerolog.GlobalLevel())
	}
}

func TestConsoleFormat(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	Init(Config{
		Level:     "info",
		Format:    "console",
		Timestamp: false,
		Output:    &buf,
	})

	Info().Msg("catalog ready")

	// Console output is human formatted, not JSON.
	if strings.Contains(buf.String(), `"level"`) {
		t.Errorf("expected console format, got JSON: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "catalog ready") {
		t.Errorf("expected message in output: %s", buf.String())
	}
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	Err(errors.New("products.csv: no such file")).Msg("load failed")

	output := buf.String()
	if !strings.Contains(output, "products.csv: no such file") {
		t.Errorf("expected error in output: %s", output)
	}
	if !strings.Contains(output, `"level":"error"`) {
		t.Errorf("expected error level in output: %s", output)
	}
}
