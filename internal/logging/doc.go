// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package logging provides centralized zerolog-based structured logging for Mercatus.
//
// Every subsystem (the catalog store, the API layer, the supervision tree)
// logs through this package rather than holding its own zerolog instance,
// so output format and level are controlled in one place.
//
// # Quick Start
//
//	import "github.com/tomtom215/mercatus/internal/logging"
//
//	// Once, at startup, from the loaded configuration
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Caller: false,
//	})
//
//	// Anywhere after that
//	logging.Info().Str("data_dir", dir).Msg("Catalog loaded")
//	logging.Error().Err(err).Int("code", 500).Msg("Request failed")
//
// Levels follow zerolog: trace, debug, info, warn, error, fatal. Unknown
// level strings fall back to info rather than failing startup.
//
// # Request-Scoped Logging
//
// HTTP middleware stores correlation and request IDs in the request
// context. Handlers log through Ctx so those IDs appear on every line:
//
//	logging.Ctx(ctx).Info().Str("product", id).Msg("Processing")
//
// Long-lived subsystems instead tag themselves once with a component
// logger:
//
//	logger := logging.WithComponent("catalog")
//	logger.Error().Err(err).Msg("Load failed")
//
// # Configuration
//
// The config package maps these environment variables onto Config:
//
//	LOG_LEVEL   - minimum level (default: info)
//	LOG_FORMAT  - json or console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// JSON output is the production format:
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"Server starting","port":8080}
//
// Console output trades parseability for readability during development:
//
//	10:30:00 INF Server starting port=8080
//
// # Supervision Logging
//
// Suture reports service lifecycle events through log/slog. NewSlogLogger
// bridges those events into the same zerolog output:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//	supervisor := suture.New("mercatus", suture.Spec{
//	    EventHook: handler.MustHook(),
//	})
//
// # Testing
//
// NewTestLogger builds a logger that writes to any io.Writer, and
// SetLogger swaps the global logger so tests can capture package-level
// calls:
//
//	var buf bytes.Buffer
//	logging.SetLogger(logging.NewTestLogger(&buf))
//
// The global logger sits behind a sync.RWMutex; all exported functions
// are safe for concurrent use.
package logging
