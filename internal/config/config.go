// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package config

import (
	"time"
)

// Config is the complete runtime configuration: catalog store, HTTP
// server, API limits, security, and logging. Load() merges defaults, an
// optional YAML file, and environment variables (in that precedence
// order), validates the result, and returns it.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	store := catalog.NewStore(catalog.Config{
//	    DataDir:    cfg.Catalog.DataDir,
//	    StaleAfter: cfg.Catalog.StaleAfter,
//	})
//
// A loaded Config is never mutated, so concurrent reads need no locking.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
//	HTTP_PORT (or PORT)  - listen port (default: 8080)
//	HTTP_HOST (or HOST)  - bind address (default: 0.0.0.0)
//	HTTP_TIMEOUT         - read/write timeout (default: 30s)
//	ENVIRONMENT          - development, staging, production (default: development)
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host" validate:"required"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// CatalogConfig holds catalog store settings.
//
// The store reads three CSV sources (products, reviews, store policies)
// from DataDir and keeps the parsed snapshot in memory. StaleAfter is
// the trust window: queries inside it serve the cached snapshot without
// touching the filesystem, and the first query past it re-checks the
// source modification times.
//
//	DATA_DIR        - directory containing the CSV sources (default: data)
//	REFRESH_WINDOW  - snapshot trust window (default: 30s)
type CatalogConfig struct {
	DataDir    string        `koanf:"data_dir" validate:"required"`
	StaleAfter time.Duration `koanf:"stale_after"`
}

// APIConfig holds API response limits.
//
//	API_DEFAULT_PAGE_SIZE  - default result cap for listings (default: 100)
//	API_MAX_PAGE_SIZE      - cap applied to client-supplied limits (default: 500)
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds rate limiting and CORS settings. The API serves
// public catalog data without authentication, so throttling and origin
// policy are the whole security surface.
//
//	RATE_LIMIT_REQS (or RATE_LIMIT_REQUESTS)  - requests per window (default: 100)
//	RATE_LIMIT_WINDOW                         - window length (default: 1m)
//	DISABLE_RATE_LIMIT                        - turn limiting off (default: false)
//	CORS_ORIGINS                              - comma-separated origins (default: *)
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds zerolog settings.
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json for production, console for development (default: json)
//	LOG_CALLER  - include caller file:line, costs a little per event (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load builds the validated runtime configuration. It is a thin name
// over LoadWithKoanf, which documents the layering.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
