// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

/*
Package config provides centralized configuration management for Mercatus.

This package handles loading, validation, and parsing of configuration for all
application components. It ensures consistent configuration across the backend
services and provides sensible defaults for every setting, so a bare
`mercatus` invocation serves the bundled data set with no configuration at all.

# Configuration Sources

Configuration is loaded in layers, later layers overriding earlier ones:

 1. Built-in defaults
 2. Optional YAML config file (CONFIG_PATH, ./config.yaml, /etc/mercatus/config.yaml)
 3. Environment variables

# Configuration Structure

The package organizes configuration into logical groups:

  - ServerConfig: HTTP server settings (host, port, timeout, environment)
  - CatalogConfig: CSV source directory and snapshot trust window
  - APIConfig: Result caps for listing endpoints
  - SecurityConfig: Rate limiting and CORS policy
  - LoggingConfig: Log level, format, and caller reporting

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST / HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT / PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)

Catalog Store (CatalogConfig):
  - DATA_DIR: Directory with products.csv, reviews.csv, store_policies.csv (default: data)
  - REFRESH_WINDOW: How long a loaded snapshot is trusted before source
    modification times are re-checked (default: 30s)

API Limits (APIConfig):
  - API_DEFAULT_PAGE_SIZE: Product listing result cap (default: 100)
  - API_MAX_PAGE_SIZE: Upper bound for the cap (default: 500)

Security (SecurityConfig):
  - RATE_LIMIT_REQS: Requests allowed per window (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage Example

Basic configuration loading:

	import "github.com/tomtom215/mercatus/internal/config"

	// Load configuration from defaults, file, and environment
	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}

	// Access configuration values
	fmt.Printf("Starting server on %s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Catalog sources: %s\n", cfg.Catalog.DataDir)

Testing with custom configuration:

	// Override environment variables for testing
	os.Setenv("HTTP_PORT", "9090")
	os.Setenv("DATA_DIR", t.TempDir())
	os.Setenv("REFRESH_WINDOW", "5s")

	cfg, err := config.Load()
	// Use cfg for testing

# Validation

The package performs validation during Load():

  - Numeric ranges: HTTP_PORT (1-65535), API page sizes
  - Duration ranges: REFRESH_WINDOW (1s-1h), RATE_LIMIT_WINDOW (1s-1h)
  - Required fields: DATA_DIR must not be empty
  - Enumerations: LOG_LEVEL, LOG_FORMAT

Struct-tag rules (required, min, max) run through go-playground/validator
first; semantic checks with environment-variable names in the messages follow.

# Docker Deployment

For Docker deployments, use environment variables or docker-compose.yml:

	services:
	  mercatus:
	    image: ghcr.io/tomtom215/mercatus:latest
	    environment:
	      DATA_DIR: /data/catalog
	      REFRESH_WINDOW: 30s
	      LOG_FORMAT: json
	    volumes:
	      - ./catalog:/data/catalog:ro
	    ports:
	      - "8080:8080"

# Thread Safety

The Config struct is immutable after Load() returns, making it safe for concurrent
access from multiple goroutines without synchronization.

# Performance

Configuration loading is fast and only happens once at startup. Values are
parsed and validated during Load(), so runtime access is direct field reads
with zero overhead.
*/
package config
