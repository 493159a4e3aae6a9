// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths is searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/mercatus/config.yaml",
	"/etc/mercatus/config.yml",
}

// ConfigPathEnvVar overrides the config file search entirely.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig is the bottom layer: a configuration that runs a working
// server with no file and no environment at all.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development", // Set ENVIRONMENT=production for production deployments
		},
		Catalog: CatalogConfig{
			DataDir:    "data",
			StaleAfter: 30 * time.Second,
		},
		API: APIConfig{
			DefaultPageSize: 100,
			MaxPageSize:     500,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf assembles the configuration from three layers, later
// layers overriding earlier ones:
//
//	defaults -> optional YAML file -> environment variables
//
// The merged result is validated before it is returned, so a *Config from
// this function is always safe to run with.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Environment values always arrive as strings; list-valued settings
	// need splitting before unmarshal.
	if err := splitListValues(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file: the path named
// by CONFIG_PATH when set, then the default search paths. Returns ""
// when nothing exists, which is a supported mode (defaults + env only).
func findConfigFile() string {
	candidates := DefaultConfigPaths
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		candidates = append([]string{envPath}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// listValuePaths accept comma-separated strings from the environment but
// unmarshal as []string.
var listValuePaths = []string{
	"security.cors_origins",
}

// splitListValues rewrites comma-separated environment strings into
// slices. Values that are already slices (from YAML or defaults) pass
// through untouched.
func splitListValues(k *koanf.Koanf) error {
	for _, path := range listValuePaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}

		var values []string
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
		if len(values) == 0 {
			continue
		}
		if err := k.Set(path, values); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envAliases maps accepted environment variable names (lowercased) onto
// config paths. Long forms and short container-friendly aliases both
// work: PORT and HTTP_PORT land on the same setting.
var envAliases = map[string]string{
	// Server
	"http_port":    "server.port",
	"port":         "server.port",
	"http_host":    "server.host",
	"host":         "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Catalog
	"data_dir":            "catalog.data_dir",
	"catalog_data_dir":    "catalog.data_dir",
	"refresh_window":      "catalog.stale_after",
	"catalog_stale_after": "catalog.stale_after",

	// API
	"api_default_page_size": "api.default_page_size",
	"api_max_page_size":     "api.max_page_size",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_reqs":     "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its config path.
// Unmapped variables yield "" and are dropped, so ambient environment
// noise (PATH, HOME) never reaches the config.
func envTransformFunc(key string) string {
	return envAliases[strings.ToLower(key)]
}
