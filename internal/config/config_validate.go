// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/mercatus/internal/validation"
)

// Bounds enforced beyond what struct tags can express. Error messages
// name the environment variable, not the struct field, since that is
// what an operator can actually change.
const (
	minServerTimeout = time.Second

	minStaleAfter = time.Second
	maxStaleAfter = time.Hour

	maxPageSizeCeiling = 10000

	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks the merged configuration before the server starts.
// Struct tags run first (required fields), then the range and
// cross-field rules.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %s", err.Error())
	}

	checks := []func() error{
		c.validateServer,
		c.validateCatalog,
		c.validateAPI,
		c.validateRateLimits,
		c.validateLogging,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout < minServerTimeout {
		return fmt.Errorf("HTTP_TIMEOUT must be at least %v", minServerTimeout)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.DataDir) == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if c.Catalog.StaleAfter < minStaleAfter || c.Catalog.StaleAfter > maxStaleAfter {
		return fmt.Errorf("REFRESH_WINDOW must be between %v and %v", minStaleAfter, maxStaleAfter)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be at least API_DEFAULT_PAGE_SIZE")
	}
	if c.API.MaxPageSize > maxPageSizeCeiling {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be at most %d", maxPageSizeCeiling)
	}
	return nil
}

// validateRateLimits is skipped entirely when limiting is disabled, so
// CI and benchmark runs can zero the knobs without tripping validation.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var (
	validLogLevels  = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "console": true}
)

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// IsProduction reports whether ENVIRONMENT names a production
// deployment. Startup uses this for deployment-mode checks such as the
// wildcard CORS warning.
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Server.Environment) {
	case "production", "prod":
		return true
	}
	return false
}

// IsDevelopment reports whether the server runs in development mode.
// An unset environment counts as development.
func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(c.Server.Environment) {
	case "", "development", "dev":
		return true
	}
	return false
}
