// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package api provides HTTP handlers for the Mercatus application.
//
// errors.go - Common API error handling
//
// This file maps engine errors to HTTP error responses.
package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/mercatus/internal/catalog"
)

// respondStoreError maps catalog store failures to the error envelope.
// A catalog that never loaded (or whose sources are unreadable) is a 503
// so orchestrators retry rather than treating the failure as permanent.
// A failed refresh of an already-loaded catalog is also a 503: the store
// surfaces it to the one request that drew the check, and the client can
// retry immediately against the still-valid previous snapshot.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Catalog data is not available", err)
	case errors.Is(err, catalog.ErrReloadFailed):
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Catalog data could not be refreshed", err)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load catalog data", err)
	}
}
