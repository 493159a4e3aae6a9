// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"fmt"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mercatus/internal/catalog"
	"github.com/tomtom215/mercatus/internal/logging"
	"github.com/tomtom215/mercatus/internal/metrics"
	"github.com/tomtom215/mercatus/internal/models"
	"github.com/tomtom215/mercatus/internal/validation"
)

// respondJSON marshals the envelope and writes it with caching headers
// and an ETag. A marshal failure surfaces as a bare 500; there is no
// envelope left to describe it with.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	body, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to encode response envelope")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "public, max-age=60")
	h.Set("Vary", "Accept-Encoding")
	h.Set("ETag", generateETag(body))

	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("Failed to write response body")
	}
}

// generateETag derives an ETag from the response body (32-bit FNV-1a).
func generateETag(body []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(body)
	return strconv.FormatUint(uint64(h.Sum32()), 16)
}

// respondSuccess sends a success envelope with query timing metadata.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError sends an error envelope. When err is non-nil it is also
// logged, sanitized first since it may embed request-derived text.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Data:     nil,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// sanitizeLogValue escapes control characters before request-derived text
// is logged. A raw newline in a logged value would let a client forge log
// entries; other controls can corrupt line-oriented log processing.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x20 && r != 0x7F {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, `\x%02x`, r)
	}
	return b.String()
}

// validateRequest runs struct validation and translates any failure into
// the models.APIError shape handlers respond with (VALIDATION_ERROR code,
// field details attached).
func validateRequest(v interface{}) *models.APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}

	apiErr := verr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// requireSnapshot loads the current catalog snapshot, responding with the
// appropriate error envelope when the catalog is unavailable. A snapshot
// newer than the last observed one invalidates the response cache.
func (h *Handler) requireSnapshot(w http.ResponseWriter, r *http.Request) (*catalog.Snapshot, bool) {
	snap, err := h.store.Snapshot(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return nil, false
	}
	h.observeSnapshot(snap)
	return snap, true
}

// getIntParam reads an integer query parameter, falling back to def when
// the parameter is absent or malformed. Zero and negative values pass
// through; range handling is the caller's concern.
func getIntParam(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// getFloatParam reads an optional float query parameter. Absent parameters
// return nil; malformed values return an error so callers can reject the
// request instead of silently dropping the filter.
func getFloatParam(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &f, nil
}

// getBoolParam reads a boolean query parameter. Accepts true/1/yes
// (case-insensitive); anything else reads as false.
func getBoolParam(r *http.Request, key string) bool {
	switch strings.ToLower(r.URL.Query().Get(key)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// respondFromCache writes a cached payload for key if one exists. Records
// cache hit/miss metrics either way. Returns true when the response was
// served from cache.
func (h *Handler) respondFromCache(w http.ResponseWriter, key string, start time.Time) bool {
	cached, found := h.cache.Get(key)
	if !found {
		metrics.CacheMisses.WithLabelValues("response").Inc()
		return false
	}

	metrics.CacheHits.WithLabelValues("response").Inc()
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   cached,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      true,
		},
	})
	return true
}

// cacheAndRespond stores data under key and writes the success envelope.
func (h *Handler) cacheAndRespond(w http.ResponseWriter, key string, data interface{}, start time.Time) {
	h.cache.Set(key, data)
	metrics.CacheSize.WithLabelValues("response").Set(float64(h.cache.GetStats().TotalKeys))
	respondSuccess(w, data, start)
}
