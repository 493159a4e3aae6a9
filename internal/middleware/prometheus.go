// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/mercatus/internal/metrics"
)

// PrometheusMetrics records the request counter, latency histogram and
// in-flight gauge for every request passing through it.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		rec := &statusRecorder{ResponseWriter: w}
		start := time.Now()

		next(rec, r)

		metrics.RecordAPIRequest(
			r.Method,
			endpointLabel(r),
			strconv.Itoa(rec.status()),
			time.Since(start),
		)
	}
}

// endpointLabel returns the chi route pattern for the request, falling back
// to the raw path outside a chi router. The pattern keeps metric cardinality
// bounded: /products/LT1001 and /products/SP2001 both record as
// /products/{id}. Must be called after the handler ran, because nested
// routers only finish populating the pattern during routing.
func endpointLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// statusRecorder captures the status code a handler writes. Only the first
// WriteHeader counts; net/http ignores the rest.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.code == 0 {
		s.code = code
	}
	s.ResponseWriter.WriteHeader(code)
}

// status returns the recorded code, or 200 when the handler wrote the body
// without an explicit WriteHeader.
func (s *statusRecorder) status() int {
	if s.code == 0 {
		return http.StatusOK
	}
	return s.code
}
