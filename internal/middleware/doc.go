// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for response compression
and Prometheus metrics instrumentation. The components use the plain
http.HandlerFunc chaining form and are mounted into the Chi router through
a small adapter in the api package, so they compose with the Chi ecosystem
middleware (request ID, real IP, recovery, CORS, rate limiting) that the
router wires directly.

Key Components:

  - Compression: Gzip compression for clients that accept it
  - PrometheusMetrics: HTTP request/response instrumentation

Middleware Stack:

The API route group applies these in order:

	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(rateLimit)                              // Chi ecosystem: go-chi/httprate
	    r.Use(securityHeaders)                        // API security headers
	    r.Use(adapt(middleware.Compression))          // Gzip encoding
	    r.Use(adapt(middleware.PrometheusMetrics))    // Request metrics
	    // ... handlers
	})

Compression sits outside metrics so the recorded latency covers the
handler work rather than the gzip flush.

Usage Example - Compression:

	import "github.com/tomtom215/mercatus/internal/middleware"

	// Wrap handler with gzip compression
	http.HandleFunc("/api/v1/products",
	    middleware.Compression(handler),
	)

	// Accept-Encoding: gzip header is required for compression to engage

Usage Example - Prometheus Metrics:

	http.HandleFunc("/api/v1/products",
	    middleware.PrometheusMetrics(handler),
	)

	// Records method, endpoint, status code, and duration per request.
	// Inside a Chi router the endpoint label is the route pattern
	// (/api/v1/products/{id}), keeping metric cardinality bounded.

Performance Characteristics:

  - Compression: 70-90% size reduction for JSON payloads
  - Compression overhead: ~1-2ms for typical responses
  - Metrics overhead: <0.1ms per request
  - Gzip writers are pooled to reduce per-request allocations

Thread Safety:

All middleware components are thread-safe:
  - Compression uses pooled per-request gzip writers
  - Prometheus metrics use the client library's atomic collectors

See Also:

  - internal/api: Chi router and ecosystem middleware wiring
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
