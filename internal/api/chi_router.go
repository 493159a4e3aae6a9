// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package api provides HTTP routing using Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/mercatus/internal/middleware"
)

// chiMiddleware lifts http.HandlerFunc middleware (Compression,
// PrometheusMetrics) into Chi's func(http.Handler) http.Handler shape
// so it can be mounted with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi builds the full route tree and returns the root handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Order matters: the request ID must exist before anything logs, and
	// CORS has to run globally so OPTIONS preflights are answered even on
	// routes that only register GET/POST.
	r.Use(RequestIDWithLogging())
	r.Use(E2EDebugLogging()) // enabled via E2E_DEBUG=true
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// ========================
	// Health Endpoints
	// ========================
	// Health gets its own permissive limit (1000/min) so aggressive
	// orchestrator probes never consume the normal API budget.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Catalog Endpoints
	// ========================
	// Every data endpoint reads the in-memory snapshot; none of them
	// block on the data directory.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/products", router.handler.Products)
		r.Get("/products/{id}", router.handler.Product)
		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/reviews", router.handler.Reviews)
		r.Get("/reviews/summary", router.handler.ReviewSummary)
		r.Get("/price-compare", router.handler.PriceCompare)
		r.Get("/policies", router.handler.Policies)
		r.Get("/catalog/status", router.handler.CatalogStatus)

		// Chat gets a stricter limit: each message runs intent extraction
		// over the full snapshot
		r.With(router.chiMiddleware.RateLimitChat()).Post("/chat", router.handler.Chat)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
