// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

/*
Package api provides the HTTP REST API layer for Mercatus.

This package implements the catalog endpoints for product listing, search,
recommendations, review analytics, price comparison, policy lookup, and the
chat assistant. Every data endpoint reads from the in-memory catalog
snapshot, so request handling never touches disk unless the snapshot is
missing or stale.

Key Components:

  - Router: HTTP route configuration and middleware stack integration
  - Handler: Request handlers for all API endpoints
  - Response formatting: Standardized JSON responses with metadata
  - Error handling: Consistent error responses with appropriate HTTP status codes
  - Rate limiting: Per-group limits via go-chi/httprate
  - CORS: Cross-Origin Resource Sharing for frontend compatibility

API Categories:

The API is organized into the following categories:

1. Health Endpoints (/api/v1/health):
  - Process health and catalog load state (health)
  - Kubernetes-style probes (health/live, health/ready)

2. Catalog Endpoints (/api/v1/):
  - Product listing with filters (products) and lookup (products/{id})
  - Recommendations by anchor product, query, or top-rated fallback
  - Reviews and review sentiment summaries
  - Category price comparison (price-compare)
  - Store policy resolution (policies)
  - Catalog freshness reporting (catalog/status)

3. Chat Endpoint (/api/v1/chat):
  - Intent-routed shopping assistant over the same catalog data

4. Observability (/metrics, /swagger):
  - Prometheus metrics and generated OpenAPI documentation

Usage Example:

	import (
	    "github.com/tomtom215/mercatus/internal/api"
	    "github.com/tomtom215/mercatus/internal/catalog"
	    "github.com/tomtom215/mercatus/internal/config"
	)

	// Create dependencies
	cfg, _ := config.Load()
	store := catalog.NewStore(catalog.Config{DataDir: cfg.Catalog.DataDir})

	// Create handler and router
	handler := api.NewHandler(store, cfg)
	router := api.NewRouter(handler, cfg)

	// Setup routes and start server
	http.ListenAndServe(":8080", router.SetupChi())

Performance Characteristics:

  - Response times: p95 <10ms for snapshot-backed endpoints (target)
  - Caching: 1-minute TTL response cache, invalidated on catalog reload
  - Compression: Gzip middleware on catalog endpoints

Thread Safety:

All handlers are thread-safe and designed for concurrent request handling.
The catalog store hands out immutable snapshots, and the response cache is
protected by its own locking.

Security:

  - Security headers (nosniff, frame deny, referrer policy, conditional HSTS)
  - Rate limiting per endpoint group (100/min API, 30/min chat, 1000/min health)
  - Input validation via go-playground/validator
  - Log output sanitization to prevent log injection

See Also:

  - internal/catalog: CSV loading and snapshot cache
  - internal/models: Request/response data structures
  - internal/middleware: HTTP middleware components
*/
package api
