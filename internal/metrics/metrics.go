// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors register themselves with the default registry via promauto;
// the router exposes them on /metrics through promhttp.

// Catalog load and snapshot freshness.
var (
	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog loads from source files in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog load attempts",
		},
		[]string{"result"}, // "success", "error"
	)

	CatalogReloadChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reload_checks_total",
			Help: "Total number of catalog freshness checks after the trust window elapsed",
		},
		[]string{"result"}, // "unchanged", "reloaded", "error", "stat_error"
	)

	CatalogSnapshotProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_products",
			Help: "Number of products in the current catalog snapshot",
		},
	)

	CatalogSnapshotReviews = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_reviews",
			Help: "Number of reviews in the current catalog snapshot",
		},
	)

	CatalogSnapshotPolicies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_policies",
			Help: "Number of policies in the current catalog snapshot",
		},
	)

	CatalogSnapshotAge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_age_seconds",
			Help: "Age of the current catalog snapshot in seconds",
		},
	)
)

// HTTP serving. Endpoint labels carry route patterns, never raw paths.
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "API requests served, by method, route and status",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Latency of API requests in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "In-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

// Query volume per feature.
var (
	SearchQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_queries_total",
			Help: "Total number of product listing queries",
		},
	)

	SearchResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_returned",
			Help:    "Number of products returned per listing query",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	RecommendationQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_queries_total",
			Help: "Total number of recommendation queries",
		},
		[]string{"mode"}, // "item", "query", "fallback"
	)

	ChatMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total number of chat messages routed",
		},
		[]string{"intent"}, // "search", "recommend", "price", "review", "policy", "budget_search"
	)
)

// Response cache efficiency.
var (
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Cache lookups that found a live entry",
		},
		[]string{"cache_type"}, // "response"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Cache lookups that found nothing or an expired entry",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Entries currently held per cache",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Entries evicted on TTL expiry",
		},
		[]string{"cache_type"},
	)
)

// Process-level.
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Constant 1, labeled with version and Go runtime",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Seconds since process start",
		},
	)
)

// RecordCatalogLoad records a successful catalog load and updates the
// snapshot gauges to the freshly loaded counts.
func RecordCatalogLoad(duration time.Duration, products, reviews, policies int) {
	CatalogLoadDuration.Observe(duration.Seconds())
	CatalogLoadsTotal.WithLabelValues("success").Inc()
	CatalogSnapshotProducts.Set(float64(products))
	CatalogSnapshotReviews.Set(float64(reviews))
	CatalogSnapshotPolicies.Set(float64(policies))
	CatalogSnapshotAge.Set(0)
}

// RecordCatalogLoadError records a catalog load attempt that failed to parse
// the source files.
func RecordCatalogLoadError() {
	CatalogLoadsTotal.WithLabelValues("error").Inc()
}

// RecordCatalogReload records the outcome of a freshness check.
func RecordCatalogReload(result string) {
	CatalogReloadChecks.WithLabelValues(result).Inc()
}

// UpdateCatalogSnapshot updates the snapshot gauges from current store stats.
func UpdateCatalogSnapshot(products, reviews, policies int, age time.Duration) {
	CatalogSnapshotProducts.Set(float64(products))
	CatalogSnapshotReviews.Set(float64(reviews))
	CatalogSnapshotPolicies.Set(float64(policies))
	CatalogSnapshotAge.Set(age.Seconds())
}

// RecordAPIRequest counts a finished request and observes its latency.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge up on request entry and
// down on exit.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordSearchQuery records a product listing query and its result count.
func RecordSearchQuery(results int) {
	SearchQueriesTotal.Inc()
	SearchResultsReturned.Observe(float64(results))
}

// RecordRecommendation records a recommendation query by mode.
func RecordRecommendation(mode string) {
	RecommendationQueries.WithLabelValues(mode).Inc()
}

// RecordChatMessage records a routed chat message by resolved intent.
func RecordChatMessage(intent string) {
	ChatMessages.WithLabelValues(intent).Inc()
}
