// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

/*
Package metrics defines the Prometheus instrumentation for Mercatus.

All collectors are package-level and registered at init time via
promauto, so importing the package is enough to make them scrapeable.
Recording helpers (RecordAPIRequest, RecordCatalogLoad, ...) wrap the
raw collectors so call sites stay one line. Everything here is safe for
concurrent use; the Prometheus client handles synchronization.

The exposition endpoint is mounted by the router:

	curl http://localhost:8080/metrics

# Metric Inventory

HTTP:

	api_requests_total              counter    method, endpoint, status_code
	api_request_duration_seconds    histogram  method, endpoint (buckets 10ms..10s)
	api_active_requests             gauge
	api_rate_limit_hits_total       counter    endpoint

Catalog:

	catalog_load_duration_seconds   histogram
	catalog_loads_total             counter    result (success, error)
	catalog_reload_checks_total     counter    result (unchanged, reloaded, error, stat_error)
	catalog_snapshot_products       gauge
	catalog_snapshot_reviews        gauge
	catalog_snapshot_policies       gauge
	catalog_snapshot_age_seconds    gauge

Queries:

	search_queries_total            counter
	search_results_returned         histogram  (buckets 1..100)
	recommendation_queries_total    counter    mode (item, query, fallback)
	chat_messages_total             counter    intent (search, recommend, price, review, policy, budget_search)

Cache:

	cache_hits_total                counter    cache_type
	cache_misses_total              counter    cache_type
	cache_evictions_total           counter    cache_type
	cache_entries                   gauge      cache_type

System:

	app_info                        gauge      version, go_version
	app_uptime_seconds              gauge

# Who Records What

The recording surface is split across the layers that own the events:

  - internal/middleware wraps every API handler and records
    api_requests_total, api_request_duration_seconds and
    api_active_requests from the response writer.
  - internal/catalog records load duration and load/reload outcomes as
    the store loads or revalidates the snapshot.
  - internal/api handlers record search result counts, recommendation
    modes, routed chat intents and response cache hits/misses.
  - The supervised stats service publishes the snapshot gauges, cache
    size/evictions and app_uptime_seconds on a ticker, so gauges stay
    current even when no requests arrive.

A load site looks like:

	start := time.Now()
	snap, err := loadSnapshot(dataDir)
	if err != nil {
	    metrics.RecordCatalogLoadError()
	    return err
	}
	metrics.RecordCatalogLoad(time.Since(start),
	    len(snap.Products), len(snap.Reviews), len(snap.Policies))

# Cardinality

Label values are bounded by construction: endpoint labels carry route
patterns rather than raw paths (no product IDs), and the mode/intent
labels are fixed vocabularies. The widest metric is api_requests_total
at roughly 200 series (methods x routes x status classes);
catalog_reload_checks_total tops out at 4 and chat_messages_total at 6.

# Scraping and Queries

	scrape_configs:
	  - job_name: 'mercatus'
	    static_configs:
	      - targets: ['localhost:8080']
	    metrics_path: '/metrics'
	    scrape_interval: 15s

Useful PromQL:

	# request rate and p95 latency
	rate(api_requests_total[5m])
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket[5m]))

	# cache hit rate
	sum(rate(cache_hits_total[5m])) / (sum(rate(cache_hits_total[5m])) + sum(rate(cache_misses_total[5m])))

	# reload outcomes and snapshot staleness
	rate(catalog_reload_checks_total[15m])
	catalog_snapshot_age_seconds

# Alerting

	- alert: HighErrorRate
	  expr: |
	    sum(rate(api_requests_total{status_code=~"5.."}[5m]))
	    /
	    sum(rate(api_requests_total[5m]))
	    > 0.05
	  for: 5m

	- alert: CatalogLoadFailing
	  expr: rate(catalog_loads_total{result="error"}[15m]) > 0
	  for: 5m

	- alert: CatalogSnapshotStale
	  expr: catalog_snapshot_age_seconds > 3600
	  for: 10m

# See Also

  - internal/middleware: HTTP instrumentation middleware
  - internal/catalog: load and revalidation recording
  - https://prometheus.io/docs/practices/naming/
*/
package metrics
