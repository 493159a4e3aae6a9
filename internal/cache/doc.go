// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

/*
Package cache provides the in-memory response cache for the API layer.

Every data endpoint serves from the catalog snapshot, but some payloads
are expensive to rebuild per request (sentiment summaries walk every
review for a product). The handler keeps one Cache and stores finished
response payloads under parameter-derived keys, so repeated queries
inside the TTL skip the recompute entirely.

# Behavior

Entries carry a per-entry expiration. Expiry is enforced lazily: Get
drops and counts an expired entry on access, and a background sweep
removes abandoned expired keys every 5 minutes so memory stays bounded
even for keys nothing reads again. Hits, misses and evictions are
counted and exposed via GetStats/HitRate; the stats service publishes
them to Prometheus.

	c := cache.New(time.Minute)
	c.Set("products:list", body)
	if value, ok := c.Get("products:list"); ok {
	    // serve cached payload
	}

# Keys

GenerateKey(method, params) serializes the parameter struct to JSON and
hashes it (SHA-256, truncated), so equivalent filters map to the same
key no matter who built them:

	ListProducts:3f8a9c...      filtered product listings
	ReviewSummary:be4410...     sentiment summaries
	PriceCompare:0c9f55...      category price comparisons
	Recommendations:d21e88...   recommendation results

Unserializable parameters fall back to their fmt representation rather
than failing the request.

# Invalidation

Three paths take an entry out of service:

 1. TTL expiry, checked on Get and by the background sweep.
 2. Explicit Delete(key) or Clear().
 3. Catalog reloads: when the store swaps in a fresh snapshot, the
    handler calls Clear() so no response built from the superseded
    snapshot survives.

The default TTL is one minute. Anything much longer would mask fresh
data: the catalog store revalidates its snapshot on a 30-second
staleness window, and reload-driven clearing only helps requests that
arrive after the reload is noticed.

# Concurrency

The entry map sits behind a sync.RWMutex; the counters live under a
separate mutex so hot Get paths do not serialize on the map's write
lock just to bump a stat. All methods are safe for concurrent use.

# Limitations

Deliberately simple for the catalog's scale (hundreds to low thousands
of products, single instance): no size cap, no LRU, no persistence, no
distribution. Reload-driven clearing plus short TTLs keep the working
set a few megabytes.

# See Also

  - internal/api: handler helpers respondFromCache/cacheAndRespond
  - internal/catalog: snapshot store whose reloads drive invalidation
  - internal/metrics: counters the cache stats feed
*/
package cache
