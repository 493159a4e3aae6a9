// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/mercatus/internal/cache"
	"github.com/tomtom215/mercatus/internal/catalog"
	"github.com/tomtom215/mercatus/internal/config"
	"github.com/tomtom215/mercatus/internal/logging"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, cache invalidation (this file)
//   - handlers_helpers.go: Shared helper functions
//   - handlers_health.go: Health and catalog status endpoints
//   - handlers_products.go: Product listing and lookup endpoints
//   - handlers_reviews.go: Review listing and summary endpoints
//   - handlers_recommend.go: Recommendation endpoint
//   - handlers_pricing.go: Price comparison endpoint
//   - handlers_policies.go: Policy resolution endpoint
//   - handlers_chat.go: Chat assistant endpoint
type Handler struct {
	store     *catalog.Store
	config    *config.Config
	cache     *cache.Cache
	startTime time.Time

	// lastLoaded holds the LoadedAt of the most recently observed snapshot
	// in unix nanos. A change means the catalog reloaded and cached
	// responses were built from superseded data.
	lastLoaded atomic.Int64
}

// NewHandler creates a new API handler with all required dependencies.
//
// The handler serves the catalog query endpoints: product listing and lookup,
// recommendations, review summaries, price comparison, policy resolution, and
// the chat assistant.
//
// Dependencies:
//   - store: Catalog store serving immutable snapshots
//   - cfg: Application configuration
//
// The handler initializes with:
//   - 1-minute TTL cache for query responses
//   - Start time for uptime calculations
//
// Example:
//
//	handler := api.NewHandler(store, cfg)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(store *catalog.Store, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		cache:     cache.New(time.Minute),
		startTime: time.Now(),
	}
}

// ClearCache invalidates all cached query responses.
//
// This method is called automatically when a newer catalog snapshot is
// observed, so clients never receive responses built from superseded data.
// It can also be called manually to force cache invalidation.
//
// Thread Safety: Safe for concurrent access.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("Response cache cleared")
	}
}

// observeSnapshot clears the response cache when the snapshot has been
// replaced since the last observation. Safe for concurrent access; when
// several requests race on the same reload, only the CAS winner clears.
func (h *Handler) observeSnapshot(snap *catalog.Snapshot) {
	loaded := snap.LoadedAt.UnixNano()
	prev := h.lastLoaded.Load()
	if prev == loaded {
		return
	}
	if h.lastLoaded.CompareAndSwap(prev, loaded) && prev != 0 {
		h.ClearCache()
	}
}

// CacheStats returns current response cache statistics.
func (h *Handler) CacheStats() cache.Stats {
	return h.cache.GetStats()
}
