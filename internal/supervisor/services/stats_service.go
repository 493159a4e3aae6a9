// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mercatus/internal/cache"
	"github.com/tomtom215/mercatus/internal/catalog"
	"github.com/tomtom215/mercatus/internal/metrics"
)

// StatsSource reports the current catalog snapshot shape.
// Satisfied by *catalog.Store. The interface keeps the service testable
// without standing up a real store.
type StatsSource interface {
	Stats() catalog.Stats
}

// CacheStatsSource reports response cache counters. Satisfied by
// *api.Handler.
type CacheStatsSource interface {
	CacheStats() cache.Stats
}

// StatsServiceConfig holds configuration for the stats service.
type StatsServiceConfig struct {
	// Interval is how often the snapshot gauges are refreshed.
	Interval time.Duration
}

// StatsService periodically publishes catalog snapshot gauges and the
// application uptime gauge. It is observation only: it reads the current
// snapshot's stats and never triggers a catalog load, so a wedged data
// directory cannot stall this service.
type StatsService struct {
	source StatsSource
	config StatsServiceConfig
	logger zerolog.Logger
	start  time.Time
	name   string

	cacheSource CacheStatsSource
	// lastEvictions tracks the previous published total so evictions can
	// be exported as a monotonic counter delta.
	lastEvictions int64
}

// NewStatsService creates a new stats service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsService(source StatsSource, cfg StatsServiceConfig, logger zerolog.Logger) *StatsService {
	return &StatsService{
		source: source,
		config: cfg,
		logger: logger.With().Str("service", "stats").Logger(),
		start:  time.Now(),
		name:   "stats-service",
	}
}

// Serve implements the suture.Service interface.
// It refreshes the gauges once on startup and then on every tick.
func (s *StatsService) Serve(ctx context.Context) error {
	if s.config.Interval <= 0 {
		s.config.Interval = 15 * time.Second
	}

	s.logger.Info().
		Dur("interval", s.config.Interval).
		Msg("stats service starting")

	// Publish immediately so the gauges are populated before the first tick
	s.publish()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stats service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.publish()
		}
	}
}

// WithResponseCache attaches a response cache whose size and eviction
// counters are published alongside the snapshot gauges.
func (s *StatsService) WithResponseCache(src CacheStatsSource) *StatsService {
	s.cacheSource = src
	return s
}

// publish pushes the current uptime and snapshot counts to Prometheus.
// Snapshot gauges are left untouched until the first load completes, so
// they keep reporting zero rather than a misleading stale age.
func (s *StatsService) publish() {
	metrics.AppUptime.Set(time.Since(s.start).Seconds())

	if s.cacheSource != nil {
		cs := s.cacheSource.CacheStats()
		metrics.CacheSize.WithLabelValues("response").Set(float64(cs.TotalKeys))
		if delta := cs.Evictions - s.lastEvictions; delta > 0 {
			metrics.CacheEvictions.WithLabelValues("response").Add(float64(delta))
			s.lastEvictions = cs.Evictions
		}
	}

	st := s.source.Stats()
	if !st.Loaded {
		return
	}
	metrics.UpdateCatalogSnapshot(st.Products, st.Reviews, st.Policies, time.Since(st.LoadedAt))
}

// String returns the service name for logging.
func (s *StatsService) String() string {
	return s.name
}
