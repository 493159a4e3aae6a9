// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mercatus/internal/logging"
	"github.com/tomtom215/mercatus/internal/metrics"
)

// DefaultStaleAfter is how long a snapshot is trusted before the store
// re-checks the source files for changes.
const DefaultStaleAfter = 30 * time.Second

// ErrUnavailable is returned when no snapshot has ever been loaded and the
// source files cannot be read. Callers should surface this as a service
// availability problem, not a client error.
var ErrUnavailable = errors.New("catalog data unavailable")

// ErrReloadFailed is returned to the query that draws a failed revalidation
// of an already-loaded catalog. The previous snapshot stays live for every
// other reader until the next trust window elapses.
var ErrReloadFailed = errors.New("catalog reload failed")

// Config controls a Store.
type Config struct {
	// DataDir holds products.csv, reviews.csv and store_policies.csv.
	DataDir string
	// StaleAfter is the trust window for a loaded snapshot. Zero or
	// negative selects DefaultStaleAfter.
	StaleAfter time.Duration
}

// Store owns the in-memory catalog. It loads lazily on first access, serves
// an immutable snapshot to all readers, and revalidates against source file
// modification times once the staleness window has elapsed. Snapshots are
// swapped atomically so readers always see a complete catalog.
type Store struct {
	dataDir    string
	staleAfter time.Duration
	logger     zerolog.Logger

	current     atomic.Pointer[Snapshot]
	lastChecked atomic.Int64 // unix nanos of the last freshness check

	// mu single-flights loads and revalidation. Readers inside the trust
	// window never take it.
	mu sync.Mutex
}

// NewStore creates a store for the given data directory. No I/O happens
// until the first Snapshot call.
func NewStore(cfg Config) *Store {
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultStaleAfter
	}
	return &Store{
		dataDir:    cfg.DataDir,
		staleAfter: cfg.StaleAfter,
		logger:     logging.WithComponent("catalog"),
	}
}

// Snapshot returns the current catalog, loading or revalidating first when
// needed. The returned snapshot is immutable and safe to read after newer
// snapshots replace it. A failed revalidation surfaces ErrReloadFailed to
// the call that drew the freshness check; readers inside the restarted
// window keep getting the previous snapshot.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	// Fast path: a snapshot exists and is inside its trust window.
	if snap := s.current.Load(); snap != nil && !s.windowElapsed() {
		return snap, nil
	}
	if err := s.ensureFresh(ctx); err != nil {
		return nil, err
	}
	return s.current.Load(), nil
}

func (s *Store) windowElapsed() bool {
	return time.Now().UnixNano()-s.lastChecked.Load() >= int64(s.staleAfter)
}

// ensureFresh makes sure a snapshot exists and is inside its trust window.
//
// Never loaded: every call attempts a load until one succeeds, and failures
// propagate to the caller. Already loaded: once the window elapses the source
// mtimes are compared and the catalog reloads only when they changed. A stat
// or reload failure keeps the previous snapshot live, restarts the window,
// and returns ErrReloadFailed to the triggering caller, so a broken data
// directory is noticed by exactly one request per window while everyone else
// keeps reading valid data.
func (s *Store) ensureFresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snap := s.current.Load()
	if snap != nil && !s.windowElapsed() {
		// Another caller revalidated while we waited on the lock.
		return nil
	}

	if snap == nil {
		return s.initialLoad()
	}

	s.lastChecked.Store(time.Now().UnixNano())

	modTime, err := sourceModTime(s.dataDir)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Catalog revalidation failed, previous snapshot stays active")
		metrics.RecordCatalogReload("stat_error")
		return fmt.Errorf("%w: %v", ErrReloadFailed, err)
	}
	if !modTime.After(snap.SourceModTime) {
		metrics.RecordCatalogReload("unchanged")
		return nil
	}

	start := time.Now()
	fresh, err := loadSnapshot(s.dataDir)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Catalog reload failed, previous snapshot stays active")
		metrics.RecordCatalogReload("error")
		metrics.RecordCatalogLoadError()
		return fmt.Errorf("%w: %v", ErrReloadFailed, err)
	}

	s.current.Store(fresh)
	metrics.RecordCatalogReload("reloaded")
	metrics.RecordCatalogLoad(time.Since(start), len(fresh.Products), len(fresh.Reviews), len(fresh.Policies))
	s.logger.Info().
		Int("products", len(fresh.Products)).
		Int("reviews", len(fresh.Reviews)).
		Int("policies", len(fresh.Policies)).
		Time("source_mod_time", fresh.SourceModTime).
		Msg("Catalog reloaded")
	return nil
}

// initialLoad performs the first load. Callers must hold mu.
func (s *Store) initialLoad() error {
	start := time.Now()
	fresh, err := loadSnapshot(s.dataDir)
	if err != nil {
		s.logger.Error().Err(err).Str("data_dir", s.dataDir).Msg("Catalog load failed")
		metrics.RecordCatalogLoadError()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.current.Store(fresh)
	s.lastChecked.Store(time.Now().UnixNano())
	metrics.RecordCatalogLoad(time.Since(start), len(fresh.Products), len(fresh.Reviews), len(fresh.Policies))
	s.logger.Info().
		Int("products", len(fresh.Products)).
		Int("reviews", len(fresh.Reviews)).
		Int("policies", len(fresh.Policies)).
		Str("data_dir", s.dataDir).
		Msg("Catalog loaded")
	return nil
}

// Stats describes the currently loaded snapshot. The zero value means no
// snapshot has been loaded yet.
type Stats struct {
	Loaded        bool
	Products      int
	Reviews       int
	Policies      int
	LoadedAt      time.Time
	SourceModTime time.Time
}

// Stats reports the current snapshot's shape. It never triggers a load, so
// it is safe to call from health checks and background observers.
func (s *Store) Stats() Stats {
	snap := s.current.Load()
	if snap == nil {
		return Stats{}
	}
	return Stats{
		Loaded:        true,
		Products:      len(snap.Products),
		Reviews:       len(snap.Reviews),
		Policies:      len(snap.Policies),
		LoadedAt:      snap.LoadedAt,
		SourceModTime: snap.SourceModTime,
	}
}

// DataDir returns the configured data directory.
func (s *Store) DataDir() string { return s.dataDir }

// StaleAfter returns the configured trust window.
func (s *Store) StaleAfter() time.Duration { return s.staleAfter }
