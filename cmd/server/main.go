// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

// Package main is the entry point for the Mercatus server application.
//
// Mercatus is a product catalog analytics engine. It loads products, customer
// reviews, and store policies from CSV sources into an immutable in-memory
// snapshot and serves filtered listings, recommendations, review sentiment
// summaries, price comparisons, policy lookups, and a chat-style assistant
// over a REST API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: zerolog with JSON or console output
//  3. Catalog Store: CSV-backed snapshot store with mtime-based revalidation
//  4. Supervisor Tree: Suture v4 process supervision
//  5. HTTP Server: Chi router with Swagger documentation
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Core settings:
//   - DATA_DIR: Directory holding products.csv, reviews.csv and store_policies.csv (default: data)
//   - REFRESH_WINDOW: How long a loaded snapshot is trusted before source
//     modification times are re-checked (default: 30s)
//   - PORT, HOST: HTTP listen address (default: 0.0.0.0:8080)
//
// # Data Freshness
//
// The catalog loads lazily on first access. Inside the trust window every
// query serves the current snapshot without touching the filesystem. Once the
// window elapses, the next query compares source modification times and
// reloads only when a file actually changed. A failed reload keeps the
// previous snapshot in service.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Reports any services that failed to stop
//
// # Example Usage
//
// Development with console logging:
//
//	export LOG_FORMAT=console
//	export DATA_DIR=./data
//	go run ./cmd/server
//
// Production:
//
//	export ENVIRONMENT=production
//	export DATA_DIR=/var/lib/mercatus/data
//	./mercatus
//
// Docker:
//
//	docker run -d \
//	  -v $(pwd)/data:/data \
//	  -e DATA_DIR=/data \
//	  -p 8080:8080 \
//	  ghcr.io/tomtom215/mercatus
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/mercatus/docs" // Import generated swagger docs
	"github.com/tomtom215/mercatus/internal/api"
	"github.com/tomtom215/mercatus/internal/catalog"
	"github.com/tomtom215/mercatus/internal/config"
	"github.com/tomtom215/mercatus/internal/logging"
	"github.com/tomtom215/mercatus/internal/metrics"
	"github.com/tomtom215/mercatus/internal/supervisor"
	"github.com/tomtom215/mercatus/internal/supervisor/services"
)

// version is reported by the health endpoint and the app_info metric.
const version = "1.0.0"

func main() {
	// Configuration has to come up before the logger so LOG_LEVEL and
	// LOG_FORMAT take effect from the first line
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", version).Msg("Starting Mercatus with supervisor tree")
	logging.Info().
		Str("data_dir", cfg.Catalog.DataDir).
		Dur("stale_after", cfg.Catalog.StaleAfter).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	// The store loads lazily: CSV sources are read on first access and
	// revalidated against modification times once the trust window elapses.
	store := catalog.NewStore(catalog.Config{
		DataDir:    cfg.Catalog.DataDir,
		StaleAfter: cfg.Catalog.StaleAfter,
	})
	warmCatalog(store, cfg.Catalog.DataDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog speaks slog, so the supervisor gets the zerolog bridge
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("This should only be used for local benchmarks and CI!")
	}

	// The wildcard CORS default keeps local setups zero-config. In
	// production it usually means CORS_ORIGINS was never set.
	if cfg.IsProduction() {
		for _, origin := range cfg.Security.CORSOrigins {
			if origin == "*" {
				logging.Warn().Msg("Wildcard CORS origin in production; set CORS_ORIGINS to your frontend hosts")
				break
			}
		}
	}

	handler := api.NewHandler(store, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Catalog layer services
	statsService := services.NewStatsService(store, services.StatsServiceConfig{}, logging.Logger()).
		WithResponseCache(handler)
	tree.AddCatalogService(statsService)
	logging.Info().Msg("Catalog stats service added to supervisor tree")

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	// SIGINT/SIGTERM cancel the supervision context; everything below the
	// root supervisor winds down from that one cancellation
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	awaitTermination(ctx, tree.ServeBackground(ctx), tree)
	logging.Info().Msg("Application stopped gracefully")
}

// warmCatalog forces the first snapshot load so the first request does not
// pay for it. A failed warm-up is not fatal: the store retries on the next
// query and the API reports the catalog unavailable until a load succeeds.
func warmCatalog(store *catalog.Store, dataDir string) {
	snap, err := store.Snapshot(context.Background())
	if err != nil {
		logging.Warn().Err(err).
			Str("data_dir", dataDir).
			Msg("Initial catalog load failed (will retry on next query)")
		return
	}
	logging.Info().
		Int("products", len(snap.Products)).
		Int("reviews", len(snap.Reviews)).
		Int("policies", len(snap.Policies)).
		Msg("Catalog loaded successfully")
}

// awaitTermination blocks until supervision ends, drains the error channel,
// and reports services that did not stop inside the shutdown timeout.
// context.Canceled is the normal shutdown path and is not logged as an error.
func awaitTermination(ctx context.Context, errCh <-chan error, tree *supervisor.SupervisorTree) {
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// The channel closes once the whole tree has stopped
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
}
