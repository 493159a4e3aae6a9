// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

/*
Package supervisor builds the suture v4 supervision tree for Mercatus.

Long-running goroutines (the HTTP server, the stats reporter) run under
Erlang-style supervision: a crash is logged with structured context and
the service is restarted with failure accounting, instead of taking the
process down or dying silently.

# Layout

Services are grouped into two child supervisors so failures stay inside
their layer:

	RootSupervisor ("mercatus")
	├── CatalogSupervisor ("catalog-layer")
	│   └── StatsService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash loop in the stats reporter backs off the catalog layer without
touching request serving, and vice versa. Each child supervisor keeps
its own failure counter; only a persistently failing child escalates to
the root.

# Lifecycle

The tree is assembled once at startup and driven by a single context:

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    ...
	}
	tree.AddCatalogService(statsService)
	tree.AddAPIService(httpService)

	errCh := tree.ServeBackground(ctx)
	// ... cancel ctx to shut down; errCh closes when the tree has stopped

Serve is the blocking variant. Canceling the context winds down every
service; services that ignore cancellation past the shutdown timeout
show up in UnstoppedServiceReport.

# Restart Policy

TreeConfig tunes suture's restart behavior, with zero values filled
from DefaultTreeConfig (suture's own documented defaults):

	FailureThreshold: 5.0              // accumulated failures before backoff
	FailureDecay:     30.0             // seconds for the failure count to halve
	FailureBackoff:   15 * time.Second // pause once the threshold is crossed
	ShutdownTimeout:  10 * time.Second // per-service stop budget

The failure counter decays continuously, so a service that crashes once
and then runs clean for a minute is back near zero. Only sustained
crash loops cross the threshold and trigger the backoff pause.

What a service returns from Serve decides its fate:

	nil                    treated as a completed run; restarted
	error                  crash; restarted with failure accounting
	suture.ErrDoNotRestart removed from the tree
	ctx.Err() after cancel clean shutdown

# What Is Not Supervised

The catalog store is deliberately outside the tree. It is a snapshot
holder, not a long-running service: loads and freshness checks happen
lazily inside request handling, and a failed load keeps the previous
snapshot serving. The response cache's cleanup goroutine is likewise
owned by the cache package; it is too small to justify a supervised
wrapper.

# Logging

Supervision events (starting, stopping, failures, backoff) flow through
the sutureslog adapter into slog, which the logging package bridges to
zerolog. Only the root supervisor carries the event hook; children
inherit it.

# See Also

  - internal/supervisor/services: the Serve wrappers around app components
  - internal/logging: NewSlogLogger, the zerolog-to-slog bridge
  - github.com/thejerf/suture/v4
*/
package supervisor
