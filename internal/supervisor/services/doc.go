// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

/*
Package services adapts Mercatus components to suture's supervision model.

suture expects every supervised unit to implement one blocking method:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The components wrapped here were not written against that contract:
http.Server blocks in ListenAndServe with no context support, and the
stats reporter is a plain ticker loop. Each wrapper owns that
translation so the components themselves stay supervision-agnostic.

# HTTPServerService

Runs ListenAndServe in a goroutine and waits on either the serve result
or context cancellation. On cancellation it drains in-flight requests
with http.Server.Shutdown under a fresh deadline, since the serve
context is already dead at that point. The constructor takes the small
HTTPServer interface rather than *http.Server so tests can exercise the
lifecycle without binding real ports.

	server := &http.Server{Addr: ":8080", Handler: router}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

# StatsService

Publishes catalog snapshot gauges (product, review and policy counts,
snapshot age), response cache counters and application uptime to
Prometheus on a fixed interval. It reads whatever snapshot is current
and never triggers a load, so a wedged data directory cannot stall it.

	stats := services.NewStatsService(store, services.StatsServiceConfig{}, log).
	    WithResponseCache(handler)
	tree.AddCatalogService(stats)

# Restart Semantics

What Serve returns decides what the supervisor does next:

	error                  -> failure, restart with backoff accounting
	suture.ErrDoNotRestart -> service removed from the tree
	ctx.Err() after cancel -> orderly shutdown

HTTPServerService returns ErrDoNotRestart when ListenAndServe ends
without the context being canceled: the server was closed out-of-band,
and a closed http.Server cannot serve again, so a restart would spin on
a dead listener.

# Naming

Every wrapper implements fmt.Stringer ("http-server", "stats-service").
suture puts the name in its event log lines:

	INFO http-server: starting
	ERROR http-server: restarting after failure

# Testing

Because the wrappers accept interfaces, lifecycle tests run against
in-memory stubs: a fake server whose ListenAndServe blocks until
Shutdown is called, a stats source returning canned catalog.Stats. See
the package tests for the full set, including wrappers driven by a real
suture supervisor.
*/
package services
