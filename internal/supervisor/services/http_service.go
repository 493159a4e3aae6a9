// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/thejerf/suture/v4"
)

// HTTPServer is the slice of *http.Server that the service wrapper
// needs. Taking an interface keeps the wrapper testable without binding
// real ports.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService adapts an HTTP server to suture's context-aware
// Serve contract. ListenAndServe blocks with no context support, so the
// wrapper runs it in a goroutine and translates context cancellation
// into a graceful Shutdown bounded by stopTimeout.
//
//	server := &http.Server{Addr: ":8080", Handler: router}
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
type HTTPServerService struct {
	srv         HTTPServer
	stopTimeout time.Duration
}

// NewHTTPServerService wraps server for supervision. stopTimeout bounds
// how long graceful shutdown waits for in-flight requests; values <= 0
// fall back to 10s.
func NewHTTPServerService(server HTTPServer, stopTimeout time.Duration) *HTTPServerService {
	if stopTimeout <= 0 {
		stopTimeout = 10 * time.Second
	}
	return &HTTPServerService{srv: server, stopTimeout: stopTimeout}
}

// Serve implements suture.Service.
//
// A ListenAndServe failure (port in use, TLS misconfiguration) is
// returned as an error so the supervisor restarts the service with
// failure accounting. If ListenAndServe returns without the context
// being canceled, the server was closed out-of-band; a closed
// http.Server cannot serve again, so the wrapper reports
// suture.ErrDoNotRestart rather than letting the supervisor spin on a
// dead listener.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- h.srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return suture.ErrDoNotRestart

	case <-ctx.Done():
	}

	// The serve context is already canceled, so the shutdown deadline
	// needs its own context.
	stopCtx, cancel := context.WithTimeout(context.Background(), h.stopTimeout)
	defer cancel()

	err := h.srv.Shutdown(stopCtx)
	<-serveErr
	if err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return ctx.Err()
}

// String names the service in suture event logs.
func (h *HTTPServerService) String() string {
	return "http-server"
}
