// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

// quietLogger keeps suture event noise out of test output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewSupervisorTree(t *testing.T) {
	t.Run("wires the layer hierarchy", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}

		if tree.Root() == nil {
			t.Error("Root() = nil, want the root supervisor")
		}
		if tree.catalog == nil || tree.api == nil {
			t.Error("child supervisors not constructed")
		}
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("NewSupervisorTree() error = %v", err)
		}

		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
		}
	})
}

func TestDefaultTreeConfig(t *testing.T) {
	want := TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
	if got := DefaultTreeConfig(); got != want {
		t.Errorf("DefaultTreeConfig() = %+v, want %+v", got, want)
	}
}

func TestTreeLifecycle(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   100 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	catalogSvc := NewMockService("snapshot-stats")
	apiSvc := NewMockService("http-server")
	tree.AddCatalogService(catalogSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- tree.Serve(ctx) }()

	if !waitFor(time.Second, func() bool {
		return catalogSvc.StartCount() >= 1 && apiSvc.StartCount() >= 1
	}) {
		t.Errorf("services not started: catalog=%d api=%d",
			catalogSvc.StartCount(), apiSvc.StartCount())
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want nil or context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("tree did not shut down in time")
	}
}

func TestTreeServeBackground(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	select {
	case err := <-tree.ServeBackground(ctx):
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("ServeBackground() error = %v, want nil or context.DeadlineExceeded", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("error channel never delivered")
	}
}

func TestTreeFailureIsolation(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	flaky := NewMockService("flaky-stats")
	flaky.SetFailCount(2)
	stable := NewMockService("stable-api")

	tree.AddCatalogService(flaky)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tree.Serve(ctx)

	// The catalog layer restarts its crashed service without the API
	// layer noticing.
	if !waitFor(2*time.Second, func() bool { return flaky.StartCount() >= 3 }) {
		t.Errorf("flaky StartCount() = %d, want >= 3", flaky.StartCount())
	}
	if stable.StartCount() < 1 {
		t.Error("stable API service never started")
	}
	if stable.StartCount() > 1 {
		t.Errorf("stable API service restarted %d times, want 1 start", stable.StartCount())
	}
}
