// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// stuckService ignores shutdown until release is closed, modeling a
// service that does not honor context cancellation. Its goroutine stays
// blocked until the test releases it.
type stuckService struct {
	startedOnce sync.Once
	started     chan struct{}
	release     chan struct{}
}

func newStuckService() *stuckService {
	return &stuckService{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *stuckService) Serve(ctx context.Context) error {
	s.startedOnce.Do(func() { close(s.started) })
	<-s.release
	return nil
}

func (s *stuckService) String() string { return "stuck-observer" }

// TestTreeIntegration_FullLayout runs the production layout: one
// observer in the catalog layer and the HTTP server stand-in in the API
// layer, through a full start/stop cycle.
func TestTreeIntegration_FullLayout(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   50 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	stats := NewMockService("stats-reporter")
	httpSrv := NewMockService("http-server")
	tree.AddCatalogService(stats)
	tree.AddAPIService(httpSrv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	if !waitFor(time.Second, func() bool {
		return stats.StartCount() >= 1 && httpSrv.StartCount() >= 1
	}) {
		t.Fatalf("services not started: stats=%d http=%d", stats.StartCount(), httpSrv.StartCount())
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree error = %v, want nil or context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down")
	}

	// A clean shutdown leaves nothing to report.
	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("UnstoppedServiceReport() = %v, want empty", report)
	}
}

// TestTreeIntegration_RestartStorm verifies that repeated crashes in the
// catalog layer never ripple into the API layer.
func TestTreeIntegration_RestartStorm(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	flaky := NewMockService("crashing-observer")
	flaky.SetFailCount(3)
	api := NewMockService("api-server")

	tree.AddCatalogService(flaky)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	if !waitFor(2*time.Second, func() bool {
		return flaky.StartCount() >= 4 && api.StartCount() >= 1
	}) {
		t.Errorf("starts: flaky=%d (want >= 4: 3 crashes + 1 clean run) api=%d (want >= 1)",
			flaky.StartCount(), api.StartCount())
	}
	if api.StartCount() > 1 {
		t.Errorf("api StartCount() = %d, want 1; catalog crashes leaked into the API layer", api.StartCount())
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Error("tree did not shut down")
	}
}

// TestTreeIntegration_UnstoppedReport forces a shutdown-timeout overrun
// and checks that the report names the offender.
func TestTreeIntegration_UnstoppedReport(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		ShutdownTimeout: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	stuck := newStuckService()
	tree.AddCatalogService(stuck)
	defer close(stuck.release)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	select {
	case <-stuck.started:
	case <-time.After(time.Second):
		t.Fatal("stuck service never started")
	}
	cancel()

	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not return after the shutdown timeout")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(report) == 0 {
		t.Fatal("UnstoppedServiceReport() empty, want the stuck service listed")
	}
	found := false
	for _, svc := range report {
		if strings.Contains(svc.Name, "stuck-observer") {
			found = true
		}
	}
	if !found {
		t.Errorf("report %v does not name stuck-observer", report)
	}
}

// TestTreeIntegration_ConcurrentServiceAdds registers services from many
// goroutines before the tree starts.
func TestTreeIntegration_ConcurrentServiceAdds(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}

	services := make([]*MockService, 10)
	var wg sync.WaitGroup
	for i := range services {
		services[i] = NewMockService(fmt.Sprintf("observer-%d", i))
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if idx%2 == 0 {
				tree.AddCatalogService(services[idx])
			} else {
				tree.AddAPIService(services[idx])
			}
		}(i)
	}
	wg.Wait()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	if !waitFor(2*time.Second, func() bool {
		for _, svc := range services {
			if svc.StartCount() < 1 {
				return false
			}
		}
		return true
	}) {
		t.Error("not all concurrently added services started")
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Error("tree did not shut down")
	}
}
