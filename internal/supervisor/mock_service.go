// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package supervisor

import (
	"context"
	"errors"
	"sync"
)

// ErrSimulatedCrash is what an armed MockService returns from Serve.
var ErrSimulatedCrash = errors.New("simulated crash")

// MockService is a controllable suture.Service for exercising supervisor
// behavior in tests. It counts lifecycle transitions and can be armed to
// crash a fixed number of times or to return a fixed error.
type MockService struct {
	name string

	mu          sync.Mutex
	serveCalls  int
	serveExits  int
	crashesLeft int
	result      error
}

// NewMockService creates a mock with the given name. The name is what
// suture prints when logging events for the service.
func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

// Serve implements suture.Service. It crashes while armed crashes remain,
// returns the configured result if one is set, and otherwise blocks until
// ctx is done.
func (m *MockService) Serve(ctx context.Context) error {
	m.mu.Lock()
	m.serveCalls++
	crash := m.crashesLeft > 0
	if crash {
		m.crashesLeft--
	}
	result := m.result
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.serveExits++
		m.mu.Unlock()
	}()

	if crash {
		return ErrSimulatedCrash
	}
	if result != nil {
		return result
	}

	<-ctx.Done()
	return ctx.Err()
}

// SetError makes every subsequent Serve call return err immediately.
func (m *MockService) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = err
}

// SetFailCount arms the service to crash on the next n Serve calls.
func (m *MockService) SetFailCount(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.crashesLeft = n
}

// StartCount reports how many times Serve has been entered.
func (m *MockService) StartCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.serveCalls
}

// StopCount reports how many times Serve has returned.
func (m *MockService) StopCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.serveExits
}

// String implements fmt.Stringer. Suture uses it to name the service in
// event logs.
func (m *MockService) String() string {
	return m.name
}
