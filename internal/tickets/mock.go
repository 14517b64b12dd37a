package tickets

import (
	"context"
	"errors"
	"sync"
)

// ErrMockNotImplemented is returned when a MockSource lacks a FetchFn.
var ErrMockNotImplemented = errors.New("tickets.MockSource: Fetch not implemented")

// MockSource is a test double for Source.
type MockSource struct {
	FetchFn func(context.Context) ([]Ticket, error)

	mu             sync.Mutex
	FetchCallCount int
}

// NewMockSource returns a MockSource that serves the given tickets.
func NewMockSource(items ...Ticket) *MockSource {
	return &MockSource{
		FetchFn: func(context.Context) ([]Ticket, error) {
			return append([]Ticket(nil), items...), nil
		},
	}
}

// Fetch invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockSource) Fetch(ctx context.Context) ([]Ticket, error) {
	m.mu.Lock()
	m.FetchCallCount++
	m.mu.Unlock()
	if m.FetchFn == nil {
		return nil, ErrMockNotImplemented
	}
	return m.FetchFn(ctx)
}

// Calls returns how many times Fetch has been invoked.
func (m *MockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FetchCallCount
}
