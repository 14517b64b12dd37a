package settings

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store for tests and ephemeral sessions.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string

	// SetErr, when non-nil, is returned from every Set.
	SetErr error
	// SetCallCount records how many writes were attempted.
	SetCallCount int
}

// NewMemoryStore returns an empty MemoryStore, optionally pre-seeded.
func NewMemoryStore(seed ...map[string]string) *MemoryStore {
	s := &MemoryStore{values: make(map[string]string)}
	for _, m := range seed {
		for k, v := range m {
			s.values[k] = v
		}
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetCallCount++
	if s.SetErr != nil {
		return s.SetErr
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Writes returns how many Set calls were made.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.SetCallCount
}
