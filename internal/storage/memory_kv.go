// ABOUTME: In-process key-value storage.
// ABOUTME: Used by tests and by the memory backend for throwaway sessions.
package storage

import (
	"context"
	"sync"
)

// MemoryKV keeps values in a map for the life of the process.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the value stored for key.
func (s *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *MemoryKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Close is a no-op.
func (s *MemoryKV) Close() error {
	return nil
}
