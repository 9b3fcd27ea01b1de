// Package memstore provides the in-memory record store used when no durable
// backend is configured. It models an origin-local key-value surface: a flat
// map of string keys to string values, synchronous and never failing.
package memstore

import (
	"context"
	"sync"

	"club-auth/app/port"
)

// Store implements port.RecordStore in memory
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty in-memory record store
func New() port.RecordStore {
	return &Store{
		values: make(map[string]string),
	}
}

// Get reads the value stored under key
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set writes the value under key
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete removes the value under key
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
