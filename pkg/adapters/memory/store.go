// Package memory provides a volatile core.Store, used for tests and throwaway sessions.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/agenda/pkg/core"
)

// Store implements core.Store in memory.
type Store struct {
	mu       sync.RWMutex
	records  map[string][]byte
	readOnly bool
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{records: make(map[string][]byte)}
}

// NewReadOnlyStore returns a store seeded with records that rejects writes.
func NewReadOnlyStore(seed map[string][]byte) *Store {
	s := NewStore()
	for k, v := range seed {
		s.records[k] = append([]byte(nil), v...)
	}
	s.readOnly = true
	return s
}

func (s *Store) Initialize(ctx context.Context) error { return nil }

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if s.readOnly {
		return core.ErrReadOnly
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.readOnly {
		return core.ErrReadOnly
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Keys     []string `json:"keys"`
	ReadOnly bool     `json:"read_only"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return StoreState{Keys: keys, ReadOnly: s.readOnly}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-store"
}

var _ core.Store = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
