// Package memory provides an in-process CacheStore for single-instance
// deployments and tests. Entries live for the process lifetime unless cleared.
package memory

import (
	"context"
	"sync"

	"github.com/coachview/drillgate/internal/domain"
)

// Store is a map-backed cache keyed by fingerprint.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*domain.CacheEntry
}

// NewStore creates an empty in-memory cache.
func NewStore() *Store {
	return &Store{
		mu:      sync.RWMutex{},
		entries: make(map[string]*domain.CacheEntry),
	}
}

// Get retrieves the entry for a fingerprint.
func (s *Store) Get(_ context.Context, fingerprint string) (*domain.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[fingerprint]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	return entry, nil
}

// Set stores an entry. Entries are immutable: writing to an existing
// fingerprint is a no-op, the first write wins.
func (s *Store) Set(_ context.Context, fingerprint string, entry *domain.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[fingerprint]; exists {
		return nil
	}

	s.entries[fingerprint] = entry
	return nil
}

// Clear removes every entry.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*domain.CacheEntry)
	return nil
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
