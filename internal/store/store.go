// Package store holds the shared, process-wide mutable state of the request
// protection layer: per-identifier rate-limit entries and fingerprint-keyed
// idempotency entries. Components depend on the small interfaces here, not on
// a concrete map, so a shared external key-value store can replace the
// in-memory implementations for multi-instance deployments.
package store

import (
	"sync"
	"time"

	"github.com/govasco/go-trip-backend/internal/domain"
)

// RateLimitEntry is the mutable per-identifier counter state. Entries are
// created lazily on first request and reset in place when their window
// expires; only the sweep removes them.
type RateLimitEntry struct {
	Count       int
	ResetAt     time.Time
	LastRequest time.Time
}

// RateLimitStore is the persistence contract of the rate limiter.
// Implementations must be safe for concurrent use.
type RateLimitStore interface {
	Get(identifier string) (RateLimitEntry, bool)
	Set(identifier string, e RateLimitEntry)
	Delete(identifier string)
	// Sweep removes entries whose window ended before now and reports how
	// many were evicted. It may run concurrently with Get/Set.
	Sweep(now time.Time) int
}

// IdempotencyEntry maps a request fingerprint to a previously validated
// result. Entries are read-only after creation until they expire.
type IdempotencyEntry struct {
	Itinerary *domain.Itinerary
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IdempotencyStore is the persistence contract of the idempotency cache.
// Implementations must be safe for concurrent use.
type IdempotencyStore interface {
	Get(key string) (IdempotencyEntry, bool)
	Set(key string, e IdempotencyEntry)
	Delete(key string)
	// Sweep removes entries that expired before now and reports how many
	// were evicted. It may run concurrently with Get/Set.
	Sweep(now time.Time) int
}

// MemoryRateLimitStore is the default single-process RateLimitStore: a
// mutex-guarded map. Suitable for one instance; use a shared store to
// enforce global limits across replicas.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]RateLimitEntry
}

// NewMemoryRateLimitStore returns an empty in-memory rate-limit store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{entries: make(map[string]RateLimitEntry)}
}

// Get returns the entry for identifier, if present.
func (s *MemoryRateLimitStore) Get(identifier string) (RateLimitEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[identifier]
	return e, ok
}

// Set stores the entry for identifier, overwriting any previous one.
func (s *MemoryRateLimitStore) Set(identifier string, e RateLimitEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[identifier] = e
}

// Delete removes the entry for identifier, if present.
func (s *MemoryRateLimitStore) Delete(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, identifier)
}

// Sweep evicts entries whose window ended before now.
func (s *MemoryRateLimitStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if now.After(e.ResetAt) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// Len reports the number of live entries (expired ones included until swept).
func (s *MemoryRateLimitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// MemoryIdempotencyStore is the default single-process IdempotencyStore.
type MemoryIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]IdempotencyEntry
}

// NewMemoryIdempotencyStore returns an empty in-memory idempotency store.
func NewMemoryIdempotencyStore() *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{entries: make(map[string]IdempotencyEntry)}
}

// Get returns the entry for key, if present. Expiry is the caller's concern:
// the cache layer treats expired entries as absent and deletes them lazily.
func (s *MemoryIdempotencyStore) Get(key string) (IdempotencyEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok
}

// Set stores the entry for key, overwriting any previous one.
func (s *MemoryIdempotencyStore) Set(key string, e IdempotencyEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
}

// Delete removes the entry for key, if present.
func (s *MemoryIdempotencyStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Sweep evicts entries that expired before now.
func (s *MemoryIdempotencyStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k, e := range s.entries {
		if now.After(e.ExpiresAt) {
			delete(s.entries, k)
			n++
		}
	}
	return n
}

// Len reports the number of live entries (expired ones included until swept).
func (s *MemoryIdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
