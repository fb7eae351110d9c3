// Package idempotency deduplicates generation requests: two semantically
// identical requests inside the TTL window produce one model call. Requests
// are keyed by a SHA-256 fingerprint of their canonical form, so JSON key
// order and whitespace never affect identity.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/govasco/go-trip-backend/internal/domain"
	"github.com/govasco/go-trip-backend/internal/observability"
	"github.com/govasco/go-trip-backend/internal/store"
)

// Fingerprint derives the cache key for a validated request: a hex SHA-256
// of its canonical JSON. Canonical form marshals through a map, which sorts
// keys, and omits optional fields that were not supplied, so absent and
// explicit-null travelers hash identically.
func Fingerprint(req *domain.TripRequest) string {
	canonical := map[string]any{
		"destination": req.Destination,
		"days":        req.Days,
		"budget":      req.Budget,
		"interests":   req.Interests,
		"pace":        req.Pace,
	}
	if req.Travelers != nil {
		canonical["travelers"] = *req.Travelers
	}
	if req.StartDate != "" {
		canonical["startDate"] = req.StartDate
	}

	// Map marshalling cannot fail for these value types.
	b, _ := json.Marshal(canonical)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Cache is the TTL-bounded result cache over an injected store.
type Cache struct {
	store store.IdempotencyStore
	ttl   time.Duration

	now func() time.Time
}

// NewCache builds a cache whose entries live for ttl after being stored.
func NewCache(st store.IdempotencyStore, ttl time.Duration) *Cache {
	return &Cache{store: st, ttl: ttl, now: time.Now}
}

// Lookup returns the cached itinerary for key, if a live entry exists.
// Expired entries are evicted on sight and reported as a miss.
func (c *Cache) Lookup(key string) (*domain.Itinerary, bool) {
	e, ok := c.store.Get(key)
	if !ok {
		observability.CountIdempotencyLookup(false)
		return nil, false
	}
	if c.now().After(e.ExpiresAt) {
		c.store.Delete(key)
		observability.CountIdempotencyLookup(false)
		return nil, false
	}
	observability.CountIdempotencyLookup(true)
	return e.Itinerary, true
}

// Store caches a freshly validated itinerary under key. Storing over an
// existing entry replaces it and restarts the TTL.
func (c *Cache) Store(key string, it *domain.Itinerary) {
	now := c.now()
	c.store.Set(key, store.IdempotencyEntry{
		Itinerary: it,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	})
}
