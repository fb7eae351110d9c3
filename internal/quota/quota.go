// Package quota enforces the per-identifier generation budget: a fixed daily
// window with separate ceilings for guests and authenticated users, plus a
// short cooldown between consecutive requests from the same identifier.
//
// The window is fixed, not sliding: the first request after expiry opens a
// fresh window anchored at that request, and the counter resets in full.
package quota

import (
	"time"

	"github.com/govasco/go-trip-backend/internal/observability"
	"github.com/govasco/go-trip-backend/internal/store"
)

// Denial reasons carried on a Decision.
const (
	ReasonCooldown = "cooldown"
	ReasonLimit    = "limit"
)

// Decision is the outcome of a single quota check. Remaining and ResetAt are
// always populated so callers can set rate-limit headers on every response;
// RetryAfter and Reason are only meaningful when Allowed is false.
type Decision struct {
	Allowed    bool
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
	Reason     string
}

// Limiter applies the fixed-window policy on top of an injected store.
type Limiter struct {
	store      store.RateLimitStore
	guestLimit int
	authLimit  int
	window     time.Duration
	cooldown   time.Duration

	now func() time.Time
}

// New builds a limiter. guestLimit and authLimit are requests per window.
func New(st store.RateLimitStore, guestLimit, authLimit int, window, cooldown time.Duration) *Limiter {
	return &Limiter{
		store:      st,
		guestLimit: guestLimit,
		authLimit:  authLimit,
		window:     window,
		cooldown:   cooldown,
		now:        time.Now,
	}
}

// Check consumes one unit of quota for identifier if the request is
// admissible, and returns the decision. Denials never touch the counter, so
// a client in cooldown does not burn budget by retrying early.
//
// Branch order matters: an expired window is reset before the cooldown check,
// so the first request of a new window is never blocked by the tail of the
// previous one.
func (l *Limiter) Check(identifier string, authenticated bool) Decision {
	limit := l.guestLimit
	if authenticated {
		limit = l.authLimit
	}
	now := l.now()

	e, ok := l.store.Get(identifier)
	if !ok || now.After(e.ResetAt) {
		e = store.RateLimitEntry{Count: 1, ResetAt: now.Add(l.window), LastRequest: now}
		l.store.Set(identifier, e)
		observability.CountQuotaDecision("allowed")
		return Decision{Allowed: true, Remaining: limit - 1, ResetAt: e.ResetAt}
	}

	if since := now.Sub(e.LastRequest); since < l.cooldown {
		observability.CountQuotaDecision(ReasonCooldown)
		return Decision{
			Remaining:  remaining(limit, e.Count),
			ResetAt:    e.ResetAt,
			RetryAfter: l.cooldown - since,
			Reason:     ReasonCooldown,
		}
	}

	if e.Count >= limit {
		observability.CountQuotaDecision(ReasonLimit)
		return Decision{
			Remaining:  0,
			ResetAt:    e.ResetAt,
			RetryAfter: e.ResetAt.Sub(now),
			Reason:     ReasonLimit,
		}
	}

	e.Count++
	e.LastRequest = now
	l.store.Set(identifier, e)
	observability.CountQuotaDecision("allowed")
	return Decision{Allowed: true, Remaining: remaining(limit, e.Count), ResetAt: e.ResetAt}
}

func remaining(limit, count int) int {
	if r := limit - count; r > 0 {
		return r
	}
	return 0
}
