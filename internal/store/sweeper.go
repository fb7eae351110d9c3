package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/govasco/go-trip-backend/internal/observability"
)

// Sweeper periodically evicts expired entries from the rate-limit and
// idempotency stores so memory stays bounded between requests. Lazy eviction
// on the hot path handles correctness; the sweeper handles identifiers and
// fingerprints that never come back.
type Sweeper struct {
	rates    RateLimitStore
	idem     IdempotencyStore
	interval time.Duration
	log      zerolog.Logger
}

// NewSweeper builds a sweeper over the given stores. interval must be > 0.
func NewSweeper(rates RateLimitStore, idem IdempotencyStore, interval time.Duration, log zerolog.Logger) *Sweeper {
	return &Sweeper{rates: rates, idem: idem, interval: interval, log: log}
}

// Start launches the sweep loop in a goroutine. The loop stops when ctx is
// cancelled; the returned channel closes once the final pass has finished.
func (s *Sweeper) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				s.sweep(now)
			}
		}
	}()
	return done
}

func (s *Sweeper) sweep(now time.Time) {
	nr := s.rates.Sweep(now)
	ni := s.idem.Sweep(now)
	observability.CountSweepEvictions("rate_limit", nr)
	observability.CountSweepEvictions("idempotency", ni)
	if nr > 0 || ni > 0 {
		s.log.Debug().
			Int("rate_limit_evicted", nr).
			Int("idempotency_evicted", ni).
			Msg("sweep: evicted expired entries")
	}
}
