package quota

import (
	"testing"
	"time"

	"github.com/govasco/go-trip-backend/internal/store"
)

func newTestLimiter(guest, auth int) (*Limiter, *time.Time) {
	l := New(store.NewMemoryRateLimitStore(), guest, auth, 24*time.Hour, 30*time.Second)
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestCheck_GuestBudgetExhaustion(t *testing.T) {
	l, now := newTestLimiter(3, 10)

	for i, wantRemaining := range []int{2, 1, 0} {
		d := l.Check("ip:1.2.3.4", false)
		if !d.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if d.Remaining != wantRemaining {
			t.Fatalf("request %d remaining=%d want %d", i+1, d.Remaining, wantRemaining)
		}
		*now = now.Add(time.Minute)
	}

	d := l.Check("ip:1.2.3.4", false)
	if d.Allowed {
		t.Fatalf("4th request should be denied")
	}
	if d.Reason != ReasonLimit {
		t.Fatalf("reason=%q want %q", d.Reason, ReasonLimit)
	}
	if d.Remaining != 0 {
		t.Fatalf("remaining=%d want 0", d.Remaining)
	}
	if d.RetryAfter <= 0 {
		t.Fatalf("RetryAfter should be positive, got %v", d.RetryAfter)
	}
}

func TestCheck_AuthenticatedTier(t *testing.T) {
	l, now := newTestLimiter(3, 10)

	for i := 0; i < 10; i++ {
		if d := l.Check("user:alice", true); !d.Allowed {
			t.Fatalf("request %d should be allowed for authenticated user", i+1)
		}
		*now = now.Add(time.Minute)
	}
	if d := l.Check("user:alice", true); d.Allowed {
		t.Fatalf("11th request should be denied")
	}
}

func TestCheck_CooldownDoesNotConsumeBudget(t *testing.T) {
	l, now := newTestLimiter(3, 10)

	if d := l.Check("ip:1.2.3.4", false); !d.Allowed || d.Remaining != 2 {
		t.Fatalf("first request: %+v", d)
	}

	// 10s later: inside the cooldown.
	*now = now.Add(10 * time.Second)
	d := l.Check("ip:1.2.3.4", false)
	if d.Allowed {
		t.Fatalf("request inside cooldown should be denied")
	}
	if d.Reason != ReasonCooldown {
		t.Fatalf("reason=%q want %q", d.Reason, ReasonCooldown)
	}
	if d.RetryAfter != 20*time.Second {
		t.Fatalf("RetryAfter=%v want 20s", d.RetryAfter)
	}

	// The denial must not have burned quota: once the cooldown passes the
	// counter moves from 1 to 2.
	*now = now.Add(25 * time.Second)
	d = l.Check("ip:1.2.3.4", false)
	if !d.Allowed || d.Remaining != 1 {
		t.Fatalf("post-cooldown request: %+v", d)
	}
}

func TestCheck_WindowReset(t *testing.T) {
	l, now := newTestLimiter(3, 10)

	for i := 0; i < 3; i++ {
		l.Check("ip:1.2.3.4", false)
		*now = now.Add(time.Minute)
	}
	if d := l.Check("ip:1.2.3.4", false); d.Allowed {
		t.Fatalf("budget should be exhausted")
	}

	// Just past the window end: fresh window, full budget, and no cooldown
	// carry-over from the previous window's last request.
	*now = now.Add(24*time.Hour + time.Second)
	d := l.Check("ip:1.2.3.4", false)
	if !d.Allowed {
		t.Fatalf("first request of new window should be allowed: %+v", d)
	}
	if d.Remaining != 2 {
		t.Fatalf("remaining=%d want 2", d.Remaining)
	}
	if !d.ResetAt.Equal(now.Add(24 * time.Hour)) {
		t.Fatalf("ResetAt=%v want %v", d.ResetAt, now.Add(24*time.Hour))
	}
}

func TestCheck_IdentifiersAreIndependent(t *testing.T) {
	l, now := newTestLimiter(3, 10)

	for i := 0; i < 3; i++ {
		l.Check("ip:1.2.3.4", false)
		*now = now.Add(time.Minute)
	}
	if d := l.Check("ip:5.6.7.8", false); !d.Allowed || d.Remaining != 2 {
		t.Fatalf("other identifier should have a full budget: %+v", d)
	}
}
