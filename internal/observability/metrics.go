// This file exposes Prometheus instrumentation for the protection layer
// around itinerary generation: quota decisions, idempotency cache traffic,
// generation attempt outcomes, and background sweep evictions. HTTP-level
// metrics (request counts, latency) live in the middleware package; the
// collectors here describe domain behaviour and keep label cardinality to a
// small fixed set of outcome strings.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// quotaDecisions counts rate-limit verdicts by outcome:
	// allowed, cooldown, limit.
	quotaDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quota_decisions_total",
			Help: "Total rate-limit decisions by outcome.",
		},
		[]string{"outcome"},
	)

	// idempotencyLookups counts cache probes by result: hit, miss.
	idempotencyLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idempotency_lookups_total",
			Help: "Total idempotency cache lookups by result.",
		},
		[]string{"result"},
	)

	// generationAttempts counts individual model calls by outcome:
	// success, invalid_json, schema_mismatch, throttled, upstream_error.
	generationAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_attempts_total",
			Help: "Total itinerary generation attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// generationDuration records wall time of a full generation (all
	// attempts and backoff included) in seconds.
	generationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "Duration of itinerary generation including retries.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 45, 60, 90},
		},
	)

	// sweepEvictions counts entries removed by the background sweeper,
	// labelled by store: rate_limit, idempotency.
	sweepEvictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sweep_evictions_total",
			Help: "Total entries evicted by the background sweeper.",
		},
		[]string{"store"},
	)
)

func init() {
	prometheus.MustRegister(
		quotaDecisions,
		idempotencyLookups,
		generationAttempts,
		generationDuration,
		sweepEvictions,
	)
}

// CountQuotaDecision records one rate-limit verdict.
func CountQuotaDecision(outcome string) {
	quotaDecisions.WithLabelValues(outcome).Inc()
}

// CountIdempotencyLookup records one cache probe.
func CountIdempotencyLookup(hit bool) {
	if hit {
		idempotencyLookups.WithLabelValues("hit").Inc()
		return
	}
	idempotencyLookups.WithLabelValues("miss").Inc()
}

// CountGenerationAttempt records the outcome of a single model call.
func CountGenerationAttempt(outcome string) {
	generationAttempts.WithLabelValues(outcome).Inc()
}

// ObserveGenerationDuration records the total wall time of a generation.
func ObserveGenerationDuration(seconds float64) {
	generationDuration.Observe(seconds)
}

// CountSweepEvictions records entries evicted from one store by a sweep pass.
func CountSweepEvictions(store string, n int) {
	if n > 0 {
		sweepEvictions.WithLabelValues(store).Add(float64(n))
	}
}
