// Package services – GenerationService
//
// This file implements the GenerationService, which orchestrates itinerary
// generation against the model provider: prompt rendering, bounded retries
// with a fixed backoff, JSON extraction, and schema validation of the model's
// output. The model is untrusted; nothing leaves this service as an Itinerary
// without passing full validation.
//
// Retry semantics mirror the provider's failure modes: malformed output and
// transient API errors are retried up to MaxAttempts, a provider throttle
// (429) aborts immediately since an instant retry would only extend the
// penalty, and a missing API key fails fast with ErrMissingAPIKey.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/govasco/go-trip-backend/internal/domain"
	"github.com/govasco/go-trip-backend/internal/genai"
	"github.com/govasco/go-trip-backend/internal/observability"
	"github.com/govasco/go-trip-backend/internal/prompt"
	"github.com/govasco/go-trip-backend/internal/validate"
)

// ModelClient is the provider contract required by GenerationService.
type ModelClient interface {
	// Complete sends one system+user exchange and returns the raw reply text.
	Complete(ctx context.Context, system, user string) (string, error)
}

// GenerationService turns a validated TripRequest into a validated Itinerary.
type GenerationService struct {
	// Client is the model provider client.
	Client ModelClient
	// MaxAttempts bounds the number of model calls per request (>= 1).
	MaxAttempts int
	// Backoff is the fixed pause between attempts.
	Backoff time.Duration

	// sleep is replaced in tests.
	sleep func(ctx context.Context, d time.Duration)
}

// NewGenerationService constructs a GenerationService with the given retry
// policy.
func NewGenerationService(client ModelClient, maxAttempts int, backoff time.Duration) *GenerationService {
	return &GenerationService{
		Client:      client,
		MaxAttempts: maxAttempts,
		Backoff:     backoff,
		sleep:       sleepCtx,
	}
}

// Generate runs the retry loop for req and returns a validated itinerary.
//
// Errors:
//   - ErrMissingAPIKey when the provider client has no key configured.
//   - *GenerationError when every attempt failed; Detail holds the last
//     attempt's diagnostic.
func (s *GenerationService) Generate(ctx context.Context, req *domain.TripRequest) (*domain.Itinerary, error) {
	tr := otel.Tracer("services/GenerationService")
	ctx, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(
			attribute.String("trip.destination", req.Destination),
			attribute.Int("trip.days", req.Days),
		),
	)
	defer span.End()

	log := zerolog.Ctx(ctx)
	system := prompt.System()
	user := prompt.User(req)

	start := time.Now()
	defer func() {
		observability.ObserveGenerationDuration(time.Since(start).Seconds())
	}()

	var lastDetail string
	attempts := 0
	for attempts < s.MaxAttempts {
		attempts++

		it, detail, outcome := s.attempt(ctx, system, user)
		observability.CountGenerationAttempt(outcome)
		if it != nil {
			span.SetAttributes(attribute.Int("generation.attempts", attempts))
			log.Info().Int("attempts", attempts).Msg("itinerary generated")
			return it, nil
		}
		if outcome == outcomeMissingKey {
			return nil, ErrMissingAPIKey
		}

		lastDetail = detail
		log.Warn().
			Int("attempt", attempts).
			Str("outcome", outcome).
			Str("detail", detail).
			Msg("generation attempt failed")

		if outcome == outcomeThrottled {
			break
		}
		if attempts < s.MaxAttempts {
			s.sleep(ctx, s.Backoff)
			if ctx.Err() != nil {
				break
			}
		}
	}

	span.SetAttributes(attribute.Int("generation.attempts", attempts))
	return nil, &GenerationError{Detail: lastDetail, Attempts: attempts}
}

// Attempt outcomes, used as metric labels.
const (
	outcomeSuccess        = "success"
	outcomeMissingKey     = "missing_key"
	outcomeThrottled      = "throttled"
	outcomeUpstreamError  = "upstream_error"
	outcomeInvalidJSON    = "invalid_json"
	outcomeSchemaMismatch = "schema_mismatch"
)

// attempt performs a single model call and validates its output. It returns
// either a trusted itinerary or a diagnostic and the outcome tag.
func (s *GenerationService) attempt(ctx context.Context, system, user string) (*domain.Itinerary, string, string) {
	text, err := s.Client.Complete(ctx, system, user)
	if err != nil {
		switch {
		case errors.Is(err, genai.ErrMissingKey):
			return nil, err.Error(), outcomeMissingKey
		case errors.Is(err, genai.ErrThrottled):
			return nil, "Service surchargé, réessayez dans quelques minutes", outcomeThrottled
		default:
			return nil, err.Error(), outcomeUpstreamError
		}
	}

	raw, err := prompt.ExtractJSON(text)
	if err != nil {
		return nil, err.Error(), outcomeInvalidJSON
	}

	var it domain.Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, "itinerary JSON does not match expected types: "+err.Error(), outcomeInvalidJSON
	}

	if verrs := validate.Itinerary(&it); verrs != nil {
		return nil, validate.Format(verrs), outcomeSchemaMismatch
	}
	return &it, "", outcomeSuccess
}

// sleepCtx pauses for d or until ctx is cancelled, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
