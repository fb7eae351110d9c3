// Itinerary generation HTTP handlers.
//
// This file exposes the protected generation endpoint:
//   - POST /generate-itinerary  (validate, dedupe, rate-limit, generate)
//   - GET  /generate-itinerary  (service status probe)
//
// The POST handler composes the protection layers in a fixed order: schema
// validation first (invalid requests are free), then the idempotency cache
// (replays are free and skip the quota), then the daily quota, and only then
// the model call. A successful result is cached before it is returned.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/govasco/go-trip-backend/internal/domain"
	"github.com/govasco/go-trip-backend/internal/http/middleware"
	"github.com/govasco/go-trip-backend/internal/idempotency"
	"github.com/govasco/go-trip-backend/internal/quota"
	"github.com/govasco/go-trip-backend/internal/services"
	"github.com/govasco/go-trip-backend/internal/validate"
)

//
// Service contracts (context-aware)
//

// Generator defines the itinerary generation operation consumed by HTTP
// handlers. Implementations should be safe for concurrent use and must honor
// the provided context for cancellation and timeouts.
type Generator interface {
	// Generate produces a validated itinerary for a validated request.
	Generate(ctx context.Context, req *domain.TripRequest) (*domain.Itinerary, error)
}

// QuotaChecker decides whether an identifier may consume one generation.
type QuotaChecker interface {
	Check(identifier string, authenticated bool) quota.Decision
}

// ResultCache is the idempotency cache consumed by the generation endpoint.
type ResultCache interface {
	Lookup(key string) (*domain.Itinerary, bool)
	Store(key string, it *domain.Itinerary)
}

// GenerateStatus describes the generation service configuration, returned by
// the GET status probe.
type GenerateStatus struct {
	Status    string `json:"status" example:"ok"`
	Model     string `json:"model" example:"claude-sonnet-4-20250514"`
	MaxTokens int    `json:"maxTokens" example:"4096"`
}

// GenerateResponse is the success envelope of the generation endpoint.
type GenerateResponse struct {
	Success   bool              `json:"success" example:"true"`
	Itinerary *domain.Itinerary `json:"itinerary"`
	// Cached is true when the itinerary was served from the idempotency
	// cache without a model call.
	Cached bool `json:"cached" example:"false"`
}

// GenerateHandlers groups the endpoints of the generation surface.
type GenerateHandlers struct {
	gen    Generator
	quota  QuotaChecker
	cache  ResultCache
	model  string
	tokens int
	hasKey bool
}

// NewGenerateHandlers constructs the generation handlers. model and maxTokens
// only feed the status probe; hasKey short-circuits requests when the service
// was started without a provider key.
func NewGenerateHandlers(gen Generator, q QuotaChecker, cache ResultCache, model string, maxTokens int, hasKey bool) *GenerateHandlers {
	return &GenerateHandlers{gen: gen, quota: q, cache: cache, model: model, tokens: maxTokens, hasKey: hasKey}
}

// identity resolves the quota identifier for the request: the authenticated
// user ID when present, the client IP otherwise.
func identity(c *gin.Context) (identifier string, authenticated bool) {
	if uid := strings.TrimSpace(c.GetHeader("X-User-ID")); uid != "" {
		return uid, true
	}
	return middleware.ClientIP(c), false
}

// setQuotaHeaders advertises the caller's remaining budget on the response.
func setQuotaHeaders(c *gin.Context, d quota.Decision) {
	c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", d.Remaining))
	c.Header("X-RateLimit-Reset", d.ResetAt.UTC().Format(time.RFC3339))
}

// Generate godoc
// @ID          generateItinerary
// @Summary     Generate a travel itinerary
// @Description Validates the trip parameters, applies idempotency and daily quota, then generates a personalized itinerary. Identical requests within 24h return the cached result without consuming quota.
// @Tags        Generation
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Authenticated user ID (raises the daily quota)"  example(user123)
// @Param       body       body    domain.TripRequest  true  "Trip parameters"
//
// @Success     200  {object}  handlers.GenerateResponse
// @Header      200  {string}  X-RateLimit-Remaining  "Requests left in the current window"
// @Header      200  {string}  X-RateLimit-Reset      "Window end (RFC 3339)"
// @Failure     400  {object}  handlers.ErrorResponse "Validation error"
// @Failure     429  {object}  handlers.ErrorResponse "Rate limit exceeded"
// @Failure     500  {object}  handlers.ErrorResponse "Generation failed"
// @Failure     503  {object}  handlers.ErrorResponse "Service unavailable"
// @Router      /generate-itinerary [post]
func (h *GenerateHandlers) Generate(c *gin.Context) {
	if !h.hasKey {
		fail(c, http.StatusServiceUnavailable, CodeAPIKeyMissing, "Service temporairement indisponible", "")
		return
	}

	// 1. Parse + validate. Invalid requests consume no quota.
	var req domain.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeValidationError, "Données invalides", "corps JSON invalide")
		return
	}
	if verrs := validate.TripRequest(&req); verrs != nil {
		fail(c, http.StatusBadRequest, CodeValidationError, "Données invalides", validate.Format(verrs))
		return
	}

	identifier, authenticated := identity(c)
	log := middleware.LoggerFrom(c)

	// 2. Idempotency: replays are free and bypass the quota.
	key := idempotency.Fingerprint(&req)
	if cached, hit := h.cache.Lookup(key); hit {
		log.Info().Str("fingerprint", key).Msg("itinerary served from cache")
		ok(c, http.StatusOK, GenerateResponse{Success: true, Itinerary: cached, Cached: true})
		return
	}

	// 3. Daily quota, checked before the model call.
	d := h.quota.Check(identifier, authenticated)
	if !d.Allowed {
		setQuotaHeaders(c, d)
		retrySecs := int(math.Ceil(d.RetryAfter.Seconds()))
		if retrySecs > 0 {
			c.Header("Retry-After", fmt.Sprintf("%d", retrySecs))
		}
		msg := fmt.Sprintf("Veuillez patienter %ds entre chaque requête", retrySecs)
		if d.Reason == quota.ReasonLimit {
			hours := int(math.Ceil(d.RetryAfter.Hours()))
			msg = fmt.Sprintf("Limite atteinte. Réessayez dans %dh", hours)
		}
		fail(c, http.StatusTooManyRequests, CodeRateLimitExceeded, msg, "")
		return
	}

	// 4. Generate.
	ctx := log.WithContext(c.Request.Context())
	it, err := h.gen.Generate(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrMissingAPIKey) {
			fail(c, http.StatusServiceUnavailable, CodeAPIKeyMissing, "Service temporairement indisponible", "")
			return
		}
		var genErr *services.GenerationError
		if errors.As(err, &genErr) {
			fail(c, http.StatusInternalServerError, CodeGenerationFailed,
				"Impossible de générer l'itinéraire. Réessayez dans quelques minutes.", genErr.Detail)
			return
		}
		fail(c, http.StatusInternalServerError, CodeInternalError, "Une erreur inattendue s'est produite", "")
		return
	}

	// 5. Cache, then respond with the remaining budget.
	h.cache.Store(key, it)
	setQuotaHeaders(c, d)
	ok(c, http.StatusOK, GenerateResponse{Success: true, Itinerary: it, Cached: false})
}

// Status godoc
// @ID          generateStatus
// @Summary     Generation service status
// @Description Reports whether the generation service is configured and which model it uses.
// @Tags        Generation
// @Produce     json
//
// @Success     200  {object}  handlers.GenerateStatus
// @Router      /generate-itinerary [get]
func (h *GenerateHandlers) Status(c *gin.Context) {
	status := "ok"
	if !h.hasKey {
		status = "missing_api_key"
	}
	ok(c, http.StatusOK, GenerateStatus{Status: status, Model: h.model, MaxTokens: h.tokens})
}
