// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/govasco/go-trip-backend/internal/config"
	"github.com/govasco/go-trip-backend/internal/domain"
	"github.com/govasco/go-trip-backend/internal/genai"
	"github.com/govasco/go-trip-backend/internal/http/handlers"
	"github.com/govasco/go-trip-backend/internal/http/middleware"
	"github.com/govasco/go-trip-backend/internal/idempotency"
	"github.com/govasco/go-trip-backend/internal/quota"
	"github.com/govasco/go-trip-backend/internal/repo"
	"github.com/govasco/go-trip-backend/internal/services"
	"github.com/govasco/go-trip-backend/internal/store"
)

// tripRepoShim adapts the repository free functions to the services.TripRepo
// interface expected by the TripService. This keeps services decoupled from
// the concrete repo package while reusing existing functions.
type tripRepoShim struct{}

// CreateTrip proxies repo.CreateTrip.
func (tripRepoShim) CreateTrip(ctx context.Context, db *gorm.DB, userID string, req *domain.TripRequest, itinerary json.RawMessage) (*domain.Trip, error) {
	return repo.CreateTrip(ctx, db, userID, req, itinerary)
}

// CountTrips proxies repo.CountTrips (pagination support).
func (tripRepoShim) CountTrips(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	return repo.CountTrips(ctx, db, userID)
}

// ListTripsPage proxies repo.ListTripsPage (pagination support).
func (tripRepoShim) ListTripsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Trip, error) {
	return repo.ListTripsPage(ctx, db, userID, offset, limit)
}

// GetTrip proxies repo.GetTrip.
func (tripRepoShim) GetTrip(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Trip, error) {
	return repo.GetTrip(ctx, db, id, userID)
}

// UpdateTripItinerary proxies repo.UpdateTripItinerary.
func (tripRepoShim) UpdateTripItinerary(ctx context.Context, db *gorm.DB, id, userID string, itinerary json.RawMessage) error {
	return repo.UpdateTripItinerary(ctx, db, id, userID, itinerary)
}

// DeleteTrip proxies repo.DeleteTrip.
func (tripRepoShim) DeleteTrip(ctx context.Context, db *gorm.DB, id, userID string) error {
	return repo.DeleteTrip(ctx, db, id, userID)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), the edge rate
// limiter, CORS and security headers, health and metrics endpoints, and then
// mounts the versioned public API under /api/v*.
//
// The rate-limit and idempotency stores are injected so the caller can share
// them with the background sweeper.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Edge rate limiter (token bucket per user/IP)
//  9. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rates store.RateLimitStore, idem store.IdempotencyStore, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{
			"X-API-Key", // provider key must never reach the logs
		},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Response compression (itineraries are large, repetitive JSON)
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP (burst smoothing; the daily
	// generation quota is enforced separately inside the generation endpoint)
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.CodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.CodeValidationError, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (disabled by default)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← provider/stores/db
	client := genai.New(genai.Options{
		APIKey:    cfg.Generation.APIKey,
		Model:     cfg.Generation.Model,
		MaxTokens: cfg.Generation.MaxTokens,
		Timeout:   cfg.Generation.Timeout,
	})
	genSvc := services.NewGenerationService(client, cfg.Generation.MaxAttempts, cfg.Generation.RetryBackoff)
	limiter := quota.New(rates, cfg.Quota.GuestDailyLimit, cfg.Quota.AuthDailyLimit, cfg.Quota.Window, cfg.Quota.Cooldown)
	cache := idempotency.NewCache(idem, cfg.IdempotencyTTL)
	tripSvc := services.NewTripService(db, tripRepoShim{})

	gh := handlers.NewGenerateHandlers(genSvc, limiter, cache,
		cfg.Generation.Model, cfg.Generation.MaxTokens, cfg.Generation.APIKey != "")
	th := handlers.NewTripHandlers(tripSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Generation
		api.POST("/generate-itinerary", gh.Generate)
		api.GET("/generate-itinerary", gh.Status)

		// Saved trips
		api.POST("/trips", th.CreateTrip)
		api.GET("/trips", th.ListTrips)
		api.GET("/trips/:id", th.GetTrip)
		api.PUT("/trips/:id/itinerary", th.UpdateTripItinerary)
		api.DELETE("/trips/:id", th.DeleteTrip)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
