// Command server runs the trip backend HTTP API.
//
// Startup order: env + config, logging, tracing, database, in-memory stores
// and their sweeper, then the Gin engine. Shutdown is graceful: the HTTP
// server drains in-flight requests, the sweeper stops, and the tracer
// provider flushes.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/govasco/go-trip-backend/docs"
	"github.com/govasco/go-trip-backend/internal/config"
	httpapi "github.com/govasco/go-trip-backend/internal/http"
	"github.com/govasco/go-trip-backend/internal/observability"
	"github.com/govasco/go-trip-backend/internal/repo"
	"github.com/govasco/go-trip-backend/internal/store"
	"github.com/govasco/go-trip-backend/internal/sysutil"
)

// version is injected at build time via -ldflags.
var version = "dev"

// @title        Trip Backend API
// @version      1.0
// @description  Travel itinerary generation and storage service.
// @BasePath     /api/v1
func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()
	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	// Shared stores: the router serves from them, the sweeper expires them.
	rates := store.NewMemoryRateLimitStore()
	idem := store.NewMemoryIdempotencyStore()
	sweeper := store.NewSweeper(rates, idem, cfg.SweepInterval, log.Logger)
	sweeperDone := sweeper.Start(ctx)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, rates, idem, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	<-sweeperDone

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	log.Info().Msg("bye")
}
