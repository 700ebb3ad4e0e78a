// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

// Command api is the entry point for the Periodika HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mzalesak/periodika/internal/api"
	"github.com/mzalesak/periodika/internal/core/metatitle"
	"github.com/mzalesak/periodika/internal/core/mutation"
	"github.com/mzalesak/periodika/internal/core/owner"
	"github.com/mzalesak/periodika/internal/core/publication"
	"github.com/mzalesak/periodika/internal/core/specimen"
	"github.com/mzalesak/periodika/internal/core/volume"
	"github.com/mzalesak/periodika/internal/platform/config"
	"github.com/mzalesak/periodika/internal/platform/constants"
	"github.com/mzalesak/periodika/internal/platform/migration"
	pgstore "github.com/mzalesak/periodika/internal/platform/postgres"
	redisstore "github.com/mzalesak/periodika/internal/platform/redis"
	"github.com/mzalesak/periodika/internal/platform/sec"
	"github.com/mzalesak/periodika/internal/users/account"
	"github.com/mzalesak/periodika/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "periodika"))
	slog.SetDefault(log)

	log.Info("[Periodika] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "periodika"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for the process. The rate limiter's janitor goroutine
	// lives on this context.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup deadline so misconfiguration is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewPostgresUserRepository(pool)
	sessionRepository := auth.NewRedisSessionRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	accountService := account.NewService(userRepository, log)
	accountHandler := account.NewHandler(accountService)

	metaTitleRepository := metatitle.NewPostgresRepository(pool)
	metaTitleService := metatitle.NewService(metaTitleRepository, log)
	metaTitleHandler := metatitle.NewHandler(metaTitleService)

	publicationRepository := publication.NewPostgresRepository(pool)
	publicationService := publication.NewService(publicationRepository, log)
	publicationHandler := publication.NewHandler(publicationService)

	mutationRepository := mutation.NewPostgresRepository(pool)
	mutationService := mutation.NewService(mutationRepository, log)
	mutationHandler := mutation.NewHandler(mutationService)

	ownerRepository := owner.NewPostgresRepository(pool)
	ownerService := owner.NewService(ownerRepository, log)
	ownerHandler := owner.NewHandler(ownerService)

	volumeRepository := volume.NewPostgresRepository(pool)
	volumeService := volume.NewService(volumeRepository, publicationRepository, log)
	volumeHandler := volume.NewHandler(volumeService)

	specimenRepository := specimen.NewPostgresRepository(pool)
	specimenService := specimen.NewService(specimenRepository, log)
	specimenHandler := specimen.NewHandler(specimenService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Auth:        authHandler,
		Account:     accountHandler,
		MetaTitle:   metaTitleHandler,
		Volume:      volumeHandler,
		Specimen:    specimenHandler,
		Publication: publicationHandler,
		Mutation:    mutationHandler,
		Owner:       ownerHandler,
	}

	server := api.NewServer(rootCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
