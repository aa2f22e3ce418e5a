// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

// Command api is the entry point for the Dicefaces HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to Redis (optional; in-memory preload store otherwise).
//  4. Wire domain services and HTTP handlers.
//  5. Kick off the startup preload sweep when enabled.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/dicewright/dicefaces/internal/api"
	"github.com/dicewright/dicefaces/internal/core/assets"
	"github.com/dicewright/dicefaces/internal/core/die"
	"github.com/dicewright/dicefaces/internal/core/render"
	"github.com/dicewright/dicefaces/internal/platform/config"
	"github.com/dicewright/dicefaces/internal/platform/constants"
	redisstore "github.com/dicewright/dicefaces/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "dicefaces"))
	slog.SetDefault(log)

	log.Info("[Dicefaces] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "dicefaces"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. Preload Store (Redis optional) ─────────────────────────────────
	var store assets.Store = assets.NewMemoryStore()
	var checkCache func() error

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(rootCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		store = assets.NewRedisStore(rdb)
		checkCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	} else {
		log.Info("redis not configured, preloaded set is process-local")
	}

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	ambient := assets.NewAmbient("", cfg.PreloadAssets, cfg.CacheDuration)
	loader := render.NewHTTPLoader(cfg.AssetOrigin)

	assetsService := assets.NewService(ambient, store, loader, cfg.AssetBasePath, log)
	dieService := die.NewService(assetsService, log)
	renderService := render.NewService(dieService, loader, log)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCache: checkCache,
	}, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Die:       die.NewHandler(dieService),
		Assets:    assets.NewHandler(assetsService, log),
		Render:    render.NewHandler(renderService),
	}

	// ── 5. Startup Preload ────────────────────────────────────────────────
	if cfg.PreloadAssets {
		go func() {
			if _, err := assetsService.Preload(rootCtx, constants.DefaultTheme, die.FormatSVG); err != nil {
				log.Error("startup_preload_failed", slog.Any("error", err))
			}
		}()
	}

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
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
