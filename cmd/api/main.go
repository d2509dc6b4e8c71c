// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Lister HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the configured backends (PostgreSQL, Redis, SQLite) and run migrations.
//  4. Seed the category catalogue when empty.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// With an empty environment the server runs in mock mode and needs no services.
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

	"github.com/taibuivan/lister/internal/api"
	"github.com/taibuivan/lister/internal/core/category"
	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/internal/platform/config"
	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/middleware"
	"github.com/taibuivan/lister/internal/users/account"
	"github.com/taibuivan/lister/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("mock_mode", cfg.IsMock()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Backends ───────────────────────────────────────────────────────
	backends, err := api.OpenBackends(startupCtx, cfg, log)
	must(log, err, "open backends")
	defer func() {
		log.Info("closing_backends")
		if cerr := backends.Close(); cerr != nil {
			log.Error("backend_close_error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Catalogue ──────────────────────────────────────────────────────
	categoryService := category.NewService(backends.Categories, log)
	must(log, categoryService.SeedDefaultsIfEmpty(startupCtx), "seed categories")

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	listService := list.NewService(backends.Lists, categoryService, log)
	accountService := account.NewService(backends.Provider, listService)

	liveness, readiness := api.NewHealthHandlers(backends.Health(cfg), log)

	runCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Run(runCtx)

	server := api.NewServer(cfg, log, backends.Provider, limiter, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(backends.Provider),
		Account:   account.NewHandler(accountService),
		Category:  category.NewHandler(categoryService),
		List:      list.NewHandler(listService),
	})

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger every entry of which carries the app name.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
