// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api is the composition root of the HTTP transport.

It picks the storage and auth backends (backends.go), exposes health and
readiness (health.go), and mounts every domain router behind one middleware
chain (this file). cmd/api is its only production caller.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/lister/internal/core/category"
	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/internal/platform/config"
	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/middleware"
	"github.com/taibuivan/lister/internal/users/account"
	"github.com/taibuivan/lister/internal/users/auth"
)

// Handlers are the route sets the server mounts.
type Handlers struct {
	Liveness  http.HandlerFunc
	Readiness http.HandlerFunc
	Auth      *auth.Handler
	Account   *account.Handler
	Category  *category.Handler
	List      *list.Handler
}

// Server owns the router and the listening [http.Server].
type Server struct {
	httpServer *http.Server
	router     chi.Router
	log        *slog.Logger
}

// NewServer assembles the router.
//
// # Middleware order
//
// Request id and access logging come first so every later rejection (timeout,
// rate limit, panic, bad token) is logged with its id. Authentication only
// resolves the caller; route groups decide whether one is required.
func NewServer(cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, limiter *middleware.RateLimiter, h Handlers) *Server {
	router := chi.NewRouter()

	router.Use(
		middleware.RequestID(),
		middleware.StructuredLogger(log),
		chimw.Timeout(constants.GlobalRequestTimeout),
		limiter.Handler,
		middleware.PanicRecovery(log),
		middleware.CORS(cfg, cfg.AllowedOrigins),
		middleware.Authenticate(verifier),
		chimw.CleanPath,
	)

	router.Get("/health", h.Liveness)
	router.Get("/ready", h.Readiness)

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/health", h.Liveness)
		v1.Mount("/auth", h.Auth.Routes())
		v1.Mount("/users", h.Account.Routes())
		v1.Mount("/categories", h.Category.Routes())
		v1.Mount("/lists", h.List.Routes())
	})

	return &Server{
		router: router,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
		},
	}
}

// Handler returns the router without a listener, for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until the server stops. After Shutdown it returns
// [http.ErrServerClosed].
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits up to timeout for
// in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
