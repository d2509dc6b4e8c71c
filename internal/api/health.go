// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/taibuivan/lister/internal/platform/config"
	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
// Nil checkers are skipped.
type HealthDependencies struct {
	// StoreDriver and AuthMode are reported by /health.
	StoreDriver string
	AuthMode    string

	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func() error

	// CheckCache pings the Redis client.
	CheckCache func() error

	// CheckSQLite pings the embedded database.
	CheckSQLite func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
	now          func() time.Time
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger, now: time.Now}
	return handler.liveness, handler.readiness
}

type healthReport struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// liveness handles GET /health and reports which backends the process runs with.
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	database := "mock_mode"
	if handler.dependencies.StoreDriver != config.StoreMemory {
		database = "connected"
	}

	respond.OK(writer, healthReport{
		Status:    "healthy",
		Timestamp: handler.now().UTC(),
		Version:   constants.AppVersion,
		Services: map[string]string{
			"database":       database,
			"store":          handler.dependencies.StoreDriver,
			"authentication": handler.dependencies.AuthMode,
		},
	})
}

// readiness handles GET /ready.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	checks := []struct {
		name  string
		check func() error
	}{
		{"postgres", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
		{"sqlite", handler.dependencies.CheckSQLite},
	}

	results := make([]checkResult, 0, len(checks))
	isSystemReady := true

	for _, dependency := range checks {
		if dependency.check == nil {
			continue
		}
		result := checkResult{Name: dependency.name, IsOK: true}
		if err := dependency.check(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", dependency.name), slog.Any("error", err))
		}
		results = append(results, result)
	}

	responseStatus := "ready"
	httpStatus := http.StatusOK
	if !isSystemReady {
		responseStatus = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	respond.Data(writer, httpStatus, map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
	})
}
