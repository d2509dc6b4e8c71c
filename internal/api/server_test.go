// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lister/internal/api"
	"github.com/taibuivan/lister/internal/core/category"
	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/internal/platform/config"
	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/middleware"
	"github.com/taibuivan/lister/internal/users/account"
	"github.com/taibuivan/lister/internal/users/auth"
)

func newServer(deps api.HealthDependencies) *api.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "test", StoreDriver: config.StoreMemory, AuthMode: config.AuthMock}

	provider := auth.NewMockProvider()
	categories := category.NewService(category.NewMemoryRepository(category.Defaults()), logger)
	lists := list.NewService(list.NewMemoryStore(), categories, logger)
	liveness, readiness := api.NewHealthHandlers(deps, logger)

	return api.NewServer(cfg, logger, provider, middleware.NewRateLimiter(1000, 1000), api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(provider),
		Account:   account.NewHandler(account.NewService(provider, lists)),
		Category:  category.NewHandler(categories),
		List:      list.NewHandler(lists),
	})
}

func serve(server *api.Server, method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if authenticated {
		request.Header.Set("Authorization", "Bearer "+constants.MockAccessToken)
	}
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)
	return recorder
}

func TestHealth(t *testing.T) {
	server := newServer(api.HealthDependencies{StoreDriver: config.StoreMemory, AuthMode: config.AuthMock})

	recorder := serve(server, http.MethodGet, "/health", "", false)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"database":"mock_mode"`)
	assert.Contains(t, recorder.Body.String(), `"authentication":"mock"`)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestReady(t *testing.T) {
	healthy := newServer(api.HealthDependencies{CheckSQLite: func() error { return nil }})
	recorder := serve(healthy, http.MethodGet, "/ready", "", false)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ready"`)

	degraded := newServer(api.HealthDependencies{CheckCache: func() error { return errors.New("connection refused") }})
	recorder = serve(degraded, http.MethodGet, "/ready", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
}

/*
TestRoutes drives the mock-mode API end to end through the full middleware chain.
*/
func TestRoutes(t *testing.T) {
	server := newServer(api.HealthDependencies{StoreDriver: config.StoreMemory, AuthMode: config.AuthMock})

	recorder := serve(server, http.MethodGet, "/api/v1/categories", "", false)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"display_name":"Video Game"`)

	recorder = serve(server, http.MethodGet, "/api/v1/lists", "", false)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = serve(server, http.MethodPost, "/api/v1/lists", `{"category_id":"song","year":2025}`, true)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = serve(server, http.MethodGet, "/api/v1/users/"+constants.MockUserID+"/lists", "", true)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"is_own_lists":true`)
	assert.Contains(t, recorder.Body.String(), `"total":1`)

	recorder = serve(server, http.MethodGet, "/api/v1/auth/me", "", true)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constants.MockUserEmail)

	recorder = serve(server, http.MethodGet, "/api/v1/lists", "", false)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
	request.Header.Set("Authorization", "Bearer wrong")
	invalid := httptest.NewRecorder()
	server.Handler().ServeHTTP(invalid, request)
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)
	assert.Contains(t, invalid.Body.String(), "Invalid token")
}
