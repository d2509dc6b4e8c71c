// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/lister/internal/platform/apperr"
	"github.com/taibuivan/lister/internal/platform/ctxutil"
	"github.com/taibuivan/lister/internal/platform/middleware"
	"github.com/taibuivan/lister/internal/platform/sec"
)

type stubVerifier struct{}

func (stubVerifier) VerifyToken(_ context.Context, token string) (*sec.Identity, error) {
	switch token {
	case "good":
		return &sec.Identity{UserID: "user-1"}, nil
	case "unreachable":
		return nil, errors.New("dial tcp: connection refused")
	default:
		return nil, apperr.Unauthorized("rejected")
	}
}

// echoUser writes the resolved user id, or "anonymous".
var echoUser = http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
	userID := ctxutil.UserID(request.Context())
	if userID == "" {
		userID = "anonymous"
	}
	_, _ = writer.Write([]byte(userID))
})

/*
TestAuthenticate covers anonymous, malformed, rejected and accepted headers.
*/
func TestAuthenticate(t *testing.T) {
	handler := middleware.Authenticate(stubVerifier{})(echoUser)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no_header", "", http.StatusOK, "anonymous"},
		{"not_bearer", "Basic abc", http.StatusUnauthorized, "Authorization header required"},
		{"invalid_token", "Bearer nope", http.StatusUnauthorized, "Invalid token"},
		{"valid_token", "Bearer good", http.StatusOK, "user-1"},
		{"verifier_unavailable", "Bearer unreachable", http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	handler := middleware.Authenticate(stubVerifier{})(middleware.RequireAuth(echoUser))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Authorization header required")

	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer good")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRateLimiter verifies the bucket rejects once the burst is spent, per IP.
*/
func TestRateLimiter(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 2)
	handler := limiter.Handler(echoUser)

	send := func(ip string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)

	limited := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)
}

func TestRequestID(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(ctxutil.GetRequestID(request.Context())))
	}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "abc-123")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "abc-123", recorder.Body.String())
	assert.Equal(t, "abc-123", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
