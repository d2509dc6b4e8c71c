// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lister/internal/core/category"
	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/middleware"
	"github.com/taibuivan/lister/internal/users/account"
	"github.com/taibuivan/lister/internal/users/auth"
)

func setup(t *testing.T) (*account.Service, *list.Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	categories := category.NewService(category.NewMemoryRepository(category.Defaults()), logger)
	lists := list.NewService(list.NewMemoryStore(), categories, logger)
	return account.NewService(auth.NewMockProvider(), lists), lists
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()
	service, _ := setup(t)

	own, err := service.GetProfile(ctx, constants.MockUserID, constants.MockUserID)
	require.NoError(t, err)
	assert.True(t, own.IsOwnProfile)
	require.NotNil(t, own.Email)
	assert.Equal(t, constants.MockUserEmail, *own.Email)

	other, err := service.GetProfile(ctx, constants.MockUserID, "0123456789abcdef")
	require.NoError(t, err)
	assert.False(t, other.IsOwnProfile)
	assert.Nil(t, other.Email)
	assert.Equal(t, "user_01234567", other.Username)
}

func TestHandler(t *testing.T) {
	service, lists := setup(t)

	_, err := lists.CreateList(context.Background(), "author-1", list.CreateListInput{CategoryID: "game", Year: 2024})
	require.NoError(t, err)
	_, err = lists.CreateList(context.Background(), "author-1", list.CreateListInput{CategoryID: "book", Year: 2024})
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(auth.NewMockProvider()))
	router.Mount("/users", account.NewHandler(service).Routes())

	get := func(path string, authenticated bool) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodGet, path, nil)
		if authenticated {
			request.Header.Set("Authorization", "Bearer "+constants.MockAccessToken)
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	assert.Equal(t, http.StatusUnauthorized, get("/users/author-1", false).Code)

	recorder := get("/users/author-1", true)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"email":null`)
	assert.Contains(t, recorder.Body.String(), `"is_own_profile":false`)

	recorder = get("/users/author-1/lists?category_id=game&limit=10", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data struct {
			Lists      []list.List `json:"lists"`
			UserID     string      `json:"user_id"`
			IsOwnLists bool        `json:"is_own_lists"`
		} `json:"data"`
		Meta struct {
			Total int `json:"total"`
			Limit int `json:"limit"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "author-1", body.Data.UserID)
	assert.False(t, body.Data.IsOwnLists)
	require.Len(t, body.Data.Lists, 1)
	assert.Equal(t, "game", body.Data.Lists[0].CategoryID)
	assert.Equal(t, 1, body.Meta.Total)
	assert.Equal(t, 10, body.Meta.Limit)

	recorder = get("/users/author-1/lists?page=500000000000000000", true)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Lists)
	assert.Equal(t, 2, body.Meta.Total)
}
