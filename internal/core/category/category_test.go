// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lister/internal/core/category"
	"github.com/taibuivan/lister/internal/platform/apperr"
)

func newService() *category.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return category.NewService(category.NewMemoryRepository(category.Defaults()), logger)
}

/*
TestDefaults verifies the embedded catalogue ships the six built-in categories.
*/
func TestDefaults(t *testing.T) {
	categories := category.Defaults()
	require.Len(t, categories, 6)

	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
		assert.NotEmpty(t, c.Icon)
		assert.Len(t, c.SubGenres, 10)
	}
	assert.Equal(t, []string{"movie", "song", "comic", "tv-show", "book", "game"}, ids)

	song := categories[1]
	rnb := song.SubGenre("r-b")
	require.NotNil(t, rnb)
	assert.Equal(t, "R&B", rnb.DisplayName)
	assert.Equal(t, "song", rnb.CategoryID)
}

func TestDefaults_ReturnsFreshCopy(t *testing.T) {
	first := category.Defaults()
	first[0].DisplayName = "Changed"

	assert.Equal(t, "Movie", category.Defaults()[0].DisplayName)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name: "derives_ids",
			input: `
[[categories]]
display_name = "Podcast"
sub_genres = [{ display_name = "True Crime" }]
`,
		},
		{
			name:    "missing_display_name",
			input:   "[[categories]]\nname = \"x\"\n",
			wantErr: true,
		},
		{
			name: "duplicate_ids",
			input: `
[[categories]]
display_name = "Movie"
[[categories]]
display_name = "Movie"
`,
			wantErr: true,
		},
		{
			name:    "not_toml",
			input:   "{{{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories, err := category.Decode(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, categories, 1)
			assert.Equal(t, "podcast", categories[0].ID)
			assert.Equal(t, "true-crime", categories[0].SubGenres[0].ID)
			assert.Equal(t, "podcast", categories[0].SubGenres[0].CategoryID)
		})
	}
}

func TestCategory_Label(t *testing.T) {
	movie := category.Defaults()[0]

	assert.Equal(t, "Movies", movie.Label(""))
	assert.Equal(t, "Horror Movies", movie.Label("horror"))
	assert.Equal(t, "Movies", movie.Label("unknown"))
}

/*
TestService_Resolve covers category and sub-genre membership checks.
*/
func TestService_Resolve(t *testing.T) {
	service := newService()
	ctx := context.Background()

	resolved, err := service.Resolve(ctx, "movie", "horror")
	require.NoError(t, err)
	assert.Equal(t, "Movie", resolved.DisplayName)

	_, err = service.Resolve(ctx, "podcast", "")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.Resolve(ctx, "song", "horror")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestService_Seed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := category.NewService(category.NewMemoryRepository(nil), logger)
	ctx := context.Background()

	require.NoError(t, service.SeedDefaultsIfEmpty(ctx))
	categories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 6)

	count, err := service.Seed(ctx, []*category.Category{{DisplayName: "Podcast"}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	categories, _ = service.ListCategories(ctx)
	assert.Len(t, categories, 7)

	require.NoError(t, service.SeedDefaultsIfEmpty(ctx))
	categories, _ = service.ListCategories(ctx)
	assert.Len(t, categories, 7)
}

func TestHandler(t *testing.T) {
	router := chi.NewRouter()
	router.Mount("/categories", category.NewHandler(newService()).Routes())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []category.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Data, 6)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/categories/tv-show", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"display_name":"TV Show"`)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/categories/podcast", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
