// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/internal/platform/ctxutil"
	"github.com/taibuivan/lister/internal/platform/sec"
)

// server mounts the list routes behind a stub that authenticates the
// X-Test-User header, mirroring what the bearer middleware injects.
func server(t *testing.T) *httptest.Server {
	t.Helper()
	service, _ := newService(list.NewMemoryStore())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if userID := request.Header.Get("X-Test-User"); userID != "" {
				request = request.WithContext(ctxutil.WithIdentity(request.Context(), &sec.Identity{UserID: userID}))
			}
			next.ServeHTTP(writer, request)
		})
	})
	router.Mount("/lists", list.NewHandler(service).Routes())

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func call(t *testing.T, srv *httptest.Server, method, path, userID, body string) (int, envelope) {
	t.Helper()

	request, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if userID != "" {
		request.Header.Set("X-Test-User", userID)
	}

	response, err := srv.Client().Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	var env envelope
	if response.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(response.Body).Decode(&env))
	}
	return response.StatusCode, env
}

func TestHandler_RequiresAuth(t *testing.T) {
	srv := server(t)

	status, env := call(t, srv, http.MethodGet, "/lists", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authorization header required", env.Error)
}

/*
TestHandler_ListLifecycle walks a list through create, fill, reorder, share and delete.
*/
func TestHandler_ListLifecycle(t *testing.T) {
	srv := server(t)

	status, env := call(t, srv, http.MethodPost, "/lists", owner, `{"category_id":"movie","sub_genre_id":"sci-fi","year":2025}`)
	require.Equal(t, http.StatusCreated, status, env.Error)

	var created list.List
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "My Top Sci-Fi Movies of 2025", created.Title)
	base := "/lists/" + created.ID

	status, env = call(t, srv, http.MethodPost, "/lists", owner, `{"category_id":"movie","sub_genre_id":"sci-fi","year":2025}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", env.Code)

	var ids []string
	for _, title := range []string{"Dune", "Alien", "Arrival"} {
		status, env = call(t, srv, http.MethodPost, base+"/items", owner, `{"title":"`+title+`"}`)
		require.Equal(t, http.StatusCreated, status, env.Error)

		var result list.AddItemResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		ids = append(ids, result.Item.ID)
	}

	status, env = call(t, srv, http.MethodPost, base+"/items", owner, `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Title is required", env.Error)

	status, env = call(t, srv, http.MethodPut, base+"/items", owner,
		`{"items":[{"id":"`+ids[2]+`"},{"id":"`+ids[0]+`"},{"id":"`+ids[1]+`"}]}`)
	require.Equal(t, http.StatusOK, status, env.Error)

	status, env = call(t, srv, http.MethodPut, base+"/items", owner, `{"item_ids":["`+ids[0]+`"]}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = call(t, srv, http.MethodPut, base+"/items/"+ids[1], owner, `{"title":"Alien (1979)"}`)
	require.Equal(t, http.StatusOK, status, env.Error)

	status, env = call(t, srv, http.MethodGet, base+"/share", owner, "")
	require.Equal(t, http.StatusOK, status)
	var share list.Share
	require.NoError(t, json.Unmarshal(env.Data, &share))
	assert.Equal(t, "My Top 3 Movies of 2025:\n\n1. Arrival\n2. Dune\n3. Alien (1979)", share.Text)

	status, _ = call(t, srv, http.MethodDelete, base+"/items/"+ids[0], owner, "")
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, srv, http.MethodGet, base, owner, "")
	require.Equal(t, http.StatusOK, status)
	var fetched list.List
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, "Arrival", fetched.Items[0].Title)
	assert.Equal(t, 2, fetched.Items[1].Position)

	status, _ = call(t, srv, http.MethodGet, base, stranger, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, env = call(t, srv, http.MethodPut, base, owner, `{"title":"Space"}`)
	require.Equal(t, http.StatusOK, status)

	status, env = call(t, srv, http.MethodGet, "/lists?category_id=movie&year=2025", owner, "")
	require.Equal(t, http.StatusOK, status)
	var lists []list.List
	require.NoError(t, json.Unmarshal(env.Data, &lists))
	require.Len(t, lists, 1)
	assert.Equal(t, "Space", lists[0].Title)

	status, env = call(t, srv, http.MethodGet, "/lists?year=abc", owner, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = call(t, srv, http.MethodDelete, base, owner, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "List deleted successfully", env.Message)

	status, _ = call(t, srv, http.MethodGet, base, owner, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandler_CapacityExceeded(t *testing.T) {
	srv := server(t)

	status, env := call(t, srv, http.MethodPost, "/lists", owner, `{"category_id":"book","year":2025}`)
	require.Equal(t, http.StatusCreated, status)
	var created list.List
	require.NoError(t, json.Unmarshal(env.Data, &created))

	for i := 0; i < list.MaxItems; i++ {
		status, _ = call(t, srv, http.MethodPost, "/lists/"+created.ID+"/items", owner, `{"title":"Book"}`)
		require.Equal(t, http.StatusCreated, status)
	}

	status, env = call(t, srv, http.MethodPost, "/lists/"+created.ID+"/items", owner, `{"title":"One more"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CAPACITY_EXCEEDED", env.Code)

	status, env = call(t, srv, http.MethodPost, "/lists/"+created.ID+"/items", owner, `{"title":"Top pick","position":1,"allow_eviction":true}`)
	require.Equal(t, http.StatusCreated, status)
	var result list.AddItemResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotNil(t, result.Evicted)
	assert.Equal(t, 1, result.Item.Position)
	assert.Len(t, result.List.Items, list.MaxItems)
}
