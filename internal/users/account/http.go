// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/internal/platform/middleware"
	requestutil "github.com/taibuivan/lister/internal/platform/request"
	"github.com/taibuivan/lister/internal/platform/respond"
	"github.com/taibuivan/lister/pkg/pagination"
)

// Handler implements the HTTP layer for user profiles.
type Handler struct {
	accountService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] with the profile endpoints. All require auth.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/{userId}", handler.getUserProfile)
	router.Get("/{userId}/lists", handler.getUserLists)

	return router
}

type profileResponse struct {
	User *Profile `json:"user"`
}

/*
GET /api/v1/users/{userId}.

Response:
  - 200: {"user": Profile}
  - 404: User not found
*/
func (handler *Handler) getUserProfile(writer http.ResponseWriter, request *http.Request) {
	viewerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.accountService.GetProfile(request.Context(), viewerID, requestutil.Param(request, "userId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profileResponse{User: profile})
}

/*
GET /api/v1/users/{userId}/lists.

Request:
  - Query: category_id, year, page, limit

Response:
  - 200: {"lists", "user_id", "is_own_lists"} with pagination meta
*/
func (handler *Handler) getUserLists(writer http.ResponseWriter, request *http.Request) {
	viewerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter, err := list.FilterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.accountService.UserLists(request.Context(), viewerID,
		requestutil.Param(request, "userId"), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result, result.Meta)
}
