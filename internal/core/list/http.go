// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/lister/internal/platform/middleware"
	requestutil "github.com/taibuivan/lister/internal/platform/request"
	"github.com/taibuivan/lister/internal/platform/respond"
)

// Handler implements the HTTP layer for lists and their items.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with every list endpoint. All require auth.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listLists)
	router.Post("/", handler.createList)

	router.Route("/{id}", func(r chi.Router) {
		r.Get("/", handler.getList)
		r.Put("/", handler.updateList)
		r.Delete("/", handler.deleteList)
		r.Get("/share", handler.shareList)

		r.Post("/items", handler.addItem)
		r.Put("/items", handler.reorderItems)
		r.Put("/items/{itemId}", handler.updateItem)
		r.Delete("/items/{itemId}", handler.removeItem)
	})

	return router
}

// # List Handlers

/*
GET /api/v1/lists.

Request:
  - Query: category_id, year

Response:
  - 200: []List: The caller's lists, newest first
*/
func (handler *Handler) listLists(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter, err := FilterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lists, err := handler.service.ListLists(request.Context(), userID, filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lists)
}

/*
POST /api/v1/lists.

Request:
  - Body: CreateListInput

Response:
  - 201: List
  - 400: ValidationError
  - 409: ErrDuplicateList
*/
func (handler *Handler) createList(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateListInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.CreateList(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, list)
}

func (handler *Handler) getList(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.GetList(request.Context(), userID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

func (handler *Handler) updateList(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateListInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.UpdateList(request.Context(), userID, requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

func (handler *Handler) deleteList(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteList(request.Context(), userID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "List deleted successfully")
}

/*
GET /api/v1/lists/{id}/share.

Response:
  - 200: Share{title, text}
*/
func (handler *Handler) shareList(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	share, err := handler.service.ShareText(request.Context(), userID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, share)
}

// # Item Handlers

/*
POST /api/v1/lists/{id}/items.

Request:
  - Body: AddItemInput (position optional, allow_eviction optional)

Response:
  - 201: AddItemResult
  - 400: ValidationError, CAPACITY_EXCEEDED when the list is full
  - 404: ErrListNotFound
*/
func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input AddItemInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.AddItem(request.Context(), userID, requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}

// reorderRequest accepts either a bare id array or the item objects the
// drag-and-drop client already holds.
type reorderRequest struct {
	ItemIDs []string `json:"item_ids"`
	Items   []struct {
		ID string `json:"id"`
	} `json:"items"`
}

func (body reorderRequest) ids() []string {
	if body.ItemIDs != nil {
		return body.ItemIDs
	}
	ids := make([]string, len(body.Items))
	for i, item := range body.Items {
		ids[i] = item.ID
	}
	return ids
}

/*
PUT /api/v1/lists/{id}/items.

Request:
  - Body: {"item_ids": [...]} or {"items": [{"id": ...}, ...]}

Response:
  - 200: List
  - 400: ValidationError unless the ids are a permutation of the list's items
*/
func (handler *Handler) reorderItems(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body reorderRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.ReorderItems(request.Context(), userID, requestutil.Param(request, "id"), body.ids())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateItemInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.UpdateItem(request.Context(), userID,
		requestutil.Param(request, "id"), requestutil.Param(request, "itemId"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.RemoveItem(request.Context(), userID,
		requestutil.Param(request, "id"), requestutil.Param(request, "itemId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

// FilterFromRequest parses the category_id and year query parameters.
func FilterFromRequest(request *http.Request) (Filter, error) {
	year, err := requestutil.QueryInt(request, FieldYear)
	if err != nil {
		return Filter{}, err
	}
	return Filter{
		CategoryID: request.URL.Query().Get(FieldCategoryID),
		Year:       year,
	}, nil
}
