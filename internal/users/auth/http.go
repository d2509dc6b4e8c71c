// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/lister/internal/platform/middleware"
	requestutil "github.com/taibuivan/lister/internal/platform/request"
	"github.com/taibuivan/lister/internal/platform/respond"
)

// Handler implements the authentication endpoints.
type Handler struct {
	provider Provider
}

func NewHandler(provider Provider) *Handler {
	return &Handler{provider: provider}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /signup  : Creates an account and returns a session.
//   - POST /signin  : Returns a session for valid credentials.
//   - POST /signout : Revokes the caller's token.
//   - GET  /me      : Returns the caller's account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signUp)
	router.Post("/signin", handler.signIn)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/signout", handler.signOut)
		r.Get("/me", handler.me)
	})

	return router
}

type meResponse struct {
	User *User `json:"user"`
}

/*
POST /api/v1/auth/signup.

Request:
  - Body: Credentials (email, password, optional username)

Response:
  - 201: AuthResult
  - 400: ValidationError
  - 409: ErrEmailTaken
*/
func (handler *Handler) signUp(writer http.ResponseWriter, request *http.Request) {
	var credentials Credentials
	if err := requestutil.DecodeJSON(request, &credentials); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.provider.SignUp(request.Context(), credentials)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}

/*
POST /api/v1/auth/signin.

Response:
  - 200: AuthResult
  - 400: "Email and password are required"
  - 401: ErrInvalidCredentials
*/
func (handler *Handler) signIn(writer http.ResponseWriter, request *http.Request) {
	var credentials Credentials
	if err := requestutil.DecodeJSON(request, &credentials); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.provider.SignIn(request.Context(), credentials)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) signOut(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.provider.SignOut(request.Context(), identity); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Successfully signed out")
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.provider.FindUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, meResponse{User: user})
}
