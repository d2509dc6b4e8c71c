// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"

	"github.com/taibuivan/lister/internal/platform/apperr"
	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/lister/internal/platform/request"
	"github.com/taibuivan/lister/internal/platform/respond"
	"github.com/taibuivan/lister/internal/platform/sec"
)

// TokenVerifier resolves a bearer token to the caller it was issued to.
//
// Both the mock and the signed-token auth providers satisfy it.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*sec.Identity, error)
}

// Authenticate extracts and verifies the bearer token from the Authorization header.
//
// # Flow
//  1. No Authorization header: the request proceeds as anonymous.
//  2. Header present but not "Bearer <token>": 401.
//  3. Token rejected by the [TokenVerifier]: 401 "Invalid token".
//     Any other verifier failure (e.g. the revocation store is down) is a 500.
//  4. Otherwise the [*sec.Identity] is injected into the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if request.Header.Get(constants.HeaderAuthorization) == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			token := requestutil.BearerToken(request)
			if token == "" {
				respond.Error(writer, request, apperr.Unauthorized("Authorization header required"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			identity, err := verifier.VerifyToken(request.Context(), token)
			if err != nil {
				respond.Error(writer, request, verificationError(err))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			if holder := identityHolderFrom(request.Context()); holder != nil {
				holder.userID = identity.UserID
			}
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// verificationError keeps rejections at 401 and surfaces infrastructure failures.
func verificationError(err error) error {
	appErr := apperr.As(err)
	switch {
	case appErr == nil:
		return apperr.Internal(err)
	case appErr.HTTPStatus == http.StatusUnauthorized:
		return apperr.Unauthorized("Invalid token")
	default:
		return appErr
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetIdentity(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authorization header required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// identityHolder lets the access logger see the user resolved further down the chain.
type identityHolder struct {
	userID string
}

type holderKey struct{}

func withIdentityHolder(ctx context.Context, holder *identityHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, holder)
}

func identityHolderFrom(ctx context.Context) *identityHolder {
	holder, _ := ctx.Value(holderKey{}).(*identityHolder)
	return holder
}
