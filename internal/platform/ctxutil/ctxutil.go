// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores and reads per-request state: the correlation id,
// the request-scoped logger and the authenticated caller.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/lister/internal/platform/ctxkey"
	"github.com/taibuivan/lister/internal/platform/sec"
)

// value returns the T stored under key, or T's zero value.
func value[T any](ctx context.Context, key ctxkey.Key) T {
	v, _ := ctx.Value(key).(T)
	return v
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.RequestID, id)
}

// GetRequestID returns "" outside a request.
func GetRequestID(ctx context.Context) string {
	return value[string](ctx, ctxkey.RequestID)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.Logger, logger)
}

// GetLogger falls back to [slog.Default] so callers never nil-check.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger := value[*slog.Logger](ctx, ctxkey.Logger); logger != nil {
		return logger
	}
	return slog.Default()
}

func WithIdentity(ctx context.Context, identity *sec.Identity) context.Context {
	return context.WithValue(ctx, ctxkey.Identity, identity)
}

// GetIdentity returns nil for anonymous requests.
func GetIdentity(ctx context.Context) *sec.Identity {
	return value[*sec.Identity](ctx, ctxkey.Identity)
}

// UserID returns the caller's id, or "" when anonymous.
func UserID(ctx context.Context) string {
	if identity := GetIdentity(ctx); identity != nil {
		return identity.UserID
	}
	return ""
}
