// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lister/internal/platform/ctxutil"
	"github.com/taibuivan/lister/internal/platform/sec"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0192f5e4-7a1b-7c3d-8e9f-0a1b2c3d4e5f")
	assert.Equal(t, "0192f5e4-7a1b-7c3d-8e9f-0a1b2c3d4e5f", ctxutil.GetRequestID(ctx))
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, logger, ctxutil.GetLogger(ctxutil.WithLogger(ctx, logger)))

	// A nil logger stored by mistake still yields a usable one.
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctxutil.WithLogger(ctx, nil)))
}

func TestIdentity(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetIdentity(ctx))
	assert.Empty(t, ctxutil.UserID(ctx))

	ctx = ctxutil.WithIdentity(ctx, &sec.Identity{UserID: "mock-user-id", Email: "test@example.com"})

	identity := ctxutil.GetIdentity(ctx)
	require.NotNil(t, identity)
	assert.Equal(t, "test@example.com", identity.Email)
	assert.Equal(t, "mock-user-id", ctxutil.UserID(ctx))
}

func TestRequestIDIsolatedFromStringKeys(t *testing.T) {
	ctx := context.WithValue(context.Background(), "request_id", "spoofed")
	assert.Empty(t, ctxutil.GetRequestID(ctx))
}
