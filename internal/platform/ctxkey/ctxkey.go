// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey declares the context keys Lister stores request state under.
// Read and write them through package ctxutil.
package ctxkey

// Key is unexported-by-convention: only ctxutil constructs lookups with it.
type Key int

const (
	// RequestID holds the X-Request-ID correlation value (string).
	RequestID Key = iota
	// Logger holds the per-request *slog.Logger.
	Logger
	// Identity holds the authenticated *sec.Identity.
	Identity
)
