// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds the values shared across layers: server timing,
// rate limits, the mock identity, header names and key prefixes.
package constants

import "time"

// # Metadata

const (
	AppName    = "lister-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	DefaultReadHeaderTimeout = 2 * time.Second
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 2 * time.Minute

	// GlobalRequestTimeout bounds a whole request, including its SQL statements.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests on SIGTERM.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// Per client IP.
	DefaultRateLimitRPS   = 50.0
	DefaultRateLimitBurst = 100

	// Idle clients are forgotten after RateLimitClientTTL, checked every
	// RateLimitCleanupInterval.
	RateLimitCleanupInterval = time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Authentication

const (
	// AccessTokenTTL is the lifetime of a signed bearer token.
	AccessTokenTTL = 24 * time.Hour

	// MockAccessToken is the only bearer token accepted in mock auth mode.
	MockAccessToken = "mock-access-token"

	// MockUserID is the identity every mock-mode request resolves to.
	MockUserID = "mock-user-id"

	// MockUserEmail is the e-mail reported for the mock identity.
	MockUserEmail = "test@example.com"

	// MinPasswordLength is the shortest password accepted at sign-up.
	MinPasswordLength = 8
)

// # HTTP Headers

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderRetryAfter    = "Retry-After"
	BearerPrefix        = "Bearer "
)

// # Log and Report Fields

const (
	FieldApp    = "app"
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Prefixes (Key Taxonomy)

const (
	RedisPrefixUserLists    = "lister:user-lists:"
	RedisPrefixListOwner    = "lister:list-owner:"
	RedisPrefixRevokedToken = "auth:revoked:"
)
