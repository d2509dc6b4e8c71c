// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis connects to the key-value backend.

Lister uses one client for two things: the list store (a JSON array per user)
and the revocation set for signed-out access tokens, whose keys expire with
the token they block. Both issue short single-key commands, so the pool stays
small and timeouts stay tight.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client settings.
const (
	poolSize     = 10
	minIdleConns = 2
	maxIdleConns = 5
	dialTimeout  = 3 * time.Second
	ioTimeout    = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// NewClient connects to redisURL (redis:// or rediss://) and pings it.
//
// # Parameters
//   - ctx: Bounds the initial ping.
//   - redisURL: Connection URL, including the database index.
//   - logger: Receives the "redis_connected" event.
func NewClient(ctx context.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}
	tune(options)

	client := redis.NewClient(options)
	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
		slog.Bool("tls", options.TLSConfig != nil),
	)
	return client, nil
}

// tune applies pool and timeout settings over whatever the URL carried.
func tune(options *redis.Options) {
	options.PoolSize = poolSize
	options.MinIdleConns = minIdleConns
	options.MaxIdleConns = maxIdleConns
	options.DialTimeout = dialTimeout
	options.ReadTimeout = ioTimeout
	options.WriteTimeout = ioTimeout
}

// Ping reports whether the server answers within pingTimeout. Readiness uses it.
func Ping(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
