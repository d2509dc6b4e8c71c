// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/lister/internal/platform/constants"
)

// RedisRevocationStore keeps revoked token ids as keys that expire with the token.
type RedisRevocationStore struct {
	client *redis.Client
}

func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

/*
Revoke stores the token id with the remaining token lifetime as TTL.

Parameters:
  - context: context.Context
  - tokenID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisRevocationStore) Revoke(context context.Context, tokenID string, ttl time.Duration) error {
	key := constants.RedisPrefixRevokedToken + tokenID

	if err := repository.client.Set(context, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_revoke_token_failed: %w", err)
	}
	return nil
}

func (repository *RedisRevocationStore) IsRevoked(context context.Context, tokenID string) (bool, error) {
	key := constants.RedisPrefixRevokedToken + tokenID

	count, err := repository.client.Exists(context, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis_check_revoked_failed: %w", err)
	}
	return count > 0, nil
}
