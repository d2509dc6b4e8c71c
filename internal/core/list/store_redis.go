// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/lister/internal/platform/constants"
	"github.com/taibuivan/lister/internal/platform/dberr"
)

// maxTxRetries bounds optimistic-lock retries when two writers race on one user.
const maxTxRetries = 5

// RedisStore keeps one JSON array of lists per user, plus an owner index
// (list id to user id) so Delete can locate a list from its id alone.
//
// # Key Layout
//
//	lister:user-lists:<userID>  -> [List, ...]
//	lister:list-owner:<listID>  -> userID
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func userListsKey(userID string) string { return constants.RedisPrefixUserLists + userID }
func listOwnerKey(listID string) string { return constants.RedisPrefixListOwner + listID }

func (store *RedisStore) Get(context context.Context, userID string) ([]*List, error) {
	lists, err := readLists(context, store.client, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "redis_get_lists")
	}
	return lists, nil
}

func (store *RedisStore) Put(context context.Context, list *List) error {
	previousOwner, err := store.client.Get(context, listOwnerKey(list.ID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return dberr.Wrap(err, "redis_get_owner")
	}

	// An ownership change also rewrites the previous owner's array.
	if previousOwner != "" && previousOwner != list.UserID {
		if err := store.update(context, previousOwner, func(lists []*List) []*List {
			return slices.DeleteFunc(lists, func(l *List) bool { return l.ID == list.ID })
		}, nil); err != nil {
			return err
		}
	}

	return store.update(context, list.UserID, func(lists []*List) []*List {
		index := slices.IndexFunc(lists, func(l *List) bool { return l.ID == list.ID })
		if index >= 0 {
			lists[index] = list
			return lists
		}
		return append(lists, list)
	}, func(pipe redis.Pipeliner) {
		pipe.Set(context, listOwnerKey(list.ID), list.UserID, 0)
	})
}

func (store *RedisStore) Delete(context context.Context, listID string) error {
	userID, err := store.client.Get(context, listOwnerKey(listID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return dberr.Wrap(err, "redis_get_owner")
	}

	return store.update(context, userID, func(lists []*List) []*List {
		return slices.DeleteFunc(lists, func(l *List) bool { return l.ID == listID })
	}, func(pipe redis.Pipeliner) {
		pipe.Del(context, listOwnerKey(listID))
	})
}

// update applies mutate to a user's array under WATCH and writes the result
// with MULTI/EXEC, retrying when another writer touched the key first.
func (store *RedisStore) update(context context.Context, userID string, mutate func([]*List) []*List, extra func(redis.Pipeliner)) error {
	key := userListsKey(userID)

	transaction := func(tx *redis.Tx) error {
		lists, err := readLists(context, tx, userID)
		if err != nil {
			return err
		}

		payload, err := json.Marshal(mutate(lists))
		if err != nil {
			return fmt.Errorf("encode lists: %w", err)
		}

		_, err = tx.TxPipelined(context, func(pipe redis.Pipeliner) error {
			pipe.Set(context, key, payload, 0)
			if extra != nil {
				extra(pipe)
			}
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := store.client.Watch(context, transaction, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return dberr.Wrap(err, "redis_put_lists")
	}
	return dberr.Wrap(fmt.Errorf("lists of %s changed concurrently %d times", userID, maxTxRetries), "redis_put_lists")
}

// stringGetter is satisfied by both the client and a WATCH transaction.
type stringGetter interface {
	Get(context context.Context, key string) *redis.StringCmd
}

// readLists decodes a user's array; a missing key is an empty slice.
func readLists(context context.Context, reader stringGetter, userID string) ([]*List, error) {
	payload, err := reader.Get(context, userListsKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return make([]*List, 0), nil
	}
	if err != nil {
		return nil, err
	}

	lists := make([]*List, 0)
	if err := json.Unmarshal(payload, &lists); err != nil {
		return nil, fmt.Errorf("decode lists of %s: %w", userID, err)
	}
	return lists, nil
}
