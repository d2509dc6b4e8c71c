// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryAccountStore keeps accounts in process memory.
type MemoryAccountStore struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

func (store *MemoryAccountStore) Create(_ context.Context, user *User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, taken := store.byEmail[user.Email]; taken {
		return ErrEmailTaken
	}
	store.byID[user.ID] = *user
	store.byEmail[user.Email] = user.ID
	return nil
}

func (store *MemoryAccountStore) FindByID(_ context.Context, id string) (*User, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	user, ok := store.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (store *MemoryAccountStore) FindByEmail(context context.Context, email string) (*User, error) {
	store.mu.RLock()
	id, ok := store.byEmail[email]
	store.mu.RUnlock()

	if !ok {
		return nil, ErrUserNotFound
	}
	return store.FindByID(context, id)
}

// MemoryRevocationStore keeps revoked token ids with their expiry.
// Expired entries are dropped lazily on lookup.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{revoked: make(map[string]time.Time), now: time.Now}
}

func (store *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.revoked[tokenID] = store.now().Add(ttl)
	return nil
}

func (store *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	expiresAt, ok := store.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if store.now().After(expiresAt) {
		delete(store.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
