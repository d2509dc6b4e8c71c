// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import (
	"context"
	"sync"
)

// MemoryStore keeps lists in process memory, indexed by owner.
// It copies on every read and write so callers never share state with it.
type MemoryStore struct {
	mu     sync.RWMutex
	byUser map[string]map[string]*List
	owner  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byUser: make(map[string]map[string]*List),
		owner:  make(map[string]string),
	}
}

func (store *MemoryStore) Get(_ context.Context, userID string) ([]*List, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	lists := make([]*List, 0, len(store.byUser[userID]))
	for _, stored := range store.byUser[userID] {
		lists = append(lists, stored.Clone())
	}
	return lists, nil
}

func (store *MemoryStore) Put(_ context.Context, list *List) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if previous, ok := store.owner[list.ID]; ok && previous != list.UserID {
		delete(store.byUser[previous], list.ID)
	}

	lists, ok := store.byUser[list.UserID]
	if !ok {
		lists = make(map[string]*List)
		store.byUser[list.UserID] = lists
	}

	lists[list.ID] = list.Clone()
	store.owner[list.ID] = list.UserID
	return nil
}

func (store *MemoryStore) Delete(_ context.Context, listID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	userID, ok := store.owner[listID]
	if !ok {
		return nil
	}

	delete(store.byUser[userID], listID)
	delete(store.owner, listID)
	return nil
}
