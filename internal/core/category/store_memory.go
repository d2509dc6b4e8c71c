// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"sync"
)

// MemoryRepository serves the catalogue from process memory.
type MemoryRepository struct {
	mu         sync.RWMutex
	categories []*Category
}

// NewMemoryRepository creates a repository holding a copy of categories.
func NewMemoryRepository(categories []*Category) *MemoryRepository {
	repository := &MemoryRepository{}
	_ = repository.Upsert(context.Background(), categories)
	return repository
}

func (repository *MemoryRepository) List(_ context.Context) ([]*Category, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	result := make([]*Category, 0, len(repository.categories))
	for _, category := range repository.categories {
		result = append(result, category.Clone())
	}
	return result, nil
}

func (repository *MemoryRepository) FindByID(_ context.Context, id string) (*Category, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, category := range repository.categories {
		if category.ID == id {
			return category.Clone(), nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (repository *MemoryRepository) Upsert(_ context.Context, categories []*Category) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, incoming := range categories {
		replaced := false
		for index, existing := range repository.categories {
			if existing.ID == incoming.ID {
				repository.categories[index] = incoming.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			repository.categories = append(repository.categories, incoming.Clone())
		}
	}
	return nil
}
