// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/lister/internal/platform/validate"
)

// # Service Layer

// Service exposes the read side of the catalogue and its seeding.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.List(context)
}

func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	return service.repo.FindByID(context, id)
}

/*
Resolve checks that a category exists and that the optional sub-genre belongs to it.

Parameters:
  - context: context.Context
  - categoryID: string
  - subGenreID: string (Empty when the list has no sub-genre)

Returns:
  - *Category: The resolved category
  - error: ValidationError naming the offending field
*/
func (service *Service) Resolve(context context.Context, categoryID, subGenreID string) (*Category, error) {
	category, err := service.repo.FindByID(context, categoryID)
	if errors.Is(err, ErrCategoryNotFound) {
		return nil, validate.FieldError(FieldCategoryID, "Unknown category")
	}
	if err != nil {
		return nil, err
	}

	if subGenreID != "" && category.SubGenre(subGenreID) == nil {
		return nil, validate.FieldError(FieldSubGenreID, "Sub-genre does not belong to this category")
	}

	return category, nil
}

/*
Seed normalises and upserts a catalogue.

Parameters:
  - context: context.Context
  - categories: []*Category (e.g. from [Decode] or [Defaults])

Returns:
  - int: Number of categories written
  - error: Validation or storage failures
*/
func (service *Service) Seed(context context.Context, categories []*Category) (int, error) {
	if err := Normalize(categories); err != nil {
		return 0, err
	}

	if err := service.repo.Upsert(context, categories); err != nil {
		return 0, err
	}

	service.logger.Info("categories_seeded", slog.Int("count", len(categories)))
	return len(categories), nil
}

// SeedDefaultsIfEmpty installs the built-in catalogue into an empty repository.
func (service *Service) SeedDefaultsIfEmpty(context context.Context) error {
	existing, err := service.repo.List(context)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	_, err = service.Seed(context, Defaults())
	return err
}
