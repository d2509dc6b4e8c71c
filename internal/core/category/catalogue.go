// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/taibuivan/lister/internal/platform/apperr"
	"github.com/taibuivan/lister/internal/platform/validate"
	"github.com/taibuivan/lister/pkg/slug"
)

//go:embed defaults.toml
var defaultCatalogue string

// ErrCategoryNotFound is returned when a category id is unknown.
var ErrCategoryNotFound = apperr.NotFound("Category")

// catalogueFile is the on-disk shape of a seed file.
type catalogueFile struct {
	Categories []*Category `toml:"categories"`
}

// Defaults returns a fresh copy of the built-in catalogue.
func Defaults() []*Category {
	categories, err := Decode(strings.NewReader(defaultCatalogue))
	if err != nil {
		panic("category: embedded catalogue is invalid: " + err.Error())
	}
	return categories
}

/*
Decode parses a TOML catalogue and normalises it.

Description: Missing identifiers are derived from names, missing names from
display names, and sub-genres inherit their parent's id. The result is validated
for required fields and duplicate identifiers.

Parameters:
  - reader: io.Reader (TOML document with a [[categories]] array)

Returns:
  - []*Category: Normalised catalogue in file order
  - error: Parse or validation failures
*/
func Decode(reader io.Reader) ([]*Category, error) {
	var file catalogueFile
	if _, err := toml.NewDecoder(reader).Decode(&file); err != nil {
		return nil, fmt.Errorf("category: invalid catalogue: %w", err)
	}

	if err := Normalize(file.Categories); err != nil {
		return nil, err
	}
	return file.Categories, nil
}

// Normalize fills derived fields in place and validates the catalogue.
func Normalize(categories []*Category) error {
	validator := &validate.Validator{}
	seen := make(map[string]bool, len(categories))

	for index, category := range categories {
		field := fmt.Sprintf("categories[%d]", index)

		if category.Name == "" {
			category.Name = strings.ToLower(category.DisplayName)
		}
		if category.ID == "" {
			category.ID = slug.From(category.Name)
		}

		validator.Required(field+"."+FieldDisplayName, category.DisplayName)
		validator.Slug(field+"."+FieldID, category.ID)
		validator.Custom(field+"."+FieldID, seen[category.ID], "Duplicate category id "+category.ID)
		seen[category.ID] = true

		subSeen := make(map[string]bool, len(category.SubGenres))
		for subIndex := range category.SubGenres {
			sub := &category.SubGenres[subIndex]
			subField := fmt.Sprintf("%s.sub_genres[%d]", field, subIndex)

			if sub.Name == "" {
				sub.Name = strings.ToLower(sub.DisplayName)
			}
			if sub.ID == "" {
				sub.ID = slug.From(sub.Name)
			}
			sub.CategoryID = category.ID

			validator.Required(subField+"."+FieldDisplayName, sub.DisplayName)
			validator.Slug(subField+"."+FieldID, sub.ID)
			validator.Custom(subField+"."+FieldID, subSeen[sub.ID], "Duplicate sub-genre id "+sub.ID)
			subSeen[sub.ID] = true
		}
	}

	return validator.Err()
}
