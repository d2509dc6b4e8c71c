// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category defines the catalogue of list categories and their sub-genres.

Every list is classified by exactly one category (Movie, Song, Book, ...) and
optionally one of that category's sub-genres. The catalogue is read-mostly:
it is loaded from an embedded TOML file in memory mode, or from the
lister.category tables when PostgreSQL is configured.
*/
package category

// # Core Entities

// Category is a kind of thing a Top-10 list can rank.
type Category struct {
	ID          string     `json:"id" toml:"id"`
	Name        string     `json:"name" toml:"name"`
	DisplayName string     `json:"display_name" toml:"display_name"`
	Description string     `json:"description" toml:"description"`
	Icon        string     `json:"icon" toml:"icon"`
	SubGenres   []SubGenre `json:"sub_genres" toml:"sub_genres"`
}

// SubGenre narrows a [Category] (e.g. Horror movies).
type SubGenre struct {
	ID          string `json:"id" toml:"id"`
	CategoryID  string `json:"category_id" toml:"-"`
	Name        string `json:"name" toml:"name"`
	DisplayName string `json:"display_name" toml:"display_name"`
	Icon        string `json:"icon,omitempty" toml:"icon"`
}

// SubGenre returns the sub-genre with the given id, or nil.
func (c *Category) SubGenre(id string) *SubGenre {
	for i := range c.SubGenres {
		if c.SubGenres[i].ID == id {
			return &c.SubGenres[i]
		}
	}
	return nil
}

// Label is the plural noun used in list titles, e.g. "Horror Movies".
func (c *Category) Label(subGenreID string) string {
	label := c.DisplayName + "s"
	if sub := c.SubGenre(subGenreID); sub != nil {
		label = sub.DisplayName + " " + label
	}
	return label
}

// Clone returns a deep copy so callers never alias repository state.
func (c *Category) Clone() *Category {
	clone := *c
	clone.SubGenres = append([]SubGenre(nil), c.SubGenres...)
	return &clone
}

// # Field Identifiers

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDisplayName = "display_name"
	FieldSubGenreID  = "sub_genre_id"
	FieldCategoryID  = "category_id"
)
