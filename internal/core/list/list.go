// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package list implements user-owned, year-scoped Top-10 lists.

A [List] belongs to one user and is classified by a category, an optional
sub-genre and a year. It owns at most [MaxItems] items whose positions always
form the contiguous range 1..len(items).

Layout:

  - ordering.go: the pure Insert/Remove/Reorder transforms that keep positions contiguous.
  - store*.go: the persistence contract and its memory, Redis, SQLite and PostgreSQL backends.
  - service.go: use cases; every mutation goes through the ordering transforms.
  - http.go: the REST surface under /lists.
*/
package list

import (
	"time"

	"github.com/taibuivan/lister/internal/platform/apperr"
)

// MaxItems is the capacity of every list.
const MaxItems = 10

// # Core Entities

// Item is one ranked entry of a [List].
type Item struct {
	ID          string    `json:"id"`
	ListID      string    `json:"list_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// List is the aggregate root: a user's ranking for one category and year.
type List struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CategoryID string    `json:"category_id"`
	SubGenreID string    `json:"sub_genre_id,omitempty"`
	Year       int       `json:"year"`
	Title      string    `json:"title,omitempty"`
	Items      []Item    `json:"items"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the list, items included.
func (l *List) Clone() *List {
	clone := *l
	clone.Items = make([]Item, len(l.Items))
	copy(clone.Items, l.Items)
	return &clone
}

// Item returns the item with the given id, or nil.
func (l *List) Item(id string) *Item {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i]
		}
	}
	return nil
}

// IsFull reports whether the list holds [MaxItems] items.
func (l *List) IsFull() bool {
	return len(l.Items) >= MaxItems
}

// SameSlot reports whether two lists share owner, category, sub-genre and year.
func (l *List) SameSlot(other *List) bool {
	return l.UserID == other.UserID &&
		l.CategoryID == other.CategoryID &&
		l.SubGenreID == other.SubGenreID &&
		l.Year == other.Year
}

// # Search & Filtering

// Filter narrows a user's lists.
type Filter struct {
	CategoryID string
	Year       *int
}

// Matches reports whether the list satisfies every set criterion.
func (f Filter) Matches(l *List) bool {
	if f.CategoryID != "" && l.CategoryID != f.CategoryID {
		return false
	}
	if f.Year != nil && l.Year != *f.Year {
		return false
	}
	return true
}

// # Domain Errors

var (
	ErrListNotFound  = apperr.NotFound("List")
	ErrItemNotFound  = apperr.NotFound("Item")
	ErrDuplicateList = apperr.Conflict("List already exists for this category and year")
)

// # Field Identifiers

const (
	FieldID            = "id"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldImageURL      = "image_url"
	FieldPosition      = "position"
	FieldCategoryID    = "category_id"
	FieldSubGenreID    = "sub_genre_id"
	FieldYear          = "year"
	FieldItemIDs       = "item_ids"
	FieldAllowEviction = "allow_eviction"
)

// Limits on free-text fields.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MinYear              = 1900
)
