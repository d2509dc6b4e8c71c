// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/taibuivan/lister/internal/core/category"
	"github.com/taibuivan/lister/internal/platform/apperr"
	"github.com/taibuivan/lister/internal/platform/validate"
	"github.com/taibuivan/lister/pkg/pagination"
	"github.com/taibuivan/lister/pkg/pointer"
	"github.com/taibuivan/lister/pkg/slice"
	"github.com/taibuivan/lister/pkg/uuid"
)

// Catalogue is the slice of the category service lists depend on.
type Catalogue interface {
	Resolve(context context.Context, categoryID, subGenreID string) (*category.Category, error)
	GetCategory(context context.Context, id string) (*category.Category, error)
}

// # Inputs & Results

// CreateListInput carries the fields accepted when creating a list.
type CreateListInput struct {
	CategoryID string `json:"category_id"`
	SubGenreID string `json:"sub_genre_id"`
	Year       int    `json:"year"`
	Title      string `json:"title"`
}

// UpdateListInput carries optional list changes; nil fields are left alone.
type UpdateListInput struct {
	Title *string `json:"title"`
}

// AddItemInput carries a new item. Position 0 appends.
type AddItemInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	Position      int    `json:"position"`
	AllowEviction bool   `json:"allow_eviction"`
}

// UpdateItemInput replaces an item's title; nil optional fields are left alone.
type UpdateItemInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// AddItemResult reports the list after an insert. Item is nil when the new
// item itself was evicted; Evicted is set whenever something was dropped.
type AddItemResult struct {
	List    *List `json:"list"`
	Item    *Item `json:"item"`
	Evicted *Item `json:"evicted,omitempty"`
}

// UserLists is a page of one user's lists as seen by another user.
type UserLists struct {
	Lists      []*List         `json:"lists"`
	UserID     string          `json:"user_id"`
	IsOwnLists bool            `json:"is_own_lists"`
	Meta       pagination.Meta `json:"-"`
}

// Share is the payload a user copies or posts when sharing a list.
type Share struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// # Service Layer

// Service implements the list use cases. Every change to item order goes
// through [Insert], [Remove] or [Reorder]; nothing else renumbers items.
type Service struct {
	store      Store
	categories Catalogue
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(store Store, categories Catalogue, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		categories: categories,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces the time source used for timestamps and year bounds.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

/*
CreateList opens a new, empty list for the user.

Parameters:
  - context: context.Context
  - userID: string (Owner)
  - input: CreateListInput

Returns:
  - *List: The created list
  - error: ValidationError for unknown category/sub-genre or out-of-range year,
    ErrDuplicateList when the user already ranks that category and year
*/
func (service *Service) CreateList(context context.Context, userID string, input CreateListInput) (*List, error) {
	now := service.now().UTC()
	input.Title = strings.TrimSpace(input.Title)

	v := &validate.Validator{}
	v.Required(FieldCategoryID, input.CategoryID).
		Range(FieldYear, input.Year, MinYear, now.Year()+1).
		MaxLen(FieldTitle, input.Title, MaxTitleLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	cat, err := service.categories.Resolve(context, input.CategoryID, input.SubGenreID)
	if err != nil {
		return nil, err
	}

	list := &List{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: cat.ID,
		SubGenreID: input.SubGenreID,
		Year:       input.Year,
		Title:      input.Title,
		Items:      make([]Item, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if list.Title == "" {
		list.Title = fmt.Sprintf("My Top %s of %d", cat.Label(input.SubGenreID), input.Year)
	}

	existing, err := service.store.Get(context, userID)
	if err != nil {
		return nil, err
	}
	if slices.ContainsFunc(existing, list.SameSlot) {
		return nil, ErrDuplicateList
	}

	if err := service.store.Put(context, list); err != nil {
		return nil, err
	}

	service.logger.Info("list_created",
		slog.String("list_id", list.ID),
		slog.String("user_id", userID),
		slog.String("category_id", list.CategoryID),
		slog.Int("year", list.Year),
	)
	return list, nil
}

/*
ListLists returns the user's lists matching filter, newest first.

Parameters:
  - context: context.Context
  - userID: string
  - filter: Filter (Zero value matches everything)

Returns:
  - []*List: Matching lists, items sorted by position
  - error: Storage failures
*/
func (service *Service) ListLists(context context.Context, userID string, filter Filter) ([]*List, error) {
	lists, err := service.store.Get(context, userID)
	if err != nil {
		return nil, err
	}

	lists = slice.Filter(lists, filter.Matches)
	for _, l := range lists {
		l.Items = Normalize(l.Items)
	}

	slices.SortStableFunc(lists, func(a, b *List) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return lists, nil
}

// GetList returns one of the user's lists. Lists of other users are not found.
func (service *Service) GetList(context context.Context, userID, listID string) (*List, error) {
	return service.load(context, userID, listID)
}

/*
UpdateList changes list-level fields.

Parameters:
  - context: context.Context
  - userID: string
  - listID: string
  - input: UpdateListInput

Returns:
  - *List: The updated list
  - error: ErrListNotFound, ValidationError
*/
func (service *Service) UpdateList(context context.Context, userID, listID string, input UpdateListInput) (*List, error) {
	list, err := service.load(context, userID, listID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := (&validate.Validator{}).MaxLen(FieldTitle, title, MaxTitleLength).Err(); err != nil {
			return nil, err
		}
		list.Title = title
	}

	list.UpdatedAt = service.now().UTC()
	if err := service.store.Put(context, list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteList removes the list and every item in it.
func (service *Service) DeleteList(context context.Context, userID, listID string) error {
	if _, err := service.load(context, userID, listID); err != nil {
		return err
	}

	if err := service.store.Delete(context, listID); err != nil {
		return err
	}

	service.logger.Info("list_deleted", slog.String("list_id", listID), slog.String("user_id", userID))
	return nil
}

/*
AddItem inserts a new item into a list.

Description: Without AllowEviction a full list rejects the item. With it,
[Insert] decides what is dropped and the result reports it.

Parameters:
  - context: context.Context
  - userID: string
  - listID: string
  - input: AddItemInput

Returns:
  - *AddItemResult: The list after the insert, the stored item and any eviction
  - error: ErrListNotFound, ValidationError, CapacityExceeded
*/
func (service *Service) AddItem(context context.Context, userID, listID string, input AddItemInput) (*AddItemResult, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateItem(input.Title, input.Description, input.ImageURL); err != nil {
		return nil, err
	}

	list, err := service.load(context, userID, listID)
	if err != nil {
		return nil, err
	}

	if list.IsFull() && !input.AllowEviction {
		return nil, apperr.CapacityExceeded(MaxItems)
	}

	now := service.now().UTC()
	item := Item{
		ID:          uuid.New(),
		ListID:      list.ID,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	items, evicted, err := Insert(list.Items, item, input.Position)
	if err != nil {
		return nil, err
	}

	service.commit(list, items, now)
	if err := service.store.Put(context, list); err != nil {
		return nil, err
	}

	if evicted != nil {
		service.logger.Info("list_item_evicted",
			slog.String("list_id", list.ID),
			slog.String("item_id", evicted.ID),
			slog.Bool("new_item", evicted.ID == item.ID),
		)
	}

	return &AddItemResult{List: list, Item: list.Item(item.ID), Evicted: evicted}, nil
}

/*
UpdateItem edits an item's text fields. Positions are untouched.

Parameters:
  - context: context.Context
  - userID: string
  - listID: string
  - itemID: string
  - input: UpdateItemInput (Title is always required)

Returns:
  - *Item: The updated item
  - error: ErrListNotFound, ErrItemNotFound, ValidationError
*/
func (service *Service) UpdateItem(context context.Context, userID, listID, itemID string, input UpdateItemInput) (*Item, error) {
	input.Title = strings.TrimSpace(input.Title)

	list, err := service.load(context, userID, listID)
	if err != nil {
		return nil, err
	}

	item := list.Item(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	description := pointer.Fallback(input.Description, item.Description)
	imageURL := pointer.Fallback(input.ImageURL, item.ImageURL)

	if err := validateItem(input.Title, description, imageURL); err != nil {
		return nil, err
	}

	now := service.now().UTC()
	item.Title = input.Title
	item.Description = description
	item.ImageURL = imageURL
	item.UpdatedAt = now
	list.UpdatedAt = now

	if err := service.store.Put(context, list); err != nil {
		return nil, err
	}
	return list.Item(itemID), nil
}

// RemoveItem deletes an item and closes the gap it leaves.
func (service *Service) RemoveItem(context context.Context, userID, listID, itemID string) (*List, error) {
	list, err := service.load(context, userID, listID)
	if err != nil {
		return nil, err
	}

	items, err := Remove(list.Items, itemID)
	if err != nil {
		return nil, err
	}

	service.commit(list, items, service.now().UTC())
	if err := service.store.Put(context, list); err != nil {
		return nil, err
	}
	return list, nil
}

/*
ReorderItems applies a complete new order to a list.

Parameters:
  - context: context.Context
  - userID: string
  - listID: string
  - itemIDs: []string (Every item id exactly once, first is position 1)

Returns:
  - *List: The reordered list
  - error: ErrListNotFound, ValidationError
*/
func (service *Service) ReorderItems(context context.Context, userID, listID string, itemIDs []string) (*List, error) {
	list, err := service.load(context, userID, listID)
	if err != nil {
		return nil, err
	}

	items, err := Reorder(list.Items, itemIDs)
	if err != nil {
		return nil, err
	}

	service.commit(list, items, service.now().UTC())
	if err := service.store.Put(context, list); err != nil {
		return nil, err
	}
	return list, nil
}

/*
UserLists returns a page of the target user's lists for the viewer.

Parameters:
  - context: context.Context
  - viewerID: string (Authenticated caller)
  - targetUserID: string
  - filter: Filter
  - params: pagination.Params

Returns:
  - *UserLists: Page of lists with ownership flag and pagination metadata
  - error: Storage failures
*/
func (service *Service) UserLists(context context.Context, viewerID, targetUserID string, filter Filter, params pagination.Params) (*UserLists, error) {
	lists, err := service.ListLists(context, targetUserID, filter)
	if err != nil {
		return nil, err
	}

	page, meta := pagination.Window(lists, params)
	return &UserLists{
		Lists:      page,
		UserID:     targetUserID,
		IsOwnLists: viewerID == targetUserID,
		Meta:       meta,
	}, nil
}

/*
ShareText builds the text and title used when sharing a list.

Example:

	My Top 2 Movies of 2025:

	1. Dune
	2. Alien
*/
func (service *Service) ShareText(context context.Context, userID, listID string) (*Share, error) {
	list, err := service.load(context, userID, listID)
	if err != nil {
		return nil, err
	}

	label := list.CategoryID + "s"
	if cat, err := service.categories.GetCategory(context, list.CategoryID); err == nil {
		label = cat.Label("")
	}

	lines := make([]string, len(list.Items))
	for i, item := range list.Items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item.Title)
	}

	return &Share{
		Title: fmt.Sprintf("My Top %s of %d", label, list.Year),
		Text:  fmt.Sprintf("My Top %d %s of %d:\n\n%s", len(list.Items), label, list.Year, strings.Join(lines, "\n")),
	}, nil
}

// # Helpers

// load finds one of the user's lists with its items normalised.
func (service *Service) load(context context.Context, userID, listID string) (*List, error) {
	lists, err := service.store.Get(context, userID)
	if err != nil {
		return nil, err
	}

	index := slices.IndexFunc(lists, func(l *List) bool { return l.ID == listID })
	if index < 0 {
		return nil, ErrListNotFound
	}

	list := lists[index]
	list.Items = Normalize(list.Items)
	return list, nil
}

// commit installs a new item sequence, stamping moved items and the list.
func (service *Service) commit(list *List, items []Item, now time.Time) {
	moved := Moved(list.Items, items)
	for i := range items {
		if slices.Contains(moved, items[i].ID) {
			items[i].UpdatedAt = now
		}
	}
	list.Items = items
	list.UpdatedAt = now
}

func validateItem(title, description, imageURL string) error {
	if title == "" {
		return validate.FieldError(FieldTitle, "Title is required")
	}
	return (&validate.Validator{}).
		MaxLen(FieldTitle, title, MaxTitleLength).
		MaxLen(FieldDescription, description, MaxDescriptionLength).
		URL(FieldImageURL, imageURL).
		Err()
}
