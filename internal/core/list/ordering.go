// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taibuivan/lister/internal/platform/validate"
)

// # Ordered List Manager
//
// The functions below are pure: they never modify their input slice and they
// either return a complete, valid sequence or an error. A valid sequence is
// sorted by position, and positions are exactly 1..len.

/*
Insert places item into items.

Description: A position of 0 appends. A position within 1..len shifts every
item at or after it down by one. Anything past the end appends. When the
result would exceed [MaxItems], the item in the last position is dropped and
returned as evicted: that is the new item itself for an append to a full
list, and the previous tail for a positioned insert.

Parameters:
  - items: []Item (Current sequence)
  - item: Item (Title required; its Position is ignored)
  - position: int (1-based target, 0 to append)

Returns:
  - []Item: The new sequence
  - *Item: The evicted item, or nil
  - error: ValidationError for an empty title or a negative position
*/
func Insert(items []Item, item Item, position int) ([]Item, *Item, error) {
	if strings.TrimSpace(item.Title) == "" {
		return nil, nil, validate.FieldError(FieldTitle, "Title is required")
	}
	if position < 0 {
		return nil, nil, validate.FieldError(FieldPosition, "Position must be 1 or greater")
	}

	result := Normalize(items)

	if position == 0 || position > len(result) {
		item.Position = len(result) + 1
	} else {
		for i := range result {
			if result[i].Position >= position {
				result[i].Position++
			}
		}
		item.Position = position
	}

	result = append(result, item)
	sortByPosition(result)

	var evicted *Item
	if len(result) > MaxItems {
		tail := result[len(result)-1]
		evicted = &tail
		result = result[:MaxItems]
	}

	renumber(result)
	return result, evicted, nil
}

/*
Remove deletes the item with the given id and closes the gap.

Returns:
  - []Item: The new sequence, relative order preserved
  - error: ErrItemNotFound if no item has that id
*/
func Remove(items []Item, itemID string) ([]Item, error) {
	result := Normalize(items)

	index := slices.IndexFunc(result, func(item Item) bool { return item.ID == itemID })
	if index < 0 {
		return nil, ErrItemNotFound
	}

	result = slices.Delete(result, index, index+1)
	renumber(result)
	return result, nil
}

/*
Reorder assigns positions 1..N following orderedIDs.

Description: orderedIDs must name every current item exactly once. Applying
the current order again returns an identical sequence.

Returns:
  - []Item: The reordered sequence
  - error: ValidationError unless orderedIDs is a permutation of the item ids
*/
func Reorder(items []Item, orderedIDs []string) ([]Item, error) {
	if len(orderedIDs) > MaxItems {
		return nil, validate.FieldError(FieldItemIDs, fmt.Sprintf("Maximum %d items allowed", MaxItems))
	}
	if len(orderedIDs) != len(items) {
		return nil, validate.FieldError(FieldItemIDs, "Item IDs must list every item in the list exactly once")
	}

	byID := make(map[string]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	result := make([]Item, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		item, ok := byID[id]
		if !ok {
			return nil, validate.FieldError(FieldItemIDs, "Item IDs must list every item in the list exactly once")
		}
		delete(byID, id)
		result = append(result, item)
	}

	renumber(result)
	return result, nil
}

// Normalize returns a sorted, renumbered copy of items.
// Sequences read back from storage pass through it so that gaps or
// duplicates left by older writers are repaired.
func Normalize(items []Item) []Item {
	result := make([]Item, len(items))
	copy(result, items)
	sortByPosition(result)
	renumber(result)
	return result
}

// Moved returns the ids whose position differs between before and after.
// Items absent from before count as moved.
func Moved(before, after []Item) []string {
	previous := make(map[string]int, len(before))
	for _, item := range before {
		previous[item.ID] = item.Position
	}

	var moved []string
	for _, item := range after {
		if position, ok := previous[item.ID]; !ok || position != item.Position {
			moved = append(moved, item.ID)
		}
	}
	return moved
}

func sortByPosition(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int { return a.Position - b.Position })
}

func renumber(items []Item) {
	for i := range items {
		items[i].Position = i + 1
	}
}
