// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import "context"

// # List Data Access

// Store is the persistence contract for lists. Each list is stored whole,
// items included, under its owner. Writes are last-write-wins per list.
//
// One implementation is chosen at startup and injected into the [Service].
type Store interface {

	/*
		Get returns every list owned by the user.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*List: The user's lists, empty (not nil) when there are none
		  - error: Storage failures
	*/
	Get(context context.Context, userID string) ([]*List, error)

	/*
		Put inserts the list or overwrites the stored copy with the same id.

		Parameters:
		  - context: context.Context
		  - list: *List (Complete aggregate including items)

		Returns:
		  - error: ErrDuplicateList when a backend enforces the one-list-per-slot
		    rule itself, otherwise storage failures
	*/
	Put(context context.Context, list *List) error

	/*
		Delete removes the list wherever it is stored. Deleting an unknown id is a no-op.

		Parameters:
		  - context: context.Context
		  - listID: string

		Returns:
		  - error: Storage failures
	*/
	Delete(context context.Context, listID string) error
}
