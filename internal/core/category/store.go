// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "context"

// # Catalogue Data Access

// Repository defines the data access contract for the category catalogue.
type Repository interface {

	/*
		List returns every category with its sub-genres, in display order.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Category: The catalogue (never nil)
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Category, error)

	/*
		FindByID returns the category with the given identifier.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Category: The hydrated entity including sub-genres
		  - error: ErrCategoryNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Category, error)

	/*
		Upsert inserts or replaces the given categories and their sub-genres.
		Categories absent from the input are left untouched.

		Parameters:
		  - context: context.Context
		  - categories: []*Category (Already normalised)

		Returns:
		  - error: Storage failures
	*/
	Upsert(context context.Context, categories []*Category) error
}
