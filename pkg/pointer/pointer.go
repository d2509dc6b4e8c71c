// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer handles the optional fields of partial updates and nullable
// response fields.
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Fallback returns *p, or fallback when the field was absent from the request.
func Fallback[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
