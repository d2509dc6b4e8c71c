// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slice adds the generic helpers [slices] lacks.
package slice

// Map applies fn to every element. A nil input yields nil.
func Map[T, U any](input []T, fn func(T) U) []U {
	if input == nil {
		return nil
	}
	out := make([]U, 0, len(input))
	for _, v := range input {
		out = append(out, fn(v))
	}
	return out
}

// Filter keeps the elements keep accepts. The result is non-nil, so it
// encodes as [] rather than null.
func Filter[T any](input []T, keep func(T) bool) []T {
	out := make([]T, 0, len(input))
	for _, v := range input {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Index maps key(v) to v; later elements win on duplicate keys.
func Index[T any, K comparable](input []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(input))
	for _, v := range input {
		out[key(v)] = v
	}
	return out
}
