// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug turns catalogue names into identifiers.
//
// "TV Show" becomes "tv-show" and "Café Noir" becomes "cafe-noir". Only ASCII
// letters and digits survive; every other run of characters becomes a single
// hyphen.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From returns the slug of s, or "" when s holds no ASCII letters or digits.
func From(s string) string {
	var builder strings.Builder
	separate := false

	for _, r := range strings.ToLower(foldAccents(s)) {
		if !isSlugRune(r) {
			separate = builder.Len() > 0
			continue
		}
		if separate {
			builder.WriteByte('-')
			separate = false
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// Is reports whether s is already a non-empty slug.
func Is(s string) bool {
	return s != "" && From(s) == s
}

// foldAccents strips combining marks after canonical decomposition.
// Transformers hold state, so a fresh chain is built per call.
func foldAccents(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn))), s)
	if err != nil {
		return s
	}
	return folded
}

func isSlugRune(r rune) bool {
	return ('a' <= r && r <= 'z') || ('0' <= r && r <= '9')
}
