// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/lister/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"TV Show", "tv-show"},
		{"Hip-Hop", "hip-hop"},
		{"  Sci-Fi & Fantasy ", "sci-fi-fantasy"},
		{"Café Noir", "cafe-noir"},
		{"R&B", "r-b"},
		{"Ünïcödé Ågé", "unicode-age"},
		{"日本語", ""},
		{"---", ""},
		{"2024 Top 10", "2024-top-10"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

func TestIs(t *testing.T) {
	assert.True(t, slug.Is("tv-show"))
	assert.False(t, slug.Is("TV Show"))
	assert.False(t, slug.Is("-movie"))
	assert.False(t, slug.Is(""))
}
