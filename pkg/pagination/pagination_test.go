// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/lister/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "?page=3&limit=5", 3, 5},
		{"negative_page", "?page=-2", 1, 20},
		{"limit_too_large", "?limit=1000", 1, 20},
		{"garbage", "?page=abc&limit=xyz", 1, 20},
		{"huge_page", "?page=500000000000000000", pagination.MaxPage, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/"+tt.query, nil))
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		want   int
	}{
		{"first_page", pagination.Params{Page: 1, Limit: 20}, 0},
		{"third_page", pagination.Params{Page: 3, Limit: 20}, 40},
		{"zero_limit", pagination.Params{Page: 5, Limit: 0}, 0},
		{"overflow_saturates", pagination.Params{Page: 500000000000000000, Limit: 100}, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Offset())
		})
	}
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		params pagination.Params
		want   []int
	}{
		{"middle_page", pagination.Params{Page: 2, Limit: 2}, []int{3, 4}},
		{"last_partial_page", pagination.Params{Page: 3, Limit: 2}, []int{5}},
		{"past_the_end", pagination.Params{Page: 9, Limit: 2}, []int{}},
		{"huge_page", pagination.Params{Page: 500000000000000000, Limit: 20}, []int{}},
		{"huge_limit", pagination.Params{Page: 1, Limit: math.MaxInt}, items},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page []int
			assert.NotPanics(t, func() { page, _ = pagination.Window(items, tt.params) })
			assert.Equal(t, tt.want, page)
		})
	}

	_, meta := pagination.Window(items, pagination.Params{Page: 2, Limit: 2})
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}
