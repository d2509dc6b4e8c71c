// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination pages through a user's lists on profile pages.
//
// A user owns few lists, so stores return them whole and [Window] cuts the
// requested page in memory.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	// MaxPage bounds the page number accepted from a query string.
	MaxPage = 100_000
)

// Params is a 1-based page request.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the index of the page's first element. It saturates at
// [math.MaxInt] instead of overflowing.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Meta describes the page returned alongside the data.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta derives the page count from total and limit.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = total / limit
		if total%limit != 0 {
			meta.TotalPages++
		}
	}
	return meta
}

// Window returns the slice of items on the requested page. Pages past the
// end are empty, never an error.
func Window[T any](items []T, params Params) ([]T, Meta) {
	total := len(items)
	start := clamp(params.Offset(), 0, total)
	end := clamp(start+min(max(params.Limit, 0), total), start, total)

	return items[start:end], NewMeta(params.Page, params.Limit, total)
}

// FromRequest reads "page" and "limit" from the query string.
//
// Unparseable or out-of-range limits fall back to [DefaultLimit]; pages below
// 1 fall back to [DefaultPage] and pages above [MaxPage] are capped.
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	params := Params{
		Page:  queryInt(query.Get("page"), DefaultPage),
		Limit: queryInt(query.Get("limit"), DefaultLimit),
	}

	switch {
	case params.Page < 1:
		params.Page = DefaultPage
	case params.Page > MaxPage:
		params.Page = MaxPage
	}

	if params.Limit < 1 || params.Limit > MaxLimit {
		params.Limit = DefaultLimit
	}
	return params
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func clamp(value, low, high int) int {
	return max(low, min(value, high))
}
