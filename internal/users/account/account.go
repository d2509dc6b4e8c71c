// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account serves public user profiles and the lists shown on them.

A profile is the public view of an auth user. Viewers see their own email;
everybody else sees a null email.
*/
package account

import (
	"context"
	"time"

	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/internal/users/auth"
	"github.com/taibuivan/lister/pkg/pagination"
)

// Profile is a user as seen by a viewer.
type Profile struct {
	ID           string    `json:"id"`
	Email        *string   `json:"email"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	IsOwnProfile bool      `json:"is_own_profile"`
}

// UserFinder resolves user ids to accounts. [auth.Provider] satisfies it.
type UserFinder interface {
	FindUser(context context.Context, userID string) (*auth.User, error)
}

// ListReader pages through a user's lists. [*list.Service] satisfies it.
type ListReader interface {
	UserLists(context context.Context, viewerID, targetUserID string, filter list.Filter, params pagination.Params) (*list.UserLists, error)
}

// Field identifiers used in profile responses.
const (
	FieldUser         = "user"
	FieldIsOwnProfile = "is_own_profile"
)
