// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"

	"github.com/taibuivan/lister/internal/core/list"
	"github.com/taibuivan/lister/pkg/pagination"
	"github.com/taibuivan/lister/pkg/pointer"
)

// Service implements the profile use cases.
type Service struct {
	users UserFinder
	lists ListReader
}

func NewService(users UserFinder, lists ListReader) *Service {
	return &Service{users: users, lists: lists}
}

/*
GetProfile returns the target user's profile as the viewer may see it.

Parameters:
  - context: context.Context
  - viewerID: string (Authenticated caller)
  - targetUserID: string

Returns:
  - *Profile: Email is nil unless the viewer is the target
  - error: auth.ErrUserNotFound
*/
func (service *Service) GetProfile(context context.Context, viewerID, targetUserID string) (*Profile, error) {
	user, err := service.users.FindUser(context, targetUserID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		ID:           user.ID,
		Username:     user.Username,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
		IsOwnProfile: viewerID == targetUserID,
	}
	if profile.IsOwnProfile && user.Email != "" {
		profile.Email = pointer.To(user.Email)
	}
	return profile, nil
}

// UserLists returns a page of the target user's lists.
func (service *Service) UserLists(context context.Context, viewerID, targetUserID string, filter list.Filter, params pagination.Params) (*list.UserLists, error) {
	return service.lists.UserLists(context, viewerID, targetUserID, filter, params)
}
