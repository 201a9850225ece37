package service

import (
	"context"

	"speedrun-db-api/internal/model"
)

type followStore interface {
	Exists(ctx context.Context, followerID int64, followingID int64) (bool, error)
	Create(ctx context.Context, followerID int64, followingID int64) (model.Follow, error)
	List(ctx context.Context) ([]model.Follow, error)
}

type followUserLookup interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByLogin(ctx context.Context, login string) (model.User, error)
}

type FollowService struct {
	follows followStore
	users   followUserLookup
}

func NewFollowService(follows followStore, users followUserLookup) *FollowService {
	return &FollowService{follows: follows, users: users}
}

func (s *FollowService) List(ctx context.Context) ([]model.Follow, error) {
	return s.follows.List(ctx)
}

// Follow makes the caller follow another user. Following yourself or a user
// you already follow is a conflict.
func (s *FollowService) Follow(ctx context.Context, followerLogin string, followingID int64) (model.Follow, error) {
	follower, err := s.users.FindByLogin(ctx, followerLogin)
	if err != nil {
		return model.Follow{}, err
	}
	following, err := s.users.FindByID(ctx, followingID)
	if err != nil {
		return model.Follow{}, err
	}

	if follower.ID == following.ID {
		return model.Follow{}, model.ErrSelfFollow
	}

	exists, err := s.follows.Exists(ctx, follower.ID, following.ID)
	if err != nil {
		return model.Follow{}, err
	}
	if exists {
		return model.Follow{}, model.ErrAlreadyFollowed
	}

	return s.follows.Create(ctx, follower.ID, following.ID)
}
