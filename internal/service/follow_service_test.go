package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"speedrun-db-api/internal/model"
)

func TestFollowService_Follow(t *testing.T) {
	t.Run("creates the follow edge", func(t *testing.T) {
		follows := new(mockFollowStore)
		users := new(mockUserStore)
		svc := NewFollowService(follows, users)

		users.On("FindByLogin", mock.Anything, "speedy").Return(model.User{ID: 1, Login: "speedy"}, nil)
		users.On("FindByID", mock.Anything, int64(2)).Return(model.User{ID: 2, Login: "gordon"}, nil)
		follows.On("Exists", mock.Anything, int64(1), int64(2)).Return(false, nil)
		created := model.Follow{FollowerID: 1, FollowingID: 2, FollowTime: time.Now()}
		follows.On("Create", mock.Anything, int64(1), int64(2)).Return(created, nil)

		follow, err := svc.Follow(context.Background(), "speedy", 2)
		require.NoError(t, err)
		assert.Equal(t, created, follow)

		follows.AssertExpectations(t)
	})

	t.Run("cannot follow yourself", func(t *testing.T) {
		follows := new(mockFollowStore)
		users := new(mockUserStore)
		svc := NewFollowService(follows, users)

		users.On("FindByLogin", mock.Anything, "speedy").Return(model.User{ID: 1, Login: "speedy"}, nil)
		users.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1, Login: "speedy"}, nil)

		_, err := svc.Follow(context.Background(), "speedy", 1)
		assert.ErrorIs(t, err, model.ErrSelfFollow)
		follows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate follow conflicts", func(t *testing.T) {
		follows := new(mockFollowStore)
		users := new(mockUserStore)
		svc := NewFollowService(follows, users)

		users.On("FindByLogin", mock.Anything, "speedy").Return(model.User{ID: 1, Login: "speedy"}, nil)
		users.On("FindByID", mock.Anything, int64(2)).Return(model.User{ID: 2, Login: "gordon"}, nil)
		follows.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)

		_, err := svc.Follow(context.Background(), "speedy", 2)
		assert.ErrorIs(t, err, model.ErrAlreadyFollowed)
		follows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown target surfaces not found", func(t *testing.T) {
		follows := new(mockFollowStore)
		users := new(mockUserStore)
		svc := NewFollowService(follows, users)

		users.On("FindByLogin", mock.Anything, "speedy").Return(model.User{ID: 1, Login: "speedy"}, nil)
		users.On("FindByID", mock.Anything, int64(999)).Return(model.User{}, model.ErrUserNotFound)

		_, err := svc.Follow(context.Background(), "speedy", 999)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}
