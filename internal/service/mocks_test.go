package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"speedrun-db-api/internal/model"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) FindByLogin(ctx context.Context, login string) (model.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.User), args.Error(1)
}

type mockGameStore struct {
	mock.Mock
}

func (m *mockGameStore) FindByID(ctx context.Context, id int64) (model.Game, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Game), args.Error(1)
}

func (m *mockGameStore) UpdateAverageRating(ctx context.Context, gameID int64) error {
	args := m.Called(ctx, gameID)
	return args.Error(0)
}

type mockRatingStore struct {
	mock.Mock
}

func (m *mockRatingStore) Upsert(ctx context.Context, rating model.GameRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

type mockPlatformStore struct {
	mock.Mock
}

func (m *mockPlatformStore) FindByID(ctx context.Context, id int64) (model.Platform, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Platform), args.Error(1)
}

type mockRunStore struct {
	mock.Mock
}

func (m *mockRunStore) FindByID(ctx context.Context, id int64) (model.Run, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Run), args.Error(1)
}

func (m *mockRunStore) List(ctx context.Context) ([]model.Run, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Run), args.Error(1)
}

func (m *mockRunStore) Create(ctx context.Context, run model.Run) (model.Run, error) {
	args := m.Called(ctx, run)
	return args.Get(0).(model.Run), args.Error(1)
}

func (m *mockRunStore) Update(ctx context.Context, run model.Run) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *mockRunStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRunStore) Confirm(ctx context.Context, runID int64, confirmedBy int64) error {
	args := m.Called(ctx, runID, confirmedBy)
	return args.Error(0)
}

type mockFollowStore struct {
	mock.Mock
}

func (m *mockFollowStore) Exists(ctx context.Context, followerID int64, followingID int64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFollowStore) Create(ctx context.Context, followerID int64, followingID int64) (model.Follow, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Get(0).(model.Follow), args.Error(1)
}

func (m *mockFollowStore) List(ctx context.Context) ([]model.Follow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Follow), args.Error(1)
}
