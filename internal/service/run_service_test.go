package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"speedrun-db-api/internal/event"
	"speedrun-db-api/internal/model"
	"speedrun-db-api/pkg/apierror"
)

func newRunFixture() (*mockRunStore, *mockUserStore, *mockGameStore, *mockPlatformStore) {
	return new(mockRunStore), new(mockUserStore), new(mockGameStore), new(mockPlatformStore)
}

func TestRunService_Create(t *testing.T) {
	t.Run("records a run for the caller and announces it", func(t *testing.T) {
		runs, users, games, platforms := newRunFixture()
		bus := event.NewBus()
		events, unsubscribe := bus.Subscribe()
		defer unsubscribe()

		svc := NewRunService(runs, users, games, platforms, bus)

		users.On("FindByLogin", mock.Anything, "speedy").Return(model.User{ID: 3, Login: "speedy"}, nil)
		games.On("FindByID", mock.Anything, int64(9)).Return(model.Game{ID: 9}, nil)
		platforms.On("FindByID", mock.Anything, int64(2)).Return(model.Platform{ID: 2}, nil)

		runTime := model.RunTime(92*time.Minute + 17*time.Second)
		created := model.Run{ID: 50, UserID: 3, GameID: 9, PlatformID: 2, Time: runTime, Type: "any%"}
		runs.On("Create", mock.Anything, mock.MatchedBy(func(r model.Run) bool {
			return r.UserID == 3 && r.GameID == 9 && r.PlatformID == 2 && r.Time == runTime
		})).Return(created, nil)

		run, err := svc.Create(context.Background(), "speedy", model.CreateRunRequest{
			GameID:     9,
			PlatformID: 2,
			Time:       runTime,
			Type:       "any%",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(50), run.ID)

		select {
		case e := <-events:
			assert.Equal(t, event.TypeRunSubmitted, e.Type)
		default:
			t.Fatal("expected a run.submitted event")
		}

		runs.AssertExpectations(t)
	})

	t.Run("missing run time is rejected", func(t *testing.T) {
		runs, users, games, platforms := newRunFixture()
		svc := NewRunService(runs, users, games, platforms, event.NewBus())

		users.On("FindByLogin", mock.Anything, "speedy").Return(model.User{ID: 3}, nil)
		games.On("FindByID", mock.Anything, int64(9)).Return(model.Game{ID: 9}, nil)
		platforms.On("FindByID", mock.Anything, int64(2)).Return(model.Platform{ID: 2}, nil)

		_, err := svc.Create(context.Background(), "speedy", model.CreateRunRequest{GameID: 9, PlatformID: 2})

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.HTTPStatus)
		runs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown game blocks creation", func(t *testing.T) {
		runs, users, games, platforms := newRunFixture()
		svc := NewRunService(runs, users, games, platforms, event.NewBus())

		users.On("FindByLogin", mock.Anything, "speedy").Return(model.User{ID: 3}, nil)
		games.On("FindByID", mock.Anything, int64(404)).Return(model.Game{}, model.ErrGameNotFound)

		_, err := svc.Create(context.Background(), "speedy", model.CreateRunRequest{GameID: 404, PlatformID: 2, Time: model.RunTime(time.Minute)})
		assert.ErrorIs(t, err, model.ErrGameNotFound)
	})
}

func TestRunService_Confirm(t *testing.T) {
	t.Run("records the confirmer and notifies the runner", func(t *testing.T) {
		runs, users, games, platforms := newRunFixture()
		bus := event.NewBus()
		events, unsubscribe := bus.Subscribe()
		defer unsubscribe()

		svc := NewRunService(runs, users, games, platforms, bus)

		users.On("FindByLogin", mock.Anything, "admin").Return(model.User{ID: 1, Login: "admin", Role: model.RoleAdmin}, nil)
		runs.On("FindByID", mock.Anything, int64(50)).Return(model.Run{ID: 50, UserID: 3}, nil)
		runs.On("Confirm", mock.Anything, int64(50), int64(1)).Return(nil)
		users.On("FindByID", mock.Anything, int64(3)).Return(model.User{ID: 3, Login: "speedy", Email: "speedy@example.com"}, nil)

		require.NoError(t, svc.Confirm(context.Background(), 50, "admin"))

		select {
		case e := <-events:
			assert.Equal(t, event.TypeRunConfirmed, e.Type)
			payload, ok := e.Payload.(event.RunConfirmedPayload)
			require.True(t, ok)
			assert.Equal(t, int64(50), payload.RunID)
			assert.Equal(t, "speedy@example.com", payload.Email)
		default:
			t.Fatal("expected a run.confirmed event")
		}

		runs.AssertExpectations(t)
	})

	t.Run("confirmation survives a vanished runner", func(t *testing.T) {
		runs, users, games, platforms := newRunFixture()
		svc := NewRunService(runs, users, games, platforms, event.NewBus())

		users.On("FindByLogin", mock.Anything, "admin").Return(model.User{ID: 1, Login: "admin"}, nil)
		runs.On("FindByID", mock.Anything, int64(50)).Return(model.Run{ID: 50, UserID: 3}, nil)
		runs.On("Confirm", mock.Anything, int64(50), int64(1)).Return(nil)
		users.On("FindByID", mock.Anything, int64(3)).Return(model.User{}, model.ErrUserNotFound)

		assert.NoError(t, svc.Confirm(context.Background(), 50, "admin"))
	})

	t.Run("unknown run surfaces not found", func(t *testing.T) {
		runs, users, games, platforms := newRunFixture()
		svc := NewRunService(runs, users, games, platforms, event.NewBus())

		users.On("FindByLogin", mock.Anything, "admin").Return(model.User{ID: 1, Login: "admin"}, nil)
		runs.On("FindByID", mock.Anything, int64(404)).Return(model.Run{}, model.ErrRunNotFound)

		assert.ErrorIs(t, svc.Confirm(context.Background(), 404, "admin"), model.ErrRunNotFound)
		runs.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
	})
}
