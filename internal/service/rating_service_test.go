package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"speedrun-db-api/internal/event"
	"speedrun-db-api/internal/model"
)

func TestRatingService_Rate(t *testing.T) {
	t.Run("upserts the score and refreshes the game average", func(t *testing.T) {
		ratings := new(mockRatingStore)
		games := new(mockGameStore)
		users := new(mockUserStore)
		bus := event.NewBus()
		events, unsubscribe := bus.Subscribe()
		defer unsubscribe()

		svc := NewRatingService(ratings, games, users, bus)

		users.On("FindByLogin", mock.Anything, "speedy").Return(model.User{ID: 3, Login: "speedy"}, nil)
		games.On("FindByID", mock.Anything, int64(9)).Return(model.Game{ID: 9, Name: "Celeste"}, nil)
		ratings.On("Upsert", mock.Anything, model.GameRating{UserID: 3, GameID: 9, Score: 8}).Return(nil)
		games.On("UpdateAverageRating", mock.Anything, int64(9)).Return(nil)

		rating, err := svc.Rate(context.Background(), "speedy", model.RateGameRequest{GameID: 9, Score: 8})
		require.NoError(t, err)
		assert.Equal(t, model.GameRating{UserID: 3, GameID: 9, Score: 8}, rating)

		select {
		case e := <-events:
			assert.Equal(t, event.TypeGameRated, e.Type)
		default:
			t.Fatal("expected a game.rated event")
		}

		ratings.AssertExpectations(t)
		games.AssertExpectations(t)
	})

	t.Run("score outside 1..10 is rejected before any lookup", func(t *testing.T) {
		ratings := new(mockRatingStore)
		games := new(mockGameStore)
		users := new(mockUserStore)
		svc := NewRatingService(ratings, games, users, event.NewBus())

		for _, score := range []int{0, -1, 11, 100} {
			_, err := svc.Rate(context.Background(), "speedy", model.RateGameRequest{GameID: 9, Score: score})
			assert.ErrorIs(t, err, model.ErrScoreOutOfRange, "score %d", score)
		}

		users.AssertNotCalled(t, "FindByLogin", mock.Anything, mock.Anything)
		ratings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("unknown game surfaces not found", func(t *testing.T) {
		ratings := new(mockRatingStore)
		games := new(mockGameStore)
		users := new(mockUserStore)
		svc := NewRatingService(ratings, games, users, event.NewBus())

		users.On("FindByLogin", mock.Anything, "speedy").Return(model.User{ID: 3, Login: "speedy"}, nil)
		games.On("FindByID", mock.Anything, int64(404)).Return(model.Game{}, model.ErrGameNotFound)

		_, err := svc.Rate(context.Background(), "speedy", model.RateGameRequest{GameID: 404, Score: 5})
		assert.ErrorIs(t, err, model.ErrGameNotFound)
		ratings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}
