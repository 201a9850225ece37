package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"speedrun-db-api/internal/event"
	"speedrun-db-api/internal/model"
)

type ratingStore interface {
	Upsert(ctx context.Context, rating model.GameRating) error
}

type ratingGameStore interface {
	FindByID(ctx context.Context, id int64) (model.Game, error)
	UpdateAverageRating(ctx context.Context, gameID int64) error
}

type ratingUserLookup interface {
	FindByLogin(ctx context.Context, login string) (model.User, error)
}

type RatingService struct {
	ratings ratingStore
	games   ratingGameStore
	users   ratingUserLookup
	bus     event.Bus
}

func NewRatingService(ratings ratingStore, games ratingGameStore, users ratingUserLookup, bus event.Bus) *RatingService {
	return &RatingService{ratings: ratings, games: games, users: users, bus: bus}
}

// Rate records the caller's score for a game, replacing any previous score
// from the same user, then refreshes the game's stored average.
func (s *RatingService) Rate(ctx context.Context, raterLogin string, req model.RateGameRequest) (model.GameRating, error) {
	if req.Score < 1 || req.Score > 10 {
		return model.GameRating{}, model.ErrScoreOutOfRange
	}

	rater, err := s.users.FindByLogin(ctx, raterLogin)
	if err != nil {
		return model.GameRating{}, err
	}
	if _, err := s.games.FindByID(ctx, req.GameID); err != nil {
		return model.GameRating{}, err
	}

	rating := model.GameRating{UserID: rater.ID, GameID: req.GameID, Score: req.Score}
	if err := s.ratings.Upsert(ctx, rating); err != nil {
		return model.GameRating{}, err
	}

	if err := s.games.UpdateAverageRating(ctx, req.GameID); err != nil {
		return model.GameRating{}, err
	}

	s.bus.Publish(event.Event{
		ID:        uuid.NewString(),
		Type:      event.TypeGameRated,
		Payload:   rating,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	return rating, nil
}
