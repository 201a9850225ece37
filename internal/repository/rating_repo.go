package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"speedrun-db-api/internal/model"
)

type RatingRepository struct {
	pool *pgxpool.Pool
}

func NewRatingRepository(pool *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{pool: pool}
}

// Upsert inserts a rating or replaces the score of an existing one.
func (r *RatingRepository) Upsert(ctx context.Context, rating model.GameRating) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO ratings (user_id, game_id, score)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, game_id) DO UPDATE SET score = EXCLUDED.score`,
		rating.UserID, rating.GameID, rating.Score)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

func (r *RatingRepository) ListByGame(ctx context.Context, gameID int64) ([]model.GameRating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, game_id, score FROM ratings WHERE game_id = $1`, gameID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	ratings := make([]model.GameRating, 0)
	for rows.Next() {
		var rating model.GameRating
		if err := rows.Scan(&rating.UserID, &rating.GameID, &rating.Score); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}
