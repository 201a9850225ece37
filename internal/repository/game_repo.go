package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"speedrun-db-api/internal/model"
	"speedrun-db-api/pkg/apierror"
)

type GameRepository struct {
	pool *pgxpool.Pool
}

func NewGameRepository(pool *pgxpool.Pool) *GameRepository {
	return &GameRepository{pool: pool}
}

func (r *GameRepository) FindByID(ctx context.Context, id int64) (model.Game, error) {
	var g model.Game
	err := r.pool.QueryRow(ctx,
		`SELECT game_id, name, release_year, description, image, average_rating
		 FROM games WHERE game_id = $1`, id).
		Scan(&g.ID, &g.Name, &g.ReleaseYear, &g.Description, &g.Image, &g.AverageRating)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Game{}, apierror.New("NOT_FOUND", "game not found", fmt.Sprintf("%d", id), http.StatusNotFound)
	}
	if err != nil {
		return model.Game{}, fmt.Errorf("find game by id: %w", err)
	}

	platforms, err := r.platformsForGame(ctx, id)
	if err != nil {
		return model.Game{}, err
	}
	g.Platforms = platforms
	return g, nil
}

func (r *GameRepository) List(ctx context.Context) ([]model.Game, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT game_id, name, release_year, description, image, average_rating
		 FROM games ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := make([]model.Game, 0)
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.ReleaseYear, &g.Description, &g.Image, &g.AverageRating); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (r *GameRepository) Create(ctx context.Context, g model.Game) (model.Game, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO games (name, release_year, description, image)
		 VALUES ($1, $2, $3, $4)
		 RETURNING game_id`,
		g.Name, g.ReleaseYear, g.Description, g.Image).Scan(&g.ID)
	if err != nil {
		return model.Game{}, fmt.Errorf("create game: %w", err)
	}
	return g, nil
}

func (r *GameRepository) Update(ctx context.Context, g model.Game) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE games SET name = $2, release_year = $3, description = $4, image = $5
		 WHERE game_id = $1`,
		g.ID, g.Name, g.ReleaseYear, g.Description, g.Image)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("NOT_FOUND", "game not found", fmt.Sprintf("%d", g.ID), http.StatusNotFound)
	}
	return nil
}

func (r *GameRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM games WHERE game_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("NOT_FOUND", "game not found", fmt.Sprintf("%d", id), http.StatusNotFound)
	}
	return nil
}

func (r *GameRepository) AssignPlatform(ctx context.Context, gameID int64, platformID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO game_on_platform (game_id, platform_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		gameID, platformID)
	if err != nil {
		return fmt.Errorf("assign platform to game: %w", err)
	}
	return nil
}

// UpdateAverageRating recomputes the stored average from the ratings table.
// A game with no ratings goes back to NULL.
func (r *GameRepository) UpdateAverageRating(ctx context.Context, gameID int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE games
		 SET average_rating = (SELECT AVG(score)::numeric(4,2) FROM ratings WHERE game_id = $1)
		 WHERE game_id = $1`,
		gameID)
	if err != nil {
		return fmt.Errorf("update average rating: %w", err)
	}
	return nil
}

func (r *GameRepository) platformsForGame(ctx context.Context, gameID int64) ([]model.Platform, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.platform_id, p.name, p.type
		 FROM platforms p
		 JOIN game_on_platform gp ON gp.platform_id = p.platform_id
		 WHERE gp.game_id = $1
		 ORDER BY p.name`, gameID)
	if err != nil {
		return nil, fmt.Errorf("list game platforms: %w", err)
	}
	defer rows.Close()

	platforms := make([]model.Platform, 0)
	for rows.Next() {
		var p model.Platform
		if err := rows.Scan(&p.ID, &p.Name, &p.Type); err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}
