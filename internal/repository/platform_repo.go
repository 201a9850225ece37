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

type PlatformRepository struct {
	pool *pgxpool.Pool
}

func NewPlatformRepository(pool *pgxpool.Pool) *PlatformRepository {
	return &PlatformRepository{pool: pool}
}

func (r *PlatformRepository) FindByID(ctx context.Context, id int64) (model.Platform, error) {
	var p model.Platform
	err := r.pool.QueryRow(ctx,
		`SELECT platform_id, name, type FROM platforms WHERE platform_id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Type)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Platform{}, apierror.New("NOT_FOUND", "platform not found", fmt.Sprintf("%d", id), http.StatusNotFound)
	}
	if err != nil {
		return model.Platform{}, fmt.Errorf("find platform by id: %w", err)
	}
	return p, nil
}

func (r *PlatformRepository) List(ctx context.Context) ([]model.Platform, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT platform_id, name, type FROM platforms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
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

func (r *PlatformRepository) Create(ctx context.Context, p model.Platform) (model.Platform, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO platforms (name, type) VALUES ($1, $2) RETURNING platform_id`,
		p.Name, p.Type).Scan(&p.ID)
	if err != nil {
		return model.Platform{}, fmt.Errorf("create platform: %w", err)
	}
	return p, nil
}

func (r *PlatformRepository) Update(ctx context.Context, p model.Platform) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE platforms SET name = $2, type = $3 WHERE platform_id = $1`,
		p.ID, p.Name, p.Type)
	if err != nil {
		return fmt.Errorf("update platform: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("NOT_FOUND", "platform not found", fmt.Sprintf("%d", p.ID), http.StatusNotFound)
	}
	return nil
}

func (r *PlatformRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM platforms WHERE platform_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete platform: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("NOT_FOUND", "platform not found", fmt.Sprintf("%d", id), http.StatusNotFound)
	}
	return nil
}
