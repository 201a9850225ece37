package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"speedrun-db-api/internal/model"
)

type FollowRepository struct {
	pool *pgxpool.Pool
}

func NewFollowRepository(pool *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

func (r *FollowRepository) Exists(ctx context.Context, followerID int64, followingID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`,
		followerID, followingID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check follow exists: %w", err)
	}
	return exists, nil
}

func (r *FollowRepository) Create(ctx context.Context, followerID int64, followingID int64) (model.Follow, error) {
	f := model.Follow{FollowerID: followerID, FollowingID: followingID}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO follows (follower_id, following_id)
		 VALUES ($1, $2)
		 RETURNING follow_time`,
		followerID, followingID).Scan(&f.FollowTime)
	if err != nil {
		return model.Follow{}, fmt.Errorf("create follow: %w", err)
	}
	return f, nil
}

func (r *FollowRepository) List(ctx context.Context) ([]model.Follow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT follower_id, following_id, follow_time FROM follows ORDER BY follow_time DESC`)
	if err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}
	defer rows.Close()

	follows := make([]model.Follow, 0)
	for rows.Next() {
		var f model.Follow
		if err := rows.Scan(&f.FollowerID, &f.FollowingID, &f.FollowTime); err != nil {
			return nil, fmt.Errorf("scan follow: %w", err)
		}
		follows = append(follows, f)
	}
	return follows, rows.Err()
}
