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

type RunRepository struct {
	pool *pgxpool.Pool
}

func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

const runColumns = `run_id, user_id, game_id, platform_id, time_ms, type, video_link, date, confirmed_by`

func scanRun(row pgx.Row) (model.Run, error) {
	var run model.Run
	var timeMs int64
	err := row.Scan(&run.ID, &run.UserID, &run.GameID, &run.PlatformID,
		&timeMs, &run.Type, &run.VideoLink, &run.Date, &run.ConfirmedBy)
	if err != nil {
		return model.Run{}, err
	}
	run.Time = model.RunTimeFromMilliseconds(timeMs)
	return run, nil
}

func (r *RunRepository) FindByID(ctx context.Context, id int64) (model.Run, error) {
	run, err := scanRun(r.pool.QueryRow(ctx,
		`SELECT `+runColumns+` FROM runs WHERE run_id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Run{}, apierror.New("NOT_FOUND", "run not found", fmt.Sprintf("%d", id), http.StatusNotFound)
	}
	if err != nil {
		return model.Run{}, fmt.Errorf("find run by id: %w", err)
	}
	return run, nil
}

func (r *RunRepository) List(ctx context.Context) ([]model.Run, error) {
	return r.queryRuns(ctx, `SELECT `+runColumns+` FROM runs ORDER BY time_ms`)
}

// ListByGame returns the runs for one game, fastest first.
func (r *RunRepository) ListByGame(ctx context.Context, gameID int64) ([]model.Run, error) {
	return r.queryRuns(ctx,
		`SELECT `+runColumns+` FROM runs WHERE game_id = $1 ORDER BY time_ms`, gameID)
}

func (r *RunRepository) queryRuns(ctx context.Context, sql string, args ...any) ([]model.Run, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]model.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *RunRepository) Create(ctx context.Context, run model.Run) (model.Run, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO runs (user_id, game_id, platform_id, time_ms, type, video_link)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING run_id, date`,
		run.UserID, run.GameID, run.PlatformID, run.Time.Milliseconds(), run.Type, run.VideoLink).
		Scan(&run.ID, &run.Date)
	if err != nil {
		return model.Run{}, fmt.Errorf("create run: %w", err)
	}
	return run, nil
}

func (r *RunRepository) Update(ctx context.Context, run model.Run) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE runs SET user_id = $2, game_id = $3, platform_id = $4,
		        time_ms = $5, type = $6, video_link = $7
		 WHERE run_id = $1`,
		run.ID, run.UserID, run.GameID, run.PlatformID,
		run.Time.Milliseconds(), run.Type, run.VideoLink)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("NOT_FOUND", "run not found", fmt.Sprintf("%d", run.ID), http.StatusNotFound)
	}
	return nil
}

func (r *RunRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM runs WHERE run_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("NOT_FOUND", "run not found", fmt.Sprintf("%d", id), http.StatusNotFound)
	}
	return nil
}

func (r *RunRepository) Confirm(ctx context.Context, runID int64, confirmedBy int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE runs SET confirmed_by = $2 WHERE run_id = $1`, runID, confirmedBy)
	if err != nil {
		return fmt.Errorf("confirm run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New("NOT_FOUND", "run not found", fmt.Sprintf("%d", runID), http.StatusNotFound)
	}
	return nil
}
