package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"speedrun-db-api/internal/event"
	"speedrun-db-api/internal/model"
	"speedrun-db-api/pkg/apierror"
)

type runStore interface {
	FindByID(ctx context.Context, id int64) (model.Run, error)
	List(ctx context.Context) ([]model.Run, error)
	Create(ctx context.Context, run model.Run) (model.Run, error)
	Update(ctx context.Context, run model.Run) error
	Delete(ctx context.Context, id int64) error
	Confirm(ctx context.Context, runID int64, confirmedBy int64) error
}

type runUserLookup interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByLogin(ctx context.Context, login string) (model.User, error)
}

type gameLookup interface {
	FindByID(ctx context.Context, id int64) (model.Game, error)
}

type RunService struct {
	runs      runStore
	users     runUserLookup
	games     gameLookup
	platforms platformLookup
	bus       event.Bus
}

func NewRunService(runs runStore, users runUserLookup, games gameLookup, platforms platformLookup, bus event.Bus) *RunService {
	return &RunService{runs: runs, users: users, games: games, platforms: platforms, bus: bus}
}

func (s *RunService) List(ctx context.Context) ([]model.Run, error) {
	return s.runs.List(ctx)
}

func (s *RunService) Get(ctx context.Context, id int64) (model.Run, error) {
	return s.runs.FindByID(ctx, id)
}

// Create records a run for the authenticated caller. Game and platform must
// exist before anything is written.
func (s *RunService) Create(ctx context.Context, runnerLogin string, req model.CreateRunRequest) (model.Run, error) {
	runner, err := s.users.FindByLogin(ctx, runnerLogin)
	if err != nil {
		return model.Run{}, err
	}
	if _, err := s.games.FindByID(ctx, req.GameID); err != nil {
		return model.Run{}, err
	}
	if _, err := s.platforms.FindByID(ctx, req.PlatformID); err != nil {
		return model.Run{}, err
	}
	if req.Time <= 0 {
		return model.Run{}, apierror.New("BAD_REQUEST", "run time is required", "", http.StatusBadRequest)
	}

	run, err := s.runs.Create(ctx, model.Run{
		UserID:     runner.ID,
		GameID:     req.GameID,
		PlatformID: req.PlatformID,
		Time:       req.Time,
		Type:       req.Type,
		VideoLink:  req.VideoLink,
	})
	if err != nil {
		return model.Run{}, err
	}

	s.bus.Publish(event.Event{
		ID:        uuid.NewString(),
		Type:      event.TypeRunSubmitted,
		Payload:   run,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	return run, nil
}

// Update applies only the fields present in the request, re-resolving any
// changed references.
func (s *RunService) Update(ctx context.Context, id int64, req model.UpdateRunRequest) (model.Run, error) {
	run, err := s.runs.FindByID(ctx, id)
	if err != nil {
		return model.Run{}, err
	}

	if req.GameID != nil {
		if _, err := s.games.FindByID(ctx, *req.GameID); err != nil {
			return model.Run{}, err
		}
		run.GameID = *req.GameID
	}
	if req.PlatformID != nil {
		if _, err := s.platforms.FindByID(ctx, *req.PlatformID); err != nil {
			return model.Run{}, err
		}
		run.PlatformID = *req.PlatformID
	}
	if req.Time != nil && *req.Time > 0 {
		run.Time = *req.Time
	}
	if req.Type != nil {
		run.Type = *req.Type
	}
	if req.VideoLink != nil {
		run.VideoLink = *req.VideoLink
	}

	if err := s.runs.Update(ctx, run); err != nil {
		return model.Run{}, err
	}
	return run, nil
}

func (s *RunService) Delete(ctx context.Context, id int64) error {
	return s.runs.Delete(ctx, id)
}

// Confirm marks a run as verified by the given moderator. The role gate
// lives in the handler; this only records who confirmed and notifies the
// runner.
func (s *RunService) Confirm(ctx context.Context, runID int64, confirmerLogin string) error {
	confirmer, err := s.users.FindByLogin(ctx, confirmerLogin)
	if err != nil {
		return err
	}

	run, err := s.runs.FindByID(ctx, runID)
	if err != nil {
		return err
	}

	if err := s.runs.Confirm(ctx, runID, confirmer.ID); err != nil {
		return err
	}

	runner, err := s.users.FindByID(ctx, run.UserID)
	if err != nil {
		// The confirmation already happened; a missing runner only costs
		// the notification.
		return nil
	}

	s.bus.Publish(event.Event{
		ID:        uuid.NewString(),
		Type:      event.TypeRunConfirmed,
		Payload:   event.RunConfirmedPayload{RunID: runID, Login: runner.Login, Email: runner.Email},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	return nil
}
