package service

import (
	"context"
	"net/http"
	"strings"

	"speedrun-db-api/internal/model"
	"speedrun-db-api/pkg/apierror"
)

type gameStore interface {
	FindByID(ctx context.Context, id int64) (model.Game, error)
	List(ctx context.Context) ([]model.Game, error)
	Create(ctx context.Context, g model.Game) (model.Game, error)
	Update(ctx context.Context, g model.Game) error
	Delete(ctx context.Context, id int64) error
	AssignPlatform(ctx context.Context, gameID int64, platformID int64) error
}

type platformLookup interface {
	FindByID(ctx context.Context, id int64) (model.Platform, error)
}

type gameRunLister interface {
	ListByGame(ctx context.Context, gameID int64) ([]model.Run, error)
}

type GameService struct {
	games     gameStore
	platforms platformLookup
	runs      gameRunLister
}

func NewGameService(games gameStore, platforms platformLookup, runs gameRunLister) *GameService {
	return &GameService{games: games, platforms: platforms, runs: runs}
}

func (s *GameService) List(ctx context.Context) ([]model.Game, error) {
	return s.games.List(ctx)
}

func (s *GameService) Get(ctx context.Context, id int64) (model.Game, error) {
	return s.games.FindByID(ctx, id)
}

func (s *GameService) Create(ctx context.Context, req model.CreateGameRequest) (model.Game, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.Game{}, apierror.New("BAD_REQUEST", "game name is required", "", http.StatusBadRequest)
	}

	return s.games.Create(ctx, model.Game{
		Name:        name,
		ReleaseYear: req.ReleaseYear,
		Description: req.Description,
		Image:       req.Image,
	})
}

// Update applies only the fields present in the request.
func (s *GameService) Update(ctx context.Context, id int64, req model.UpdateGameRequest) (model.Game, error) {
	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		return model.Game{}, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		game.Name = strings.TrimSpace(*req.Name)
	}
	if req.ReleaseYear != nil && *req.ReleaseYear != 0 {
		game.ReleaseYear = *req.ReleaseYear
	}
	if req.Description != nil {
		game.Description = *req.Description
	}
	if req.Image != nil {
		game.Image = *req.Image
	}

	if err := s.games.Update(ctx, game); err != nil {
		return model.Game{}, err
	}
	return game, nil
}

func (s *GameService) Delete(ctx context.Context, id int64) error {
	return s.games.Delete(ctx, id)
}

// AssignPlatform links a game to a platform; both must exist. Re-assigning
// an already linked platform is a no-op.
func (s *GameService) AssignPlatform(ctx context.Context, gameID int64, platformID int64) error {
	if _, err := s.games.FindByID(ctx, gameID); err != nil {
		return err
	}
	if _, err := s.platforms.FindByID(ctx, platformID); err != nil {
		return err
	}
	return s.games.AssignPlatform(ctx, gameID, platformID)
}

func (s *GameService) RunsInGame(ctx context.Context, gameID int64) ([]model.Run, error) {
	if _, err := s.games.FindByID(ctx, gameID); err != nil {
		return nil, err
	}
	return s.runs.ListByGame(ctx, gameID)
}
