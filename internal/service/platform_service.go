package service

import (
	"context"
	"net/http"
	"strings"

	"speedrun-db-api/internal/model"
	"speedrun-db-api/pkg/apierror"
)

type platformStore interface {
	FindByID(ctx context.Context, id int64) (model.Platform, error)
	List(ctx context.Context) ([]model.Platform, error)
	Create(ctx context.Context, p model.Platform) (model.Platform, error)
	Update(ctx context.Context, p model.Platform) error
	Delete(ctx context.Context, id int64) error
}

type PlatformService struct {
	platforms platformStore
}

func NewPlatformService(platforms platformStore) *PlatformService {
	return &PlatformService{platforms: platforms}
}

func (s *PlatformService) List(ctx context.Context) ([]model.Platform, error) {
	return s.platforms.List(ctx)
}

func (s *PlatformService) Get(ctx context.Context, id int64) (model.Platform, error) {
	return s.platforms.FindByID(ctx, id)
}

func (s *PlatformService) Create(ctx context.Context, req model.CreatePlatformRequest) (model.Platform, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.Platform{}, apierror.New("BAD_REQUEST", "platform name is required", "", http.StatusBadRequest)
	}

	platformType, ok := model.ParsePlatformType(req.Type)
	if !ok {
		return model.Platform{}, apierror.New("BAD_REQUEST", "invalid platform type", req.Type, http.StatusBadRequest)
	}

	return s.platforms.Create(ctx, model.Platform{Name: name, Type: platformType})
}

func (s *PlatformService) Update(ctx context.Context, id int64, req model.UpdatePlatformRequest) (model.Platform, error) {
	platform, err := s.platforms.FindByID(ctx, id)
	if err != nil {
		return model.Platform{}, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		platform.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		platformType, ok := model.ParsePlatformType(*req.Type)
		if !ok {
			return model.Platform{}, apierror.New("BAD_REQUEST", "invalid platform type", *req.Type, http.StatusBadRequest)
		}
		platform.Type = platformType
	}

	if err := s.platforms.Update(ctx, platform); err != nil {
		return model.Platform{}, err
	}
	return platform, nil
}

func (s *PlatformService) Delete(ctx context.Context, id int64) error {
	return s.platforms.Delete(ctx, id)
}
