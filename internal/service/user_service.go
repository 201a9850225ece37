package service

import (
	"context"
	"net/http"
	"strings"

	"speedrun-db-api/internal/auth"
	"speedrun-db-api/internal/model"
	"speedrun-db-api/pkg/apierror"
)

type userStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id int64) error
}

type UserService struct {
	users userStore
}

func NewUserService(users userStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies only the fields present in the request. A password change
// re-hashes; a role change must name a known role.
func (s *UserService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if req.Login != nil && strings.TrimSpace(*req.Login) != "" {
		user.Login = strings.TrimSpace(*req.Login)
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return model.User{}, err
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		role, ok := model.ParseUserRole(*req.Role)
		if !ok {
			return model.User{}, apierror.New("BAD_REQUEST", "invalid role", *req.Role, http.StatusBadRequest)
		}
		user.Role = role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
