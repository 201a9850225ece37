package service

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"speedrun-db-api/internal/auth"
	"speedrun-db-api/internal/event"
	"speedrun-db-api/internal/model"
	"speedrun-db-api/pkg/apierror"
)

type authUserStore interface {
	FindByLogin(ctx context.Context, login string) (model.User, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) (model.User, error)
}

// AuthService owns credential verification and token issuance. Everything
// after login (per-request validation) lives in the auth package.
type AuthService struct {
	users  authUserStore
	issuer *auth.Issuer
	bus    event.Bus
}

func NewAuthService(users authUserStore, issuer *auth.Issuer, bus event.Bus) *AuthService {
	return &AuthService{users: users, issuer: issuer, bus: bus}
}

// Login checks the credential pair and mints a token. Unknown login and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, login string, password string) (model.TokenResponse, error) {
	user, err := s.users.FindByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		return model.TokenResponse{}, apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return model.TokenResponse{}, apierror.New("UNAUTHORIZED", "invalid credentials", "", http.StatusUnauthorized)
	}

	return s.tokenFor(user)
}

// Register creates a new USER identity, emits the registration event for the
// welcome mail, and logs the account straight in.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.TokenResponse, error) {
	login := strings.TrimSpace(req.Login)
	email := strings.TrimSpace(req.Email)

	if login == "" || req.Password == "" || email == "" {
		return model.TokenResponse{}, apierror.New("BAD_REQUEST", "login, password and email are required", "", http.StatusBadRequest)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.TokenResponse{}, apierror.New("BAD_REQUEST", "invalid email address", email, http.StatusBadRequest)
	}

	if taken, err := s.users.ExistsByLogin(ctx, login); err != nil {
		return model.TokenResponse{}, err
	} else if taken {
		return model.TokenResponse{}, apierror.New("ALREADY_EXISTS", "user with this login already exists", login, http.StatusConflict)
	}

	if taken, err := s.users.ExistsByEmail(ctx, email); err != nil {
		return model.TokenResponse{}, err
	} else if taken {
		return model.TokenResponse{}, apierror.New("ALREADY_EXISTS", "user with this email already exists", email, http.StatusConflict)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.TokenResponse{}, err
	}

	user, err := s.users.Create(ctx, model.User{
		Login:        login,
		PasswordHash: hash,
		Role:         model.RoleUser,
		Email:        email,
	})
	if err != nil {
		return model.TokenResponse{}, err
	}

	s.bus.Publish(event.Event{
		ID:        uuid.NewString(),
		Type:      event.TypeUserRegistered,
		Payload:   event.UserRegisteredPayload{Login: user.Login, Email: user.Email},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	return s.tokenFor(user)
}

func (s *AuthService) tokenFor(user model.User) (model.TokenResponse, error) {
	token, err := s.issuer.Issue(user.Login)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.issuer.TTL().Seconds()),
		User:      user,
	}, nil
}
