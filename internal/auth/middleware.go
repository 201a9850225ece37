package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"speedrun-db-api/internal/model"
)

const bearerPrefix = "Bearer "

// IdentityStore resolves a token subject to a live identity. Satisfied by
// repository.UserRepository.
type IdentityStore interface {
	FindByLogin(ctx context.Context, login string) (model.User, error)
}

// Authenticator establishes the caller's authentication state on each
// request. It never rejects anything itself: every failure mode (missing
// header, malformed token, bad signature, expired, unknown subject) just
// leaves the request anonymous, and the policy middleware decides whether
// that is acceptable for the route. Callers are never told which of those
// failure modes applied.
type Authenticator struct {
	codec     *Codec
	validator *Validator
	store     IdentityStore
}

func NewAuthenticator(codec *Codec, validator *Validator, store IdentityStore) *Authenticator {
	return &Authenticator{codec: codec, validator: validator, store: store}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])

		// Subject extraction goes through a verified decode; an unverified
		// claim is never used for the identity lookup.
		claims, err := a.codec.Decode(token)
		if err != nil {
			slog.Debug("bearer token rejected", "reason", err.Error())
			next.ServeHTTP(w, r)
			return
		}

		identity, err := a.store.FindByLogin(r.Context(), claims.Subject)
		if err != nil {
			slog.Debug("bearer token subject unknown")
			next.ServeHTTP(w, r)
			return
		}

		if !a.validator.IsValid(token, identity.Login) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := withPrincipal(r.Context(), Principal{Login: identity.Login, Role: identity.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
