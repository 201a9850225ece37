package auth

import (
	"context"

	"speedrun-db-api/internal/model"
)

// Principal is the resolved caller identity for a single request. It lives
// only in that request's context.
type Principal struct {
	Login string
	Role  model.UserRole
}

type contextKey string

const principalContextKey contextKey = "auth_principal"

func withPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext returns the authenticated principal, if any. An
// absent principal means the request is anonymous, not that it failed.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(Principal)
	return p, ok
}
