package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"speedrun-db-api/internal/model"
)

func TestPolicy_Decide(t *testing.T) {
	policy := NewPolicy(
		Rule{Method: http.MethodGet, Pattern: "/health", Access: Public},
		Rule{Method: http.MethodGet, Pattern: "/speedruns/api/users/me", Access: RequiresAuthenticated},
		Rule{Method: http.MethodGet, Pattern: "/speedruns/api/users/{userID}", Access: Public},
		Rule{Method: http.MethodGet, Pattern: "/speedruns/api/games", Access: Public},
	)

	tests := []struct {
		name   string
		method string
		path   string
		want   AccessLevel
	}{
		{"exact public match", http.MethodGet, "/health", Public},
		{"wildcard segment matches id", http.MethodGet, "/speedruns/api/users/42", Public},
		{"earlier rule wins over wildcard", http.MethodGet, "/speedruns/api/users/me", RequiresAuthenticated},
		{"method mismatch falls through", http.MethodPost, "/speedruns/api/games", RequiresAuthenticated},
		{"extra segment is no match", http.MethodGet, "/speedruns/api/users/42/follows", RequiresAuthenticated},
		{"unlisted route fails closed", http.MethodDelete, "/speedruns/api/runs/7", RequiresAuthenticated},
		{"trailing slash is tolerated", http.MethodGet, "/speedruns/api/games/", Public},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.Decide(tc.method, tc.path))
		})
	}
}

func TestPolicy_EmptyTableFailsClosed(t *testing.T) {
	policy := NewPolicy()
	assert.Equal(t, RequiresAuthenticated, policy.Decide(http.MethodGet, "/anything"))
}

func TestPolicyMiddleware_RejectsAnonymousOnProtectedRoute(t *testing.T) {
	policy := NewPolicy(
		Rule{Method: http.MethodGet, Pattern: "/public", Access: Public},
	)

	var reached bool
	handler := policy.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestPolicyMiddleware_AllowsAnonymousOnPublicRoute(t *testing.T) {
	policy := NewPolicy(
		Rule{Method: http.MethodGet, Pattern: "/public", Access: Public},
	)

	var reached bool
	handler := policy.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPolicyMiddleware_AllowsAuthenticatedOnProtectedRoute(t *testing.T) {
	policy := NewPolicy()

	var reached bool
	handler := policy.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	ctx := withPrincipal(req.Context(), Principal{Login: "speedy", Role: model.RoleUser})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
