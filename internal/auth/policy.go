package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"speedrun-db-api/internal/model"
)

type AccessLevel int

const (
	// Public routes run with or without a principal.
	Public AccessLevel = iota
	// RequiresAuthenticated routes reject anonymous requests before the
	// handler is invoked.
	RequiresAuthenticated
)

// Rule maps an HTTP method and a path pattern to an access level. Pattern
// segments wrapped in braces match any single path segment.
type Rule struct {
	Method  string
	Pattern string
	Access  AccessLevel
}

// Policy is an ordered route-access table. Rules are evaluated top to
// bottom, first match wins, and anything unmatched requires authentication.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Decide returns the access level for a request. Unmatched requests fail
// closed.
func (p *Policy) Decide(method string, path string) AccessLevel {
	for _, rule := range p.rules {
		if rule.Method == method && matchPattern(rule.Pattern, path) {
			return rule.Access
		}
	}
	return RequiresAuthenticated
}

// Middleware enforces the table. It assumes the Authenticator already ran,
// so a missing principal means the request is anonymous.
func (p *Policy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.Decide(r.Method, r.URL.Path) == RequiresAuthenticated {
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				writeDenied(w)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func matchPattern(pattern string, path string) bool {
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternSegs) != len(pathSegs) {
		return false
	}
	for i, seg := range patternSegs {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}

func writeDenied(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    "UNAUTHORIZED",
			Message: "authentication required",
		},
	})
}
