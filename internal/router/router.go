package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"speedrun-db-api/internal/auth"
	"speedrun-db-api/internal/config"
	"speedrun-db-api/internal/handler"
	"speedrun-db-api/internal/middleware"
)

// AccessRules is the ordered route-access table for the whole API surface.
// Earlier rules win; anything not listed requires authentication.
func AccessRules() []auth.Rule {
	return []auth.Rule{
		{Method: http.MethodGet, Pattern: "/health", Access: auth.Public},
		{Method: http.MethodPost, Pattern: "/speedruns/api/users/login", Access: auth.Public},
		{Method: http.MethodPost, Pattern: "/speedruns/api/users", Access: auth.Public},
		// /users/me carries the caller's identity, so it must come before
		// the public {userID} rule.
		{Method: http.MethodGet, Pattern: "/speedruns/api/users/me", Access: auth.RequiresAuthenticated},
		{Method: http.MethodGet, Pattern: "/speedruns/api/users/{userID}", Access: auth.Public},
		{Method: http.MethodGet, Pattern: "/speedruns/api/games", Access: auth.Public},
		{Method: http.MethodGet, Pattern: "/speedruns/api/games/{gameID}", Access: auth.Public},
		{Method: http.MethodGet, Pattern: "/speedruns/api/games/{gameID}/runs", Access: auth.Public},
		{Method: http.MethodGet, Pattern: "/speedruns/api/platforms", Access: auth.Public},
		{Method: http.MethodGet, Pattern: "/speedruns/api/platforms/{platformID}", Access: auth.Public},
		{Method: http.MethodGet, Pattern: "/speedruns/api/runs", Access: auth.Public},
		{Method: http.MethodGet, Pattern: "/speedruns/api/runs/{runID}", Access: auth.Public},
	}
}

func New(
	cfg *config.Config,
	authenticator *auth.Authenticator,
	policy *auth.Policy,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	gameHandler *handler.GameHandler,
	platformHandler *handler.PlatformHandler,
	runHandler *handler.RunHandler,
	ratingHandler *handler.RatingHandler,
	followHandler *handler.FollowHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)
	r.Use(authenticator.Middleware)
	r.Use(policy.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/speedruns/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/users", func(users chi.Router) {
			users.Post("/", authHandler.Register)
			users.Post("/login", authHandler.Login)
			users.Get("/", userHandler.List)
			users.Get("/me", userHandler.Me)
			users.Get("/{userID}", userHandler.Get)
			users.Put("/{userID}", userHandler.Update)
			users.Delete("/{userID}", userHandler.Delete)
		})

		api.Route("/games", func(games chi.Router) {
			games.Get("/", gameHandler.List)
			games.Post("/", gameHandler.Create)
			games.Get("/{gameID}", gameHandler.Get)
			games.Put("/{gameID}", gameHandler.Update)
			games.Delete("/{gameID}", gameHandler.Delete)
			games.Get("/{gameID}/runs", gameHandler.Runs)
			games.Put("/{gameID}/platforms/{platformID}", gameHandler.AssignPlatform)
		})

		api.Route("/platforms", func(platforms chi.Router) {
			platforms.Get("/", platformHandler.List)
			platforms.Post("/", platformHandler.Create)
			platforms.Get("/{platformID}", platformHandler.Get)
			platforms.Put("/{platformID}", platformHandler.Update)
			platforms.Delete("/{platformID}", platformHandler.Delete)
		})

		api.Route("/runs", func(runs chi.Router) {
			runs.Get("/", runHandler.List)
			runs.Post("/", runHandler.Create)
			runs.Get("/{runID}", runHandler.Get)
			runs.Put("/{runID}", runHandler.Update)
			runs.Delete("/{runID}", runHandler.Delete)
			runs.Put("/{runID}/confirm", runHandler.Confirm)
		})

		api.Post("/ratings", ratingHandler.Rate)

		api.Route("/follows", func(follows chi.Router) {
			follows.Get("/", followHandler.List)
			follows.Post("/", followHandler.Follow)
		})
	})

	return r
}
