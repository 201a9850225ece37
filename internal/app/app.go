package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"speedrun-db-api/internal/auth"
	"speedrun-db-api/internal/config"
	"speedrun-db-api/internal/database"
	"speedrun-db-api/internal/email"
	"speedrun-db-api/internal/event"
	"speedrun-db-api/internal/handler"
	"speedrun-db-api/internal/repository"
	"speedrun-db-api/internal/router"
	"speedrun-db-api/internal/service"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	gameRepo := repository.NewGameRepository(pool)
	platformRepo := repository.NewPlatformRepository(pool)
	runRepo := repository.NewRunRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)
	followRepo := repository.NewFollowRepository(pool)
	slog.Info("database ready")

	codec, err := auth.NewCodec(cfg.JWTSecret)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	issuer := auth.NewIssuer(codec, cfg.JWTTTL)
	validator := auth.NewValidator(codec)
	authenticator := auth.NewAuthenticator(codec, validator, userRepo)
	policy := auth.NewPolicy(router.AccessRules()...)

	bus := event.NewBus()
	notifier := email.NewNotifier(email.NewSender(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}), bus)
	go notifier.Run()

	authService := service.NewAuthService(userRepo, issuer, bus)
	userService := service.NewUserService(userRepo)
	gameService := service.NewGameService(gameRepo, platformRepo, runRepo)
	platformService := service.NewPlatformService(platformRepo)
	runService := service.NewRunService(runRepo, userRepo, gameRepo, platformRepo, bus)
	ratingService := service.NewRatingService(ratingRepo, gameRepo, userRepo, bus)
	followService := service.NewFollowService(followRepo, userRepo)

	appRouter := router.New(
		cfg,
		authenticator,
		policy,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewGameHandler(gameService),
		handler.NewPlatformHandler(platformService),
		handler.NewRunHandler(runService),
		handler.NewRatingHandler(ratingService),
		handler.NewFollowHandler(followService),
	)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			func() {
				db.Close()
			},
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
