package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrLoginTaken         = errors.New("login already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Game/platform related errors
	ErrGameNotFound     = errors.New("game not found")
	ErrPlatformNotFound = errors.New("platform not found")

	// Run related errors
	ErrRunNotFound = errors.New("run not found")

	// Rating related errors
	ErrScoreOutOfRange = errors.New("score out of range")

	// Follow related errors
	ErrSelfFollow      = errors.New("cannot follow yourself")
	ErrAlreadyFollowed = errors.New("user already followed")

	// Access related errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
