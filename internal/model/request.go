package model

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type UpdateUserRequest struct {
	Login    *string `json:"login"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

type CreateGameRequest struct {
	Name        string `json:"name"`
	ReleaseYear int    `json:"release_year"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type UpdateGameRequest struct {
	Name        *string `json:"name"`
	ReleaseYear *int    `json:"release_year"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

type CreatePlatformRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type UpdatePlatformRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

type CreateRunRequest struct {
	GameID     int64   `json:"game_id"`
	PlatformID int64   `json:"platform_id"`
	Time       RunTime `json:"time"`
	Type       string  `json:"type"`
	VideoLink  string  `json:"video_link"`
}

type UpdateRunRequest struct {
	GameID     *int64   `json:"game_id"`
	PlatformID *int64   `json:"platform_id"`
	Time       *RunTime `json:"time"`
	Type       *string  `json:"type"`
	VideoLink  *string  `json:"video_link"`
}

type RateGameRequest struct {
	GameID int64 `json:"game_id"`
	Score  int   `json:"score"`
}

type FollowRequest struct {
	FollowingID int64 `json:"following_id"`
}
