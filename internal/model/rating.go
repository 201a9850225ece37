package model

type GameRating struct {
	UserID int64 `json:"user_id"`
	GameID int64 `json:"game_id"`
	Score  int   `json:"score"`
}
