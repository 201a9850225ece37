package model

type Game struct {
	ID            int64      `json:"game_id"`
	Name          string     `json:"name"`
	ReleaseYear   int        `json:"release_year"`
	Description   string     `json:"description"`
	Image         string     `json:"image"`
	AverageRating *float64   `json:"average_rating"`
	Platforms     []Platform `json:"platforms,omitempty"`
}
