package models

import (
	"time"
)

// Game represents the games table in the database.
type Game struct {
	GameId    int64     `json:"game_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
