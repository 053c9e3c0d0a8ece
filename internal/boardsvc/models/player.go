package models

import (
	"time"
)

// Player represents the teams_players table, linking a user to a team.
type Player struct {
	TeamPlayerId int64     `json:"team_player_id"`
	TeamId       int64     `json:"team_id"`
	UserId       int64     `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlayerRow is a player membership joined with the user profile.
type PlayerRow struct {
	TeamPlayerId     int64     `json:"team_player_id"`
	TeamId           int64     `json:"team_id"`
	PlayerCreatedAt  time.Time `json:"player_created_at"`
	UserId           int64     `json:"user_id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	AvatarBackground string    `json:"avatar_background"`
	AvatarEmoji      string    `json:"avatar_emoji"`
	UserCreatedAt    time.Time `json:"user_created_at"`
}
