package models

import (
	"time"
)

// Team represents the teams table in the database. Teams carry no
// owner of their own; ownership is resolved through the parent
// scoreboard's created_by.
type Team struct {
	TeamId       int64     `json:"team_id"`
	ScoreboardId int64     `json:"scoreboard_id"`
	Name         string    `json:"name"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}
