package models

import (
	"time"
)

// Scoreboard represents the scoreboards table in the database.
// CreatedBy is the ownership anchor and never changes after creation.
type Scoreboard struct {
	ScoreboardId int64     `json:"scoreboard_id"`
	Name         string    `json:"name"`
	Game         string    `json:"game"`
	CreatedBy    int64     `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ScoreboardResponse is the denormalized view of a scoreboard with its
// teams and creator profile. Teams is null when the caller fetched a
// board that has none in a grouped listing.
type ScoreboardResponse struct {
	ScoreboardId int64        `json:"scoreboard_id"`
	Name         string       `json:"name"`
	Game         string       `json:"game"`
	CreatedBy    UserResponse `json:"created_by"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Teams        []Team       `json:"teams"`
}
