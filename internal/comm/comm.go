package comm

import (
	"encoding/json"
)

// Topic carrying every scoreboard domain event published by boardsvc.
const TopicBoardEvents = "board.events"

// Event types carried on TopicBoardEvents.
const (
	EventScoreboardCreated = "scoreboard-created"
	EventScoreboardDeleted = "scoreboard-deleted"
	EventTeamUpdated       = "team-updated"
)

// Event is the envelope for messages between boardsvc and livesvc.
type Event struct {
	EventId      string          `json:"event_id"`
	Type         string          `json:"type"` // e.g. "scoreboard-created", "team-updated"
	ScoreboardId int64           `json:"scoreboard_id"`
	Data         json.RawMessage `json:"data"`
}

// WSMessage is what live clients send over the socket.
type WSMessage struct {
	Type         string `json:"type"` // e.g. "watch"
	ScoreboardId int64  `json:"scoreboard_id"`
}
