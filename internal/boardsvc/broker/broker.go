package broker

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
	"github.com/scorely/scoreboard-services/internal/comm"
)

// Broker publishes scoreboard domain events to NATS after the
// corresponding write has committed. Publish failures are logged and
// swallowed; the write already succeeded.
type Broker struct {
	Conn *nats.Conn
}

func NewBroker(nc *nats.Conn) *Broker {
	return &Broker{Conn: nc}
}

func (b *Broker) ScoreboardCreated(sb *models.ScoreboardResponse) {
	b.publish(comm.EventScoreboardCreated, sb.ScoreboardId, sb)
}

func (b *Broker) ScoreboardDeleted(scoreboardId int64) {
	b.publish(comm.EventScoreboardDeleted, scoreboardId, nil)
}

func (b *Broker) TeamUpdated(team *models.Team) {
	b.publish(comm.EventTeamUpdated, team.ScoreboardId, team)
}

func (b *Broker) publish(eventType string, scoreboardId int64, data interface{}) {
	var raw json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			log.Errorf("Error marshaling %s event data: %s", eventType, err)
			return
		}
		raw = bytes
	}

	event := comm.Event{
		EventId:      uuid.New().String(),
		Type:         eventType,
		ScoreboardId: scoreboardId,
		Data:         raw,
	}

	bytes, err := json.Marshal(event)
	if err != nil {
		log.Errorf("Error marshaling %s event: %s", eventType, err)
		return
	}

	if err := b.Conn.Publish(comm.TopicBoardEvents, bytes); err != nil {
		log.Errorf("Error publishing to topic %s: %s", comm.TopicBoardEvents, err)
	}
}
