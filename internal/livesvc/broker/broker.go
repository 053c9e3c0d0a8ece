package broker

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/scorely/scoreboard-services/internal/comm"
)

// Broker consumes scoreboard events from NATS and fans them out to the
// sockets watching the matching scoreboard.
type Broker struct {
	Conn          *nats.Conn
	GetConnection func(string) (*websocket.Conn, bool)
	GetWatchers   func(int64) []string
}

func NewBroker(conn *nats.Conn, fncGetConnection func(string) (*websocket.Conn, bool),
	fncGetWatchers func(int64) []string) *Broker {
	return &Broker{
		Conn:          conn,
		GetConnection: fncGetConnection,
		GetWatchers:   fncGetWatchers,
	}
}

// Subscribe consumes events published by the board service.
func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (b *Broker) handleMessages(msgNats *nats.Msg) {
	event := &comm.Event{}
	err := json.Unmarshal(msgNats.Data, event)
	if err != nil {
		log.Errorf("Error unmarshaling board event %s", err)
		return
	}

	switch event.Type {
	case comm.EventScoreboardCreated, comm.EventScoreboardDeleted, comm.EventTeamUpdated:
		b.sendEvent(event)
	default:
		log.Errorf("Unknown board event type: %s", event.Type)
	}
}

// sendEvent pushes the event to every socket watching the scoreboard.
func (b *Broker) sendEvent(event *comm.Event) {
	for _, socketId := range b.GetWatchers(event.ScoreboardId) {
		if conn, ok := b.GetConnection(socketId); ok {
			if err := conn.WriteJSON(event); err != nil {
				log.Errorf("Error sending event to socket %s: %s", socketId, err)
			}
		}
	}
}
