package ws

import (
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/scorely/scoreboard-services/internal/comm"
)

// Ws tracks live connections and which scoreboard each one watches.
type Ws struct {
	connMap  sync.Map // socketId -> *websocket.Conn
	watchMap sync.Map // socketId -> scoreboard id
}

func NewWs() *Ws {
	return &Ws{}
}

// SocketMessage handles a message from a web client.
func (s *Ws) SocketMessage(socketId string, message *comm.WSMessage) {
	switch message.Type {
	case "watch":
		if message.ScoreboardId == 0 {
			log.Errorf("invalid watch payload from socket %s: missing scoreboard id", socketId)
			return
		}
		s.Watch(socketId, message.ScoreboardId)
	default:
		log.Warnf("unknown event received: %s", message.Type)
	}
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, conn)
}

func (s *Ws) GetConnection(socketId string) (*websocket.Conn, bool) {
	conn, ok := s.connMap.Load(socketId)
	if !ok {
		return nil, false
	}
	return conn.(*websocket.Conn), true
}

// Watch subscribes a socket to one scoreboard's events.
func (s *Ws) Watch(socketId string, scoreboardId int64) {
	s.watchMap.Store(socketId, scoreboardId)
}

// GetWatchers returns the sockets watching a scoreboard.
func (s *Ws) GetWatchers(scoreboardId int64) []string {
	var sockets []string

	s.watchMap.Range(func(key, value interface{}) bool {
		if value.(int64) == scoreboardId {
			sockets = append(sockets, key.(string))
		}
		return true // continue iterating
	})

	return sockets
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
	s.watchMap.Delete(socketId)
}
