package relay

import (
	"encoding/json"

	"github.com/screenbeam/screenbeam/pkg/api"
	"github.com/screenbeam/screenbeam/pkg/com"
	"github.com/screenbeam/screenbeam/pkg/logger"
	"github.com/screenbeam/screenbeam/pkg/network/websocket"
)

// session binds a connection id to its websocket channel.
type session struct {
	id   com.Uid
	conn *websocket.WS
	log  *logger.Logger
}

func (s *session) Id() com.Uid { return s.id }
func (s *session) Disconnect() { s.conn.Close() }

func (s *session) Send(packet api.Out) {
	data, err := json.Marshal(packet)
	if err != nil {
		s.log.Error().Err(err).Msgf("couldn't marshal %v packet", packet.T)
		return
	}
	s.conn.Write(data)
}
