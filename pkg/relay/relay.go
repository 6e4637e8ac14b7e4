package relay

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/screenbeam/screenbeam/pkg/api"
	"github.com/screenbeam/screenbeam/pkg/com"
	"github.com/screenbeam/screenbeam/pkg/config"
	"github.com/screenbeam/screenbeam/pkg/logger"
	"github.com/screenbeam/screenbeam/pkg/network/httpx"
	"github.com/screenbeam/screenbeam/pkg/network/websocket"
)

// Relay is the public websocket endpoint wired to a Hub.
type Relay struct {
	conf     config.Config
	hub      *Hub
	sessions com.NetMap[*session]
	server   *httpx.Server
	log      *logger.Logger
}

func New(conf config.Config, log *logger.Logger) (*Relay, error) {
	r := &Relay{
		conf:     conf,
		hub:      NewHub(log),
		sessions: com.NewNetMap[*session](),
		log:      log,
	}
	server, err := httpx.NewServer(
		conf.Relay.Server.GetAddr(),
		func(*httpx.Server) http.Handler {
			h := http.NewServeMux()
			h.HandleFunc("/ws", r.handleConnection)
			h.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			})
			return h
		},
		httpx.WithServerConfig(conf.Relay.Server),
		httpx.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	r.server = server
	return r, nil
}

func (r *Relay) Run()                               { r.server.Run() }
func (r *Relay) Shutdown(ctx context.Context) error { return r.server.Shutdown(ctx) }
func (r *Relay) String() string                     { return "relay::" + r.server.Addr }

// handleConnection serves one client connection for its whole lifetime.
func (r *Relay) handleConnection(w http.ResponseWriter, rq *http.Request) {
	conn, err := websocket.NewServer(w, rq, r.log)
	if err != nil {
		r.log.Error().Err(err).Msg("socket upgrade failed")
		return
	}

	id := com.NewUid()
	s := &session{id: id, conn: conn, log: r.log.Extend(r.log.With().Str("cid", id.Short()))}
	r.sessions.Add(s)
	metricConnections.Inc()
	s.log.Info().Msg("connect")

	conn.OnMessage = func(message []byte, err error) {
		if err != nil {
			return
		}
		var in api.In
		if err := json.Unmarshal(message, &in); err != nil {
			s.log.Warn().Err(err).Msg("malformed packet dropped")
			return
		}
		r.route(r.hub.Dispatch(id, in))
	}
	conn.Listen()

	s.Send(api.Out{T: api.Hello, Payload: api.HelloPush{Id: id.String(), Ice: iceServers(r.conf.Webrtc)}})

	<-conn.Done
	r.route(r.hub.Disconnect(id))
	r.sessions.Remove(s)
	metricConnections.Dec()
	s.log.Info().Msg("disconnect")
}

// route writes hub output to the addressed connections. A missing
// destination means the connection is already gone, which is fine.
func (r *Relay) route(msgs []Message) {
	for _, m := range msgs {
		if to, err := r.sessions.Find(m.To); err == nil {
			to.Send(m.Packet)
		}
	}
}

// iceServers hands the configured static STUN/TURN pool to clients as is.
func iceServers(conf config.Webrtc) []api.IceServer {
	if len(conf.IceServers) == 0 {
		return nil
	}
	out := make([]api.IceServer, len(conf.IceServers))
	for i, ice := range conf.IceServers {
		out[i] = api.IceServer{Urls: ice.Urls, Username: ice.Username, Credential: ice.Credential}
	}
	return out
}
