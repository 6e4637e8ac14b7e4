package relay

import (
	"sync"

	"github.com/gofrs/uuid"
	"github.com/screenbeam/screenbeam/pkg/api"
	"github.com/screenbeam/screenbeam/pkg/com"
	"github.com/screenbeam/screenbeam/pkg/logger"
)

// Message is an outbound packet addressed to a single connection.
type Message struct {
	To     com.Uid
	Packet api.Out
}

// Hub is the session protocol handler. It owns the registry, directory,
// mailbox and access table, serializes every event under one mutex and
// returns the outbound messages the event produced, so actual sends
// happen outside the critical section and the hub stays testable
// without a live transport.
//
// Protocol violations are never fatal to a connection: they are dropped
// or answered with a targeted error message. Only transport loss tears
// a connection down, via Disconnect.
type Hub struct {
	mu        sync.Mutex
	registry  *Registry
	directory *Directory
	mailbox   *Mailbox
	access    *AccessTable
	// parted holds connections that left their room: Left is terminal,
	// so a later join from them is ignored.
	parted map[com.Uid]struct{}
	log    *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		registry:  NewRegistry(),
		directory: NewDirectory(),
		mailbox:   NewMailbox(),
		access:    NewAccessTable(),
		parted:    make(map[com.Uid]struct{}, 10),
		log:       log,
	}
}

// Dispatch routes one inbound packet from the connection through the
// protocol state machine and returns the resulting outbound messages
// in delivery order.
func (h *Hub) Dispatch(from com.Uid, in api.In) []Message {
	metricEvents.WithLabelValues(in.T.String()).Inc()
	h.mu.Lock()
	defer h.mu.Unlock()
	switch in.T {
	case api.Join:
		if rq := api.Unwrap[api.JoinRequest](in.Payload); rq != nil {
			return h.handleJoin(from, rq)
		}
	case api.Signal:
		if rq := api.Unwrap[api.SignalRequest](in.Payload); rq != nil {
			return h.handleSignal(from, rq)
		}
	case api.CursorRequest:
		if rq := api.Unwrap[api.CursorRequestRequest](in.Payload); rq != nil {
			return h.handleCursorRequest(from, rq)
		}
	case api.CursorResponse:
		if rq := api.Unwrap[api.CursorResponseRequest](in.Payload); rq != nil {
			return h.handleCursorResponse(from, rq)
		}
	case api.MouseMove, api.MouseClick:
		return h.handleInput(from, in)
	case api.Leave:
		if rq := api.Unwrap[api.LeaveRequest](in.Payload); rq != nil {
			return h.handleLeave(from, rq)
		}
	default:
		h.log.Warn().Str("cid", from.Short()).Msgf("unknown packet type %v", uint8(in.T))
		return nil
	}
	h.log.Warn().Str("cid", from.Short()).Msgf("malformed %v payload", in.T)
	return nil
}

// Disconnect handles the loss of the underlying transport: the terminal
// transition with the full room teardown when the connection was a host.
func (h *Hub) Disconnect(from com.Uid) []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.parted, from)
	room, ok := h.registry.RoomOf(from)
	if !ok {
		return nil
	}
	h.log.Debug().Str("cid", from.Short()).Str("room", room).Msg("disconnect")
	return h.drop(from, room)
}

func (h *Hub) handleJoin(from com.Uid, rq *api.JoinRequest) []Message {
	if _, left := h.parted[from]; left {
		h.log.Debug().Str("cid", from.Short()).Msg("join after leave ignored")
		metricDropped.WithLabelValues("duplicate").Inc()
		return nil
	}
	if cur, ok := h.registry.RoomOf(from); ok {
		// duplicate-join guard, idempotent
		h.log.Debug().Str("cid", from.Short()).Str("room", cur).Msg("duplicate join ignored")
		metricDropped.WithLabelValues("duplicate").Inc()
		return nil
	}
	if rq.Host {
		return h.joinAsHost(from, rq.Room)
	}
	return h.joinAsViewer(from, rq.Room)
}

func (h *Hub) joinAsHost(from com.Uid, room string) []Message {
	created := false
	if room == "" {
		room = h.newRoomCode()
		created = true
	}
	if err := h.directory.ClaimHost(room, from); err != nil {
		h.log.Debug().Str("cid", from.Short()).Str("room", room).Msg("host claim rejected")
		return []Message{errorTo(from, "room is already hosted")}
	}
	h.registry.Bind(from, room)
	metricRooms.Inc()
	h.log.Info().Str("cid", from.Short()).Str("room", room).Msg("host started")
	if created {
		return []Message{{To: from, Packet: api.Out{T: api.RoomCreated, Payload: api.RoomCreatedPush{Room: room}}}}
	}
	return nil
}

func (h *Hub) joinAsViewer(from com.Uid, room string) []Message {
	if _, ok := h.directory.HostOf(room); !ok {
		h.log.Debug().Str("cid", from.Short()).Str("room", room).Msg("viewer join on a hostless room")
		return []Message{noHostTo(from)}
	}
	h.registry.Bind(from, room)
	_ = h.directory.AddViewer(room, from)
	h.log.Info().Str("cid", from.Short()).Str("room", room).Msg("viewer joined")

	var msgs []Message
	joined := api.Out{T: api.UserJoined, Payload: api.UserJoinedPush{Id: from.String()}}
	for _, m := range h.directory.Members(room) {
		if m != from {
			msgs = append(msgs, Message{To: m, Packet: joined})
		}
	}
	// replay parked signals, in arrival order, to the new recipient only
	for _, env := range h.mailbox.Drain(room) {
		msgs = append(msgs, Message{To: from, Packet: api.Out{T: api.Signal, Payload: env}})
		metricSignalsReplayed.Inc()
	}
	return msgs
}

func (h *Hub) handleSignal(from com.Uid, rq *api.SignalRequest) []Message {
	room, ok := h.registry.RoomOf(from)
	if !ok || room != rq.Room {
		h.log.Debug().Str("cid", from.Short()).Str("room", rq.Room).Msg("signal from outside the room dropped")
		metricDropped.WithLabelValues("stale").Inc()
		return nil
	}
	env := api.SignalPush{SenderId: from.String(), Payload: rq.Payload}
	members := h.directory.Members(room)
	if len(members) < 2 {
		// no eligible peer yet, park it for the next joiner
		h.mailbox.Buffer(room, env)
		metricSignalsBuffered.Inc()
		return nil
	}
	var msgs []Message
	out := api.Out{T: api.Signal, Payload: env}
	for _, m := range members {
		if m != from {
			msgs = append(msgs, Message{To: m, Packet: out})
		}
	}
	return msgs
}

func (h *Hub) handleCursorRequest(from com.Uid, rq *api.CursorRequestRequest) []Message {
	if room, ok := h.registry.RoomOf(from); !ok || room != rq.Room {
		h.log.Debug().Str("cid", from.Short()).Str("room", rq.Room).Msg("cursor request from outside the room dropped")
		metricDropped.WithLabelValues("stale").Inc()
		return nil
	}
	host, ok := h.directory.HostOf(rq.Room)
	if !ok {
		return []Message{noHostTo(from)}
	}
	push := api.Out{T: api.CursorRequest, Payload: api.CursorRequestPush{ViewerId: from.String()}}
	return []Message{{To: host, Packet: push}}
}

func (h *Hub) handleCursorResponse(from com.Uid, rq *api.CursorResponseRequest) []Message {
	if host, ok := h.directory.HostOf(rq.Room); !ok || host != from {
		// silent for the caller: an explicit rejection would leak room state
		h.log.Warn().Str("cid", from.Short()).Str("room", rq.Room).Msg("cursor decision from non-host ignored")
		metricDropped.WithLabelValues("unauthorized").Inc()
		return nil
	}
	viewer := com.Uid(rq.ViewerId)
	if !h.directory.IsViewer(rq.Room, viewer) {
		h.log.Warn().Str("cid", from.Short()).Str("room", rq.Room).Msg("cursor decision for a non-member ignored")
		metricDropped.WithLabelValues("stale").Inc()
		return nil
	}
	if rq.Approved {
		h.access.Grant(rq.Room, viewer)
	} else {
		h.access.Deny(rq.Room, viewer)
	}
	h.log.Info().Str("cid", viewer.Short()).Str("room", rq.Room).Bool("approved", rq.Approved).Msg("cursor decision")
	echo := api.Out{T: api.CursorResponse, Payload: api.CursorResponsePush{Approved: rq.Approved}}
	return []Message{{To: viewer, Packet: echo}}
}

func (h *Hub) handleInput(from com.Uid, in api.In) []Message {
	tag := api.Unwrap[api.RoomTag](in.Payload)
	if tag == nil || tag.Room == "" {
		metricDropped.WithLabelValues("stale").Inc()
		return nil
	}
	room, bound := h.registry.RoomOf(from)
	if !bound || room != tag.Room || !h.access.IsAuthorized(tag.Room, from) {
		// dropped without a reply so probing a room leaks nothing
		h.log.Debug().Str("cid", from.Short()).Str("room", tag.Room).Msg("unauthorized input dropped")
		metricDropped.WithLabelValues("unauthorized").Inc()
		return nil
	}
	var msgs []Message
	out := api.Out{T: in.T, Payload: api.InputPush{SenderId: from.String(), Event: in.Payload}}
	for _, m := range h.directory.Members(room) {
		if m != from {
			msgs = append(msgs, Message{To: m, Packet: out})
		}
	}
	return msgs
}

func (h *Hub) handleLeave(from com.Uid, rq *api.LeaveRequest) []Message {
	room, ok := h.registry.RoomOf(from)
	if !ok {
		return nil
	}
	if rq.Room != "" && rq.Room != room {
		h.log.Debug().Str("cid", from.Short()).Str("room", rq.Room).Msg("leave for a foreign room dropped")
		metricDropped.WithLabelValues("stale").Inc()
		return nil
	}
	h.parted[from] = struct{}{}
	h.log.Debug().Str("cid", from.Short()).Str("room", room).Msg("leave")
	return h.drop(from, room)
}

// drop removes the connection from its room and tears the room down
// when the connection was its host.
func (h *Hub) drop(from com.Uid, room string) []Message {
	h.registry.Unbind(from)

	if host, ok := h.directory.HostOf(room); ok && host == from {
		h.directory.ReleaseHost(room, from)
		h.mailbox.Purge(room)
		h.access.RevokeAll(room)
		viewers := h.directory.DropViewers(room)
		metricRooms.Dec()
		h.log.Info().Str("room", room).Int("viewers", len(viewers)).Msg("host stopped, room closed")

		var msgs []Message
		stopped := api.Out{T: api.HostStopped}
		for _, v := range viewers {
			// the room is gone, viewers fall back to the unjoined state
			h.registry.Unbind(v)
			msgs = append(msgs, Message{To: v, Packet: stopped})
		}
		return msgs
	}

	h.directory.RemoveViewer(room, from)
	h.access.Revoke(room, from)
	var msgs []Message
	gone := api.Out{T: api.UserDisconnected, Payload: api.UserDisconnectedPush{Id: from.String()}}
	for _, m := range h.directory.Members(room) {
		msgs = append(msgs, Message{To: m, Packet: gone})
	}
	return msgs
}

// newRoomCode mints a short unused room code for hosts that start a
// room without supplying one.
func (h *Hub) newRoomCode() string {
	for {
		u, err := uuid.NewV4()
		if err != nil {
			continue
		}
		code := u.String()[:8]
		if _, taken := h.directory.HostOf(code); !taken {
			return code
		}
	}
}

func errorTo(to com.Uid, message string) Message {
	return Message{To: to, Packet: api.Out{T: api.Error, Payload: api.ErrorPush{Message: message}}}
}

func noHostTo(to com.Uid) Message {
	return Message{To: to, Packet: api.Out{T: api.NoHost, Payload: api.NoHostPush{Message: ErrNoHost.Error()}}}
}
