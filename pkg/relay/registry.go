package relay

import "github.com/screenbeam/screenbeam/pkg/com"

// Registry tracks which room each live connection is currently bound to.
// A connection is bound to at most one room at a time.
//
// Not safe for concurrent use on its own: the owning Hub serializes access.
type Registry struct {
	rooms map[com.Uid]string
}

func NewRegistry() *Registry { return &Registry{rooms: make(map[com.Uid]string, 10)} }

// Bind associates the connection with the room. Binding an already-bound
// connection to the same room is a no-op; binding it to a different room
// without an intervening Unbind is a protocol error and is ignored.
// Reports whether the connection is bound to the room after the call.
func (r *Registry) Bind(id com.Uid, room string) bool {
	if cur, ok := r.rooms[id]; ok {
		return cur == room
	}
	r.rooms[id] = room
	return true
}

// Unbind drops the connection's room binding, returning the former room.
func (r *Registry) Unbind(id com.Uid) (string, bool) {
	room, ok := r.rooms[id]
	if ok {
		delete(r.rooms, id)
	}
	return room, ok
}

func (r *Registry) RoomOf(id com.Uid) (string, bool) {
	room, ok := r.rooms[id]
	return room, ok
}
