package relay

import "github.com/screenbeam/screenbeam/pkg/com"

// AccessTable holds, per room, the set of viewer connections granted
// permission to emit input events.
//
// Not safe for concurrent use on its own: the owning Hub serializes access.
type AccessTable struct {
	granted map[string]map[com.Uid]struct{}
}

func NewAccessTable() *AccessTable {
	return &AccessTable{granted: make(map[string]map[com.Uid]struct{}, 10)}
}

func (a *AccessTable) Grant(room string, id com.Uid) {
	g, ok := a.granted[room]
	if !ok {
		g = make(map[com.Uid]struct{}, 4)
		a.granted[room] = g
	}
	g[id] = struct{}{}
}

// Deny removes any previously granted access, if present.
func (a *AccessTable) Deny(room string, id com.Uid) { a.Revoke(room, id) }

func (a *AccessTable) IsAuthorized(room string, id com.Uid) bool {
	_, ok := a.granted[room][id]
	return ok
}

// Revoke is called on the viewer's leave or disconnect.
func (a *AccessTable) Revoke(room string, id com.Uid) {
	g, ok := a.granted[room]
	if !ok {
		return
	}
	delete(g, id)
	if len(g) == 0 {
		delete(a.granted, room)
	}
}

// RevokeAll clears the room's whole set on host departure.
func (a *AccessTable) RevokeAll(room string) { delete(a.granted, room) }
