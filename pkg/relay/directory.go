package relay

import "github.com/screenbeam/screenbeam/pkg/com"

// Directory maps room codes to their current host and viewers.
// Entries are deleted outright when a room empties, so absence means empty.
//
// Not safe for concurrent use on its own: the owning Hub serializes access.
type Directory struct {
	hosts   map[string]com.Uid
	viewers map[string]map[com.Uid]struct{}
}

func NewDirectory() *Directory {
	return &Directory{
		hosts:   make(map[string]com.Uid, 10),
		viewers: make(map[string]map[com.Uid]struct{}, 10),
	}
}

// ClaimHost takes the host slot of the room for the connection.
// Fails with ErrAlreadyHosted when the room has a live host.
func (d *Directory) ClaimHost(room string, id com.Uid) error {
	if _, ok := d.hosts[room]; ok {
		return ErrAlreadyHosted
	}
	d.hosts[room] = id
	return nil
}

func (d *Directory) HostOf(room string) (com.Uid, bool) {
	id, ok := d.hosts[room]
	return id, ok
}

// ReleaseHost frees the host slot only when it is still owned by id,
// which protects against a stale release racing a new claim for a
// reused room code. Reports whether the slot was released.
func (d *Directory) ReleaseHost(room string, id com.Uid) bool {
	if cur, ok := d.hosts[room]; !ok || cur != id {
		return false
	}
	delete(d.hosts, room)
	return true
}

// AddViewer fails with ErrNoHost when the room has no live host and
// creates no directory state in that case.
func (d *Directory) AddViewer(room string, id com.Uid) error {
	if _, ok := d.hosts[room]; !ok {
		return ErrNoHost
	}
	vs, ok := d.viewers[room]
	if !ok {
		vs = make(map[com.Uid]struct{}, 4)
		d.viewers[room] = vs
	}
	vs[id] = struct{}{}
	return nil
}

func (d *Directory) RemoveViewer(room string, id com.Uid) {
	vs, ok := d.viewers[room]
	if !ok {
		return
	}
	delete(vs, id)
	if len(vs) == 0 {
		delete(d.viewers, room)
	}
}

func (d *Directory) IsViewer(room string, id com.Uid) bool {
	_, ok := d.viewers[room][id]
	return ok
}

func (d *Directory) Viewers(room string) []com.Uid {
	vs := d.viewers[room]
	if len(vs) == 0 {
		return nil
	}
	out := make([]com.Uid, 0, len(vs))
	for id := range vs {
		out = append(out, id)
	}
	return out
}

// Members lists the host (first, when present) and all viewers of the room.
func (d *Directory) Members(room string) []com.Uid {
	var out []com.Uid
	if host, ok := d.hosts[room]; ok {
		out = append(out, host)
	}
	return append(out, d.Viewers(room)...)
}

// DropViewers removes the whole viewer set of the room on teardown.
func (d *Directory) DropViewers(room string) []com.Uid {
	vs := d.Viewers(room)
	delete(d.viewers, room)
	return vs
}
