package relay

import "github.com/screenbeam/screenbeam/pkg/api"

// Mailbox buffers signaling envelopes addressed to a room that currently
// has no eligible recipient. Envelopes are kept in arrival order and are
// delivered at most once: Drain removes them.
//
// Not safe for concurrent use on its own: the owning Hub serializes access.
type Mailbox struct {
	queues map[string][]api.SignalPush
}

func NewMailbox() *Mailbox { return &Mailbox{queues: make(map[string][]api.SignalPush, 10)} }

func (m *Mailbox) Buffer(room string, env api.SignalPush) {
	m.queues[room] = append(m.queues[room], env)
}

// Drain removes and returns all buffered envelopes of the room in
// arrival order.
func (m *Mailbox) Drain(room string) []api.SignalPush {
	q, ok := m.queues[room]
	if !ok {
		return nil
	}
	delete(m.queues, room)
	return q
}

// Purge clears the room's queue on teardown.
func (m *Mailbox) Purge(room string) { delete(m.queues, room) }

func (m *Mailbox) Size(room string) int { return len(m.queues[room]) }
