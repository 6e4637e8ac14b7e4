// Package api defines the relay wire protocol.
//
// Each message is a JSON-encoded "packet" of the following structure:
//
//	t - (required) one of the predefined unique packet types;
//	p - (optional) packet payload with arbitrary data.
//
// The packets differentiate by their predefined types with which it is
// possible to unwrap the payload into distinct request/response data
// structures. Signaling payloads (offers, answers, ICE candidates) are
// forwarded verbatim and never inspected.
package api

import "encoding/json"

type PT uint8

// In is an inbound packet with a raw payload for 2-pass unmarshal.
type In struct {
	T       PT              `json:"t"`
	Payload json.RawMessage `json:"p,omitempty"`
}

type Out struct {
	T       PT  `json:"t"`
	Payload any `json:"p,omitempty"`
}

// Packet codes:
//
//	1xx - client requests
//	2xx - relay pushes
const (
	Join           PT = 100
	Signal         PT = 101
	CursorRequest  PT = 102
	CursorResponse PT = 103
	MouseMove      PT = 104
	MouseClick     PT = 105
	Leave          PT = 106

	Hello            PT = 200
	RoomCreated      PT = 201
	UserJoined       PT = 202
	UserDisconnected PT = 203
	HostStopped      PT = 204
	NoHost           PT = 205
	Error            PT = 206
)

func (p PT) String() string {
	switch p {
	case Join:
		return "Join"
	case Signal:
		return "Signal"
	case CursorRequest:
		return "CursorRequest"
	case CursorResponse:
		return "CursorResponse"
	case MouseMove:
		return "MouseMove"
	case MouseClick:
		return "MouseClick"
	case Leave:
		return "Leave"
	case Hello:
		return "Hello"
	case RoomCreated:
		return "RoomCreated"
	case UserJoined:
		return "UserJoined"
	case UserDisconnected:
		return "UserDisconnected"
	case HostStopped:
		return "HostStopped"
	case NoHost:
		return "NoHost"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// Unwrap extracts a typed payload from raw packet data.
func Unwrap[T any](data []byte) *T {
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil
	}
	return out
}
