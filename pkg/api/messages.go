package api

import "encoding/json"

type (
	JoinRequest struct {
		Room string `json:"room"`
		Host bool   `json:"host,omitempty"`
	}
	SignalRequest struct {
		Room string `json:"room"`
		// Payload is one of {offer}, {answer}, {candidate}; opaque to the relay.
		Payload json.RawMessage `json:"payload"`
	}
	CursorRequestRequest struct {
		Room string `json:"room"`
	}
	CursorResponseRequest struct {
		Room     string `json:"room"`
		ViewerId string `json:"viewerId"`
		Approved bool   `json:"approved"`
	}
	LeaveRequest struct {
		Room string `json:"room"`
	}
)

// RoomTag extracts just the room code from any room-scoped payload.
type RoomTag struct {
	Room string `json:"room"`
}

type (
	HelloPush struct {
		Id  string      `json:"id"`
		Ice []IceServer `json:"ice,omitempty"`
	}
	IceServer struct {
		Urls       string `json:"urls,omitempty"`
		Username   string `json:"username,omitempty"`
		Credential string `json:"credential,omitempty"`
	}
	RoomCreatedPush struct {
		Room string `json:"room"`
	}
	UserJoinedPush struct {
		Id string `json:"id"`
	}
	UserDisconnectedPush struct {
		Id string `json:"id"`
	}
	NoHostPush struct {
		Message string `json:"message"`
	}
	ErrorPush struct {
		Message string `json:"message"`
	}
	SignalPush struct {
		SenderId string          `json:"senderId"`
		Payload  json.RawMessage `json:"payload"`
	}
	CursorRequestPush struct {
		ViewerId string `json:"viewerId"`
	}
	CursorResponsePush struct {
		Approved bool `json:"approved"`
	}
	// InputPush wraps a forwarded input event with its sender identity.
	InputPush struct {
		SenderId string          `json:"senderId"`
		Event    json.RawMessage `json:"event"`
	}
)
