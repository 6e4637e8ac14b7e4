package relay

import "errors"

var (
	// ErrAlreadyHosted signals a host claim on a room code that already has a live host.
	ErrAlreadyHosted = errors.New("room already has a host")
	// ErrNoHost signals a room-scoped action on a room without a live host.
	ErrNoHost = errors.New("room has no host")
)
