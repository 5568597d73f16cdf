package player

import "errors"

var (
	// ErrDeviceUnavailable is returned when the output device cannot be opened.
	ErrDeviceUnavailable = errors.New("output device unavailable")
	// ErrInvalidCommand is returned for out-of-range command arguments.
	ErrInvalidCommand = errors.New("invalid command")
)
