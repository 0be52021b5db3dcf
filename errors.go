package uigfx

import "errors"

// Sentinel errors for the uigfx package.
var (
	// ErrNotImplemented is returned when the backend lacks an optional
	// capability and no fallback exists.
	ErrNotImplemented = errors.New("uigfx: not implemented by backend")

	// ErrNoScreen is returned by handlers that cannot draw to a screen.
	ErrNoScreen = errors.New("uigfx: screen drawing not supported")

	// ErrClosed is returned when a Factory is asked for a Graphics
	// after Close.
	ErrClosed = errors.New("uigfx: use of closed factory")
)
