// Package host describes the window system backends the demos run on.
package host

import (
	"errors"

	"wirecube/internal/canvas"
	"wirecube/internal/frame"
)

// Bootstrap failures. Backends wrap the library's own error with one of
// these after releasing whatever they had already acquired.
var (
	ErrInit     = errors.New("init failed")
	ErrWindow   = errors.New("window creation failed")
	ErrRenderer = errors.New("renderer creation failed")
)

// Host owns the window and renderer for the life of the program. The
// render loop borrows it as canvas, event source and clock.
type Host interface {
	canvas.Canvas
	frame.EventSource
	frame.Clock

	// Close releases the renderer, the window and the library, in that
	// order.
	Close()
}
