// Package display abstracts the drawable surface the viewer blits
// into. The core pipeline only ever talks to the Surface interface;
// the one real implementation renders into the terminal via tcell.
package display

import (
	"github.com/AnyUserName/picterm-cli/internal/pixbuf"
)

// Kind identifies an input event delivered to the viewer.
type Kind int

const (
	PanLeft Kind = iota
	PanRight
	PanUp
	PanDown
	ZoomIn
	ZoomOut
	ZoomOptimal
	ZoomTo
	RotateCW
	RotateCCW
	FlipH
	Resize
	Quit
)

// Event is one user command. Events are delivered sequentially; the
// surface never invokes the handler concurrently.
type Event struct {
	Kind Kind

	// Scale is the absolute percentage for ZoomTo events.
	Scale int
}

// Surface is the display collaborator: a sink for pixel buffers and a
// source of window dimensions and input events.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)

	// SetImage replaces the displayed buffer and its placement.
	SetImage(buf *pixbuf.Buffer, x, y int)

	// MoveImage repositions the current buffer without replacing it.
	MoveImage(x, y int)

	// SetTitle updates the window title.
	SetTitle(title string)

	// Run blocks on the event loop, invoking handler for every input
	// event until it returns false. With exitUnfocus set the loop also
	// ends when the window loses input focus.
	Run(handler func(Event) bool, exitUnfocus bool) error

	// Close releases the surface. Safe to call after a failed Run.
	Close()
}
