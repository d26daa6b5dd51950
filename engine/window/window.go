// Package window describes the window-system collaborator of the viewer: a platform window that
// queues input events, constrains the cursor and hands out redraw requests. The GLFW-backed
// implementation lives in the glfw_window subpackage so this package stays free of cgo.
package window

import (
	"github.com/Carmen-Shannon/oxy-view/engine/input"
)

// Window provides platform windowing and input event delivery.
// Implementations are single-threaded and must be driven from the goroutine that created them.
type Window interface {
	// PollEvents processes pending platform events without blocking and returns them in arrival
	// order. A pending redraw request is delivered last as an EventRedrawRequested.
	//
	// Returns:
	//   - []input.Event: events received since the previous call, possibly empty
	PollEvents() []input.Event

	// RequestRedraw schedules a single EventRedrawRequested for the next PollEvents call.
	// Repeated requests before the next poll collapse into one.
	RequestRedraw()

	// SetCursorGrab changes how the window constrains the cursor.
	//
	// Parameters:
	//   - mode: the requested grab mode
	//
	// Returns:
	//   - error: error if the platform refuses the mode
	SetCursorGrab(mode input.CursorGrabMode) error

	// InnerSize returns the current drawable size of the window in pixels.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	InnerSize() (int, int)

	// IsRunning returns true until the window has been closed.
	//
	// Returns:
	//   - bool: true if the window is still open
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never opened
	Close() error
}

// Settings holds the creation parameters of a Window.
type Settings struct {
	Title     string
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	MaxWidth  int
	MaxHeight int
}

// NewSettings builds window Settings from defaults and the provided options.
// Options that leave a dimension outside its min/max range are clamped afterwards.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Settings: the resolved settings
func NewSettings(options ...WindowBuilderOption) Settings {
	s := Settings{
		Title:     "oxy-view",
		Width:     1280,
		Height:    720,
		MinWidth:  320,
		MinHeight: 200,
		MaxWidth:  7680,
		MaxHeight: 4320,
	}
	for _, opt := range options {
		opt(&s)
	}
	s.Width = clamp(s.Width, s.MinWidth, s.MaxWidth)
	s.Height = clamp(s.Height, s.MinHeight, s.MaxHeight)
	return s
}

func clamp(v, lo, hi int) int {
	if hi > 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
