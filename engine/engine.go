// Package engine drives the viewer: it pulls window events, routes them to the renderer, the
// mouse-look dispatcher and its own exit and resize handling, and renders on every redraw.
package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/input"
	"github.com/Carmen-Shannon/oxy-view/engine/profiler"
	"github.com/Carmen-Shannon/oxy-view/engine/renderer"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
)

// ErrSurfaceOutOfMemory is returned by Run when the surface reported out of memory.
var ErrSurfaceOutOfMemory = errors.New("surface out of memory")

// ErrNoWindow is returned by Run when the renderer has no window to poll.
var ErrNoWindow = errors.New("renderer has no window")

// engine implements the Engine interface.
type engine struct {
	renderer renderer.Renderer
	window   window.Window

	mouseLook        camera.MouseLook
	mouseLookOptions []camera.MouseLookOption

	profiler         *profiler.Profiler
	profilingEnabled bool

	running bool
	err     error
}

// Engine is the event loop driver of the viewer.
// All methods must be called from the goroutine that owns the window.
type Engine interface {
	// Run polls window events and handles them until an exit condition is met, requesting a
	// redraw after every poll. Blocks for the lifetime of the viewer.
	//
	// Returns:
	//   - error: nil on a normal exit, wrapping ErrSurfaceOutOfMemory after a fatal surface failure
	Run() error

	// HandleEvent applies a single window event.
	//
	// Parameters:
	//   - ev: the event to handle
	//
	// Returns:
	//   - bool: false when the event ends the loop
	HandleEvent(ev input.Event) bool

	// Renderer returns the render collaborator.
	Renderer() renderer.Renderer

	// MouseLook returns the mouse-look dispatcher fed by cursor events.
	MouseLook() camera.MouseLook

	// Profiler returns the frame profiler. It only ticks when profiling is enabled.
	Profiler() *profiler.Profiler

	// Quit stops Run after the event currently being handled.
	Quit()
}

// NewEngine creates an Engine around a renderer and the window it presents to.
//
// Parameters:
//   - r: the renderer; its Window is polled for events and grabs the cursor
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(r renderer.Renderer, options ...EngineBuilderOption) Engine {
	e := &engine{
		renderer: r,
		window:   r.Window(),
		profiler: profiler.NewProfiler(),
	}
	for _, opt := range options {
		opt(e)
	}

	var grabber camera.CursorGrabber
	if e.window != nil {
		grabber = e.window
	}
	e.mouseLook = camera.NewMouseLook(grabber, r, e.mouseLookOptions...)
	return e
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}

	e.running = true
	for e.running {
		for _, ev := range e.window.PollEvents() {
			if !e.HandleEvent(ev) {
				e.running = false
			}
			if !e.running {
				break
			}
		}
		if e.running {
			e.window.RequestRedraw()
		}
	}
	return e.err
}

func (e *engine) HandleEvent(ev input.Event) bool {
	if e.renderer.Input(ev) {
		return true
	}

	switch ev.Type {
	case input.EventCursorEntered:
		e.mouseLook.CursorEntered(ev.Device)
	case input.EventCursorLeft:
		e.mouseLook.CursorLeft(ev.Device)
	case input.EventCursorMoved:
		e.mouseLook.CursorMoved(ev.Device, ev.X, ev.Y)
	case input.EventCloseRequested:
		return false
	case input.EventKeyboardInput:
		switch ev.Key {
		case common.KeyEsc:
			return false
		case common.KeyLeftAlt:
			e.mouseLook.Release()
		}
	case input.EventResized:
		e.renderer.Resize(ev.Width, ev.Height)
	case input.EventScaleFactorChanged:
		if e.window != nil {
			e.renderer.Resize(e.window.InnerSize())
		}
	case input.EventRedrawRequested:
		return e.redraw()
	}
	return true
}

// redraw updates and renders one frame, then maps a surface failure onto the loop:
// lost and outdated surfaces are reconfigured at the current size unless the renderer already
// reports them ready, timeouts are skipped and out of memory ends the loop.
func (e *engine) redraw() bool {
	e.renderer.Update()
	err := e.renderer.Render()
	if err == nil {
		if e.profilingEnabled {
			e.profiler.Tick()
		}
		return true
	}

	var se *renderer.SurfaceError
	if !errors.As(err, &se) {
		log.Printf("[Engine] render failed: %v", err)
		return true
	}

	switch se.Kind {
	case renderer.SurfaceErrorLost, renderer.SurfaceErrorOutdated:
		if e.renderer.SurfaceState() == renderer.SurfaceReady {
			return true
		}
		e.renderer.Resize(e.renderer.Size())
		e.profiler.RecordReconfigure()
	case renderer.SurfaceErrorTimeout:
		e.profiler.RecordTimeout()
	case renderer.SurfaceErrorOutOfMemory:
		e.err = fmt.Errorf("render: %w: %w", ErrSurfaceOutOfMemory, se)
		return false
	}
	return true
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) MouseLook() camera.MouseLook {
	return e.mouseLook
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) Quit() {
	e.running = false
}
