// Package glfw_window implements window.Window on top of GLFW and exposes the WebGPU surface
// descriptor of the native window.
package glfw_window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-view/engine/input"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW-backed window.Window that can also describe its WebGPU surface.
type Window interface {
	window.Window

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if the window is closed
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

type glfwWindowImpl struct {
	settings window.Settings
	window   *glfw.Window
	queue    window.EventQueue
	running  bool
}

var _ Window = &glfwWindowImpl{}

// NewWindow creates and shows a GLFW window with input callbacks feeding its event queue.
// The calling goroutine is locked to its OS thread; every later call must come from it.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: error if GLFW could not be initialized or the window could not be created
func NewWindow(options ...window.WindowBuilderOption) (Window, error) {
	runtime.LockOSThread()

	w := &glfwWindowImpl{settings: window.NewSettings(options...)}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.settings.Width, w.settings.Height, w.settings.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	w.window = win
	w.running = true

	maxW, maxH := w.settings.MaxWidth, w.settings.MaxHeight
	if maxW <= 0 {
		maxW = glfw.DontCare
	}
	if maxH <= 0 {
		maxH = glfw.DontCare
	}
	win.SetSizeLimits(w.settings.MinWidth, w.settings.MinHeight, maxW, maxH)

	w.registerCallbacks()

	// GLFW only reports enter transitions, so a cursor that starts inside the window
	// would otherwise never begin a mouse-look session.
	if win.GetAttrib(glfw.Hovered) == glfw.True {
		w.queue.Push(input.CursorEnteredEvent(input.PrimaryPointer))
	}

	return w, nil
}

func (w *glfwWindowImpl) registerCallbacks() {
	win := w.window

	win.SetCloseCallback(func(_ *glfw.Window) {
		w.queue.Push(input.Event{Type: input.EventCloseRequested})
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyUnknown {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			w.queue.Push(input.KeyEvent(uint32(key), true))
		case glfw.Release:
			w.queue.Push(input.KeyEvent(uint32(key), false))
		}
	})

	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.queue.Push(input.CursorEnteredEvent(input.PrimaryPointer))
			return
		}
		w.queue.Push(input.CursorLeftEvent(input.PrimaryPointer))
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.queue.Push(input.CursorMovedEvent(input.PrimaryPointer, xpos, ypos))
	})

	// Framebuffer size rather than window size: on high-DPI displays the two differ and the
	// surface must be configured in pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue.Push(input.ResizedEvent(width, height))
	})

	win.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		w.queue.Push(input.Event{Type: input.EventScaleFactorChanged, ScaleFactor: x})
	})
}

func (w *glfwWindowImpl) PollEvents() []input.Event {
	if !w.running {
		return nil
	}
	glfw.PollEvents()
	return w.queue.Drain()
}

func (w *glfwWindowImpl) RequestRedraw() {
	w.queue.RequestRedraw()
}

// SetCursorGrab maps CursorGrabConfined to GLFW's disabled cursor mode, which hides the cursor and
// keeps it inside the window while still reporting unbounded motion. go-gl/glfw reports platform
// errors by panicking, so those are recovered into the returned error.
func (w *glfwWindowImpl) SetCursorGrab(mode input.CursorGrabMode) (err error) {
	if !w.running {
		return fmt.Errorf("window is not initialized")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("set cursor grab: %v", r)
		}
	}()

	switch mode {
	case input.CursorGrabConfined:
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	case input.CursorGrabNone:
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	default:
		return fmt.Errorf("unsupported cursor grab mode %d", mode)
	}
	return nil
}

func (w *glfwWindowImpl) InnerSize() (int, int) {
	if !w.running {
		return 0, 0
	}
	return w.window.GetFramebufferSize()
}

func (w *glfwWindowImpl) IsRunning() bool {
	return w.running && !w.window.ShouldClose()
}

func (w *glfwWindowImpl) Close() error {
	if !w.running {
		return fmt.Errorf("window is not initialized")
	}
	w.running = false
	w.window.Destroy()
	glfw.Terminate()
	return nil
}

// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func (w *glfwWindowImpl) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if !w.running {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(w.window)
}
