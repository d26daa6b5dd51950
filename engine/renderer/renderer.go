// Package renderer describes the render collaborator driven by the event loop: it owns the camera,
// turns input into camera motion, uploads the camera transform and draws frames to the window
// surface. The WebGPU implementation lives in the wgpu_renderer subpackage.
package renderer

import (
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/input"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
)

// Renderer defines the interface for the rendering system as seen by the event loop.
// Every method must be called from the goroutine that created the renderer.
type Renderer interface {
	// Input offers a window event to the renderer before the event loop handles it.
	//
	// Parameters:
	//   - ev: the window event
	//
	// Returns:
	//   - bool: true when the renderer consumed the event and the loop must not handle it further
	Input(ev input.Event) bool

	// Update advances per-frame state: applies held movement to the camera and stages the new
	// camera transform for upload.
	Update()

	// Render draws one frame and presents it.
	//
	// Returns:
	//   - error: a *SurfaceError when the surface could not provide a frame, nil otherwise
	Render() error

	// Resize reconfigures the surface and depth target for a new drawable size and updates the
	// camera aspect ratio. Zero sizes are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Size returns the size the surface is currently configured for.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// Window returns the window this renderer presents to.
	Window() window.Window

	// CamDir adds an orientation delta to the camera.
	//
	// Parameters:
	//   - delta: pitch/yaw/roll change in degrees
	CamDir(delta camera.Euler)

	// CameraDirection returns the current camera orientation in degrees.
	CameraDirection() camera.Euler

	// SurfaceState reports whether the surface can present, needs reconfiguring or has failed.
	SurfaceState() SurfaceState
}

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency. This is the default.
	PresentModeUncapped PresentMode = iota

	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1). This is the default.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing.
	MSAA4x MSAASampleCount = 4
)
