package renderer

import (
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
)

// Settings holds the construction parameters shared by Renderer implementations.
type Settings struct {
	PresentMode          PresentMode
	SampleCount          MSAASampleCount
	ClearColor           [4]float64
	ForceFallbackAdapter bool
	CameraOptions        []camera.CameraBuilderOption
	ControllerOptions    []camera.CameraControllerOption
}

// RendererBuilderOption is a functional option applied to renderer Settings during construction.
type RendererBuilderOption func(*Settings)

// NewSettings resolves renderer Settings from defaults and the provided options.
//
// Parameters:
//   - options: functional options to configure the renderer
//
// Returns:
//   - Settings: the resolved settings
func NewSettings(options ...RendererBuilderOption) Settings {
	s := Settings{
		PresentMode: PresentModeUncapped,
		SampleCount: MSAAOff,
		ClearColor:  [4]float64{0.1, 0.2, 0.3, 1.0},
	}
	for _, opt := range options {
		opt(&s)
	}
	return s
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(s *Settings) {
		s.PresentMode = mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count. Defaults to MSAAOff.
//
// Parameters:
//   - count: the MSAASampleCount to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(s *Settings) {
		s.SampleCount = count
	}
}

// WithClearColor sets the color the frame is cleared to before drawing.
func WithClearColor(r, g, b, a float64) RendererBuilderOption {
	return func(s *Settings) {
		s.ClearColor = [4]float64{r, g, b, a}
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the option
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(s *Settings) {
		s.ForceFallbackAdapter = force
	}
}

// WithCamera appends options applied when the renderer creates its camera.
func WithCamera(options ...camera.CameraBuilderOption) RendererBuilderOption {
	return func(s *Settings) {
		s.CameraOptions = append(s.CameraOptions, options...)
	}
}

// WithController appends options applied when the renderer creates its movement controller.
func WithController(options ...camera.CameraControllerOption) RendererBuilderOption {
	return func(s *Settings) {
		s.ControllerOptions = append(s.ControllerOptions, options...)
	}
}
