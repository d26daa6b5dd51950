package engine

import (
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/profiler"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, the profiler ticks once per rendered frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithMouseLook appends options for the mouse-look dispatcher, such as sensitivity and pitch limit.
//
// Parameters:
//   - options: the mouse-look options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMouseLook(options ...camera.MouseLookOption) EngineBuilderOption {
	return func(e *engine) {
		e.mouseLookOptions = append(e.mouseLookOptions, options...)
	}
}
