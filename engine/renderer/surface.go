package renderer

import (
	"errors"
	"fmt"
	"strings"
)

// SurfaceState is the explicit health of the presentation surface.
type SurfaceState int

const (
	// SurfaceReady means the surface is configured and can present frames.
	SurfaceReady SurfaceState = iota

	// SurfaceNeedsReconfigure means the surface was lost or no longer matches the window and must be
	// configured again at the current size before the next frame.
	SurfaceNeedsReconfigure

	// SurfaceFatal means the surface failed in a way rendering cannot recover from.
	SurfaceFatal
)

func (s SurfaceState) String() string {
	switch s {
	case SurfaceReady:
		return "ready"
	case SurfaceNeedsReconfigure:
		return "needs-reconfigure"
	case SurfaceFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// SurfaceErrorKind classifies a failure to acquire a frame from the surface.
type SurfaceErrorKind int

const (
	// SurfaceErrorLost means the surface must be recreated or reconfigured.
	SurfaceErrorLost SurfaceErrorKind = iota

	// SurfaceErrorOutdated means the surface no longer matches the window, typically after a resize.
	SurfaceErrorOutdated

	// SurfaceErrorOutOfMemory means the GPU ran out of memory.
	SurfaceErrorOutOfMemory

	// SurfaceErrorTimeout means acquiring the frame took too long. The next frame may succeed.
	SurfaceErrorTimeout
)

func (k SurfaceErrorKind) String() string {
	switch k {
	case SurfaceErrorLost:
		return "lost"
	case SurfaceErrorOutdated:
		return "outdated"
	case SurfaceErrorOutOfMemory:
		return "out of memory"
	case SurfaceErrorTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// State returns the surface state a failure of this kind leaves behind.
func (k SurfaceErrorKind) State() SurfaceState {
	switch k {
	case SurfaceErrorOutOfMemory:
		return SurfaceFatal
	case SurfaceErrorTimeout:
		return SurfaceReady
	default:
		return SurfaceNeedsReconfigure
	}
}

// SurfaceError is returned by Renderer.Render when the surface could not provide a frame.
type SurfaceError struct {
	Kind SurfaceErrorKind
	Err  error
}

func (e *SurfaceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("surface %s", e.Kind)
	}
	return fmt.Sprintf("surface %s: %v", e.Kind, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// NewSurfaceError wraps err as a SurfaceError of the given kind.
func NewSurfaceError(kind SurfaceErrorKind, err error) *SurfaceError {
	return &SurfaceError{Kind: kind, Err: err}
}

// ClassifySurfaceError maps an error returned while acquiring a surface texture to a SurfaceError.
// Errors that are already SurfaceErrors are returned as is. Others are classified by their message,
// the only detail the WebGPU bindings expose, and fall back to SurfaceErrorOutdated so that an
// unrecognized failure leads to a reconfigure instead of a silent stall.
//
// Parameters:
//   - err: the acquisition error, may be nil
//
// Returns:
//   - *SurfaceError: the classified error, or nil when err is nil
func ClassifySurfaceError(err error) *SurfaceError {
	if err == nil {
		return nil
	}
	var se *SurfaceError
	if errors.As(err, &se) {
		return se
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"):
		return NewSurfaceError(SurfaceErrorTimeout, err)
	case strings.Contains(msg, "out of memory"), strings.Contains(msg, "outofmemory"):
		return NewSurfaceError(SurfaceErrorOutOfMemory, err)
	case strings.Contains(msg, "lost"):
		return NewSurfaceError(SurfaceErrorLost, err)
	default:
		return NewSurfaceError(SurfaceErrorOutdated, err)
	}
}
