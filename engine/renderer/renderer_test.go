package renderer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/input"
)

func TestClassifySurfaceError(t *testing.T) {
	tests := []struct {
		err   error
		kind  SurfaceErrorKind
		state SurfaceState
	}{
		{errors.New("Surface timed out: Timeout"), SurfaceErrorTimeout, SurfaceReady},
		{errors.New("surface texture is outdated"), SurfaceErrorOutdated, SurfaceNeedsReconfigure},
		{errors.New("Surface Lost"), SurfaceErrorLost, SurfaceNeedsReconfigure},
		{errors.New("GPU out of memory"), SurfaceErrorOutOfMemory, SurfaceFatal},
		{errors.New("something unexpected"), SurfaceErrorOutdated, SurfaceNeedsReconfigure},
	}
	for _, tt := range tests {
		got := ClassifySurfaceError(tt.err)
		if got.Kind != tt.kind {
			t.Fatalf("%q: expected %s, got %s", tt.err, tt.kind, got.Kind)
		}
		if got.Kind.State() != tt.state {
			t.Fatalf("%q: expected state %s, got %s", tt.err, tt.state, got.Kind.State())
		}
		if !errors.Is(got, tt.err) {
			t.Fatalf("%q: expected wrapped cause", tt.err)
		}
	}

	if ClassifySurfaceError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	original := NewSurfaceError(SurfaceErrorLost, nil)
	if got := ClassifySurfaceError(fmt.Errorf("render: %w", original)); got != original {
		t.Fatalf("expected existing SurfaceError to pass through, got %v", got)
	}
}

func TestCameraStateInputAndUpdate(t *testing.T) {
	s := NewCameraState(NewSettings(
		WithCamera(camera.WithPosition(0, 0, 0)),
		WithController(camera.WithSpeed(1)),
	), 800, 400)

	if s.Camera.Frustum.Aspect != 2 {
		t.Fatalf("expected aspect 2, got %v", s.Camera.Frustum.Aspect)
	}
	if s.Uniform.ViewProj != camera.BuildViewProjection(s.Camera) {
		t.Fatal("expected initial transform staged")
	}

	if !s.Input(input.KeyEvent(common.KeyW, true)) {
		t.Fatal("expected movement key consumed")
	}
	if s.Input(input.KeyEvent(common.KeyEsc, true)) {
		t.Fatal("expected escape not consumed")
	}

	s.Update()
	if z := s.Camera.Pose.Position.Z(); z != 1 {
		t.Fatalf("expected one unit forward along +z, got %v", s.Camera.Pose.Position)
	}
	if s.Uniform.ViewProj != camera.BuildViewProjection(s.Camera) {
		t.Fatal("expected uniform refreshed by Update")
	}
}

func TestCameraStateDirection(t *testing.T) {
	s := NewCameraState(NewSettings(), 100, 100)
	s.CamDir(camera.Euler{Pitch: 3, Yaw: -4})
	s.CamDir(camera.Euler{Pitch: 1})
	if got, want := s.CameraDirection(), (camera.Euler{Pitch: 4, Yaw: -4}); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	s.SetAspect(300, 0)
	if s.Camera.Frustum.Aspect != 1 {
		t.Fatalf("expected aspect unchanged on zero height, got %v", s.Camera.Frustum.Aspect)
	}
}

func TestNewSettingsDefaults(t *testing.T) {
	s := NewSettings()
	if s.PresentMode != PresentModeUncapped || s.SampleCount != MSAAOff {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	s = NewSettings(WithPresentMode(PresentModeVSync), WithMSAA(MSAA4x), WithClearColor(0, 0, 0, 1))
	if s.PresentMode != PresentModeVSync || s.SampleCount != MSAA4x || s.ClearColor != [4]float64{0, 0, 0, 1} {
		t.Fatalf("options not applied: %+v", s)
	}
}
