package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func nearVec(a, b mgl32.Vec3) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y()) && near(a.Z(), b.Z())
}

func press(cc CameraController, keys ...uint32) {
	for _, k := range keys {
		cc.ProcessInput(input.KeyEvent(k, true))
	}
}

func TestControllerConsumesPressAndRelease(t *testing.T) {
	cc := NewCameraController()

	for cycle := range 2 {
		if !cc.ProcessInput(input.KeyEvent(common.KeyW, true)) {
			t.Fatalf("cycle %d: expected W press to be consumed", cycle)
		}
		if !cc.Held(DirectionForward) {
			t.Fatalf("cycle %d: expected forward held after press", cycle)
		}
		if !cc.ProcessInput(input.KeyEvent(common.KeyW, false)) {
			t.Fatalf("cycle %d: expected W release to be consumed", cycle)
		}
		if cc.Held(DirectionForward) {
			t.Fatalf("cycle %d: expected forward released", cycle)
		}
	}
}

func TestControllerIgnoresUnmappedInput(t *testing.T) {
	cc := NewCameraController()
	press(cc, common.KeyD)

	if cc.ProcessInput(input.KeyEvent(common.KeyLeftAlt, true)) {
		t.Fatal("expected unmapped key to be ignored")
	}
	if cc.ProcessInput(input.CursorMovedEvent(input.PrimaryPointer, 4, 2)) {
		t.Fatal("expected non-key event to be ignored")
	}
	if cc.ProcessInput(input.Event{Type: input.EventCloseRequested}) {
		t.Fatal("expected close event to be ignored")
	}
	for d := DirectionForward; d < directionCount; d++ {
		if got, want := cc.Held(d), d == DirectionRight; got != want {
			t.Fatalf("%s: expected held=%v, got %v", d, want, got)
		}
	}
}

func TestControllerDefaultBindings(t *testing.T) {
	tests := []struct {
		key  uint32
		want Direction
	}{
		{common.KeyW, DirectionForward},
		{common.KeyUp, DirectionForward},
		{common.KeyS, DirectionBackward},
		{common.KeyDown, DirectionBackward},
		{common.KeyA, DirectionLeft},
		{common.KeyLeft, DirectionLeft},
		{common.KeyD, DirectionRight},
		{common.KeyRight, DirectionRight},
		{common.KeySpace, DirectionUp},
		{common.KeyLeftShift, DirectionDown},
	}
	for _, tt := range tests {
		cc := NewCameraController()
		press(cc, tt.key)
		if !cc.Held(tt.want) {
			t.Fatalf("key %d: expected %s held", tt.key, tt.want)
		}
	}
}

func TestControllerTickForwardMovesBySpeed(t *testing.T) {
	orientation := Euler{Pitch: 15, Yaw: 40}
	cam := NewCamera(WithPosition(0, 0, 0), WithOrientation(orientation.Pitch, orientation.Yaw, 0))
	cc := NewCameraController(WithSpeed(0.5))
	press(cc, common.KeyW)

	cc.Tick(cam)

	want := Forward(orientation).Mul(0.5)
	if !nearVec(cam.Pose.Position, want) {
		t.Fatalf("expected %v, got %v", want, cam.Pose.Position)
	}
}

func TestControllerTickHorizontalExclusivity(t *testing.T) {
	tests := []struct {
		name     string
		keys     []uint32
		expected []uint32
	}{
		{"forward over right", []uint32{common.KeyW, common.KeyD}, []uint32{common.KeyW}},
		{"forward over backward", []uint32{common.KeyS, common.KeyW}, []uint32{common.KeyW}},
		{"backward over left", []uint32{common.KeyA, common.KeyS}, []uint32{common.KeyS}},
		{"right over left", []uint32{common.KeyA, common.KeyD}, []uint32{common.KeyD}},
		{"up over down", []uint32{common.KeyLeftShift, common.KeySpace}, []uint32{common.KeySpace}},
		{"one of each axis", []uint32{common.KeyA, common.KeyLeftShift}, []uint32{common.KeyA, common.KeyLeftShift}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combined := NewCamera(WithOrientation(-20, 75, 0))
			single := NewCamera(WithOrientation(-20, 75, 0))

			cc := NewCameraController()
			press(cc, tt.keys...)
			cc.Tick(combined)

			ref := NewCameraController()
			press(ref, tt.expected...)
			ref.Tick(single)

			if !nearVec(combined.Pose.Position, single.Pose.Position) {
				t.Fatalf("expected %v, got %v", single.Pose.Position, combined.Pose.Position)
			}
		})
	}
}

func TestControllerTickIdleDoesNotMove(t *testing.T) {
	cam := NewCamera()
	start := cam.Pose.Position
	NewCameraController().Tick(cam)
	if cam.Pose.Position != start {
		t.Fatalf("expected no movement, got %v", cam.Pose.Position)
	}
}

func TestControllerCustomBindings(t *testing.T) {
	cc := NewCameraController(WithoutDefaultBindings(), WithBinding(common.KeyUp, DirectionUp))
	if cc.ProcessInput(input.KeyEvent(common.KeyW, true)) {
		t.Fatal("expected W to be unbound")
	}
	if !cc.ProcessInput(input.KeyEvent(common.KeyUp, true)) || !cc.Held(DirectionUp) {
		t.Fatal("expected Up arrow bound to vertical up")
	}
	cc.SetSpeed(1.5)
	if cc.Speed() != 1.5 {
		t.Fatalf("expected speed 1.5, got %v", cc.Speed())
	}
}
