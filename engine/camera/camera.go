package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Euler is an orientation expressed as three independent rotation angles in degrees.
// Pitch tilts toward/away from the vertical axis, Yaw rotates about it, Roll is carried
// but always zero under the free-fly control scheme.
type Euler struct {
	Pitch float32
	Yaw   float32
	Roll  float32
}

// Add returns the component-wise sum of e and delta.
func (e Euler) Add(delta Euler) Euler {
	return Euler{
		Pitch: e.Pitch + delta.Pitch,
		Yaw:   e.Yaw + delta.Yaw,
		Roll:  e.Roll + delta.Roll,
	}
}

// Pose is the camera's world-space position and orientation.
// Yaw wraps freely and Pitch is not clamped here; bounding pitch is the job of
// whoever feeds orientation deltas (see MouseLook).
type Pose struct {
	Orientation Euler
	Position    mgl32.Vec3
}

// Frustum holds the perspective projection parameters.
type Frustum struct {
	Aspect float32 // width / height
	FovY   float32 // vertical field of view in degrees
	ZNear  float32
	ZFar   float32
}

// Camera is the single free-flying viewpoint of the viewer: a Pose plus a Frustum.
// It is plain data owned by the event loop goroutine and is not safe for concurrent use.
type Camera struct {
	Pose    Pose
	Frustum Frustum
}

// NewCamera creates a Camera with default settings, then applies options in order.
// Defaults: position (0, 1, -3), zero orientation (looking down +Z), 45 degree vertical
// field of view, aspect 1, near 0.1, far 100.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - *Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) *Camera {
	c := &Camera{
		Pose: Pose{
			Position: mgl32.Vec3{0, 1, -3},
		},
		Frustum: Frustum{
			Aspect: 1.0,
			FovY:   45.0,
			ZNear:  0.1,
			ZFar:   100.0,
		},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Rotate adds delta to the current orientation. It never sets an absolute orientation.
//
// Parameters:
//   - delta: the orientation change in degrees
func (c *Camera) Rotate(delta Euler) {
	c.Pose.Orientation = c.Pose.Orientation.Add(delta)
}

// Translate moves the camera position by offset.
//
// Parameters:
//   - offset: world-space displacement
func (c *Camera) Translate(offset mgl32.Vec3) {
	c.Pose.Position = c.Pose.Position.Add(offset)
}

// SetAspect updates the aspect ratio from a surface size. A zero height (minimized
// window) leaves the aspect unchanged.
//
// Parameters:
//   - width, height: surface size in pixels
func (c *Camera) SetAspect(width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	c.Frustum.Aspect = float32(width) / float32(height)
}
