package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption is a functional option applied by NewCamera.
type CameraBuilderOption func(*Camera)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Pose.Position = mgl32.Vec3{x, y, z}
	}
}

// WithOrientation sets the camera's initial orientation.
//
// Parameters:
//   - pitch, yaw, roll: angles in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's orientation
func WithOrientation(pitch, yaw, roll float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Pose.Orientation = Euler{Pitch: pitch, Yaw: yaw, Roll: roll}
	}
}

// WithFovY sets the vertical field of view.
//
// Parameters:
//   - fovy: vertical field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFovY(fovy float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Frustum.FovY = fovy
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Frustum.Aspect = aspect
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clip planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Frustum.ZNear = near
		c.Frustum.ZFar = far
	}
}
