package renderer

import (
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/input"
)

// CameraState is the camera side of a renderer: the pose and frustum, the movement controller fed
// by Input, and the uniform record uploaded each frame. Renderer implementations embed it so that
// the camera behaviour is shared and testable without a GPU.
type CameraState struct {
	Camera     *camera.Camera
	Controller camera.CameraController
	Uniform    camera.GPUCameraUniform
}

// NewCameraState creates the camera, its controller and an identity uniform, then applies the
// initial aspect ratio and stages the first transform.
//
// Parameters:
//   - settings: renderer settings carrying camera and controller options
//   - width: initial drawable width in pixels
//   - height: initial drawable height in pixels
//
// Returns:
//   - *CameraState: the ready camera state
func NewCameraState(settings Settings, width, height int) *CameraState {
	s := &CameraState{
		Camera:     camera.NewCamera(settings.CameraOptions...),
		Controller: camera.NewCameraController(settings.ControllerOptions...),
		Uniform:    camera.NewGPUCameraUniform(),
	}
	s.Camera.SetAspect(width, height)
	s.Uniform.Update(s.Camera)
	return s
}

// Input forwards key events to the movement controller.
func (s *CameraState) Input(ev input.Event) bool {
	return s.Controller.ProcessInput(ev)
}

// Update moves the camera for one tick and refreshes the uniform record.
func (s *CameraState) Update() {
	s.Controller.Tick(s.Camera)
	s.Uniform.Update(s.Camera)
}

func (s *CameraState) CamDir(delta camera.Euler) {
	s.Camera.Rotate(delta)
}

func (s *CameraState) CameraDirection() camera.Euler {
	return s.Camera.Pose.Orientation
}

// SetAspect updates the frustum for a new drawable size.
func (s *CameraState) SetAspect(width, height int) {
	s.Camera.SetAspect(width, height)
}
