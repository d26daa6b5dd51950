package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithSpeed sets the displacement applied per tick.
//
// Parameters:
//   - speed: world units per tick
//
// Returns:
//   - CameraControllerOption: functional option to set the speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.speed = speed
	}
}

// WithBinding binds an additional key code to a movement direction, replacing any
// existing binding for that key.
//
// Parameters:
//   - key: the key code (see common key constants)
//   - d: the direction the key drives
//
// Returns:
//   - CameraControllerOption: functional option to add the binding
func WithBinding(key uint32, d Direction) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bindings[key] = d
	}
}

// WithoutDefaultBindings clears the default key map. Combine with WithBinding to build a
// custom layout.
//
// Returns:
//   - CameraControllerOption: functional option to clear the bindings
func WithoutDefaultBindings() CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		clear(cc.bindings)
	}
}
