package camera

// MouseLookOption is a functional option for configuring a MouseLook.
type MouseLookOption func(*mouseLookImpl)

// WithSensitivity sets the degrees of rotation per pixel of cursor motion.
//
// Parameters:
//   - sensitivity: multiplier for cursor deltas
//
// Returns:
//   - MouseLookOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) MouseLookOption {
	return func(m *mouseLookImpl) {
		m.sensitivity = sensitivity
	}
}

// WithPitchLimit bounds the camera pitch to [-limit, limit] degrees. A limit of 0 disables
// clamping and lets pitch pass +-90, which inverts the view basis.
//
// Parameters:
//   - limit: maximum absolute pitch in degrees
//
// Returns:
//   - MouseLookOption: functional option to set the pitch limit
func WithPitchLimit(limit float32) MouseLookOption {
	return func(m *mouseLookImpl) {
		m.pitchLimit = limit
	}
}

// WithReleaseEndsSession makes Release also forget the tracked device, so cursor motion
// stops turning the camera until the cursor enters the window again. Off by default.
//
// Parameters:
//   - enabled: whether Release ends the session
//
// Returns:
//   - MouseLookOption: functional option to set the release behaviour
func WithReleaseEndsSession(enabled bool) MouseLookOption {
	return func(m *mouseLookImpl) {
		m.releaseEndsSession = enabled
	}
}
