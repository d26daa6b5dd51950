package camera

import (
	"log"

	"github.com/Carmen-Shannon/oxy-view/engine/input"
)

// CursorGrabber is the window-system capability MouseLook needs to confine the cursor.
type CursorGrabber interface {
	SetCursorGrab(mode input.CursorGrabMode) error
}

// Orienter receives orientation deltas produced by MouseLook. CameraDirection is read
// to keep pitch inside the configured limit before CamDir is called.
type Orienter interface {
	CameraDirection() Euler
	CamDir(delta Euler)
}

// MouseLook reconstructs relative mouse motion from successive absolute cursor positions
// while the cursor is confined to the window, and feeds it to an Orienter as additive
// pitch/yaw updates.
type MouseLook interface {
	// CursorEntered starts a mouse-look session for dev if none is active: the cursor is
	// confined, dev becomes the tracked device and the last known position is cleared so
	// the next move produces a zero delta.
	//
	// Parameters:
	//   - dev: the pointer device that entered the window
	CursorEntered(dev input.DeviceID)

	// CursorLeft is a no-op. Confinement is only released through Release.
	//
	// Parameters:
	//   - dev: the pointer device that left the window
	CursorLeft(dev input.DeviceID)

	// CursorMoved converts a cursor position of the tracked device into an orientation
	// delta and applies it. Positions from other devices are ignored.
	//
	// Parameters:
	//   - dev: the pointer device that moved
	//   - x, y: absolute cursor position in pixels
	//
	// Returns:
	//   - Euler: the delta that was applied
	//   - bool: false if the event was ignored
	CursorMoved(dev input.DeviceID, x, y float64) (Euler, bool)

	// Release frees the cursor. The tracked device keeps driving the camera unless the
	// dispatcher was built WithReleaseEndsSession, in which case the session ends and the
	// next CursorEntered confines the cursor again.
	Release()

	// Tracking returns the device of the active session.
	//
	// Returns:
	//   - input.DeviceID: the tracked device
	//   - bool: false if no session is active
	Tracking() (input.DeviceID, bool)

	// Sensitivity returns the degrees of rotation per pixel of cursor motion.
	//
	// Returns:
	//   - float32: the sensitivity multiplier
	Sensitivity() float32
}

type mouseLookImpl struct {
	grabber CursorGrabber
	target  Orienter

	tracked *input.DeviceID
	lastPos *[2]float64

	sensitivity float32
	pitchLimit  float32 // degrees; 0 disables clamping

	releaseEndsSession bool
}

var _ MouseLook = &mouseLookImpl{}

// NewMouseLook creates a dispatcher with sensitivity 1.0 and a pitch limit of 89 degrees.
// Either collaborator may be nil; a nil target only computes deltas.
//
// Parameters:
//   - grabber: the window used to confine and release the cursor
//   - target: the receiver of orientation deltas
//   - options: functional options to configure the dispatcher
//
// Returns:
//   - MouseLook: the newly created dispatcher
func NewMouseLook(grabber CursorGrabber, target Orienter, options ...MouseLookOption) MouseLook {
	m := &mouseLookImpl{
		grabber:     grabber,
		target:      target,
		sensitivity: 1.0,
		pitchLimit:  89.0,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *mouseLookImpl) CursorEntered(dev input.DeviceID) {
	if m.tracked != nil {
		return
	}
	m.grab(input.CursorGrabConfined)
	m.tracked = &dev
	m.lastPos = nil
}

func (m *mouseLookImpl) CursorLeft(_ input.DeviceID) {}

func (m *mouseLookImpl) CursorMoved(dev input.DeviceID, x, y float64) (Euler, bool) {
	if m.tracked == nil || *m.tracked != dev {
		return Euler{}, false
	}

	current := [2]float64{x, y}
	previous := current
	if m.lastPos != nil {
		previous = *m.lastPos
	}
	m.lastPos = &current

	sens := float64(m.sensitivity)
	delta := Euler{
		Pitch: float32((current[1] - previous[1]) * sens),
		Yaw:   float32((current[0] - previous[0]) * -sens),
	}

	if m.target == nil {
		return delta, true
	}
	delta.Pitch = m.clampPitch(m.target.CameraDirection().Pitch, delta.Pitch)
	m.target.CamDir(delta)
	return delta, true
}

func (m *mouseLookImpl) Release() {
	m.grab(input.CursorGrabNone)
	if !m.releaseEndsSession {
		return
	}
	m.tracked = nil
	m.lastPos = nil
}

func (m *mouseLookImpl) Tracking() (input.DeviceID, bool) {
	if m.tracked == nil {
		return 0, false
	}
	return *m.tracked, true
}

func (m *mouseLookImpl) Sensitivity() float32 {
	return m.sensitivity
}

// clampPitch shrinks delta so that current+delta stays within [-pitchLimit, pitchLimit].
func (m *mouseLookImpl) clampPitch(current, delta float32) float32 {
	if m.pitchLimit <= 0 {
		return delta
	}
	next := current + delta
	switch {
	case next > m.pitchLimit:
		return m.pitchLimit - current
	case next < -m.pitchLimit:
		return -m.pitchLimit - current
	}
	return delta
}

// grab requests a cursor mode. Failures are logged rather than fatal; mouse look keeps
// working from absolute positions without confinement.
func (m *mouseLookImpl) grab(mode input.CursorGrabMode) {
	if m.grabber == nil {
		return
	}
	if err := m.grabber.SetCursorGrab(mode); err != nil {
		log.Printf("[MouseLook] cursor grab mode %d failed: %v", mode, err)
	}
}
