package camera

import (
	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/input"
)

// Direction names one of the six movement flags held by a CameraController.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown

	directionCount
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// defaultBindings maps key codes to movement flags: WASD and the arrow keys move in the
// horizontal directions, Space rises and Left Shift descends.
func defaultBindings() map[uint32]Direction {
	return map[uint32]Direction{
		common.KeyW:         DirectionForward,
		common.KeyUp:        DirectionForward,
		common.KeyS:         DirectionBackward,
		common.KeyDown:      DirectionBackward,
		common.KeyA:         DirectionLeft,
		common.KeyLeft:      DirectionLeft,
		common.KeyD:         DirectionRight,
		common.KeyRight:     DirectionRight,
		common.KeySpace:     DirectionUp,
		common.KeyLeftShift: DirectionDown,
	}
}

// CameraController turns discrete key events into held movement flags and applies them
// to a Camera once per simulation tick.
type CameraController interface {
	// ProcessInput updates the flag bound to a keyboard event's key.
	// Non-keyboard events and unbound keys leave the state untouched.
	//
	// Parameters:
	//   - ev: the window event to inspect
	//
	// Returns:
	//   - bool: true if the event was consumed by a key binding
	ProcessInput(ev input.Event) bool

	// Tick moves the camera by at most one horizontal and at most one vertical step.
	// Horizontal flags are checked in the order forward, backward, right, left and
	// vertical flags in the order up, down; the first held flag of each group wins.
	// Diagonal movement is never summed.
	//
	// Parameters:
	//   - c: the camera whose position is displaced
	Tick(c *Camera)

	// Held reports whether the flag for d is currently set.
	//
	// Parameters:
	//   - d: the direction to query
	//
	// Returns:
	//   - bool: true while the bound key is held
	Held(d Direction) bool

	// Speed returns the displacement per tick in world units.
	//
	// Returns:
	//   - float32: units per tick
	Speed() float32

	// SetSpeed sets the displacement per tick in world units.
	//
	// Parameters:
	//   - speed: units per tick
	SetSpeed(speed float32)
}

// cameraControllerImpl is the single implementation of CameraController.
// Only touched from the event loop goroutine, so it carries no lock.
type cameraControllerImpl struct {
	speed    float32
	held     [directionCount]bool
	bindings map[uint32]Direction
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller with the default key bindings and a speed
// of 0.2 units per tick, then applies options in order.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		speed:    0.2,
		bindings: defaultBindings(),
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) ProcessInput(ev input.Event) bool {
	if ev.Type != input.EventKeyboardInput {
		return false
	}
	d, ok := cc.bindings[ev.Key]
	if !ok {
		return false
	}
	cc.held[d] = ev.Pressed
	return true
}

func (cc *cameraControllerImpl) Tick(c *Camera) {
	forward, right, up := Basis(c.Pose.Orientation)

	switch {
	case cc.held[DirectionForward]:
		c.Translate(forward.Mul(cc.speed))
	case cc.held[DirectionBackward]:
		c.Translate(forward.Mul(-cc.speed))
	case cc.held[DirectionRight]:
		c.Translate(right.Mul(cc.speed))
	case cc.held[DirectionLeft]:
		c.Translate(right.Mul(-cc.speed))
	}

	switch {
	case cc.held[DirectionUp]:
		c.Translate(up.Mul(cc.speed))
	case cc.held[DirectionDown]:
		c.Translate(up.Mul(-cc.speed))
	}
}

func (cc *cameraControllerImpl) Held(d Direction) bool {
	if d < 0 || d >= directionCount {
		return false
	}
	return cc.held[d]
}

func (cc *cameraControllerImpl) Speed() float32 {
	return cc.speed
}

func (cc *cameraControllerImpl) SetSpeed(speed float32) {
	cc.speed = speed
}
