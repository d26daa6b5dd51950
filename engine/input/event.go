// Package input holds the window-system event vocabulary shared by the window layer,
// the camera controllers and the event loop. It has no platform dependencies.
package input

// EventType identifies the kind of a window-system Event.
type EventType int

const (
	// EventCloseRequested is delivered when the user asks the window to close.
	EventCloseRequested EventType = iota

	// EventKeyboardInput carries a key press or release in Key and Pressed.
	EventKeyboardInput

	// EventCursorEntered is delivered when the pointer Device enters the client area.
	EventCursorEntered

	// EventCursorLeft is delivered when the pointer Device leaves the client area.
	EventCursorLeft

	// EventCursorMoved carries the absolute cursor position X, Y of Device in pixels.
	EventCursorMoved

	// EventResized carries the new framebuffer Width and Height in pixels.
	EventResized

	// EventScaleFactorChanged carries the new content ScaleFactor of the window.
	EventScaleFactorChanged

	// EventRedrawRequested is delivered once per RequestRedraw call.
	EventRedrawRequested
)

// String returns a short name for the event type, used in log output.
func (t EventType) String() string {
	switch t {
	case EventCloseRequested:
		return "CloseRequested"
	case EventKeyboardInput:
		return "KeyboardInput"
	case EventCursorEntered:
		return "CursorEntered"
	case EventCursorLeft:
		return "CursorLeft"
	case EventCursorMoved:
		return "CursorMoved"
	case EventResized:
		return "Resized"
	case EventScaleFactorChanged:
		return "ScaleFactorChanged"
	case EventRedrawRequested:
		return "RedrawRequested"
	default:
		return "Unknown"
	}
}

// DeviceID identifies the pointer device that produced a cursor event.
type DeviceID uint64

// PrimaryPointer is the device id reported for the system pointer. GLFW exposes a single
// pointer per window, so every cursor event carries this id.
const PrimaryPointer DeviceID = 1

// CursorGrabMode controls how the window system constrains the cursor.
type CursorGrabMode int

const (
	// CursorGrabNone leaves the cursor free.
	CursorGrabNone CursorGrabMode = iota

	// CursorGrabConfined keeps the cursor inside the window bounds.
	CursorGrabConfined
)

// Event is a single window-system event. Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	// Key and Pressed are set for EventKeyboardInput.
	Key     uint32
	Pressed bool

	// Device is set for the cursor events.
	Device DeviceID

	// X and Y are set for EventCursorMoved.
	X, Y float64

	// Width and Height are set for EventResized.
	Width, Height int

	// ScaleFactor is set for EventScaleFactorChanged.
	ScaleFactor float32
}

// KeyEvent builds an EventKeyboardInput event.
func KeyEvent(key uint32, pressed bool) Event {
	return Event{Type: EventKeyboardInput, Key: key, Pressed: pressed}
}

// CursorEnteredEvent builds an EventCursorEntered event for dev.
func CursorEnteredEvent(dev DeviceID) Event {
	return Event{Type: EventCursorEntered, Device: dev}
}

// CursorLeftEvent builds an EventCursorLeft event for dev.
func CursorLeftEvent(dev DeviceID) Event {
	return Event{Type: EventCursorLeft, Device: dev}
}

// CursorMovedEvent builds an EventCursorMoved event for dev at (x, y).
func CursorMovedEvent(dev DeviceID, x, y float64) Event {
	return Event{Type: EventCursorMoved, Device: dev, X: x, Y: y}
}

// ResizedEvent builds an EventResized event.
func ResizedEvent(width, height int) Event {
	return Event{Type: EventResized, Width: width, Height: height}
}
