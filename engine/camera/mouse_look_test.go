package camera

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/engine/input"
)

type fakeGrabber struct {
	modes []input.CursorGrabMode
	err   error
}

func (g *fakeGrabber) SetCursorGrab(mode input.CursorGrabMode) error {
	g.modes = append(g.modes, mode)
	return g.err
}

type fakeOrienter struct {
	dir   Euler
	calls int
}

func (o *fakeOrienter) CameraDirection() Euler { return o.dir }

func (o *fakeOrienter) CamDir(delta Euler) {
	o.dir = o.dir.Add(delta)
	o.calls++
}

func TestMouseLookFirstMoveIsZero(t *testing.T) {
	g, o := &fakeGrabber{}, &fakeOrienter{}
	m := NewMouseLook(g, o)

	m.CursorEntered(input.PrimaryPointer)
	delta, ok := m.CursorMoved(input.PrimaryPointer, 320, 240)
	if !ok {
		t.Fatal("expected tracked device to be handled")
	}
	if delta != (Euler{}) || o.dir != (Euler{}) {
		t.Fatalf("expected zero delta, got %v (orientation %v)", delta, o.dir)
	}
	if len(g.modes) != 1 || g.modes[0] != input.CursorGrabConfined {
		t.Fatalf("expected one confine request, got %v", g.modes)
	}
}

func TestMouseLookDeltaFromPreviousPosition(t *testing.T) {
	o := &fakeOrienter{}
	m := NewMouseLook(&fakeGrabber{}, o)

	m.CursorEntered(input.PrimaryPointer)
	m.CursorMoved(input.PrimaryPointer, 100, 100)
	delta, _ := m.CursorMoved(input.PrimaryPointer, 110, 95)

	want := Euler{Pitch: -5, Yaw: -10}
	if delta != want || o.dir != want {
		t.Fatalf("expected %v, got delta %v orientation %v", want, delta, o.dir)
	}
	if o.calls != 2 {
		t.Fatalf("expected two CamDir calls, got %d", o.calls)
	}
}

func TestMouseLookSensitivity(t *testing.T) {
	o := &fakeOrienter{}
	m := NewMouseLook(nil, o, WithSensitivity(0.25))
	m.CursorEntered(input.PrimaryPointer)
	m.CursorMoved(input.PrimaryPointer, 0, 0)
	m.CursorMoved(input.PrimaryPointer, 8, 4)

	if want := (Euler{Pitch: 1, Yaw: -2}); o.dir != want {
		t.Fatalf("expected %v, got %v", want, o.dir)
	}
	if m.Sensitivity() != 0.25 {
		t.Fatalf("expected sensitivity 0.25, got %v", m.Sensitivity())
	}
}

func TestMouseLookIgnoresUntrackedDevice(t *testing.T) {
	o := &fakeOrienter{}
	m := NewMouseLook(&fakeGrabber{}, o)

	if _, ok := m.CursorMoved(input.PrimaryPointer, 1, 1); ok {
		t.Fatal("expected move before enter to be ignored")
	}

	m.CursorEntered(input.PrimaryPointer)
	m.CursorEntered(input.DeviceID(7))
	if dev, ok := m.Tracking(); !ok || dev != input.PrimaryPointer {
		t.Fatalf("expected first device to stay tracked, got %v %v", dev, ok)
	}
	if _, ok := m.CursorMoved(input.DeviceID(7), 50, 50); ok {
		t.Fatal("expected other device to be ignored")
	}
	if o.calls != 0 {
		t.Fatalf("expected no orientation change, got %d calls", o.calls)
	}
}

func TestMouseLookCursorLeftKeepsSession(t *testing.T) {
	g := &fakeGrabber{}
	m := NewMouseLook(g, &fakeOrienter{})
	m.CursorEntered(input.PrimaryPointer)
	m.CursorLeft(input.PrimaryPointer)
	m.CursorEntered(input.PrimaryPointer)

	if _, ok := m.Tracking(); !ok {
		t.Fatal("expected session to survive cursor leave")
	}
	if len(g.modes) != 1 {
		t.Fatalf("expected a single grab request, got %v", g.modes)
	}
}

func TestMouseLookReleaseKeepsTracking(t *testing.T) {
	g, o := &fakeGrabber{}, &fakeOrienter{}
	m := NewMouseLook(g, o)
	m.CursorEntered(input.PrimaryPointer)
	m.CursorMoved(input.PrimaryPointer, 100, 100)

	m.Release()
	if len(g.modes) != 2 || g.modes[1] != input.CursorGrabNone {
		t.Fatalf("expected release to free the cursor, got %v", g.modes)
	}
	if _, ok := m.Tracking(); !ok {
		t.Fatal("expected device still tracked after release")
	}

	delta, ok := m.CursorMoved(input.PrimaryPointer, 130, 100)
	if !ok || delta.Yaw != -30 || o.dir.Yaw != -30 {
		t.Fatalf("expected yaw -30 after release, got delta %v orientation %v", delta, o.dir)
	}

	m.CursorEntered(input.PrimaryPointer)
	if len(g.modes) != 2 {
		t.Fatalf("expected no re-confine on re-entry, got %v", g.modes)
	}
}

func TestMouseLookReleaseEndsSessionOption(t *testing.T) {
	g, o := &fakeGrabber{}, &fakeOrienter{}
	m := NewMouseLook(g, o, WithReleaseEndsSession(true))
	m.CursorEntered(input.PrimaryPointer)
	m.CursorMoved(input.PrimaryPointer, 10, 10)

	m.Release()
	if _, ok := m.Tracking(); ok {
		t.Fatal("expected no tracked device after release")
	}
	if _, ok := m.CursorMoved(input.PrimaryPointer, 50, 50); ok {
		t.Fatal("expected motion ignored without a session")
	}

	m.CursorEntered(input.PrimaryPointer)
	delta, ok := m.CursorMoved(input.PrimaryPointer, 90, 90)
	if !ok || delta != (Euler{}) {
		t.Fatalf("expected fresh session with zero first delta, got %v %v", delta, ok)
	}
	if len(g.modes) != 3 || g.modes[2] != input.CursorGrabConfined {
		t.Fatalf("expected re-confine on re-entry, got %v", g.modes)
	}
}

func TestMouseLookGrabFailureStillTracks(t *testing.T) {
	m := NewMouseLook(&fakeGrabber{err: errors.New("unsupported")}, &fakeOrienter{})
	m.CursorEntered(input.PrimaryPointer)
	if _, ok := m.Tracking(); !ok {
		t.Fatal("expected tracking despite grab failure")
	}
}

func TestMouseLookPitchLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit float32
		start float32
		dy    float64
		want  float32
	}{
		{"clamps looking down", 89, 85, 10, 89},
		{"clamps looking up", 89, -80, -20, -89},
		{"passes within range", 89, 0, 30, 30},
		{"disabled", 0, 85, 10, 95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &fakeOrienter{dir: Euler{Pitch: tt.start}}
			m := NewMouseLook(nil, o, WithPitchLimit(tt.limit))
			m.CursorEntered(input.PrimaryPointer)
			m.CursorMoved(input.PrimaryPointer, 0, 0)
			m.CursorMoved(input.PrimaryPointer, 0, tt.dy)
			if !near(o.dir.Pitch, tt.want) {
				t.Fatalf("expected pitch %v, got %v", tt.want, o.dir.Pitch)
			}
		})
	}
}
