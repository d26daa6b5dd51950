package window

import (
	"github.com/Carmen-Shannon/oxy-view/engine/input"
)

// EventQueue buffers events produced by platform callbacks until the next poll.
// The zero value is ready to use.
type EventQueue struct {
	events []input.Event
	redraw bool
}

// Push appends an event to the queue.
func (q *EventQueue) Push(ev input.Event) {
	q.events = append(q.events, ev)
}

// RequestRedraw marks a redraw as pending. Multiple requests collapse into one event.
func (q *EventQueue) RequestRedraw() {
	q.redraw = true
}

// Len returns the number of queued events, not counting a pending redraw.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns every queued event followed by a pending redraw, then empties the queue.
//
// Returns:
//   - []input.Event: the drained events, nil when nothing was queued
func (q *EventQueue) Drain() []input.Event {
	if q.redraw {
		q.events = append(q.events, input.Event{Type: input.EventRedrawRequested})
		q.redraw = false
	}
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
