package input

import "github.com/go-gl/mathgl/mgl32"

// MotionEvent is one pointer movement in screen-space units.
type MotionEvent struct {
	Delta mgl32.Vec2
}

// MotionQueue buffers pointer motion in arrival order until a reader drains it.
type MotionQueue struct {
	events []MotionEvent
}

// Push appends a motion delta.
func (q *MotionQueue) Push(dx, dy float32) {
	q.events = append(q.events, MotionEvent{Delta: mgl32.Vec2{dx, dy}})
}

// Len returns the number of buffered events.
func (q *MotionQueue) Len() int {
	return len(q.events)
}

// Drain returns the buffered events and empties the queue. A second Drain in
// the same frame returns nothing.
func (q *MotionQueue) Drain() []MotionEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Snapshot returns a copy of the buffered events without consuming them.
func (q *MotionQueue) Snapshot() []MotionEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]MotionEvent, len(q.events))
	copy(out, q.events)
	return out
}

// Clear discards all buffered events.
func (q *MotionQueue) Clear() {
	q.events = q.events[:0]
}
