package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/orbitview/input"
)

var mouseButtons = map[input.MouseButton]ebiten.MouseButton{
	input.MouseLeft:   ebiten.MouseButtonLeft,
	input.MouseRight:  ebiten.MouseButtonRight,
	input.MouseMiddle: ebiten.MouseButtonMiddle,
}

var keys = map[input.Key]ebiten.Key{
	input.KeyEscape: ebiten.KeyEscape,
	input.KeyQ:      ebiten.KeyQ,
}

// motionTracker turns absolute cursor readings into deltas.
type motionTracker struct {
	x, y    int
	started bool
}

// Delta returns the movement since the previous reading. The first reading
// only establishes the origin.
func (m *motionTracker) Delta(x, y int) (dx, dy int, moved bool) {
	if !m.started {
		m.x, m.y, m.started = x, y, true
		return 0, 0, false
	}
	dx, dy = x-m.x, y-m.y
	m.x, m.y = x, y
	return dx, dy, dx != 0 || dy != 0
}

// Reset forgets the last reading, e.g. after the overlay held the pointer.
func (m *motionTracker) Reset() {
	m.started = false
}

type sampler struct {
	motion motionTracker
}

// Sample copies this tick's ebiten input into in. With pointer false the
// mouse is treated as released and its motion is not forwarded.
func (s *sampler) Sample(in *input.State, pointer bool) {
	for k, ek := range keys {
		if inpututil.IsKeyJustPressed(ek) {
			in.Keys.Press(k)
		}
		if inpututil.IsKeyJustReleased(ek) {
			in.Keys.Release(k)
		}
	}

	if !pointer {
		in.Mouse.ReleaseAll()
		s.motion.Reset()
		return
	}

	for b, eb := range mouseButtons {
		syncButton(in.Mouse, b,
			inpututil.IsMouseButtonJustPressed(eb),
			inpututil.IsMouseButtonJustReleased(eb),
			ebiten.IsMouseButtonPressed(eb))
	}

	if dx, dy, moved := s.motion.Delta(ebiten.CursorPosition()); moved {
		in.Motion.Push(float32(dx), float32(dy))
	}
}

// syncButton applies one device reading to buttons. A press is only taken
// from a device edge, so a button already down when forwarding resumes stays
// released until it is pressed again. A button the device reports up is
// released even if its release edge was missed.
func syncButton[T comparable](buttons *input.ButtonInput[T], b T, justPressed, justReleased, down bool) {
	switch {
	case justPressed:
		buttons.Press(b)
	case justReleased || !down:
		buttons.Release(b)
	}
}

// frameTimer measures the wall time between ticks.
type frameTimer struct {
	last time.Time
	now  func() time.Time
}

func newFrameTimer() *frameTimer {
	return &frameTimer{last: time.Now(), now: time.Now}
}

// DeltaTime returns the seconds since the previous call.
func (ft *frameTimer) DeltaTime() float64 {
	now := ft.now()
	delta := now.Sub(ft.last).Seconds()
	ft.last = now
	return delta
}
