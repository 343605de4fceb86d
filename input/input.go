// Package input holds the per-frame input snapshot the host fills in and the
// systems read: button edges, held state and buffered pointer motion.
package input

// MouseButton identifies a pointer button.
type MouseButton int

const (
	// MouseLeft is the primary button: cursor capture and orbit.
	MouseLeft MouseButton = iota
	// MouseRight is the secondary button: pan.
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Key identifies a keyboard key. Only the keys the viewer reacts to are named.
type Key int

const (
	// KeyEscape releases the cursor.
	KeyEscape Key = iota
	// KeyQ quits the windowed host.
	KeyQ
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyQ:
		return "q"
	default:
		return "unknown"
	}
}

// State is everything the host observed since the previous frame.
type State struct {
	Mouse  *ButtonInput[MouseButton]
	Keys   *ButtonInput[Key]
	Motion *MotionQueue
}

// NewState returns an empty input state.
func NewState() *State {
	return &State{
		Mouse:  NewButtonInput[MouseButton](),
		Keys:   NewButtonInput[Key](),
		Motion: &MotionQueue{},
	}
}

// Advance ends the frame: edges are cleared and unread motion is discarded.
// Held state carries over.
func (s *State) Advance() {
	s.Mouse.Advance()
	s.Keys.Advance()
	s.Motion.Clear()
}
