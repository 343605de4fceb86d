package window

// Call is one cursor operation seen by a Recorder.
type Call struct {
	Grab    *CursorGrabMode
	Visible *bool
}

// Recorder is a Cursor and Provider that keeps the current cursor state and
// every call made to it. It backs the headless mode and tests.
type Recorder struct {
	Grab    CursorGrabMode
	Visible bool
	Calls   []Call
}

// NewRecorder returns a Recorder in the state a freshly opened window has:
// cursor free and visible.
func NewRecorder() *Recorder {
	return &Recorder{Grab: GrabNone, Visible: true}
}

func (r *Recorder) SetCursorGrabMode(mode CursorGrabMode) {
	r.Grab = mode
	r.Calls = append(r.Calls, Call{Grab: &mode})
}

func (r *Recorder) SetCursorVisible(visible bool) {
	r.Visible = visible
	r.Calls = append(r.Calls, Call{Visible: &visible})
}

// Primary returns the recorder itself.
func (r *Recorder) Primary() (Cursor, bool) {
	return r, true
}

// NoWindow is a Provider without a primary window.
type NoWindow struct{}

func (NoWindow) Primary() (Cursor, bool) {
	return nil, false
}
