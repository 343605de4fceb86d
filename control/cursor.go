package control

import (
	"fmt"

	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/input"
	"github.com/plus3/orbitview/window"
)

// CursorState is whether the viewer currently holds the pointer.
type CursorState int

const (
	CursorFree CursorState = iota
	CursorCaptured
)

func (s CursorState) String() string {
	switch s {
	case CursorFree:
		return "free"
	case CursorCaptured:
		return "captured"
	default:
		return fmt.Sprintf("CursorState(%d)", int(s))
	}
}

// CursorCaptureSystem confines and hides the cursor when the capture button
// goes down and releases it when the cancel key goes down. Only edges count;
// holding either input does nothing after the first frame.
type CursorCaptureSystem struct {
	CaptureButton input.MouseButton
	CancelKey     input.Key

	cursor window.Cursor
	state  CursorState
}

// NewCursorCaptureSystem binds the system to the primary window's cursor. The
// window starts with a free cursor.
func NewCursorCaptureSystem(p window.Provider) (*CursorCaptureSystem, error) {
	cursor, err := window.PrimaryCursor(p)
	if err != nil {
		return nil, fmt.Errorf("cursor capture: %w", err)
	}
	return &CursorCaptureSystem{
		CaptureButton: input.MouseLeft,
		CancelKey:     input.KeyEscape,
		cursor:        cursor,
		state:         CursorFree,
	}, nil
}

// State returns the current cursor state.
func (s *CursorCaptureSystem) State() CursorState {
	return s.state
}

// Execute applies this frame's capture edge, then its cancel edge.
func (s *CursorCaptureSystem) Execute(frame *ecs.UpdateFrame) {
	if s.cursor == nil {
		panic(window.ErrNoPrimaryWindow)
	}

	if frame.Input.Mouse.JustPressed(s.CaptureButton) {
		s.capture()
	}
	if frame.Input.Keys.JustPressed(s.CancelKey) {
		s.release()
	}
}

func (s *CursorCaptureSystem) capture() {
	if s.state == CursorCaptured {
		return
	}
	s.cursor.SetCursorGrabMode(window.GrabConfined)
	s.cursor.SetCursorVisible(false)
	s.state = CursorCaptured
}

func (s *CursorCaptureSystem) release() {
	if s.state == CursorFree {
		return
	}
	s.cursor.SetCursorGrabMode(window.GrabNone)
	s.cursor.SetCursorVisible(true)
	s.state = CursorFree
}
