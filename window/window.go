// Package window describes the primary window and the cursor capability the
// viewer needs from it. Hosts implement Cursor and Provider.
package window

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoPrimaryWindow is returned when the host has no primary window.
var ErrNoPrimaryWindow = errors.New("no primary window")

// CursorGrabMode controls how the pointer is held by the window.
type CursorGrabMode int

const (
	// GrabNone leaves the pointer free to leave the window.
	GrabNone CursorGrabMode = iota
	// GrabConfined keeps the pointer inside the window.
	GrabConfined
	// GrabLocked pins the pointer in place and reports only motion.
	GrabLocked
)

func (m CursorGrabMode) String() string {
	switch m {
	case GrabNone:
		return "none"
	case GrabConfined:
		return "confined"
	case GrabLocked:
		return "locked"
	default:
		return fmt.Sprintf("CursorGrabMode(%d)", int(m))
	}
}

// Cursor is the cursor capability of a window.
type Cursor interface {
	SetCursorGrabMode(mode CursorGrabMode)
	SetCursorVisible(visible bool)
}

// Provider hands out the primary window, if there is one.
type Provider interface {
	Primary() (Cursor, bool)
}

// PrimaryCursor resolves the primary window's cursor. A provider that reports
// a nil cursor, including a typed nil pointer, has no primary window.
func PrimaryCursor(p Provider) (Cursor, error) {
	if isNil(p) {
		return nil, ErrNoPrimaryWindow
	}
	c, ok := p.Primary()
	if !ok || isNil(c) {
		return nil, ErrNoPrimaryWindow
	}
	return c, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Descriptor is what a host needs to open the primary window.
type Descriptor struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DefaultDescriptor returns the viewer's window settings.
func DefaultDescriptor() Descriptor {
	return Descriptor{
		Title:  "3D Viewer",
		Width:  1280,
		Height: 720,
	}
}
