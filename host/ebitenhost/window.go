// Package ebitenhost runs the viewer in an ebiten window: it samples input,
// drives the scheduler once per tick and draws the scene with its overlays.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/orbitview/window"
)

// Window is the primary ebiten window's cursor.
type Window struct {
	grab    window.CursorGrabMode
	visible bool
	apply   func(ebiten.CursorModeType)
}

// NewWindow configures the ebiten window from desc.
func NewWindow(desc window.Descriptor) *Window {
	ebiten.SetWindowTitle(desc.Title)
	ebiten.SetWindowSize(desc.Width, desc.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return &Window{
		grab:    window.GrabNone,
		visible: true,
		apply:   ebiten.SetCursorMode,
	}
}

func (w *Window) SetCursorGrabMode(mode window.CursorGrabMode) {
	w.grab = mode
	w.apply(cursorMode(w.grab, w.visible))
}

func (w *Window) SetCursorVisible(visible bool) {
	w.visible = visible
	w.apply(cursorMode(w.grab, w.visible))
}

// Primary returns the window itself; ebiten has exactly one.
func (w *Window) Primary() (window.Cursor, bool) {
	return w, true
}

// cursorMode maps grab and visibility onto ebiten's cursor modes. Ebiten can
// only hold the pointer while hiding it, so a grabbed visible cursor stays free.
func cursorMode(grab window.CursorGrabMode, visible bool) ebiten.CursorModeType {
	switch {
	case visible:
		return ebiten.CursorModeVisible
	case grab == window.GrabNone:
		return ebiten.CursorModeHidden
	default:
		return ebiten.CursorModeCaptured
	}
}
