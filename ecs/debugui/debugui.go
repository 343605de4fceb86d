// Package debugui provides an immediate-mode overlay for the viewer using
// Dear ImGui. Panels are queued as deferred commands so they draw after every
// system has updated the scene for the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/orbitview/ecs"
)

// Panel renders one ImGui window.
type Panel interface {
	Render(frame *ecs.UpdateFrame)
}

// PanelFunc adapts a function to Panel.
type PanelFunc func(frame *ecs.UpdateFrame)

func (f PanelFunc) Render(frame *ecs.UpdateFrame) { f(frame) }

// InputState tracks whether ImGui is consuming mouse or keyboard input. Hosts
// check it before forwarding pointer input to the scene.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

func currentInputState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// OverlaySystem updates the input capture state and defers every panel's
// render function.
type OverlaySystem struct {
	// Capture reads ImGui's capture flags. Defaults to the live ImGui context.
	Capture func() InputState

	panels []Panel
	state  InputState
}

func NewOverlaySystem(panels ...Panel) *OverlaySystem {
	return &OverlaySystem{
		Capture: currentInputState,
		panels:  panels,
	}
}

// Add appends a panel. Panels draw in the order they were added.
func (o *OverlaySystem) Add(panel Panel) {
	o.panels = append(o.panels, panel)
}

// InputState returns the capture flags read during the last Execute.
func (o *OverlaySystem) InputState() InputState {
	return o.state
}

func (o *OverlaySystem) Execute(frame *ecs.UpdateFrame) {
	if o.Capture != nil {
		o.state = o.Capture()
	}

	for _, panel := range o.panels {
		frame.Commands.Defer(func() {
			panel.Render(frame)
		})
	}
}
