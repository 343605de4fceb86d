package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/orbitview/control"
	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/ecs/debugui"
	debugui_ebiten "github.com/plus3/orbitview/ecs/debugui/ebiten"
	"github.com/plus3/orbitview/input"
	"github.com/plus3/orbitview/render"
	"github.com/plus3/orbitview/scene"
)

// Game implements ebiten.Game for the viewer.
type Game struct {
	Scheduler *ecs.Scheduler
	Registry  *scene.Registry
	Renderer  *render.Renderer
	HUD       *render.HUD
	Capture   *control.CursorCaptureSystem
	Gestures  *control.PointerGestureSystem

	// Overlay and Imgui are nil when the debug overlay is disabled.
	Overlay *debugui.OverlaySystem
	Imgui   *debugui_ebiten.ImguiBackend

	sampler sampler
	timer   *frameTimer
}

func (g *Game) Update() error {
	if g.timer == nil {
		g.timer = newFrameTimer()
	}
	dt := g.timer.DeltaTime()

	in := g.Scheduler.Input()
	pointer := g.Overlay == nil || !g.Overlay.InputState().WantCaptureMouse
	g.sampler.Sample(in, pointer)
	if quitRequested(in) {
		return ebiten.Termination
	}

	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}
	g.Scheduler.Once(dt)
	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen)

	if g.HUD != nil {
		status := render.Status{
			Camera: *g.Registry.CameraTransform(),
			TPS:    ebiten.ActualTPS(),
			FPS:    ebiten.ActualFPS(),
		}
		if g.Capture != nil {
			status.Cursor = g.Capture.State().String()
		}
		if g.Gestures != nil {
			status.Policy = g.Gestures.Config().Policy.String()
		}
		g.HUD.Draw(screen, status)
	}

	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// quitRequested reports whether the quit key went down this tick.
func quitRequested(in *input.State) bool {
	return in.Keys.JustPressed(input.KeyQ)
}
