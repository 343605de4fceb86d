package render

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/plus3/orbitview/geom"
	"golang.org/x/image/font/basicfont"
)

// Status is what the HUD reports each frame.
type Status struct {
	Cursor string
	Policy string
	Camera geom.Transform
	TPS    float64
	FPS    float64
}

// Lines formats the status for display.
func (s Status) Lines() []string {
	yaw, pitch, _ := s.Camera.YawPitchRoll()
	pos := s.Camera.Translation
	return []string{
		fmt.Sprintf("cursor %s  drain %s", s.Cursor, s.Policy),
		fmt.Sprintf("camera (%.2f, %.2f, %.2f) yaw %.1f pitch %.1f", pos.X(), pos.Y(), pos.Z(),
			mgl32.RadToDeg(yaw), mgl32.RadToDeg(pitch)),
		fmt.Sprintf("tps %.0f fps %.0f", s.TPS, s.FPS),
		"left drag: orbit  right drag: pan  esc: release",
	}
}

type HUD struct {
	face *text.GoXFace
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, status Status) {
	for i, line := range status.Lines() {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(8, float64(8+i*15))
		opts.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, h.face, opts)
	}
}
