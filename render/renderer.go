package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/orbitview/scene"
)

var (
	background = color.RGBA{0x10, 0x12, 0x16, 0xff}
	lightColor = color.RGBA{0xff, 0xf2, 0xc0, 0xff}
)

// Renderer draws the scene from the registry's camera. Meshes are built once
// in local space and moved by each entity's transform per frame.
type Renderer struct {
	registry  *scene.Registry
	projector Projector

	ground  []Segment
	capsule []Segment
}

func NewRenderer(registry *scene.Registry, projector Projector) *Renderer {
	desc := registry.Description()
	return &Renderer{
		registry:  registry,
		projector: projector,
		ground:    Grid(desc.Ground, 10),
		capsule:   CapsuleWire(desc.Prop, 4, 12),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	bounds := screen.Bounds()
	cam := NewCamera(*r.registry.CameraTransform(), bounds.Dx(), bounds.Dy(), r.projector)
	desc := r.registry.Description()
	lightPos := r.registry.LightTransform().Translation

	r.drawSegments(screen, cam, Transform(r.ground, r.registry.GroundTransform().Matrix()), desc.Ground.Color, lightPos)
	r.drawSegments(screen, cam, Transform(r.capsule, r.registry.PropTransform().Matrix()), desc.Prop.Color, lightPos)

	if p, ok := cam.Project(lightPos); ok {
		vector.DrawFilledCircle(screen, p.X(), p.Y(), 5, lightColor, true)
	}
}

func (r *Renderer) drawSegments(screen *ebiten.Image, cam Camera, segs []Segment, base mgl32.Vec3, lightPos mgl32.Vec3) {
	desc := r.registry.Description()
	for _, s := range segs {
		a, b, ok := cam.ProjectSegment(s)
		if !ok {
			continue
		}
		mid := s.A.Add(s.B).Mul(0.5)
		c := Shade(base, Brightness(desc.Ambient, desc.Light, lightPos, mid))
		vector.StrokeLine(screen, a.X(), a.Y(), b.X(), b.Y(), 1, c, true)
	}
}
