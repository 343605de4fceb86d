// Package render draws the scene as a shaded wireframe with ebiten.
package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/geom"
)

// Projector holds the perspective parameters.
type Projector struct {
	FovY float32 // radians
	Near float32
	Far  float32
}

func DefaultProjector() Projector {
	return Projector{
		FovY: mgl32.DegToRad(45),
		Near: 0.1,
		Far:  1000,
	}
}

// Camera maps world positions to screen pixels for one frame.
type Camera struct {
	viewProj      mgl32.Mat4
	width, height float32
}

func NewCamera(eye geom.Transform, width, height int, p Projector) Camera {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	proj := mgl32.Perspective(p.FovY, aspect, p.Near, p.Far)
	return Camera{
		viewProj: proj.Mul4(eye.ViewMatrix()),
		width:    float32(width),
		height:   float32(height),
	}
}

// Project returns the pixel position of world and whether it lies in front
// of the camera within the depth range.
func (c Camera) Project(world mgl32.Vec3) (mgl32.Vec2, bool) {
	clip := c.viewProj.Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * c.width,
		(1 - ndc.Y()) / 2 * c.height,
	}, true
}

// ProjectSegment projects both ends of s. Segments with either end behind the
// camera are dropped rather than clipped.
func (c Camera) ProjectSegment(s Segment) (a, b mgl32.Vec2, ok bool) {
	a, okA := c.Project(s.A)
	b, okB := c.Project(s.B)
	return a, b, okA && okB
}
