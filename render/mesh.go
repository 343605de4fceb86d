package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/scene"
)

// Segment is a line between two points.
type Segment struct {
	A, B mgl32.Vec3
}

// Transform returns segs moved by m.
func Transform(segs []Segment, m mgl32.Mat4) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = Segment{
			A: mgl32.TransformCoordinate(s.A, m),
			B: mgl32.TransformCoordinate(s.B, m),
		}
	}
	return out
}

// Grid covers the plane with divisions cells along each side.
func Grid(p scene.Plane, divisions int) []Segment {
	if divisions < 1 {
		divisions = 1
	}
	half := p.Size / 2
	step := p.Size / float32(divisions)

	segs := make([]Segment, 0, 2*(divisions+1))
	for i := 0; i <= divisions; i++ {
		o := -half + float32(i)*step
		segs = append(segs,
			Segment{A: mgl32.Vec3{o, 0, -half}, B: mgl32.Vec3{o, 0, half}},
			Segment{A: mgl32.Vec3{-half, 0, o}, B: mgl32.Vec3{half, 0, o}},
		)
	}
	return segs
}

// CapsuleWire outlines a capsule aligned with local Y: latitude rings every
// rings steps of the profile and sides meridians.
func CapsuleWire(c scene.Capsule, rings, sides int) []Segment {
	if rings < 2 {
		rings = 2
	}
	if sides < 3 {
		sides = 3
	}
	profile := capsuleProfile(c, rings)

	var segs []Segment
	for _, p := range profile {
		if p.X() <= 0 {
			continue
		}
		segs = append(segs, ring(p.X(), p.Y(), sides)...)
	}

	for k := 0; k < sides; k++ {
		phi := 2 * math.Pi * float64(k) / float64(sides)
		cos, sin := float32(math.Cos(phi)), float32(math.Sin(phi))
		for i := 1; i < len(profile); i++ {
			a, b := profile[i-1], profile[i]
			segs = append(segs, Segment{
				A: mgl32.Vec3{a.X() * cos, a.Y(), a.X() * sin},
				B: mgl32.Vec3{b.X() * cos, b.Y(), b.X() * sin},
			})
		}
	}
	return segs
}

// capsuleProfile is the outline in the (radius, height) half plane, from the
// bottom pole to the top pole.
func capsuleProfile(c scene.Capsule, steps int) []mgl32.Vec2 {
	half := c.Depth / 2
	out := make([]mgl32.Vec2, 0, 2*steps+2)
	for i := 0; i <= steps; i++ {
		theta := -math.Pi/2 + (math.Pi/2)*float64(i)/float64(steps)
		out = append(out, mgl32.Vec2{
			c.Radius * float32(math.Cos(theta)),
			-half + c.Radius*float32(math.Sin(theta)),
		})
	}
	for i := 0; i <= steps; i++ {
		theta := (math.Pi / 2) * float64(i) / float64(steps)
		out = append(out, mgl32.Vec2{
			c.Radius * float32(math.Cos(theta)),
			half + c.Radius*float32(math.Sin(theta)),
		})
	}
	return out
}

func ring(radius, y float32, sides int) []Segment {
	segs := make([]Segment, sides)
	for k := range sides {
		a := 2 * math.Pi * float64(k) / float64(sides)
		b := 2 * math.Pi * float64(k+1) / float64(sides)
		segs[k] = Segment{
			A: mgl32.Vec3{radius * float32(math.Cos(a)), y, radius * float32(math.Sin(a))},
			B: mgl32.Vec3{radius * float32(math.Cos(b)), y, radius * float32(math.Sin(b))},
		}
	}
	return segs
}
