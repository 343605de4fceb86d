package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/scene"
)

// candelaScale turns point light intensity over squared distance into a
// 0..1 contribution for the wireframe.
const candelaScale = 0.5

// Brightness is the light reaching point: ambient plus an inverse-square
// point light term, capped at 1.
func Brightness(ambient scene.Ambient, light scene.PointLight, lightPos, point mgl32.Vec3) float32 {
	d := lightPos.Sub(point)
	d2 := d.Dot(d)
	direct := float32(1)
	if d2 > 0 {
		direct = light.Intensity / (4 * math.Pi * d2) * candelaScale
	}
	return mgl32.Clamp(ambient.Brightness+direct, ambient.Brightness, 1)
}

// Shade scales a linear base colour by brightness.
func Shade(base mgl32.Vec3, brightness float32) color.RGBA {
	c := base.Mul(brightness)
	return color.RGBA{
		R: channel(c.X()),
		G: channel(c.Y()),
		B: channel(c.Z()),
		A: 0xff,
	}
}

func channel(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}
