package geom_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/geom"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func TestIdentity(t *testing.T) {
	tr := geom.Identity()

	assert.Equal(t, mgl32.Vec3{}, tr.Translation)
	assert.Equal(t, mgl32.QuatIdent(), tr.Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
}

func TestFromXYZ(t *testing.T) {
	tr := geom.FromXYZ(4, 8, 4)

	assert.Equal(t, mgl32.Vec3{4, 8, 4}, tr.Translation)
	assert.Equal(t, mgl32.QuatIdent(), tr.Rotation)
}

func TestLookingAt(t *testing.T) {
	t.Run("forward points at target", func(t *testing.T) {
		tr := geom.FromXYZ(-1, 2.5, 5).LookingAt(geom.Origin, geom.AxisY)

		want := geom.Origin.Sub(tr.Translation).Normalize()
		assert.True(t, tr.Forward().ApproxEqualThreshold(want, eps), "forward %v, want %v", tr.Forward(), want)
		assert.InDelta(t, 1.0, tr.Rotation.Len(), eps)
	})

	t.Run("right axis stays horizontal", func(t *testing.T) {
		tr := geom.FromXYZ(-1, 2.5, 5).LookingAt(geom.Origin, geom.AxisY)
		assert.InDelta(t, 0.0, tr.Right().Y(), eps)
		assert.Greater(t, tr.Up().Y(), float32(0))
	})

	t.Run("degenerate target keeps rotation", func(t *testing.T) {
		tr := geom.FromXYZ(1, 1, 1)
		assert.Equal(t, tr, tr.LookingAt(mgl32.Vec3{1, 1, 1}, geom.AxisY))
	})

	t.Run("up parallel to view keeps rotation", func(t *testing.T) {
		tr := geom.FromXYZ(0, 5, 0)
		assert.Equal(t, tr, tr.LookingAt(geom.Origin, geom.AxisY))
	})
}

func TestRotateAround(t *testing.T) {
	tr := geom.FromXYZ(1, 0, 0)
	tr.RotateAround(geom.Origin, mgl32.QuatRotate(math.Pi/2, geom.AxisY))

	assert.True(t, tr.Translation.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps), "got %v", tr.Translation)
	assert.True(t, tr.Rotation.OrientationEqualThreshold(mgl32.QuatRotate(math.Pi/2, geom.AxisY), eps))

	t.Run("about an arbitrary pivot", func(t *testing.T) {
		tr := geom.FromXYZ(2, 1, 0)
		tr.RotateAround(mgl32.Vec3{1, 1, 0}, mgl32.QuatRotate(math.Pi, geom.AxisY))
		assert.True(t, tr.Translation.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, eps), "got %v", tr.Translation)
	})
}

func TestLocalVersusWorldRotation(t *testing.T) {
	tilt := mgl32.QuatRotate(-math.Pi/4, geom.AxisX)

	local := geom.Identity().WithRotation(tilt)
	local.RotateLocalY(0.5)

	world := geom.Identity().WithRotation(tilt)
	world.RotateY(0.5)

	assert.True(t, local.Rotation.OrientationEqualThreshold(tilt.Mul(mgl32.QuatRotate(0.5, geom.AxisY)), eps))
	assert.True(t, world.Rotation.OrientationEqualThreshold(mgl32.QuatRotate(0.5, geom.AxisY).Mul(tilt), eps))
	assert.False(t, local.Rotation.OrientationEqualThreshold(world.Rotation, eps))

	t.Run("same axis commutes", func(t *testing.T) {
		a := geom.Identity().WithRotation(tilt)
		a.RotateLocalX(0.3)
		b := geom.Identity().WithRotation(tilt)
		b.RotateX(0.3)
		assert.True(t, a.Rotation.OrientationEqualThreshold(b.Rotation, eps))
	})
}

func TestRotationStaysUnitLength(t *testing.T) {
	tr := geom.FromXYZ(4, 8, 4)
	for i := 0; i < 100000; i++ {
		tr.RotateLocalY(0.016)
		tr.RotateAround(geom.Origin, mgl32.QuatRotate(0.016, geom.AxisY))
		tr.RotateLocalX(0.011)
	}

	assert.InDelta(t, 1.0, tr.Rotation.Len(), 1e-4)
}

func TestTranslate(t *testing.T) {
	tr := geom.FromXYZ(-1, 2.5, 5)
	tr.Translate(mgl32.Vec3{5, -1, 0})

	assert.Equal(t, mgl32.Vec3{4, 1.5, 5}, tr.Translation)
}

func TestViewMatrixInvertsMatrix(t *testing.T) {
	tr := geom.FromXYZ(-1, 2.5, 5).LookingAt(geom.Origin, geom.AxisY)

	product := tr.ViewMatrix().Mul4(tr.Matrix())
	assert.True(t, product.ApproxEqualThreshold(mgl32.Ident4(), 1e-4), "got %v", product)
}

func TestYawPitchRoll(t *testing.T) {
	tests := []struct {
		name             string
		rotation         mgl32.Quat
		yaw, pitch, roll float32
	}{
		{"identity", mgl32.QuatIdent(), 0, 0, 0},
		{"yaw", mgl32.QuatRotate(0.7, geom.AxisY), 0.7, 0, 0},
		{"pitch", mgl32.QuatRotate(-math.Pi/4, geom.AxisX), 0, -math.Pi / 4, 0},
		{"roll", mgl32.QuatRotate(0.3, geom.AxisZ), 0, 0, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw, pitch, roll := geom.Identity().WithRotation(tt.rotation).YawPitchRoll()
			assert.InDelta(t, tt.yaw, yaw, eps)
			assert.InDelta(t, tt.pitch, pitch, eps)
			assert.InDelta(t, tt.roll, roll, eps)
		})
	}
}
