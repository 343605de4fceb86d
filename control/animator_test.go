package control_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/control"
	"github.com/plus3/orbitview/geom"
	"github.com/stretchr/testify/assert"
)

func runFrames(r *rig, dts ...float64) {
	for _, dt := range dts {
		r.scheduler.Once(dt)
	}
}

func TestRotatorScenario(t *testing.T) {
	r := newRig(t, control.DrainExclusive)
	light := r.registry.LightTransform()
	start := *light

	runFrames(r, 0.1, 0.2, 0.05)

	// Self-yaw of 0.35 composed with 0.35 of orbit about the origin.
	want := start
	want.RotateLocalY(0.35)
	want.RotateAround(geom.Origin, mgl32.QuatRotate(0.35, geom.AxisY))

	assert.True(t, light.Translation.ApproxEqualThreshold(want.Translation, eps), "got %v want %v", light.Translation, want.Translation)
	assert.True(t, light.Rotation.OrientationEqualThreshold(want.Rotation, eps))

	t.Run("orbit moves the light about the origin", func(t *testing.T) {
		wantPos := mgl32.QuatRotate(0.35, geom.AxisY).Rotate(start.Translation)
		assert.True(t, light.Translation.ApproxEqualThreshold(wantPos, eps))
		assert.InDelta(t, start.Translation.Y(), light.Translation.Y(), eps)
	})

	t.Run("self yaw is the total time", func(t *testing.T) {
		orbit := mgl32.QuatRotate(0.35, geom.AxisY)
		self := orbit.Inverse().Mul(light.Rotation)
		assert.True(t, self.OrientationEqualThreshold(mgl32.QuatRotate(0.35, geom.AxisY), eps))
	})
}

func TestRotatorTimeStepIndependence(t *testing.T) {
	steps := [][]float64{
		{1.2},
		{0.6, 0.6},
		{0.1, 0.2, 0.3, 0.4, 0.2},
		repeat(0.001, 1200),
	}

	var first [2]mgl32.Quat
	var firstPos mgl32.Vec3
	for i, dts := range steps {
		r := newRig(t, control.DrainExclusive)
		runFrames(r, dts...)

		light := r.registry.LightTransform()
		prop := r.registry.PropTransform()
		if i == 0 {
			first = [2]mgl32.Quat{light.Rotation, prop.Rotation}
			firstPos = light.Translation
			continue
		}
		assert.True(t, light.Rotation.OrientationEqualThreshold(first[0], 1e-4), "schedule %d", i)
		assert.True(t, prop.Rotation.OrientationEqualThreshold(first[1], 1e-4), "schedule %d", i)
		assert.True(t, light.Translation.ApproxEqualThreshold(firstPos, 1e-3), "schedule %d", i)
	}
}

func TestRotatorNTumblesAboutLocalX(t *testing.T) {
	r := newRig(t, control.DrainExclusive)
	prop := r.registry.PropTransform()
	initial := *prop

	dts := []float64{0.016, 0.033, 0.5, 0.25, 0.1}
	var total float64
	for _, dt := range dts {
		total += dt
	}
	runFrames(r, dts...)

	want := initial.Rotation.Mul(mgl32.QuatRotate(float32(total/1.5), geom.AxisX))
	assert.True(t, prop.Rotation.OrientationEqualThreshold(want, eps), "got %v want %v", prop.Rotation, want)
	assert.Equal(t, initial.Translation, prop.Translation, "tumbling does not move the prop")
}

func TestAnimatorLeavesCameraAndGround(t *testing.T) {
	r := newRig(t, control.DrainExclusive)
	cam := *r.registry.CameraTransform()
	ground := *r.registry.GroundTransform()

	runFrames(r, 0.5, 0.5, 0.5)

	assert.Equal(t, cam, *r.registry.CameraTransform())
	assert.Equal(t, ground, *r.registry.GroundTransform())
}

func TestAnimatorZeroDelta(t *testing.T) {
	r := newRig(t, control.DrainExclusive)
	light := *r.registry.LightTransform()

	runFrames(r, 0, 0, 0)

	assert.True(t, r.registry.LightTransform().Translation.ApproxEqualThreshold(light.Translation, eps))
	assert.True(t, r.registry.LightTransform().Rotation.OrientationEqualThreshold(light.Rotation, eps))
}

func TestAnimatorLongRunStaysUnit(t *testing.T) {
	r := newRig(t, control.DrainExclusive)
	for i := 0; i < 20000; i++ {
		r.scheduler.Once(1.0 / 60)
	}

	assert.InDelta(t, 1.0, r.registry.LightTransform().Rotation.Len(), 1e-4)
	assert.InDelta(t, 1.0, r.registry.PropTransform().Rotation.Len(), 1e-4)
	assert.InDelta(t, math.Sqrt(4*4+4*4), math.Hypot(
		float64(r.registry.LightTransform().Translation.X()),
		float64(r.registry.LightTransform().Translation.Z())), 1e-2)
}

func TestAnimationRates(t *testing.T) {
	r := newRig(t, control.DrainExclusive)
	fast := control.NewRotationAnimatorSystem(r.registry, control.AnimationConfig{
		SpinRate:      2,
		OrbitRate:     0,
		TumbleDivisor: 1,
	})
	light := r.registry.LightTransform()
	start := *light

	fast.Execute(frameWith(r, 0.25))

	assert.True(t, light.Translation.ApproxEqualThreshold(start.Translation, eps))
	assert.True(t, light.Rotation.OrientationEqualThreshold(mgl32.QuatRotate(0.5, geom.AxisY), eps))
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
