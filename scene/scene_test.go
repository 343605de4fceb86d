package scene_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/geom"
	"github.com/plus3/orbitview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func setup(t *testing.T) (*ecs.Storage, *scene.Registry) {
	t.Helper()
	storage := ecs.NewStorage()
	reg, err := scene.Setup(storage, scene.Default())
	require.NoError(t, err)
	return storage, reg
}

func TestSetupSpawnsFourEntities(t *testing.T) {
	storage, reg := setup(t)

	assert.Equal(t, 4, storage.Len())
	assert.Equal(t, scene.IsCamera, storage.Tags(reg.Camera))
	assert.Equal(t, scene.Rotator, storage.Tags(reg.OrbitLight))
	assert.Equal(t, scene.RotatorN, storage.Tags(reg.SelfSpinProp))
	assert.Equal(t, ecs.Tag(0), storage.Tags(reg.Ground))
}

func TestExactlyOneCamera(t *testing.T) {
	storage, reg := setup(t)

	id, _, err := storage.Single(scene.IsCamera)
	require.NoError(t, err)
	assert.Equal(t, reg.Camera, id)

	t.Run("second setup is rejected", func(t *testing.T) {
		_, err := scene.Setup(storage, scene.Default())
		assert.ErrorIs(t, err, scene.ErrAlreadySetup)
		assert.Equal(t, 4, storage.Len())
	})
}

func TestInitialTransforms(t *testing.T) {
	_, reg := setup(t)

	t.Run("camera looks at origin", func(t *testing.T) {
		cam := reg.CameraTransform()
		assert.Equal(t, mgl32.Vec3{-1, 2.5, 5}, cam.Translation)
		want := geom.Origin.Sub(cam.Translation).Normalize()
		assert.True(t, cam.Forward().ApproxEqualThreshold(want, eps))
	})

	t.Run("light", func(t *testing.T) {
		light := reg.LightTransform()
		assert.Equal(t, mgl32.Vec3{4, 8, 4}, light.Translation)
		assert.Equal(t, mgl32.QuatIdent(), light.Rotation)
	})

	t.Run("capsule tilted about X", func(t *testing.T) {
		prop := reg.PropTransform()
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, prop.Translation)
		assert.True(t, prop.Rotation.OrientationEqualThreshold(mgl32.QuatRotate(-math.Pi/4, geom.AxisX), eps))
	})

	t.Run("ground at origin", func(t *testing.T) {
		assert.Equal(t, geom.Identity(), *reg.GroundTransform())
	})
}

func TestDefaultDescription(t *testing.T) {
	d := scene.Default()

	assert.Equal(t, float32(5), d.Ground.Size)
	assert.Equal(t, mgl32.Vec3{0.3, 0.5, 0.3}, d.Ground.Color)
	assert.Equal(t, float32(0.5), d.Prop.Radius)
	assert.Equal(t, float32(1), d.Prop.Depth)
	assert.Equal(t, float32(1500), d.Light.Intensity)
	assert.True(t, d.Light.Shadows)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, d.Ambient.Color)
	assert.Equal(t, float32(0.2), d.Ambient.Brightness)
}

func TestRoleIterators(t *testing.T) {
	_, reg := setup(t)

	var rotators []*geom.Transform
	for tr := range reg.Rotators() {
		rotators = append(rotators, tr)
	}
	require.Len(t, rotators, 1)
	assert.Same(t, reg.LightTransform(), rotators[0])

	var tumblers []*geom.Transform
	for tr := range reg.RotatorNs() {
		tumblers = append(tumblers, tr)
	}
	require.Len(t, tumblers, 1)
	assert.Same(t, reg.PropTransform(), tumblers[0])
}

func TestTagNames(t *testing.T) {
	assert.Equal(t, "camera", scene.IsCamera.String())
	assert.Equal(t, "rotator", scene.Rotator.String())
	assert.Equal(t, "rotator_n", scene.RotatorN.String())
}
