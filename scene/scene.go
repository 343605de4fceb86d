// Package scene declares the viewer's fixed scene: a ground plane, a tilted
// capsule that tumbles, a point light that circles the origin and the camera.
package scene

import (
	"errors"
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/geom"
)

const (
	// IsCamera marks the single viewing camera.
	IsCamera ecs.Tag = 1 << iota
	// Rotator marks entities that spin about their own Y axis and circle the origin.
	Rotator
	// RotatorN marks entities that tumble about their own X axis.
	RotatorN
)

func init() {
	ecs.RegisterTagName(IsCamera, "camera")
	ecs.RegisterTagName(Rotator, "rotator")
	ecs.RegisterTagName(RotatorN, "rotator_n")
}

// ErrAlreadySetup is returned when Setup runs against a storage that already
// holds a camera.
var ErrAlreadySetup = errors.New("scene already set up")

// Plane is a flat square mesh centred on the origin in the XZ plane.
type Plane struct {
	Size  float32
	Color mgl32.Vec3
}

// Capsule is a cylinder of length Depth capped by hemispheres of Radius,
// aligned with its local Y axis.
type Capsule struct {
	Radius float32
	Depth  float32
	Color  mgl32.Vec3
}

// PointLight emits in all directions from its transform's translation.
type PointLight struct {
	Intensity float32
	Shadows   bool
}

// Ambient is the light every surface receives regardless of position.
type Ambient struct {
	Color      mgl32.Vec3
	Brightness float32
}

// Description is everything spawned at startup.
type Description struct {
	Ground          Plane
	GroundTransform geom.Transform
	Prop            Capsule
	PropTransform   geom.Transform
	Light           PointLight
	LightTransform  geom.Transform
	CameraTransform geom.Transform
	Ambient         Ambient
}

// Default returns the viewer's scene.
func Default() Description {
	return Description{
		Ground: Plane{
			Size:  5,
			Color: mgl32.Vec3{0.3, 0.5, 0.3},
		},
		GroundTransform: geom.Identity(),
		Prop: Capsule{
			Radius: 0.5,
			Depth:  1,
			Color:  mgl32.Vec3{0.9, 0.3, 0.3},
		},
		PropTransform: geom.FromXYZ(0, 1, 0).
			WithRotation(mgl32.QuatRotate(-math.Pi/4, geom.AxisX)),
		Light: PointLight{
			Intensity: 1500,
			Shadows:   true,
		},
		LightTransform:  geom.FromXYZ(4, 8, 4),
		CameraTransform: geom.FromXYZ(-1, 2.5, 5).LookingAt(geom.Origin, geom.AxisY),
		Ambient: Ambient{
			Color:      mgl32.Vec3{1, 1, 1},
			Brightness: 0.2,
		},
	}
}

// Registry holds typed handles to the spawned entities, grouped by role.
type Registry struct {
	storage *ecs.Storage
	desc    Description

	Camera       ecs.EntityId
	OrbitLight   ecs.EntityId
	SelfSpinProp ecs.EntityId
	Ground       ecs.EntityId
}

// Setup spawns the described entities into storage. It must run once per
// storage.
func Setup(storage *ecs.Storage, desc Description) (*Registry, error) {
	if _, _, err := storage.Single(IsCamera); !errors.Is(err, ecs.ErrNoEntity) {
		return nil, ErrAlreadySetup
	}

	r := &Registry{storage: storage, desc: desc}
	r.Ground = storage.Spawn("ground", desc.GroundTransform, 0)
	r.SelfSpinProp = storage.Spawn("capsule", desc.PropTransform, RotatorN)
	r.OrbitLight = storage.Spawn("light", desc.LightTransform, Rotator)
	r.Camera = storage.Spawn("camera", desc.CameraTransform, IsCamera)
	return r, nil
}

// Description returns the description the scene was built from.
func (r *Registry) Description() Description {
	return r.desc
}

// Storage returns the storage the entities live in.
func (r *Registry) Storage() *ecs.Storage {
	return r.storage
}

// CameraTransform returns the camera's live transform.
func (r *Registry) CameraTransform() *geom.Transform {
	return r.storage.Transform(r.Camera)
}

// LightTransform returns the orbiting light's live transform.
func (r *Registry) LightTransform() *geom.Transform {
	return r.storage.Transform(r.OrbitLight)
}

// PropTransform returns the capsule's live transform.
func (r *Registry) PropTransform() *geom.Transform {
	return r.storage.Transform(r.SelfSpinProp)
}

// GroundTransform returns the ground plane's transform.
func (r *Registry) GroundTransform() *geom.Transform {
	return r.storage.Transform(r.Ground)
}

// Rotators iterates over every entity tagged Rotator.
func (r *Registry) Rotators() iter.Seq[*geom.Transform] {
	return transforms(r.storage.Tagged(Rotator))
}

// RotatorNs iterates over every entity tagged RotatorN.
func (r *Registry) RotatorNs() iter.Seq[*geom.Transform] {
	return transforms(r.storage.Tagged(RotatorN))
}

func transforms(seq iter.Seq2[ecs.EntityId, *geom.Transform]) iter.Seq[*geom.Transform] {
	return func(yield func(*geom.Transform) bool) {
		for _, tr := range seq {
			if !yield(tr) {
				return
			}
		}
	}
}
