package control

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/geom"
	"github.com/plus3/orbitview/scene"
)

// AnimationConfig sets the angular rates, in radians per second.
type AnimationConfig struct {
	// SpinRate is the Rotator self-yaw about its local Y axis.
	SpinRate float32
	// OrbitRate is the Rotator yaw about the world origin.
	OrbitRate float32
	// TumbleDivisor divides elapsed time into RotatorN local-X rotation.
	TumbleDivisor float32
}

// DefaultAnimationConfig returns the stock rotation rates.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		SpinRate:      1,
		OrbitRate:     1,
		TumbleDivisor: 1.5,
	}
}

// RotationAnimatorSystem spins and orbits every Rotator and tumbles every
// RotatorN, proportionally to elapsed time.
type RotationAnimatorSystem struct {
	registry *scene.Registry
	config   AnimationConfig
}

// NewRotationAnimatorSystem returns an animator over the registry's rotators.
func NewRotationAnimatorSystem(registry *scene.Registry, config AnimationConfig) *RotationAnimatorSystem {
	return &RotationAnimatorSystem{registry: registry, config: config}
}

// Execute advances every Rotator and RotatorN by the frame's elapsed time.
func (s *RotationAnimatorSystem) Execute(frame *ecs.UpdateFrame) {
	dt := float32(frame.DeltaTime)

	// Self-spin then orbit; the two compound.
	orbit := mgl32.QuatRotate(dt*s.config.OrbitRate, geom.AxisY)
	for tr := range s.registry.Rotators() {
		tr.RotateLocalY(dt * s.config.SpinRate)
		tr.RotateAround(geom.Origin, orbit)
	}

	for tr := range s.registry.RotatorNs() {
		tr.RotateLocalX(dt / s.config.TumbleDivisor)
	}
}
