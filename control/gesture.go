package control

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/geom"
	"github.com/plus3/orbitview/input"
	"github.com/plus3/orbitview/scene"
)

// ErrUnknownPolicy is returned by ParseDrainPolicy for an unrecognised name.
var ErrUnknownPolicy = errors.New("unknown drain policy")

// DrainPolicy decides who consumes the frame's pointer motion when both the
// pan and orbit buttons are held.
type DrainPolicy int

const (
	// DrainExclusive gives the whole queue to one gesture. Pan wins when both
	// buttons are held.
	DrainExclusive DrainPolicy = iota
	// DrainSnapshot takes one snapshot of the queue and feeds it to every held
	// gesture, pan first.
	DrainSnapshot
)

func (p DrainPolicy) String() string {
	switch p {
	case DrainExclusive:
		return "exclusive"
	case DrainSnapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("DrainPolicy(%d)", int(p))
	}
}

// ParseDrainPolicy accepts the names printed by DrainPolicy.String.
func ParseDrainPolicy(name string) (DrainPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "exclusive":
		return DrainExclusive, nil
	case "snapshot":
		return DrainSnapshot, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// GestureConfig scales pointer motion into camera movement.
type GestureConfig struct {
	Policy DrainPolicy
	// PanScale divides each motion delta before it is added to the camera position.
	PanScale float32
	// OrbitScale divides horizontal motion into radians of yaw.
	OrbitScale float32
	// OrbitClamp bounds the yaw of a single event.
	OrbitClamp float32
}

// DefaultGestureConfig returns the stock pan and orbit sensitivities.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		Policy:     DrainExclusive,
		PanScale:   10,
		OrbitScale: 10,
		OrbitClamp: 0.1,
	}
}

// PanOffset is the camera translation produced by one motion event.
func (c GestureConfig) PanOffset(delta mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{delta.X() / c.PanScale, delta.Y() / c.PanScale, 0}
}

// OrbitYaw is the yaw, in radians, produced by one motion event.
func (c GestureConfig) OrbitYaw(dx float32) float32 {
	return mgl32.Clamp(dx/c.OrbitScale, -c.OrbitClamp, c.OrbitClamp)
}

// GestureStats counts the events each gesture consumed during the last frame.
type GestureStats struct {
	Panned  int
	Orbited int
}

// PointerGestureSystem pans the camera while the secondary button is held
// and orbits it about the origin while the primary button is held.
type PointerGestureSystem struct {
	PanButton   input.MouseButton
	OrbitButton input.MouseButton
	// Verbose logs every pan delta.
	Verbose bool

	registry *scene.Registry
	config   GestureConfig
	logger   *log.Logger
	last     GestureStats
}

// NewPointerGestureSystem returns a system that pans with the right button and
// orbits with the left. A nil logger uses log.Default.
func NewPointerGestureSystem(registry *scene.Registry, config GestureConfig, logger *log.Logger) *PointerGestureSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &PointerGestureSystem{
		PanButton:   input.MouseRight,
		OrbitButton: input.MouseLeft,
		registry:    registry,
		config:      config,
		logger:      logger,
	}
}

// Config returns the active configuration.
func (s *PointerGestureSystem) Config() GestureConfig {
	return s.config
}

// LastFrame reports what the previous Execute consumed.
func (s *PointerGestureSystem) LastFrame() GestureStats {
	return s.last
}

// Execute drains this tick's pointer motion into a camera pan or orbit.
func (s *PointerGestureSystem) Execute(frame *ecs.UpdateFrame) {
	mouse := frame.Input.Mouse
	s.last = GestureStats{}

	if mouse.JustPressed(s.OrbitButton) {
		s.logger.Printf("%s mouse just pressed", s.OrbitButton)
	}
	if mouse.JustReleased(s.OrbitButton) {
		s.logger.Printf("%s mouse just released", s.OrbitButton)
	}

	panning := mouse.Pressed(s.PanButton)
	orbiting := mouse.Pressed(s.OrbitButton)
	if !panning && !orbiting {
		return
	}

	camera := s.registry.CameraTransform()
	motion := frame.Input.Motion

	switch s.config.Policy {
	case DrainSnapshot:
		events := motion.Snapshot()
		motion.Clear()
		if panning {
			s.pan(camera, events)
		}
		if orbiting {
			s.orbit(camera, events)
		}
	default:
		events := motion.Drain()
		if panning {
			s.pan(camera, events)
		} else {
			s.orbit(camera, events)
		}
	}
}

func (s *PointerGestureSystem) pan(camera *geom.Transform, events []input.MotionEvent) {
	for _, ev := range events {
		offset := s.config.PanOffset(ev.Delta)
		camera.Translate(offset)
		if s.Verbose {
			s.logger.Printf("pan %v -> %v", ev.Delta, offset)
		}
	}
	s.last.Panned += len(events)
}

func (s *PointerGestureSystem) orbit(camera *geom.Transform, events []input.MotionEvent) {
	for _, ev := range events {
		yaw := s.config.OrbitYaw(ev.Delta.X())
		camera.RotateAround(geom.Origin, mgl32.QuatRotate(yaw, geom.AxisY))
	}
	s.last.Orbited += len(events)
}
