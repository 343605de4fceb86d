// Package config loads the viewer's settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/plus3/orbitview/control"
	"github.com/plus3/orbitview/window"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Gesture struct {
	Policy     string  `yaml:"policy"`
	PanScale   float32 `yaml:"pan_scale"`
	OrbitScale float32 `yaml:"orbit_scale"`
	OrbitClamp float32 `yaml:"orbit_clamp"`
}

type Animation struct {
	SpinRate      float32 `yaml:"spin_rate"`
	OrbitRate     float32 `yaml:"orbit_rate"`
	TumbleDivisor float32 `yaml:"tumble_divisor"`
}

type Config struct {
	Window    window.Descriptor `yaml:"window"`
	TPS       int               `yaml:"tps"`
	Gesture   Gesture           `yaml:"gesture"`
	Animation Animation         `yaml:"animation"`
	Overlay   bool              `yaml:"overlay"`
	Verbose   bool              `yaml:"verbose"`
}

func Default() Config {
	g := control.DefaultGestureConfig()
	a := control.DefaultAnimationConfig()
	return Config{
		Window: window.DefaultDescriptor(),
		TPS:    60,
		Gesture: Gesture{
			Policy:     g.Policy.String(),
			PanScale:   g.PanScale,
			OrbitScale: g.OrbitScale,
			OrbitClamp: g.OrbitClamp,
		},
		Animation: Animation{
			SpinRate:      a.SpinRate,
			OrbitRate:     a.OrbitRate,
			TumbleDivisor: a.TumbleDivisor,
		},
	}
}

// Load reads path over the defaults. Keys that are absent keep their default
// value; unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MaxTPS bounds tps so a tick never rounds to zero duration.
const MaxTPS = 1000

// Validate reports the first invalid setting, wrapped in ErrInvalid.
func (c Config) Validate() error {
	floats := []struct {
		key string
		v   float32
	}{
		{"gesture.pan_scale", c.Gesture.PanScale},
		{"gesture.orbit_scale", c.Gesture.OrbitScale},
		{"gesture.orbit_clamp", c.Gesture.OrbitClamp},
		{"animation.spin_rate", c.Animation.SpinRate},
		{"animation.orbit_rate", c.Animation.OrbitRate},
		{"animation.tumble_divisor", c.Animation.TumbleDivisor},
	}
	for _, f := range floats {
		if !finite(f.v) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalid, f.key, f.v)
		}
	}

	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.TPS <= 0 || c.TPS > MaxTPS:
		return fmt.Errorf("%w: tps must be in 1..%d, got %d", ErrInvalid, MaxTPS, c.TPS)
	case c.Gesture.PanScale <= 0:
		return fmt.Errorf("%w: gesture.pan_scale must be positive", ErrInvalid)
	case c.Gesture.OrbitScale <= 0:
		return fmt.Errorf("%w: gesture.orbit_scale must be positive", ErrInvalid)
	case c.Gesture.OrbitClamp < 0:
		return fmt.Errorf("%w: gesture.orbit_clamp must not be negative", ErrInvalid)
	case c.Animation.TumbleDivisor <= 0:
		return fmt.Errorf("%w: animation.tumble_divisor must be positive", ErrInvalid)
	}
	if _, err := control.ParseDrainPolicy(c.Gesture.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// GestureConfig converts the gesture section for control.NewPointerGestureSystem.
func (c Config) GestureConfig() (control.GestureConfig, error) {
	policy, err := control.ParseDrainPolicy(c.Gesture.Policy)
	if err != nil {
		return control.GestureConfig{}, err
	}
	return control.GestureConfig{
		Policy:     policy,
		PanScale:   c.Gesture.PanScale,
		OrbitScale: c.Gesture.OrbitScale,
		OrbitClamp: c.Gesture.OrbitClamp,
	}, nil
}

// AnimationConfig converts the animation section for control.NewRotationAnimatorSystem.
func (c Config) AnimationConfig() control.AnimationConfig {
	return control.AnimationConfig{
		SpinRate:      c.Animation.SpinRate,
		OrbitRate:     c.Animation.OrbitRate,
		TumbleDivisor: c.Animation.TumbleDivisor,
	}
}
