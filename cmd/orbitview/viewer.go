package main

import (
	"fmt"
	"log"

	"github.com/plus3/orbitview/config"
	"github.com/plus3/orbitview/control"
	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/scene"
	"github.com/plus3/orbitview/window"
)

// viewer is the wired core: storage, scene and the systems in their fixed
// order.
type viewer struct {
	storage   *ecs.Storage
	registry  *scene.Registry
	scheduler *ecs.Scheduler
	capture   *control.CursorCaptureSystem
	animator  *control.RotationAnimatorSystem
	gestures  *control.PointerGestureSystem
}

func newViewer(cfg config.Config, provider window.Provider, logger *log.Logger) (*viewer, error) {
	storage := ecs.NewStorage()
	registry, err := scene.Setup(storage, scene.Default())
	if err != nil {
		return nil, fmt.Errorf("scene setup: %w", err)
	}

	capture, err := control.NewCursorCaptureSystem(provider)
	if err != nil {
		return nil, err
	}

	gestureCfg, err := cfg.GestureConfig()
	if err != nil {
		return nil, err
	}
	gestures := control.NewPointerGestureSystem(registry, gestureCfg, logger)
	gestures.Verbose = cfg.Verbose

	animator := control.NewRotationAnimatorSystem(registry, cfg.AnimationConfig())

	scheduler := ecs.NewScheduler(storage, nil)
	scheduler.Register(capture)
	scheduler.Register(animator)
	scheduler.Register(gestures)

	return &viewer{
		storage:   storage,
		registry:  registry,
		scheduler: scheduler,
		capture:   capture,
		animator:  animator,
		gestures:  gestures,
	}, nil
}
