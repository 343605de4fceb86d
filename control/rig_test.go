package control_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/plus3/orbitview/control"
	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/input"
	"github.com/plus3/orbitview/scene"
	"github.com/plus3/orbitview/window"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

type rig struct {
	storage   *ecs.Storage
	registry  *scene.Registry
	input     *input.State
	scheduler *ecs.Scheduler
	window    *window.Recorder
	logs      *bytes.Buffer

	capture  *control.CursorCaptureSystem
	animator *control.RotationAnimatorSystem
	gestures *control.PointerGestureSystem
}

func newRig(t *testing.T, policy control.DrainPolicy) *rig {
	t.Helper()

	r := &rig{
		storage: ecs.NewStorage(),
		input:   input.NewState(),
		window:  window.NewRecorder(),
		logs:    &bytes.Buffer{},
	}
	logger := log.New(r.logs, "", 0)

	var err error
	r.registry, err = scene.Setup(r.storage, scene.Default())
	require.NoError(t, err)

	r.capture, err = control.NewCursorCaptureSystem(r.window)
	require.NoError(t, err)

	cfg := control.DefaultGestureConfig()
	cfg.Policy = policy
	r.animator = control.NewRotationAnimatorSystem(r.registry, control.DefaultAnimationConfig())
	r.gestures = control.NewPointerGestureSystem(r.registry, cfg, logger)

	r.scheduler = ecs.NewScheduler(r.storage, r.input)
	r.scheduler.Register(r.capture)
	r.scheduler.Register(r.animator)
	r.scheduler.Register(r.gestures)
	return r
}

func frameWith(r *rig, dt float64) *ecs.UpdateFrame {
	return &ecs.UpdateFrame{
		DeltaTime: dt,
		Input:     r.input,
		Storage:   r.storage,
		Commands:  &ecs.Commands{},
	}
}
