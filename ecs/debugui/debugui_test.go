package debugui_test

import (
	"testing"

	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/ecs/debugui"
	"github.com/plus3/orbitview/geom"
	"github.com/plus3/orbitview/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPanel struct {
	name string
	log  *[]string
}

func (p *recordingPanel) Render(frame *ecs.UpdateFrame) {
	*p.log = append(*p.log, p.name)
}

type probeSystem struct {
	name string
	log  *[]string
}

func (s *probeSystem) Execute(frame *ecs.UpdateFrame) {
	*s.log = append(*s.log, s.name)
}

func TestOverlaySystem(t *testing.T) {
	t.Run("panels draw after every system", func(t *testing.T) {
		var log []string
		overlay := debugui.NewOverlaySystem(&recordingPanel{name: "scene", log: &log})
		overlay.Capture = func() debugui.InputState { return debugui.InputState{} }
		overlay.Add(&recordingPanel{name: "stats", log: &log})

		scheduler := ecs.NewScheduler(ecs.NewStorage(), nil)
		scheduler.Register(overlay)
		scheduler.Register(&probeSystem{name: "late", log: &log})

		scheduler.Once(0.016)

		assert.Equal(t, []string{"late", "scene", "stats"}, log)
	})

	t.Run("capture flags are recorded", func(t *testing.T) {
		overlay := debugui.NewOverlaySystem()
		overlay.Capture = func() debugui.InputState {
			return debugui.InputState{WantCaptureMouse: true}
		}

		scheduler := ecs.NewScheduler(ecs.NewStorage(), nil)
		scheduler.Register(overlay)
		scheduler.Once(0.016)

		assert.True(t, overlay.InputState().WantCaptureMouse)
		assert.False(t, overlay.InputState().WantCaptureKeyboard)
	})

	t.Run("panel func", func(t *testing.T) {
		var got float64
		overlay := debugui.NewOverlaySystem(debugui.PanelFunc(func(frame *ecs.UpdateFrame) {
			got = frame.DeltaTime
		}))
		overlay.Capture = nil

		scheduler := ecs.NewScheduler(ecs.NewStorage(), nil)
		scheduler.Register(overlay)
		scheduler.Once(0.25)

		assert.Equal(t, 0.25, got)
	})
}

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(3)
	assert.Equal(t, float32(0), h.Average())

	h.Push(0.010)
	h.Push(0.020)
	assert.InDelta(t, 15.0, h.Average(), 1e-4)

	h.Push(0.030)
	h.Push(0.040)
	assert.InDelta(t, 30.0, h.Average(), 1e-4, "oldest frame is overwritten")
	assert.Len(t, h.Values(), 3)
}

func TestSceneRows(t *testing.T) {
	storage := ecs.NewStorage()
	reg, err := scene.Setup(storage, scene.Default())
	require.NoError(t, err)

	rows := debugui.SceneRows(storage)
	require.Len(t, rows, 4)

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"ground", "capsule", "light", "camera"}, names)

	cam := rows[3]
	assert.Equal(t, reg.Camera, cam.ID)
	assert.Equal(t, "camera", cam.Tags)
	assert.Equal(t, reg.CameraTransform().Translation, cam.Position)

	prop := rows[1]
	assert.Equal(t, "rotator_n", prop.Tags)
	assert.InDelta(t, -45, prop.Pitch, 1e-3)

	assert.Equal(t, "none", rows[0].Tags)
	assert.Equal(t, geom.Identity().Translation, rows[0].Position)
}
