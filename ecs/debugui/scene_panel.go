package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/control"
	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/geom"
)

// EntityRow is one line of the scene table.
type EntityRow struct {
	ID               ecs.EntityId
	Name             string
	Tags             string
	Position         mgl32.Vec3
	Yaw, Pitch, Roll float32 // degrees
}

// SceneRows lists every entity in spawn order.
func SceneRows(storage *ecs.Storage) []EntityRow {
	rows := make([]EntityRow, 0, storage.Len())
	for id := range storage.Entities() {
		tr := storage.Transform(id)
		rows = append(rows, newEntityRow(id, storage.Name(id), storage.Tags(id), tr))
	}
	return rows
}

func newEntityRow(id ecs.EntityId, name string, tags ecs.Tag, tr *geom.Transform) EntityRow {
	yaw, pitch, roll := tr.YawPitchRoll()
	return EntityRow{
		ID:       id,
		Name:     name,
		Tags:     tags.String(),
		Position: tr.Translation,
		Yaw:      mgl32.RadToDeg(yaw),
		Pitch:    mgl32.RadToDeg(pitch),
		Roll:     mgl32.RadToDeg(roll),
	}
}

// ScenePanel shows cursor and gesture state and the live transforms.
type ScenePanel struct {
	capture  *control.CursorCaptureSystem
	gestures *control.PointerGestureSystem
}

func NewScenePanel(capture *control.CursorCaptureSystem, gestures *control.PointerGestureSystem) *ScenePanel {
	return &ScenePanel{capture: capture, gestures: gestures}
}

func (sp *ScenePanel) Render(frame *ecs.UpdateFrame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 80), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(520, 220), imgui.CondOnce)
	if !imgui.BeginV("Scene", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if sp.capture != nil {
		imgui.Text(fmt.Sprintf("Cursor: %s", sp.capture.State()))
	}
	if sp.gestures != nil {
		last := sp.gestures.LastFrame()
		imgui.Text(fmt.Sprintf("Drain policy: %s", sp.gestures.Config().Policy))
		imgui.Text(fmt.Sprintf("Last frame: %d panned, %d orbited", last.Panned, last.Orbited))
	}
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SceneTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Tags")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Yaw/Pitch/Roll")
		imgui.TableHeadersRow()

		for _, row := range SceneRows(frame.Storage) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d %s", row.ID, row.Name))
			imgui.TableNextColumn()
			imgui.Text(row.Tags)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f %.2f %.2f", row.Position.X(), row.Position.Y(), row.Position.Z()))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f %.1f %.1f", row.Yaw, row.Pitch, row.Roll))
		}

		imgui.EndTable()
	}

	imgui.End()
}
