package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/orbitview/ecs"
)

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	values []float32
	index  int
	filled int
}

func NewFrameHistory(frames int) *FrameHistory {
	if frames < 1 {
		frames = 1
	}
	return &FrameHistory{values: make([]float32, frames)}
}

// Push records a frame time given in seconds.
func (h *FrameHistory) Push(deltaTime float64) {
	h.values[h.index] = float32(deltaTime * 1000.0)
	h.index = (h.index + 1) % len(h.values)
	if h.filled < len(h.values) {
		h.filled++
	}
}

// Average is the mean of the recorded frame times, in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ft := range h.values[:h.filled] {
		sum += ft
	}
	return sum / float32(h.filled)
}

// Values exposes the ring for plotting.
func (h *FrameHistory) Values() []float32 {
	return h.values
}

// StatsPanel shows frame timing, entity counts and per-system timings.
type StatsPanel struct {
	scheduler *ecs.Scheduler
	history   *FrameHistory
}

func NewStatsPanel(scheduler *ecs.Scheduler, historyFrames int) *StatsPanel {
	return &StatsPanel{
		scheduler: scheduler,
		history:   NewFrameHistory(historyFrames),
	}
}

func (ps *StatsPanel) Render(frame *ecs.UpdateFrame) {
	ps.history.Push(frame.DeltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := frame.Storage.CollectStats()
	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))

	avgFrameTime := ps.history.Average()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	values := ps.history.Values()
	imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))

	if imgui.TreeNodeStr("Systems") {
		sched := ps.scheduler.GetStats()
		imgui.Text(fmt.Sprintf("Frames: %d", sched.FrameCount))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range sched.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Tags") {
		for tag, count := range stats.TagCounts {
			imgui.BulletText(fmt.Sprintf("%s: %d", tag, count))
		}
		imgui.TreePop()
	}

	imgui.End()
}
