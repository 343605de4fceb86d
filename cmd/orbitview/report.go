package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/orbitview/ecs"
	"github.com/plus3/orbitview/ecs/debugui"
)

// Report summarises a headless run.
type Report struct {
	Duration time.Duration
	Policy   string
	Cursor   string
	Stats    *ecs.SchedulerStats
	Entities []debugui.EntityRow
}

func newReport(v *viewer, duration time.Duration) *Report {
	return &Report{
		Duration: duration,
		Policy:   v.gestures.Config().Policy.String(),
		Cursor:   v.capture.State().String(),
		Stats:    v.scheduler.GetStats(),
		Entities: debugui.SceneRows(v.storage),
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Orbit Viewer Headless Report

## Run
- **Duration:** {{.Duration}}
- **Frames:** {{.Stats.FrameCount}}
- **Drain Policy:** {{.Policy}}
- **Cursor:** {{.Cursor}}

## Systems
{{range .Stats.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Final Transforms
{{range .Entities}}- **{{.Name}}** ({{.Tags}}): position {{vec .Position}}, yaw {{printf "%.1f" .Yaw}} pitch {{printf "%.1f" .Pitch}} roll {{printf "%.1f" .Roll}}
{{end}}`

	funcMap := template.FuncMap{
		"vec": func(v mgl32.Vec3) string {
			return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X(), v.Y(), v.Z())
		},
	}

	tmpl, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
