package ecs_test

import (
	"github.com/plus3/orbitview/ecs"
)

const (
	Spinner ecs.Tag = 1 << iota
	Marker
	Viewer
)

func init() {
	ecs.RegisterTagName(Spinner, "spinner")
	ecs.RegisterTagName(Marker, "marker")
	ecs.RegisterTagName(Viewer, "viewer")
}
