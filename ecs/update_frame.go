package ecs

import "github.com/plus3/orbitview/input"

// UpdateFrame is the per-frame context handed to every system.
type UpdateFrame struct {
	// DeltaTime is the elapsed time since the previous frame, in seconds.
	DeltaTime float64
	Input     *input.State
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, in *input.State, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Input:     in,
		Commands:  newCommands(),
		Storage:   storage,
	}
}
