// Package ecs is the frame kernel of the viewer: entity storage keyed by
// tag, the per-frame update context and a scheduler that runs systems in
// registration order.
package ecs

// System represents a behavior that runs once per frame. Systems receive
// everything they touch through the frame or their own fields; custom state
// fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
