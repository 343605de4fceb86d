// Package control holds the viewer's per-frame systems: cursor capture,
// pointer gestures on the camera and the continuous scene animation.
//
// Register them in this order so the cursor state and the animated transforms
// are settled before gestures read the camera:
//
//	scheduler.Register(capture)
//	scheduler.Register(animator)
//	scheduler.Register(gestures)
package control
