// Package vantage is a 2D camera toolkit: it maintains a virtual camera
// (position, zoom, rotation) over an infinite 2D world, turns raw pointer,
// wheel, and keyboard input into camera motion, and produces transform
// matrices for any rendering backend.
//
// # Quick start
//
// Create a [Camera], drive it through a [CameraRig], and hand its transform
// to your renderer each frame:
//
//	cam := vantage.NewCamera()
//	cam.SetViewPortSize(800, 600)
//	rig := vantage.NewCameraRig(cam)
//
//	rig.PanByViewPort(vantage.Point{X: 10})
//	m := cam.Transform(1.0, true) // 2D affine, Canvas2D 6-tuple convention
//
// # Input pipeline
//
// Raw device events flow through a layered pipeline: an event parser (for
// Ebitengine, package ebitendriver) translates native events into the
// primitive [InputEvent] vocabulary; a [GestureClassifier] turns primitives
// into semantic gestures (drag to pan, space-drag to pan, scroll to pan,
// ctrl-scroll to zoom at the cursor); a [Mux] arbitrates between user input,
// programmatic animation, and locked mode; and the rig's handler pipelines
// apply policy (axis restriction, boundary clamping, viewport-fit) before
// committing to the camera.
//
//	classifier := vantage.NewGestureClassifier(vantage.NewRelayMux(rig))
//	classifier.Feed(vantage.InputEvent{Type: vantage.InputLeftPointerDown})
//
// Use [BatchedMux] to coalesce bursty input into one net update per frame,
// and [Animator] for eased pan-to / zoom-to / rotate-to moves that user
// input can interrupt.
//
// # Observing the camera
//
// Committed changes are published with their delta and the resulting
// [State]:
//
//	sub := cam.OnPan(func(e vantage.PanEvent, st vantage.State) {
//		// re-render with st
//	})
//	defer sub.Cancel()
//
// Policy chains are built from exported handlers with [Chain] when the
// default restrict → clamp → commit order is not enough.
package vantage
