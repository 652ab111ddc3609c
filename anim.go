package vantage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// panAnim holds active pan-to tweens for camera X and Y.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// rotateAnim tweens along the shortest arc from the start rotation.
type rotateAnim struct {
	tween *gween.Tween
	start float64
	done  bool
}

// Animator drives programmatic camera moves (eased pan-to, zoom-to,
// rotate-to) through the rig's pipelines, one tween per axis of motion.
//
// The animator is also a Mux: while a tween is in flight it owns the camera,
// and any raw user input cancels the affected tween before passing through
// to the inner mux — user input always interrupts animation.
type Animator struct {
	rig   *CameraRig
	inner Mux

	pan    *panAnim
	zoom   *gween.Tween
	rotate *rotateAnim
}

// NewAnimator creates an animator for the rig. Interrupted or pass-through
// input is forwarded to inner; a nil inner defaults to a RelayMux on the
// same rig.
func NewAnimator(rig *CameraRig, inner Mux) *Animator {
	if inner == nil {
		inner = NewRelayMux(rig)
	}
	return &Animator{rig: rig, inner: inner}
}

// PanTo animates the camera to the given world position over duration
// seconds.
func (a *Animator) PanTo(target Point, duration float32, easeFn ease.TweenFunc) {
	pos := a.rig.Camera().Position()
	a.pan = &panAnim{
		tweenX: gween.New(float32(pos.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(pos.Y), float32(target.Y), duration, easeFn),
	}
}

// ZoomTo animates the zoom level to the target over duration seconds,
// zooming around the viewport center.
func (a *Animator) ZoomTo(target float64, duration float32, easeFn ease.TweenFunc) {
	a.zoom = gween.New(float32(a.rig.Camera().ZoomLevel()), float32(target), duration, easeFn)
}

// RotateTo animates the rotation to the target over duration seconds, along
// the shortest arc.
func (a *Animator) RotateTo(target float64, duration float32, easeFn ease.TweenFunc) {
	start := a.rig.Camera().Rotation()
	span := AngleSpan(start, target)
	a.rotate = &rotateAnim{
		tween: gween.New(0, float32(span), duration, easeFn),
		start: start,
	}
}

// Stop cancels all in-flight tweens, leaving the camera where it is.
func (a *Animator) Stop() {
	a.pan = nil
	a.zoom = nil
	a.rotate = nil
}

// Animating reports whether any tween is in flight.
func (a *Animator) Animating() bool {
	return a.pan != nil || a.zoom != nil || a.rotate != nil
}

// Update advances all in-flight tweens by dt seconds, applying the
// intermediate values through the rig. Call once per frame.
func (a *Animator) Update(dt float32) {
	if a.pan != nil {
		target := a.rig.Camera().Position()
		if !a.pan.doneX {
			val, done := a.pan.tweenX.Update(dt)
			target.X = float64(val)
			a.pan.doneX = done
		}
		if !a.pan.doneY {
			val, done := a.pan.tweenY.Update(dt)
			target.Y = float64(val)
			a.pan.doneY = done
		}
		a.rig.PanTo(target)
		if a.pan.doneX && a.pan.doneY {
			a.pan = nil
		}
	}
	if a.zoom != nil {
		val, done := a.zoom.Update(dt)
		a.rig.ZoomTo(float64(val))
		if done {
			a.zoom = nil
		}
	}
	if a.rotate != nil {
		val, done := a.rotate.tween.Update(dt)
		a.rig.RotateTo(a.rotate.start + float64(val))
		if done {
			a.rotate = nil
		}
	}
}

// --- Mux implementation: user input interrupts animation ---

// NotifyPanInput cancels any pan tween and passes the input through.
func (a *Animator) NotifyPanInput(delta Point) Decision {
	a.pan = nil
	return a.inner.NotifyPanInput(delta)
}

// NotifyZoomInput cancels any zoom tween and passes the input through.
func (a *Animator) NotifyZoomInput(delta float64, anchor Point) Decision {
	a.zoom = nil
	return a.inner.NotifyZoomInput(delta, anchor)
}

// NotifyRotationInput cancels any rotation tween and passes the input
// through.
func (a *Animator) NotifyRotationInput(delta float64) Decision {
	a.rotate = nil
	return a.inner.NotifyRotationInput(delta)
}
