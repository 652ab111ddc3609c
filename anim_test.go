package vantage

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

// Tween values travel through float32, so animation assertions use a looser
// tolerance than the rest of the suite.
func assertAnimNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-5 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Tween progression ---

func TestAnimatorPanTo(t *testing.T) {
	c, rig := newTestRig()
	a := NewAnimator(rig, nil)

	a.PanTo(Point{X: 100, Y: 50}, 1.0, ease.Linear)
	if !a.Animating() {
		t.Fatal("Animating() = false with a pan in flight")
	}

	a.Update(0.5)
	assertAnimNear(t, "mid X", c.Position().X, 50)
	assertAnimNear(t, "mid Y", c.Position().Y, 25)

	a.Update(0.6)
	assertAnimNear(t, "final X", c.Position().X, 100)
	assertAnimNear(t, "final Y", c.Position().Y, 50)
	if a.Animating() {
		t.Error("Animating() = true after the pan finished")
	}
}

func TestAnimatorZoomTo(t *testing.T) {
	c, rig := newTestRig()
	a := NewAnimator(rig, nil)

	a.ZoomTo(2, 1.0, ease.Linear)
	a.Update(0.5)
	assertAnimNear(t, "mid zoom", c.ZoomLevel(), 1.5)
	a.Update(0.5)
	assertAnimNear(t, "final zoom", c.ZoomLevel(), 2)
}

func TestAnimatorZoomKeepsCenterFixed(t *testing.T) {
	c, rig := newTestRig()
	c.SetPosition(Point{X: 40, Y: 60})
	a := NewAnimator(rig, nil)

	a.ZoomTo(3, 1.0, ease.Linear)
	a.Update(1.0)
	assertPoint(t, "position", c.Position(), Point{X: 40, Y: 60})
}

func TestAnimatorRotateToShortestArc(t *testing.T) {
	c, rig := newTestRig()
	c.SetRotation(2*math.Pi - 0.2)
	a := NewAnimator(rig, nil)

	// The short way from 2π-0.2 to 0.2 crosses the seam, not the long way
	// back through π.
	a.RotateTo(0.2, 1.0, ease.Linear)
	a.Update(0.5)
	assertAnimNear(t, "mid rotation", AngleSpan(c.Rotation(), 0), 0)
	a.Update(0.5)
	assertAnimNear(t, "final rotation", AngleSpan(c.Rotation(), 0.2), 0)
}

func TestAnimatorRunsThroughPolicy(t *testing.T) {
	c, rig := newTestRig()
	c.SetZoomBoundaries(Range{Min: 0.5, Max: 2})
	a := NewAnimator(rig, nil)

	a.ZoomTo(5, 1.0, ease.Linear)
	a.Update(1.0)
	// The tween's final value passes through the zoom pipeline and clamps.
	assertAnimNear(t, "clamped", c.ZoomLevel(), 2)
}

// --- Interruption ---

func TestAnimatorStop(t *testing.T) {
	c, rig := newTestRig()
	a := NewAnimator(rig, nil)

	a.PanTo(Point{X: 100}, 1.0, ease.Linear)
	a.Update(0.25)
	mid := c.Position()
	a.Stop()

	a.Update(1.0)
	assertPoint(t, "frozen", c.Position(), mid)
	if a.Animating() {
		t.Error("Animating() = true after Stop")
	}
}

func TestAnimatorUserInputCancelsAffectedTween(t *testing.T) {
	_, rig := newTestRig()
	inner := &recordingMux{allow: true}
	a := NewAnimator(rig, inner)

	a.PanTo(Point{X: 100}, 1.0, ease.Linear)
	a.ZoomTo(2, 1.0, ease.Linear)

	d := a.NotifyPanInput(Point{X: 5})
	if !d.AllowPassThrough {
		t.Error("pan input was vetoed")
	}
	if len(inner.pans) != 1 {
		t.Errorf("inner pans = %d, want 1", len(inner.pans))
	}
	if a.pan != nil {
		t.Error("pan tween survived user pan input")
	}
	if a.zoom == nil {
		t.Error("zoom tween was cancelled by pan input")
	}

	a.NotifyZoomInput(0.1, Point{})
	if a.zoom != nil {
		t.Error("zoom tween survived user zoom input")
	}
}

func TestAnimatorRotationInputCancelsRotateTween(t *testing.T) {
	_, rig := newTestRig()
	inner := &recordingMux{allow: true}
	a := NewAnimator(rig, inner)

	a.RotateTo(1, 1.0, ease.Linear)
	a.NotifyRotationInput(0.05)
	if a.rotate != nil {
		t.Error("rotate tween survived user rotation input")
	}
	if len(inner.rotations) != 1 {
		t.Errorf("inner rotations = %d, want 1", len(inner.rotations))
	}
}

func TestAnimatorNilInnerDefaultsToRelay(t *testing.T) {
	c, rig := newTestRig()
	a := NewAnimator(rig, nil)
	a.NotifyPanInput(Point{X: 10})
	assertPoint(t, "relayed pan", c.Position(), Point{X: 10})
}
