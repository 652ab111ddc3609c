package vantage

import (
	"math"
	"testing"
)

// --- Defaults ---

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assertPoint(t, "position", c.Position(), Point{})
	assertNear(t, "zoom", c.ZoomLevel(), 1)
	assertNear(t, "rotation", c.Rotation(), 0)
	assertNear(t, "viewPortWidth", c.ViewPortWidth(), 1000)
	assertNear(t, "viewPortHeight", c.ViewPortHeight(), 1000)

	b := c.Boundaries()
	assertNear(t, "minX", b.MinX, -10000)
	assertNear(t, "maxY", b.MaxY, 10000)

	z := c.ZoomBoundaries()
	assertNear(t, "minZoom", z.Min, 0.1)
	assertNear(t, "maxZoom", z.Max, 10)

	r := c.RotationBoundaries()
	if !math.IsInf(r.Min, -1) || !math.IsInf(r.Max, 1) {
		t.Errorf("rotation boundaries = %v, want unbounded", r)
	}
}

func TestSetViewPortSizeIgnoresNonPositive(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(800, 600)
	c.SetViewPortSize(0, -5)
	assertNear(t, "width", c.ViewPortWidth(), 800)
	assertNear(t, "height", c.ViewPortHeight(), 600)
}

func TestSetBoundariesNormalizesSwappedSides(t *testing.T) {
	c := NewCamera()
	c.SetBoundaries(Boundaries{MinX: 50, MaxX: -50, MinY: -20, MaxY: 20})
	b := c.Boundaries()
	assertNear(t, "minX", b.MinX, -50)
	assertNear(t, "maxX", b.MaxX, 50)
}

// --- SetPosition ---

func TestSetPositionInsideBoundaries(t *testing.T) {
	c := NewCamera()
	if !c.SetPosition(Point{X: 100, Y: -200}) {
		t.Fatal("SetPosition rejected in-bounds destination")
	}
	assertPoint(t, "position", c.Position(), Point{X: 100, Y: -200})
}

func TestSetPositionRejectsOutOfBounds(t *testing.T) {
	c := NewCamera()
	c.SetPosition(Point{X: 5, Y: 5})
	if c.SetPosition(Point{X: 20000}) {
		t.Fatal("SetPosition accepted out-of-bounds destination")
	}
	assertPoint(t, "position unchanged", c.Position(), Point{X: 5, Y: 5})
}

func TestSetPositionZeroDiffDoesNotPublish(t *testing.T) {
	c := NewCamera()
	c.SetPosition(Point{X: 3})
	calls := 0
	c.OnPan(func(PanEvent, State) { calls++ })
	if !c.SetPosition(Point{X: 3}) {
		t.Fatal("SetPosition rejected current position")
	}
	if calls != 0 {
		t.Errorf("pan published %d times for zero diff, want 0", calls)
	}
}

func TestSetPositionPublishesDiffAndState(t *testing.T) {
	c := NewCamera()
	var gotDiff Point
	var gotState State
	c.OnPan(func(e PanEvent, st State) {
		gotDiff = e.Diff
		gotState = st
	})
	c.SetPosition(Point{X: 10, Y: -4})
	assertPoint(t, "diff", gotDiff, Point{X: 10, Y: -4})
	assertPoint(t, "state position", gotState.Position, Point{X: 10, Y: -4})
	assertNear(t, "state zoom", gotState.ZoomLevel, 1)
}

// --- SetZoomLevel ---

func TestSetZoomLevelRejectsInvalid(t *testing.T) {
	c := NewCamera()
	if c.SetZoomLevel(0) || c.SetZoomLevel(-1) {
		t.Error("SetZoomLevel accepted non-positive zoom")
	}
	if c.SetZoomLevel(50) {
		t.Error("SetZoomLevel accepted out-of-range zoom")
	}
	assertNear(t, "zoom unchanged", c.ZoomLevel(), 1)
}

func TestSetZoomLevelPublishesDelta(t *testing.T) {
	c := NewCamera()
	var gotDelta float64
	c.OnZoom(func(e ZoomEvent, _ State) { gotDelta = e.DeltaZoom })
	c.SetZoomLevel(2.5)
	assertNear(t, "delta", gotDelta, 1.5)
	assertNear(t, "zoom", c.ZoomLevel(), 2.5)
}

func TestSetZoomBoundariesClampsCurrentZoom(t *testing.T) {
	c := NewCamera()
	c.SetZoomLevel(5)
	var gotDelta float64
	c.OnZoom(func(e ZoomEvent, _ State) { gotDelta = e.DeltaZoom })
	c.SetZoomBoundaries(Range{Min: 0.5, Max: 2})
	assertNear(t, "clamped zoom", c.ZoomLevel(), 2)
	assertNear(t, "published delta", gotDelta, -3)
}

func TestSetMinMaxZoomLevel(t *testing.T) {
	c := NewCamera()
	if !c.SetMinZoomLevel(0.5) {
		t.Error("SetMinZoomLevel rejected valid min")
	}
	if c.SetMinZoomLevel(50) {
		t.Error("SetMinZoomLevel accepted min above max")
	}
	if !c.SetMaxZoomLevel(4) {
		t.Error("SetMaxZoomLevel rejected valid max")
	}
	if c.SetMaxZoomLevel(0.1) {
		t.Error("SetMaxZoomLevel accepted max below min")
	}
	z := c.ZoomBoundaries()
	assertNear(t, "min", z.Min, 0.5)
	assertNear(t, "max", z.Max, 4)
}

// --- SetRotation ---

func TestSetRotationNormalizes(t *testing.T) {
	c := NewCamera()
	c.SetRotation(-math.Pi / 2)
	assertNear(t, "normalized", c.Rotation(), 3*math.Pi/2)
	c.SetRotation(twoPi + 0.5)
	assertNear(t, "wrapped", c.Rotation(), 0.5)
}

func TestSetRotationPublishesShortestArc(t *testing.T) {
	c := NewCamera()
	c.SetRotation(2*math.Pi - 0.1)
	var gotDelta float64
	c.OnRotate(func(e RotateEvent, _ State) { gotDelta = e.DeltaRotation })
	c.SetRotation(0.1)
	// Crossing the seam: the delta is the short way around, not -6.08.
	assertNear(t, "delta", gotDelta, 0.2)
}

func TestSetRotationRespectsBoundaries(t *testing.T) {
	c := NewCamera()
	c.SetRotationBoundaries(Range{Min: 0, Max: math.Pi / 2})
	if c.SetRotation(math.Pi) {
		t.Error("SetRotation accepted angle outside boundaries")
	}
	if !c.SetRotation(math.Pi / 4) {
		t.Error("SetRotation rejected angle inside boundaries")
	}
	assertNear(t, "rotation", c.Rotation(), math.Pi/4)
}

// --- Transform ---

func TestTransformMapsPositionToViewportCenter(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(800, 600)
	c.SetPosition(Point{X: 120, Y: -30})
	c.SetZoomLevel(2)
	c.SetRotation(0.7)

	m := c.Transform(1, true)
	assertPoint(t, "camera position lands on center", m.Apply(c.Position()), Point{X: 400, Y: 300})
}

func TestTransformIdentityCamera(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(1000, 1000)
	m := c.Transform(1, true)
	// World origin at the viewport center, unit scale.
	assertMatrix(t, "identity camera", m, Matrix{A: 1, D: 1, E: 500, F: 500})
}

func TestTransformDevicePixelRatio(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(800, 600)
	m := c.Transform(2, true)
	assertPoint(t, "origin", m.Apply(Point{}), Point{X: 800, Y: 600})
	assertPoint(t, "unit X", m.Apply(Point{X: 1}), Point{X: 802, Y: 600})
}

func TestTransformCoordinateSystemFlip(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(800, 600)
	m := c.Transform(1, false)
	// Y-up convention: a point above the camera center maps below it on
	// screen coordinates flipped around the center.
	assertPoint(t, "flipped", m.Apply(Point{Y: 10}), Point{X: 400, Y: 290})
}

func TestTransformAgreesWithWorldToViewPort(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(800, 600)
	c.SetPosition(Point{X: 50, Y: 70})
	c.SetZoomLevel(1.5)
	c.SetRotation(5.5)

	m := c.Transform(1, true)
	for _, p := range []Point{{}, {X: 100}, {X: -30, Y: 45}, {X: 50, Y: 70}} {
		assertPoint(t, "matrix vs conversion", m.Apply(p), c.WorldToViewPort(p))
	}
}

func TestTRSDecomposition(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(800, 600)
	c.SetPosition(Point{X: 10, Y: 20})
	c.SetZoomLevel(3)
	c.SetRotation(0.5)

	scale, rot, translate := c.TRS(2, true)
	assertNear(t, "scale X", scale.X, 6)
	assertNear(t, "scale Y", scale.Y, 6)
	assertNear(t, "rotation", NormalizeAngle(rot), NormalizeAngle(-0.5))

	m := c.Transform(2, true)
	assertPoint(t, "translation", translate, Point{X: m.E, Y: m.F})
}

// --- Coordinate conversion ---

func TestViewPortToWorldAtIdentity(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(800, 600)
	assertPoint(t, "center", c.ViewPortToWorld(Point{X: 400, Y: 300}), Point{})
	assertPoint(t, "offset", c.ViewPortToWorld(Point{X: 500, Y: 300}), Point{X: 100})
}

func TestViewPortWorldRoundTrip(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(800, 600)
	c.SetPosition(Point{X: -300, Y: 450})
	c.SetZoomLevel(2.5)
	c.SetRotation(1.2)

	points := []Point{{}, {X: 400, Y: 300}, {X: 13, Y: 770}, {X: -50, Y: -50}}
	for _, p := range points {
		assertPoint(t, "viewport round trip", c.WorldToViewPort(c.ViewPortToWorld(p)), p)
	}
	for _, p := range []Point{{}, {X: 1000, Y: -1000}, {X: -300, Y: 450}} {
		assertPoint(t, "world round trip", c.ViewPortToWorld(c.WorldToViewPort(p)), p)
	}
}

func TestViewPortToWorldAccountsForZoom(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(800, 600)
	c.SetZoomLevel(2)
	// At zoom 2 a 100px viewport offset covers 50 world units.
	assertPoint(t, "zoomed", c.ViewPortToWorld(Point{X: 500, Y: 300}), Point{X: 50})
}

// --- MinZoomForDimensions ---

func TestMinZoomForDimensions(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(1000, 1000)
	c.SetBoundaries(Boundaries{MinX: -500, MinY: -500, MaxX: 500, MaxY: 500})
	// Viewport spans 1000/z world units; fits inside 1000 at z >= 1.
	assertNear(t, "square fit", c.MinZoomForDimensions(), 1)
}

func TestMinZoomForDimensionsRotated(t *testing.T) {
	c := NewCamera()
	c.SetViewPortSize(1000, 1000)
	c.SetBoundaries(Boundaries{MinX: -500, MinY: -500, MaxX: 500, MaxY: 500})
	c.SetRotation(math.Pi / 4)
	// The rotated square's AABB is √2 wider, so the minimum zoom rises.
	assertNear(t, "rotated fit", c.MinZoomForDimensions(), math.Sqrt2)
}

func TestMinZoomForDimensionsUnbounded(t *testing.T) {
	c := NewCamera()
	c.SetBoundaries(UnboundedBoundaries())
	assertNear(t, "unbounded", c.MinZoomForDimensions(), 0)
}

func TestMinZoomForDimensionsDegenerate(t *testing.T) {
	c := NewCamera()
	c.SetBoundaries(Boundaries{MinX: 5, MinY: 5, MaxX: 5, MaxY: 5})
	if !math.IsInf(c.MinZoomForDimensions(), 1) {
		t.Error("zero-size boundaries should make viewport fit impossible")
	}
}
