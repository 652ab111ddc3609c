package vantage

import "math"

// Camera maintains a virtual view into an infinite 2D world: a world-space
// position, a zoom level, and a rotation, over a viewport of a given size.
//
// The camera knows nothing about input or policy. Mutation goes through
// SetPosition, SetZoomLevel, and SetRotation, which enforce only last-resort
// guards; clamping and restriction policy live in the handler pipelines.
// Every committed change is published to subscribers with its delta and the
// resulting state.
type Camera struct {
	position  Point
	zoomLevel float64
	rotation  float64

	viewPortWidth  float64
	viewPortHeight float64

	boundaries         Boundaries
	zoomBoundaries     Range
	rotationBoundaries Range

	publisher *Publisher
}

// NewCamera creates a camera with the default viewport (1000×1000), world
// boundaries (±10000 both axes), zoom limits (0.1–10), and unbounded
// rotation, centered at the origin at zoom 1.
func NewCamera() *Camera {
	return &Camera{
		zoomLevel:          1.0,
		viewPortWidth:      DefaultViewPortWidth,
		viewPortHeight:     DefaultViewPortHeight,
		boundaries:         Boundaries{MinX: -DefaultBoundary, MinY: -DefaultBoundary, MaxX: DefaultBoundary, MaxY: DefaultBoundary},
		zoomBoundaries:     Range{Min: DefaultMinZoom, Max: DefaultMaxZoom},
		rotationBoundaries: Range{Min: math.Inf(-1), Max: math.Inf(1)},
		publisher:          NewPublisher(),
	}
}

// --- Getters ---

// Position returns the world-space position the camera centers on.
func (c *Camera) Position() Point { return c.position }

// ZoomLevel returns the current zoom scale factor.
func (c *Camera) ZoomLevel() float64 { return c.zoomLevel }

// Rotation returns the camera rotation in radians, in [0, 2π).
func (c *Camera) Rotation() float64 { return c.rotation }

// ViewPortWidth returns the render surface width in device-independent pixels.
func (c *Camera) ViewPortWidth() float64 { return c.viewPortWidth }

// ViewPortHeight returns the render surface height in device-independent pixels.
func (c *Camera) ViewPortHeight() float64 { return c.viewPortHeight }

// Boundaries returns the world-space rectangle constraining camera position.
func (c *Camera) Boundaries() Boundaries { return c.boundaries }

// ZoomBoundaries returns the permitted zoom range.
func (c *Camera) ZoomBoundaries() Range { return c.zoomBoundaries }

// RotationBoundaries returns the permitted rotation arc.
func (c *Camera) RotationBoundaries() Range { return c.rotationBoundaries }

// State returns a value snapshot of position, zoom, and rotation.
func (c *Camera) State() State {
	return State{Position: c.position, ZoomLevel: c.zoomLevel, Rotation: c.rotation}
}

// --- Subscription (delegates to the camera's publisher) ---

// OnPan registers a callback for committed pans.
func (c *Camera) OnPan(fn func(PanEvent, State)) Subscription { return c.publisher.OnPan(fn) }

// OnZoom registers a callback for committed zoom changes.
func (c *Camera) OnZoom(fn func(ZoomEvent, State)) Subscription { return c.publisher.OnZoom(fn) }

// OnRotate registers a callback for committed rotation changes.
func (c *Camera) OnRotate(fn func(RotateEvent, State)) Subscription { return c.publisher.OnRotate(fn) }

// On registers a callback for the given event key. Panics on an unknown key.
func (c *Camera) On(event CameraEventType, fn func(Event)) Subscription {
	return c.publisher.On(event, fn)
}

// --- Configuration setters ---

// SetViewPortSize sets the render surface size. Non-positive dimensions are
// ignored. Resizing does not move the camera, but changes what downstream
// viewport-fit clamps compute.
func (c *Camera) SetViewPortSize(width, height float64) {
	if width > 0 {
		c.viewPortWidth = width
	}
	if height > 0 {
		c.viewPortHeight = height
	}
}

// SetBoundaries sets the world-space rectangle constraining camera position.
// Swapped min/max sides are silently fixed up rather than rejected. The
// current position is not moved; out-of-bounds positions are corrected by
// the next pan through the handler pipeline.
func (c *Camera) SetBoundaries(b Boundaries) {
	c.boundaries = b.normalized()
}

// SetZoomBoundaries sets the permitted zoom range, swapping min/max if
// given reversed. If the current zoom level falls outside the new range it
// is clamped into it, publishing a zoom event.
func (c *Camera) SetZoomBoundaries(r Range) {
	c.zoomBoundaries = r.normalized()
	c.clampZoomIntoBoundaries()
}

// SetMinZoomLevel raises or lowers the minimum permitted zoom. Returns false
// without mutating if min would exceed max.
func (c *Camera) SetMinZoomLevel(min float64) bool {
	if min > c.zoomBoundaries.Max {
		return false
	}
	c.zoomBoundaries.Min = min
	c.clampZoomIntoBoundaries()
	return true
}

// SetMaxZoomLevel raises or lowers the maximum permitted zoom. Returns false
// without mutating if max would fall below min.
func (c *Camera) SetMaxZoomLevel(max float64) bool {
	if max < c.zoomBoundaries.Min {
		return false
	}
	c.zoomBoundaries.Max = max
	c.clampZoomIntoBoundaries()
	return true
}

// SetRotationBoundaries sets the permitted rotation arc, swapping min/max if
// given reversed.
func (c *Camera) SetRotationBoundaries(r Range) {
	c.rotationBoundaries = r.normalized()
}

func (c *Camera) clampZoomIntoBoundaries() {
	clamped := c.zoomBoundaries.clamp(c.zoomLevel)
	if clamped != c.zoomLevel {
		delta := clamped - c.zoomLevel
		c.zoomLevel = clamped
		c.publisher.NotifyZoom(ZoomEvent{DeltaZoom: delta}, c.State())
	}
}

// --- State mutation ---

// SetPosition moves the camera to dest. Returns false without mutating if
// dest lies outside the world boundaries: the model does not clamp — that is
// the handler pipeline's job — it only refuses positions that would break
// the boundary invariant outright. On success the pan is published with its
// diff and the new state.
func (c *Camera) SetPosition(dest Point) bool {
	if !c.boundaries.Contains(dest) {
		return false
	}
	diff := dest.Sub(c.position)
	if diff == (Point{}) {
		return true
	}
	c.position = dest
	c.publisher.NotifyPan(PanEvent{Diff: diff}, c.State())
	return true
}

// SetZoomLevel sets the zoom scale factor. Returns false without mutating
// for zero, negative, or out-of-range values. On success the zoom change is
// published with its delta and the new state.
func (c *Camera) SetZoomLevel(zoom float64) bool {
	if zoom <= 0 || !c.zoomBoundaries.contains(zoom) {
		return false
	}
	delta := zoom - c.zoomLevel
	if delta == 0 {
		return true
	}
	c.zoomLevel = zoom
	c.publisher.NotifyZoom(ZoomEvent{DeltaZoom: delta}, c.State())
	return true
}

// SetRotation sets the camera rotation, normalizing into [0, 2π) before
// storing. Returns false without mutating if the normalized angle falls
// outside the rotation boundaries. The published delta is the shortest
// signed arc from the old rotation, never the raw difference.
func (c *Camera) SetRotation(r float64) bool {
	n := NormalizeAngle(r)
	if !c.rotationBoundaries.contains(n) {
		return false
	}
	delta := AngleSpan(c.rotation, n)
	if delta == 0 {
		return true
	}
	c.rotation = n
	c.publisher.NotifyRotate(RotateEvent{DeltaRotation: delta}, c.State())
	return true
}

// --- Transforms and coordinate conversion ---

// Transform composes the world-to-device matrix: scale by devicePixelRatio,
// translate to the viewport center, rotate by the negative camera rotation,
// scale by the zoom level, translate by the negative camera position.
//
// alignCoordinateSystem selects the Y-axis convention: true keeps the screen
// convention (Y-down, matching Canvas2D); false flips Y around the viewport
// center for math-convention (Y-up) backends.
func (c *Camera) Transform(devicePixelRatio float64, alignCoordinateSystem bool) Matrix {
	m := scaling(devicePixelRatio, devicePixelRatio).
		Mul(translation(c.viewPortWidth/2, c.viewPortHeight/2))
	if !alignCoordinateSystem {
		m = m.Mul(scaling(1, -1))
	}
	return m.
		Mul(rotation(-c.rotation)).
		Mul(scaling(c.zoomLevel, c.zoomLevel)).
		Mul(translation(-c.position.X, -c.position.Y))
}

// TRS returns the camera transform decomposed into scale, rotation, and
// translation components, for backends that want separate transform parts
// rather than a matrix.
func (c *Camera) TRS(devicePixelRatio float64, alignCoordinateSystem bool) (scale Point, rot float64, translate Point) {
	m := c.Transform(devicePixelRatio, alignCoordinateSystem)
	sx := math.Hypot(m.A, m.B)
	det := m.A*m.D - m.C*m.B
	sy := sx
	if sx != 0 {
		sy = det / sx
	}
	return Point{X: sx, Y: sy}, math.Atan2(m.B, m.A), Point{X: m.E, Y: m.F}
}

// ViewPortToWorld converts a viewport-space point (origin top-left) to world
// space, anchored at the viewport center.
func (c *Camera) ViewPortToWorld(p Point) Point {
	center := Point{X: c.viewPortWidth / 2, Y: c.viewPortHeight / 2}
	return c.position.Add(p.Sub(center).Scale(1 / c.zoomLevel).Rotate(c.rotation))
}

// WorldToViewPort converts a world-space point to viewport space. Exact
// inverse of ViewPortToWorld.
func (c *Camera) WorldToViewPort(p Point) Point {
	center := Point{X: c.viewPortWidth / 2, Y: c.viewPortHeight / 2}
	return center.Add(p.Sub(c.position).Rotate(-c.rotation).Scale(c.zoomLevel))
}

// --- Viewport-fit helpers ---

// visibleHalfExtents returns half the width and height of the world-space
// AABB of the rotated viewport at the given zoom.
func (c *Camera) visibleHalfExtents(zoom, rot float64) (hw, hh float64) {
	sin, cos := math.Sincos(rot)
	absSin, absCos := math.Abs(sin), math.Abs(cos)
	hw = (c.viewPortWidth*absCos + c.viewPortHeight*absSin) / (2 * zoom)
	hh = (c.viewPortWidth*absSin + c.viewPortHeight*absCos) / (2 * zoom)
	return hw, hh
}

// MinZoomForDimensions returns the smallest zoom level at which the entire
// viewport, at the current rotation, still fits inside the world boundaries.
// Returns 0 when the boundaries are open on any axis the viewport spans.
// Adapters enforcing the viewport-fit policy raise the minimum zoom to this
// value so the pan clamp can assume containment is achievable.
func (c *Camera) MinZoomForDimensions() float64 {
	hw, hh := c.visibleHalfExtents(1, c.rotation)
	boundsW := c.boundaries.MaxX - c.boundaries.MinX
	boundsH := c.boundaries.MaxY - c.boundaries.MinY

	minZoom := 0.0
	if !math.IsInf(boundsW, 1) {
		if boundsW <= 0 {
			return math.Inf(1)
		}
		minZoom = math.Max(minZoom, 2*hw/boundsW)
	}
	if !math.IsInf(boundsH, 1) {
		if boundsH <= 0 {
			return math.Inf(1)
		}
		minZoom = math.Max(minZoom, 2*hh/boundsH)
	}
	return minZoom
}
