package vantage

import "math"

// Point is a 2D point or vector, used for world positions, viewport
// coordinates, deltas, and anchors throughout the API.
type Point struct {
	X, Y float64
}

// Add returns p + q componentwise.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q componentwise.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Rotate returns p rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{cos*p.X - sin*p.Y, sin*p.X + cos*p.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a min/max interval. Either side may be infinite.
type Range struct {
	Min, Max float64
}

// normalized returns the range with Min and Max swapped if Min > Max.
// Boundary setters accept swapped inputs rather than erroring.
func (r Range) normalized() Range {
	if r.Min > r.Max {
		return Range{Min: r.Max, Max: r.Min}
	}
	return r
}

// clamp returns v clamped into the range.
func (r Range) clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(v, r.Max))
}

// contains reports whether v lies inside the range.
func (r Range) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Boundaries is a world-space rectangle constraining camera position.
// Any side may be set to an infinity to leave that side unbounded.
type Boundaries struct {
	MinX, MinY, MaxX, MaxY float64
}

// UnboundedBoundaries returns boundaries with all four sides open.
func UnboundedBoundaries() Boundaries {
	inf := math.Inf(1)
	return Boundaries{MinX: -inf, MinY: -inf, MaxX: inf, MaxY: inf}
}

// normalized returns the boundaries with swapped sides fixed up, per axis.
func (b Boundaries) normalized() Boundaries {
	if b.MinX > b.MaxX {
		b.MinX, b.MaxX = b.MaxX, b.MinX
	}
	if b.MinY > b.MaxY {
		b.MinY, b.MaxY = b.MaxY, b.MinY
	}
	return b
}

// Contains reports whether p lies inside the boundaries componentwise.
// Infinite sides impose no constraint.
func (b Boundaries) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX &&
		p.Y >= b.MinY && p.Y <= b.MaxY
}

// ClampPoint projects p into the boundaries componentwise.
func (b Boundaries) ClampPoint(p Point) Point {
	return Point{
		X: math.Max(b.MinX, math.Min(p.X, b.MaxX)),
		Y: math.Max(b.MinY, math.Min(p.Y, b.MaxY)),
	}
}

// --- Defaults ---

// Default configuration values, applied by NewCamera and config.Default.
const (
	DefaultViewPortWidth  = 1000.0
	DefaultViewPortHeight = 1000.0
	DefaultBoundary       = 10000.0 // world extends ±DefaultBoundary on both axes
	DefaultMinZoom        = 0.1
	DefaultMaxZoom        = 10.0
)

// CameraEventType identifies a kind of committed camera-state change.
type CameraEventType uint8

const (
	CameraEventPan    CameraEventType = iota // position changed
	CameraEventZoom                          // zoom level changed
	CameraEventRotate                        // rotation changed
	CameraEventAll                           // subscribe key for every change
)

// String returns the event name, for diagnostics.
func (t CameraEventType) String() string {
	switch t {
	case CameraEventPan:
		return "pan"
	case CameraEventZoom:
		return "zoom"
	case CameraEventRotate:
		return "rotate"
	case CameraEventAll:
		return "all"
	default:
		return "unknown"
	}
}

// InputEventType identifies a primitive input event fed to the gesture
// classifier. Event parsers (e.g. package ebitendriver) translate their
// native events into exactly this vocabulary.
type InputEventType uint8

const (
	InputLeftPointerDown   InputEventType = iota // primary button pressed
	InputLeftPointerUp                           // primary button released
	InputLeftPointerMove                         // pointer moved with primary button held
	InputMiddlePointerDown                       // middle button pressed
	InputMiddlePointerUp                         // middle button released
	InputMiddlePointerMove                       // pointer moved with middle button held
	InputPointerMove                             // pointer moved with no button held
	InputScroll                                  // wheel/trackpad scroll
	InputScrollWithCtrl                          // scroll with ctrl held (pinch on trackpads)
	InputSpacebarDown                            // spacebar pressed
	InputSpacebarUp                              // spacebar released
	InputLockOnObject                            // camera locked onto an object
	InputUnlock                                  // lock released
	InputTransitionStart                         // programmatic camera animation started
	InputTransitionEnd                           // programmatic camera animation finished
)

// String returns the primitive event name, for diagnostics.
func (t InputEventType) String() string {
	switch t {
	case InputLeftPointerDown:
		return "leftPointerDown"
	case InputLeftPointerUp:
		return "leftPointerUp"
	case InputLeftPointerMove:
		return "leftPointerMove"
	case InputMiddlePointerDown:
		return "middlePointerDown"
	case InputMiddlePointerUp:
		return "middlePointerUp"
	case InputMiddlePointerMove:
		return "middlePointerMove"
	case InputPointerMove:
		return "pointerMove"
	case InputScroll:
		return "scroll"
	case InputScrollWithCtrl:
		return "scrollWithCtrl"
	case InputSpacebarDown:
		return "spacebarDown"
	case InputSpacebarUp:
		return "spacebarUp"
	case InputLockOnObject:
		return "lockOnObject"
	case InputUnlock:
		return "unlock"
	case InputTransitionStart:
		return "transitionStart"
	case InputTransitionEnd:
		return "transitionEnd"
	default:
		return "unknown"
	}
}

// InputEvent is a primitive input event with its payload. Position is the
// pointer position in viewport coordinates; Delta is the pointer movement
// since the previous event; ScrollDelta carries wheel movement.
type InputEvent struct {
	Type        InputEventType
	Position    Point
	Delta       Point
	ScrollDelta Point
}
