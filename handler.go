package vantage

import "math"

// PanConfig is per-invocation pan policy. Restrict flags zero out disallowed
// axes (world axes for RestrictX/Y, camera-relative axes for the Relative
// variants); LimitEntireViewPort strengthens the boundary clamp so the whole
// visible rectangle stays inside the world boundaries, not just the camera
// center.
type PanConfig struct {
	RestrictX           bool
	RestrictY           bool
	RestrictRelativeX   bool
	RestrictRelativeY   bool
	LimitEntireViewPort bool
}

// ZoomConfig is per-invocation zoom policy.
type ZoomConfig struct {
	Restrict bool // reject all zoom changes
	Clamp    bool // clamp the target into the camera's zoom boundaries
}

// RotationConfig is per-invocation rotation policy.
type RotationConfig struct {
	Restrict bool // reject all rotation changes
	Clamp    bool // clamp the target into the camera's rotation boundaries
}

// Handler is one stage of a pipeline: it refines a candidate value under the
// given camera and policy and hands the result to the next stage. Handlers
// never fail; an impossible request degenerates to a value that produces no
// movement.
type Handler[V, C any] func(value V, camera *Camera, config C) V

// Chain composes handlers left to right: the returned handler applies the
// first handler to the initial value, the second to its result, and so on.
// The apply order is part of the contract — clamping must see the restricted
// value, and the final commit must see the clamped one.
func Chain[V, C any](handlers ...Handler[V, C]) Handler[V, C] {
	return func(v V, camera *Camera, config C) V {
		for _, h := range handlers {
			v = h(v, camera, config)
		}
		return v
	}
}

// --- Pan handlers ---

// restrictDelta zeroes the components of a world-space delta disallowed by
// the config. Relative restrictions act on the camera's own axes.
func restrictDelta(delta Point, camera *Camera, config PanConfig) Point {
	if config.RestrictX {
		delta.X = 0
	}
	if config.RestrictY {
		delta.Y = 0
	}
	if config.RestrictRelativeX || config.RestrictRelativeY {
		local := delta.Rotate(-camera.rotation)
		if config.RestrictRelativeX {
			local.X = 0
		}
		if config.RestrictRelativeY {
			local.Y = 0
		}
		delta = local.Rotate(camera.rotation)
	}
	return delta
}

// clampDestination projects a candidate destination into the camera's
// boundaries. With LimitEntireViewPort the boundaries are inset by the
// world-space half extents of the rotated viewport; if the viewport does not
// fit at all, the camera does not move (callers keep that situation away by
// raising the minimum zoom, see Camera.MinZoomForDimensions).
func clampDestination(dest Point, camera *Camera, config PanConfig) Point {
	if !config.LimitEntireViewPort {
		return camera.boundaries.ClampPoint(dest)
	}
	hw, hh := camera.visibleHalfExtents(camera.zoomLevel, camera.rotation)
	inset := Boundaries{
		MinX: camera.boundaries.MinX + hw,
		MinY: camera.boundaries.MinY + hh,
		MaxX: camera.boundaries.MaxX - hw,
		MaxY: camera.boundaries.MaxY - hh,
	}
	if inset.MinX > inset.MaxX || inset.MinY > inset.MaxY {
		return camera.position
	}
	return inset.ClampPoint(dest)
}

// RestrictPanDelta zeroes disallowed components of a world-space pan delta.
func RestrictPanDelta(delta Point, camera *Camera, config PanConfig) Point {
	return restrictDelta(delta, camera, config)
}

// ClampPanDelta clamps the delta's implied destination into the boundaries
// and returns the delta reaching the clamped destination.
func ClampPanDelta(delta Point, camera *Camera, config PanConfig) Point {
	dest := camera.position.Add(delta)
	return clampDestination(dest, camera, config).Sub(camera.position)
}

// CommitPanDelta applies the delta to the camera. Terminal pan-by handler.
func CommitPanDelta(delta Point, camera *Camera, _ PanConfig) Point {
	camera.SetPosition(camera.position.Add(delta))
	return delta
}

// RestrictPanDestination zeroes disallowed components of the movement toward
// a destination, returning the reachable destination.
func RestrictPanDestination(dest Point, camera *Camera, config PanConfig) Point {
	delta := restrictDelta(dest.Sub(camera.position), camera, config)
	return camera.position.Add(delta)
}

// ClampPanDestination projects the destination into the boundaries.
func ClampPanDestination(dest Point, camera *Camera, config PanConfig) Point {
	return clampDestination(dest, camera, config)
}

// CommitPanDestination moves the camera to the destination. Terminal pan-to
// handler.
func CommitPanDestination(dest Point, camera *Camera, _ PanConfig) Point {
	camera.SetPosition(dest)
	return dest
}

// --- Zoom handlers ---

// ZoomRequest is the value flowing through a zoom pipeline: a destination
// zoom level and the viewport-space anchor point that must stay visually
// fixed while the zoom is applied.
type ZoomRequest struct {
	TargetZoom float64
	Anchor     Point
}

// RestrictZoom rejects the zoom change entirely when the config says so,
// degenerating the request to the current zoom level.
func RestrictZoom(req ZoomRequest, camera *Camera, config ZoomConfig) ZoomRequest {
	if config.Restrict {
		req.TargetZoom = camera.zoomLevel
	}
	return req
}

// ClampZoom clamps the target into the camera's zoom boundaries. Zero or
// negative targets degenerate to the current zoom level.
func ClampZoom(req ZoomRequest, camera *Camera, config ZoomConfig) ZoomRequest {
	if req.TargetZoom <= 0 {
		req.TargetZoom = camera.zoomLevel
		return req
	}
	if config.Clamp {
		req.TargetZoom = camera.zoomBoundaries.clamp(req.TargetZoom)
	}
	return req
}

// CommitZoom applies the zoom and compensates the camera position so the
// anchor's world coordinate stays under the same viewport point. Terminal
// zoom handler.
func CommitZoom(req ZoomRequest, camera *Camera, _ ZoomConfig) ZoomRequest {
	if req.TargetZoom == camera.zoomLevel {
		return req
	}
	anchorWorld := camera.ViewPortToWorld(req.Anchor)
	if !camera.SetZoomLevel(req.TargetZoom) {
		return req
	}
	center := Point{X: camera.viewPortWidth / 2, Y: camera.viewPortHeight / 2}
	pos := anchorWorld.Sub(req.Anchor.Sub(center).Scale(1 / camera.zoomLevel).Rotate(camera.rotation))
	camera.SetPosition(camera.boundaries.ClampPoint(pos))
	return req
}

// --- Rotation handlers ---

// clampRotationTarget projects a target rotation into the rotation
// boundaries, picking the nearer bound by shortest arc when outside.
func clampRotationTarget(target float64, camera *Camera) float64 {
	bounds := camera.rotationBoundaries
	if math.IsInf(bounds.Min, -1) && math.IsInf(bounds.Max, 1) {
		return target
	}
	n := NormalizeAngle(target)
	if bounds.contains(n) {
		return n
	}
	if math.Abs(AngleSpan(n, bounds.Min)) <= math.Abs(AngleSpan(n, bounds.Max)) {
		return bounds.Min
	}
	return bounds.Max
}

// RestrictRotateBy rejects the rotation entirely when the config says so.
func RestrictRotateBy(delta float64, _ *Camera, config RotationConfig) float64 {
	if config.Restrict {
		return 0
	}
	return delta
}

// ClampRotateBy clamps the delta's implied target into the rotation
// boundaries, returning the shortest arc reaching the clamped target.
func ClampRotateBy(delta float64, camera *Camera, config RotationConfig) float64 {
	if delta == 0 || !config.Clamp {
		return delta
	}
	target := clampRotationTarget(camera.rotation+delta, camera)
	return AngleSpan(camera.rotation, target)
}

// CommitRotateBy applies the delta to the camera. Terminal rotate-by handler.
func CommitRotateBy(delta float64, camera *Camera, _ RotationConfig) float64 {
	camera.SetRotation(camera.rotation + delta)
	return delta
}

// RestrictRotateTo rejects the rotation entirely when the config says so.
func RestrictRotateTo(target float64, camera *Camera, config RotationConfig) float64 {
	if config.Restrict {
		return camera.rotation
	}
	return target
}

// ClampRotateTo clamps the target into the rotation boundaries.
func ClampRotateTo(target float64, camera *Camera, config RotationConfig) float64 {
	if !config.Clamp {
		return target
	}
	return clampRotationTarget(target, camera)
}

// CommitRotateTo rotates the camera to the target. Terminal rotate-to
// handler.
func CommitRotateTo(target float64, camera *Camera, _ RotationConfig) float64 {
	camera.SetRotation(target)
	return target
}

// --- Default chains ---

// The default pipelines, composed restrict → clamp → commit. The rig invokes
// these; custom pipelines are built with Chain from the exported handlers.
var (
	defaultPanBy    = Chain(RestrictPanDelta, ClampPanDelta, CommitPanDelta)
	defaultPanTo    = Chain(RestrictPanDestination, ClampPanDestination, CommitPanDestination)
	defaultZoomTo   = Chain(RestrictZoom, ClampZoom, CommitZoom)
	defaultRotateBy = Chain(RestrictRotateBy, ClampRotateBy, CommitRotateBy)
	defaultRotateTo = Chain(RestrictRotateTo, ClampRotateTo, CommitRotateTo)
)
