package vantage

// CameraRig binds the pan, zoom, and rotation pipelines to one camera and
// holds the policy configs supplied to them on every invocation. All rig
// operations are side-effect only; results are observed through the
// camera's publisher, not return values.
type CameraRig struct {
	camera *Camera

	panConfig      PanConfig
	zoomConfig     ZoomConfig
	rotationConfig RotationConfig
}

// NewCameraRig creates a rig for the given camera with the default policy:
// viewport-fit panning, clamped zoom and rotation, nothing restricted.
func NewCameraRig(camera *Camera) *CameraRig {
	return &CameraRig{
		camera:         camera,
		panConfig:      PanConfig{LimitEntireViewPort: true},
		zoomConfig:     ZoomConfig{Clamp: true},
		rotationConfig: RotationConfig{Clamp: true},
	}
}

// Camera returns the camera this rig drives.
func (r *CameraRig) Camera() *Camera { return r.camera }

// PanPolicy returns the rig's pan config.
func (r *CameraRig) PanPolicy() PanConfig { return r.panConfig }

// SetPanPolicy replaces the pan config used on subsequent pans.
func (r *CameraRig) SetPanPolicy(cfg PanConfig) { r.panConfig = cfg }

// ZoomPolicy returns the rig's zoom config.
func (r *CameraRig) ZoomPolicy() ZoomConfig { return r.zoomConfig }

// SetZoomPolicy replaces the zoom config used on subsequent zooms.
func (r *CameraRig) SetZoomPolicy(cfg ZoomConfig) { r.zoomConfig = cfg }

// RotationPolicy returns the rig's rotation config.
func (r *CameraRig) RotationPolicy() RotationConfig { return r.rotationConfig }

// SetRotationPolicy replaces the rotation config used on subsequent rotates.
func (r *CameraRig) SetRotationPolicy(cfg RotationConfig) { r.rotationConfig = cfg }

// ViewPortDeltaToWorldDelta converts a viewport-space delta (screen pixels)
// into a world-space delta: viewport pixels are rotation- and zoom-invariant
// from the user's perspective, so the conversion un-rotates by the camera
// rotation and un-scales by the zoom level.
func (r *CameraRig) ViewPortDeltaToWorldDelta(delta Point) Point {
	return delta.Rotate(r.camera.rotation).Scale(1 / r.camera.zoomLevel)
}

// PanByViewPort pans the camera by a viewport-space delta.
func (r *CameraRig) PanByViewPort(delta Point) {
	r.PanBy(r.ViewPortDeltaToWorldDelta(delta))
}

// PanBy pans the camera by a world-space delta through the pan pipeline.
func (r *CameraRig) PanBy(delta Point) {
	defaultPanBy(delta, r.camera, r.panConfig)
}

// PanTo pans the camera to a world-space destination through the pan
// pipeline.
func (r *CameraRig) PanTo(dest Point) {
	defaultPanTo(dest, r.camera, r.panConfig)
}

// ZoomByAt zooms by a delta relative to the current zoom level, keeping the
// viewport-space anchor visually fixed.
func (r *CameraRig) ZoomByAt(delta float64, anchor Point) {
	r.ZoomToAt(r.camera.zoomLevel+delta, anchor)
}

// ZoomToAt zooms to a target level, keeping the viewport-space anchor
// visually fixed.
func (r *CameraRig) ZoomToAt(target float64, anchor Point) {
	defaultZoomTo(ZoomRequest{TargetZoom: target, Anchor: anchor}, r.camera, r.zoomConfig)
}

// ZoomTo zooms to a target level around the viewport center.
func (r *CameraRig) ZoomTo(target float64) {
	r.ZoomToAt(target, Point{X: r.camera.viewPortWidth / 2, Y: r.camera.viewPortHeight / 2})
}

// RotateBy rotates the camera by a signed delta through the rotation
// pipeline.
func (r *CameraRig) RotateBy(delta float64) {
	defaultRotateBy(delta, r.camera, r.rotationConfig)
}

// RotateTo rotates the camera to a target angle through the rotation
// pipeline.
func (r *CameraRig) RotateTo(target float64) {
	defaultRotateTo(target, r.camera, r.rotationConfig)
}
