package vantage

// Decision is a mux's verdict on one input-driven camera request.
type Decision struct {
	AllowPassThrough bool
}

// Mux arbitrates between concurrent sources of camera-change requests: raw
// user input, programmatic animation, and locked/scripted control. The
// gesture classifier always fires into the mux; the mux decides whether the
// request reaches the camera, and may transform it on the way through. This
// is the single seam composing those sources without the lower layers
// knowing about each other.
type Mux interface {
	// NotifyPanInput receives a viewport-space pan delta from user input.
	NotifyPanInput(delta Point) Decision
	// NotifyZoomInput receives a zoom delta and its viewport-space anchor.
	NotifyZoomInput(delta float64, anchor Point) Decision
	// NotifyRotationInput receives a signed rotation delta.
	NotifyRotationInput(delta float64) Decision
}

// RelayMux is the default mux: it forwards every request straight to the
// rig and always allows pass-through.
type RelayMux struct {
	rig *CameraRig
}

// NewRelayMux creates a mux forwarding directly to the given rig.
func NewRelayMux(rig *CameraRig) *RelayMux {
	return &RelayMux{rig: rig}
}

// NotifyPanInput pans the rig by the viewport-space delta.
func (m *RelayMux) NotifyPanInput(delta Point) Decision {
	m.rig.PanByViewPort(delta)
	return Decision{AllowPassThrough: true}
}

// NotifyZoomInput zooms the rig by the delta at the anchor.
func (m *RelayMux) NotifyZoomInput(delta float64, anchor Point) Decision {
	m.rig.ZoomByAt(delta, anchor)
	return Decision{AllowPassThrough: true}
}

// NotifyRotationInput rotates the rig by the delta.
func (m *RelayMux) NotifyRotationInput(delta float64) Decision {
	m.rig.RotateBy(delta)
	return Decision{AllowPassThrough: true}
}

// BatchedMux routes accepted requests into per-frame batchers instead of
// applying them immediately, decoupling bursty input (many pointer moves per
// frame) from the render tick. Step drains all three batchers and applies
// the net updates through the rig, exactly once per frame.
type BatchedMux struct {
	rig      *CameraRig
	position *PositionBatcher
	zoom     *ZoomBatcher
	rotate   *RotationBatcher
}

// NewBatchedMux creates a mux batching into fresh batchers for the rig's
// camera. The batchers' committed updates are applied through the rig's
// pipelines when Step is called.
func NewBatchedMux(rig *CameraRig) *BatchedMux {
	m := &BatchedMux{
		rig:      rig,
		position: NewPositionBatcher(),
		zoom:     NewZoomBatcher(rig.Camera()),
		rotate:   NewRotationBatcher(),
	}
	m.position.OnUpdate(func(u PositionUpdate) {
		if u.Kind == UpdateDestination {
			m.rig.PanTo(u.Destination)
		} else {
			m.rig.PanBy(u.Delta)
		}
	})
	m.zoom.OnUpdate(func(u ZoomUpdate) {
		anchor := u.Anchor
		if !u.HasAnchor {
			cam := m.rig.Camera()
			anchor = Point{X: cam.ViewPortWidth() / 2, Y: cam.ViewPortHeight() / 2}
		}
		if u.Kind == UpdateDestination {
			m.rig.ZoomToAt(u.Destination, anchor)
		} else {
			m.rig.ZoomByAt(u.Delta, anchor)
		}
	})
	m.rotate.OnUpdate(func(u RotationUpdate) {
		if u.Kind == UpdateDestination {
			m.rig.RotateTo(u.Destination)
		} else {
			m.rig.RotateBy(u.Delta)
		}
	})
	return m
}

// PositionBatcher returns the batcher collecting pan requests.
func (m *BatchedMux) PositionBatcher() *PositionBatcher { return m.position }

// ZoomBatcher returns the batcher collecting zoom requests.
func (m *BatchedMux) ZoomBatcher() *ZoomBatcher { return m.zoom }

// RotationBatcher returns the batcher collecting rotation requests.
func (m *BatchedMux) RotationBatcher() *RotationBatcher { return m.rotate }

// NotifyPanInput queues the pan delta, converted to world space, for the
// next Step.
func (m *BatchedMux) NotifyPanInput(delta Point) Decision {
	m.position.QueueBy(m.rig.ViewPortDeltaToWorldDelta(delta))
	return Decision{AllowPassThrough: true}
}

// NotifyZoomInput queues the anchored zoom delta for the next Step.
func (m *BatchedMux) NotifyZoomInput(delta float64, anchor Point) Decision {
	m.zoom.QueueByAt(delta, anchor)
	return Decision{AllowPassThrough: true}
}

// NotifyRotationInput queues the rotation delta for the next Step.
func (m *BatchedMux) NotifyRotationInput(delta float64) Decision {
	m.rotate.QueueBy(delta)
	return Decision{AllowPassThrough: true}
}

// Step drains the three batchers, applying at most one net update each
// through the rig. Call once per animation-frame tick.
func (m *BatchedMux) Step() {
	m.position.Process()
	m.zoom.Process()
	m.rotate.Process()
}
