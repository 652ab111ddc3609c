package vantage

import "fmt"

// State is a value snapshot of a camera's intrinsic state, carried on every
// published event.
type State struct {
	Position  Point
	ZoomLevel float64
	Rotation  float64
}

// PanEvent carries the world-space position change of a committed pan.
type PanEvent struct {
	Diff Point
}

// ZoomEvent carries the zoom-level change of a committed zoom.
type ZoomEvent struct {
	DeltaZoom float64
}

// RotateEvent carries the rotation change of a committed rotate, computed as
// the shortest signed arc between the old and new rotation.
type RotateEvent struct {
	DeltaRotation float64
}

// Event is the discriminated union delivered to "all" subscribers. Type
// selects which of Pan/Zoom/Rotate is populated; State is always the camera
// state after the change.
type Event struct {
	Type   CameraEventType
	Pan    PanEvent
	Zoom   ZoomEvent
	Rotate RotateEvent
	State  State
}

// --- Subscriber registry ---

type panSub struct {
	id uint64
	fn func(PanEvent, State)
}

type zoomSub struct {
	id uint64
	fn func(ZoomEvent, State)
}

type rotateSub struct {
	id uint64
	fn func(RotateEvent, State)
}

type allSub struct {
	id uint64
	fn func(Event)
}

// Publisher notifies subscribers of committed camera-state changes.
// Subscribing the same callback twice registers it twice; callers own their
// idempotence. All notification is synchronous, in registration order.
type Publisher struct {
	pan    []panSub
	zoom   []zoomSub
	rotate []rotateSub
	all    []allSub
	nextID uint64
}

// NewPublisher creates an empty publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Subscription allows cancelling a registered camera-event callback.
type Subscription struct {
	id    uint64
	pub   *Publisher
	event CameraEventType
}

// Cancel unregisters this callback so it no longer fires.
// Cancelling twice is a no-op.
func (s Subscription) Cancel() {
	if s.pub == nil {
		return
	}
	switch s.event {
	case CameraEventPan:
		s.pub.pan = removePanSub(s.pub.pan, s.id)
	case CameraEventZoom:
		s.pub.zoom = removeZoomSub(s.pub.zoom, s.id)
	case CameraEventRotate:
		s.pub.rotate = removeRotateSub(s.pub.rotate, s.id)
	case CameraEventAll:
		s.pub.all = removeAllSub(s.pub.all, s.id)
	}
}

func removePanSub(s []panSub, id uint64) []panSub {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = panSub{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeZoomSub(s []zoomSub, id uint64) []zoomSub {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zoomSub{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeRotateSub(s []rotateSub, id uint64) []rotateSub {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = rotateSub{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeAllSub(s []allSub, id uint64) []allSub {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = allSub{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// OnPan registers a callback for committed pans.
func (p *Publisher) OnPan(fn func(PanEvent, State)) Subscription {
	p.nextID++
	p.pan = append(p.pan, panSub{id: p.nextID, fn: fn})
	return Subscription{id: p.nextID, pub: p, event: CameraEventPan}
}

// OnZoom registers a callback for committed zoom changes.
func (p *Publisher) OnZoom(fn func(ZoomEvent, State)) Subscription {
	p.nextID++
	p.zoom = append(p.zoom, zoomSub{id: p.nextID, fn: fn})
	return Subscription{id: p.nextID, pub: p, event: CameraEventZoom}
}

// OnRotate registers a callback for committed rotation changes.
func (p *Publisher) OnRotate(fn func(RotateEvent, State)) Subscription {
	p.nextID++
	p.rotate = append(p.rotate, rotateSub{id: p.nextID, fn: fn})
	return Subscription{id: p.nextID, pub: p, event: CameraEventRotate}
}

// OnAll registers a callback receiving every committed change as an Event.
func (p *Publisher) OnAll(fn func(Event)) Subscription {
	p.nextID++
	p.all = append(p.all, allSub{id: p.nextID, fn: fn})
	return Subscription{id: p.nextID, pub: p, event: CameraEventAll}
}

// On registers a callback for the given event key, delivering the
// discriminated Event form regardless of key. Panics on an unrecognized
// event key: that is API misuse, surfaced at integration time rather than
// silently dropped.
func (p *Publisher) On(event CameraEventType, fn func(Event)) Subscription {
	switch event {
	case CameraEventPan:
		return p.OnPan(func(e PanEvent, st State) {
			fn(Event{Type: CameraEventPan, Pan: e, State: st})
		})
	case CameraEventZoom:
		return p.OnZoom(func(e ZoomEvent, st State) {
			fn(Event{Type: CameraEventZoom, Zoom: e, State: st})
		})
	case CameraEventRotate:
		return p.OnRotate(func(e RotateEvent, st State) {
			fn(Event{Type: CameraEventRotate, Rotate: e, State: st})
		})
	case CameraEventAll:
		return p.OnAll(fn)
	default:
		panic(fmt.Sprintf("vantage: unknown camera event key %d", event))
	}
}

// --- Notification ---

// NotifyPan delivers a committed pan to pan and "all" subscribers.
func (p *Publisher) NotifyPan(e PanEvent, st State) {
	for _, s := range p.pan {
		s.fn(e, st)
	}
	for _, s := range p.all {
		s.fn(Event{Type: CameraEventPan, Pan: e, State: st})
	}
}

// NotifyZoom delivers a committed zoom change to zoom and "all" subscribers.
func (p *Publisher) NotifyZoom(e ZoomEvent, st State) {
	for _, s := range p.zoom {
		s.fn(e, st)
	}
	for _, s := range p.all {
		s.fn(Event{Type: CameraEventZoom, Zoom: e, State: st})
	}
}

// NotifyRotate delivers a committed rotation change to rotate and "all"
// subscribers.
func (p *Publisher) NotifyRotate(e RotateEvent, st State) {
	for _, s := range p.rotate {
		s.fn(e, st)
	}
	for _, s := range p.all {
		s.fn(Event{Type: CameraEventRotate, Rotate: e, State: st})
	}
}
