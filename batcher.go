package vantage

import (
	"math"
	"time"
)

// UpdateKind discriminates the two shapes a batched update can take: a
// relative delta or an absolute destination.
type UpdateKind uint8

const (
	UpdateDelta       UpdateKind = iota // relative change, accumulated across the frame
	UpdateDestination                   // absolute target, later destination wins
)

// PositionUpdate is the single net position change emitted for one frame.
type PositionUpdate struct {
	Kind        UpdateKind
	Delta       Point // valid when Kind == UpdateDelta
	Destination Point // valid when Kind == UpdateDestination
}

// ZoomUpdate is the single net zoom change emitted for one frame. Anchor is
// the viewport point that must stay fixed under the zoom; HasAnchor reports
// whether one was supplied.
type ZoomUpdate struct {
	Kind        UpdateKind
	Delta       float64
	Destination float64
	Anchor      Point
	HasAnchor   bool
}

// RotationUpdate is the single net rotation change emitted for one frame.
type RotationUpdate struct {
	Kind        UpdateKind
	Delta       float64
	Destination float64
}

// --- Subscriber registry shared by the three batchers ---

type updateSub[T any] struct {
	id uint64
	fn func(T)
}

type updateNotifier[T any] struct {
	subs   []updateSub[T]
	nextID uint64
}

func (n *updateNotifier[T]) add(fn func(T)) uint64 {
	n.nextID++
	n.subs = append(n.subs, updateSub[T]{id: n.nextID, fn: fn})
	return n.nextID
}

func (n *updateNotifier[T]) remove(id uint64) {
	for i := range n.subs {
		if n.subs[i].id == id {
			copy(n.subs[i:], n.subs[i+1:])
			n.subs[len(n.subs)-1] = updateSub[T]{}
			n.subs = n.subs[:len(n.subs)-1]
			return
		}
	}
}

func (n *updateNotifier[T]) emit(v T) {
	for _, s := range n.subs {
		s.fn(v)
	}
}

// UpdateSubscription allows cancelling a batcher update callback.
type UpdateSubscription[T any] struct {
	n  *updateNotifier[T]
	id uint64
}

// Cancel unregisters the callback. Cancelling twice is a no-op.
func (s UpdateSubscription[T]) Cancel() {
	if s.n != nil {
		s.n.remove(s.id)
	}
}

// --- Position batcher ---

// PositionBatcher coalesces position requests between two Process calls.
// Queued deltas accumulate additively; a queued destination discards any
// pending delta and replaces any pending destination; deltas queued after a
// destination fold into that destination. Exactly one net update is emitted
// per Process call, or none if nothing was queued.
type PositionBatcher struct {
	hasDest  bool
	dest     Point
	hasDelta bool
	delta    Point

	notifier updateNotifier[PositionUpdate]
}

// NewPositionBatcher creates an empty position batcher.
func NewPositionBatcher() *PositionBatcher {
	return &PositionBatcher{}
}

// QueueBy queues a relative position change.
func (b *PositionBatcher) QueueBy(delta Point) {
	if b.hasDest {
		b.dest = b.dest.Add(delta)
		return
	}
	b.delta = b.delta.Add(delta)
	b.hasDelta = true
}

// QueueTo queues an absolute destination, discarding any pending delta and
// replacing any pending destination.
func (b *PositionBatcher) QueueTo(dest Point) {
	b.dest = dest
	b.hasDest = true
	b.hasDelta = false
	b.delta = Point{}
}

// OnUpdate registers a callback invoked synchronously from Process with the
// same update Process returns.
func (b *PositionBatcher) OnUpdate(fn func(PositionUpdate)) UpdateSubscription[PositionUpdate] {
	id := b.notifier.add(fn)
	return UpdateSubscription[PositionUpdate]{n: &b.notifier, id: id}
}

// Process drains the queue: returns the single net update for the frame (or
// nil if nothing was queued), resets the accumulators, and notifies
// subscribers with the returned value.
func (b *PositionBatcher) Process() *PositionUpdate {
	var u *PositionUpdate
	switch {
	case b.hasDest:
		u = &PositionUpdate{Kind: UpdateDestination, Destination: b.dest}
	case b.hasDelta:
		u = &PositionUpdate{Kind: UpdateDelta, Delta: b.delta}
	}
	b.hasDest = false
	b.hasDelta = false
	b.dest = Point{}
	b.delta = Point{}
	if u != nil {
		b.notifier.emit(*u)
	}
	return u
}

// --- Zoom batcher ---

// ZoomBatcher coalesces zoom requests between two Process calls, with the
// same delta/destination rules as PositionBatcher plus anchor handling: two
// anchored zoom-to requests in the same frame are algebraically combined
// into one equivalent anchored operation, so applying the single combined
// update produces the same net viewport effect as applying both in sequence
// (no visible double jump). Three or more anchored requests fold pairwise,
// left to right.
//
// The combination algebra needs the zoom level the update will eventually be
// applied from, so the batcher holds the camera it batches for.
type ZoomBatcher struct {
	camera *Camera

	hasDest   bool
	dest      float64
	hasDelta  bool
	delta     float64
	anchor    Point
	hasAnchor bool

	// instantaneous velocity estimate, informational only
	clock     func() time.Time
	lastQueue time.Time
	hasLast   bool
	prevValue float64
	velocity  float64

	notifier updateNotifier[ZoomUpdate]
}

// NewZoomBatcher creates an empty zoom batcher for the given camera.
func NewZoomBatcher(camera *Camera) *ZoomBatcher {
	return &ZoomBatcher{camera: camera, clock: time.Now}
}

// QueueBy queues a relative zoom change with no anchor.
func (b *ZoomBatcher) QueueBy(delta float64) {
	if b.hasDest {
		b.dest += delta
		b.trackVelocity(b.dest)
		return
	}
	b.delta += delta
	b.hasDelta = true
	b.trackVelocity(b.camera.zoomLevel + b.delta)
}

// QueueByAt queues a relative zoom change anchored at a viewport point. The
// most recent anchor wins for the frame's emitted update.
func (b *ZoomBatcher) QueueByAt(delta float64, anchor Point) {
	b.anchor = anchor
	b.hasAnchor = true
	b.QueueBy(delta)
}

// QueueTo queues an absolute zoom destination with no anchor, discarding any
// pending delta and replacing any pending destination.
func (b *ZoomBatcher) QueueTo(dest float64) {
	b.dest = dest
	b.hasDest = true
	b.hasDelta = false
	b.delta = 0
	b.hasAnchor = false
	b.trackVelocity(dest)
}

// QueueToAt queues an absolute zoom destination anchored at a viewport
// point. If an anchored destination is already pending, the two are combined
// into a single equivalent anchored operation; otherwise the destination
// replaces whatever is pending, like QueueTo.
func (b *ZoomBatcher) QueueToAt(dest float64, anchor Point) {
	if b.hasDest && b.hasAnchor {
		b.dest, b.anchor = b.combineZoomTo(b.dest, b.anchor, dest, anchor)
	} else {
		b.dest = dest
		b.anchor = anchor
	}
	b.hasDest = true
	b.hasAnchor = true
	b.hasDelta = false
	b.delta = 0
	b.trackVelocity(b.dest)
}

// combineZoomTo folds two anchored zoom-to operations into one. Applying
// (z1 at p1) then (z2 at p2) from the camera's current zoom z0 shifts the
// position by R·(p1−c)(1/z0−1/z1) + R·(p2−c)(1/z1−1/z2); a single operation
// (z2 at q) shifts it by R·(q−c)(1/z0−1/z2). Solving for q gives the
// effective anchor. When the net zoom change is ~zero the pan component has
// no anchored-zoom encoding, so the later operation simply wins.
func (b *ZoomBatcher) combineZoomTo(z1 float64, p1 Point, z2 float64, p2 Point) (float64, Point) {
	z0 := b.camera.zoomLevel
	if z1 <= 0 || z2 <= 0 {
		return z2, p2
	}
	denom := 1/z0 - 1/z2
	if math.Abs(denom) < 1e-12 {
		return z2, p2
	}
	c := Point{X: b.camera.viewPortWidth / 2, Y: b.camera.viewPortHeight / 2}
	v := p1.Sub(c).Scale(1/z0 - 1/z1).Add(p2.Sub(c).Scale(1/z1 - 1/z2)).Scale(1 / denom)
	return z2, c.Add(v)
}

// trackVelocity recomputes the instantaneous zoom velocity from the change
// in the requested value since the previous queue call.
func (b *ZoomBatcher) trackVelocity(value float64) {
	now := b.clock()
	if b.hasLast {
		dt := math.Max(1, float64(now.Sub(b.lastQueue).Milliseconds()))
		b.velocity = (value - b.prevValue) / dt
	}
	b.lastQueue = now
	b.prevValue = value
	b.hasLast = true
}

// Velocity returns the most recent zoom velocity estimate in zoom units per
// millisecond. Informational only; it never feeds back into clamping.
func (b *ZoomBatcher) Velocity() float64 { return b.velocity }

// OnUpdate registers a callback invoked synchronously from Process with the
// same update Process returns.
func (b *ZoomBatcher) OnUpdate(fn func(ZoomUpdate)) UpdateSubscription[ZoomUpdate] {
	id := b.notifier.add(fn)
	return UpdateSubscription[ZoomUpdate]{n: &b.notifier, id: id}
}

// Process drains the queue: returns the single net update for the frame (or
// nil), resets the accumulators, and notifies subscribers.
func (b *ZoomBatcher) Process() *ZoomUpdate {
	var u *ZoomUpdate
	switch {
	case b.hasDest:
		u = &ZoomUpdate{Kind: UpdateDestination, Destination: b.dest, Anchor: b.anchor, HasAnchor: b.hasAnchor}
	case b.hasDelta:
		u = &ZoomUpdate{Kind: UpdateDelta, Delta: b.delta, Anchor: b.anchor, HasAnchor: b.hasAnchor}
	}
	b.hasDest = false
	b.hasDelta = false
	b.dest = 0
	b.delta = 0
	b.hasAnchor = false
	b.anchor = Point{}
	if u != nil {
		b.notifier.emit(*u)
	}
	return u
}

// --- Rotation batcher ---

// RotationBatcher coalesces rotation requests between two Process calls,
// with the same delta/destination rules as PositionBatcher.
type RotationBatcher struct {
	hasDest  bool
	dest     float64
	hasDelta bool
	delta    float64

	notifier updateNotifier[RotationUpdate]
}

// NewRotationBatcher creates an empty rotation batcher.
func NewRotationBatcher() *RotationBatcher {
	return &RotationBatcher{}
}

// QueueBy queues a relative rotation change.
func (b *RotationBatcher) QueueBy(delta float64) {
	if b.hasDest {
		b.dest += delta
		return
	}
	b.delta += delta
	b.hasDelta = true
}

// QueueTo queues an absolute rotation destination, discarding any pending
// delta and replacing any pending destination.
func (b *RotationBatcher) QueueTo(dest float64) {
	b.dest = dest
	b.hasDest = true
	b.hasDelta = false
	b.delta = 0
}

// OnUpdate registers a callback invoked synchronously from Process with the
// same update Process returns.
func (b *RotationBatcher) OnUpdate(fn func(RotationUpdate)) UpdateSubscription[RotationUpdate] {
	id := b.notifier.add(fn)
	return UpdateSubscription[RotationUpdate]{n: &b.notifier, id: id}
}

// Process drains the queue: returns the single net update for the frame (or
// nil), resets the accumulators, and notifies subscribers.
func (b *RotationBatcher) Process() *RotationUpdate {
	var u *RotationUpdate
	switch {
	case b.hasDest:
		u = &RotationUpdate{Kind: UpdateDestination, Destination: b.dest}
	case b.hasDelta:
		u = &RotationUpdate{Kind: UpdateDelta, Delta: b.delta}
	}
	b.hasDest = false
	b.hasDelta = false
	b.dest = 0
	b.delta = 0
	if u != nil {
		b.notifier.emit(*u)
	}
	return u
}
