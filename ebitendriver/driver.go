// Package ebitendriver translates Ebitengine input polling into the primitive
// input event vocabulary consumed by a gesture classifier.
package ebitendriver

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vantage2d/vantage"
)

// Sink receives the synthesized primitive events, one at a time in the order
// they occurred. *vantage.GestureClassifier satisfies it.
type Sink interface {
	Feed(ev vantage.InputEvent)
}

// Driver polls Ebitengine once per tick and synthesizes primitive input
// events by diffing against the previous tick's state. The first active
// touch acts as the primary pointer, so single-finger drags pan like mouse
// drags. Call Update from the game's Update method.
type Driver struct {
	sink Sink

	prevCursor vantage.Point
	prevLeft   bool
	prevMiddle bool
	prevSpace  bool
	started    bool

	touchIDs  []ebiten.TouchID
	touchID   ebiten.TouchID
	touchPos  vantage.Point
	touchDown bool
}

// New creates a driver feeding the given sink.
func New(sink Sink) *Driver {
	return &Driver{sink: sink}
}

// ctrlHeld reads the current control key state, either variant.
func ctrlHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight)
}

// Update polls the mouse and keyboard and feeds the resulting events into
// the sink. Button edges are emitted before movement so a press-and-drag
// within one tick still classifies as a drag.
func (d *Driver) Update() {
	mx, my := ebiten.CursorPosition()
	cursor := vantage.Point{X: float64(mx), Y: float64(my)}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	space := ebiten.IsKeyPressed(ebiten.KeySpace)
	ctrl := ctrlHeld()

	if !d.started {
		// First tick establishes the baseline without emitting a move.
		d.started = true
		d.prevCursor = cursor
	}

	if left && !d.prevLeft {
		d.sink.Feed(vantage.InputEvent{Type: vantage.InputLeftPointerDown, Position: cursor})
	}
	if !left && d.prevLeft {
		d.sink.Feed(vantage.InputEvent{Type: vantage.InputLeftPointerUp, Position: cursor})
	}
	if middle && !d.prevMiddle {
		d.sink.Feed(vantage.InputEvent{Type: vantage.InputMiddlePointerDown, Position: cursor})
	}
	if !middle && d.prevMiddle {
		d.sink.Feed(vantage.InputEvent{Type: vantage.InputMiddlePointerUp, Position: cursor})
	}
	if space && !d.prevSpace {
		d.sink.Feed(vantage.InputEvent{Type: vantage.InputSpacebarDown})
	}
	if !space && d.prevSpace {
		d.sink.Feed(vantage.InputEvent{Type: vantage.InputSpacebarUp})
	}

	delta := cursor.Sub(d.prevCursor)
	if delta.X != 0 || delta.Y != 0 {
		moveType := vantage.InputPointerMove
		switch {
		case left:
			moveType = vantage.InputLeftPointerMove
		case middle:
			moveType = vantage.InputMiddlePointerMove
		}
		d.sink.Feed(vantage.InputEvent{Type: moveType, Position: cursor, Delta: delta})
	}

	wx, wy := ebiten.Wheel()
	if wx != 0 || wy != 0 {
		scrollType := vantage.InputScroll
		if ctrl {
			scrollType = vantage.InputScrollWithCtrl
		}
		d.sink.Feed(vantage.InputEvent{
			Type:        scrollType,
			Position:    cursor,
			ScrollDelta: vantage.Point{X: wx, Y: wy},
		})
	}

	d.prevCursor = cursor
	d.prevLeft = left
	d.prevMiddle = middle
	d.prevSpace = space

	d.updateTouch()
}

// updateTouch tracks the first active touch as the primary pointer.
func (d *Driver) updateTouch() {
	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])

	if !d.touchDown {
		if len(d.touchIDs) == 0 {
			return
		}
		d.touchID = d.touchIDs[0]
		tx, ty := ebiten.TouchPosition(d.touchID)
		d.touchPos = vantage.Point{X: float64(tx), Y: float64(ty)}
		d.touchDown = true
		d.sink.Feed(vantage.InputEvent{Type: vantage.InputLeftPointerDown, Position: d.touchPos})
		return
	}

	for _, id := range d.touchIDs {
		if id != d.touchID {
			continue
		}
		tx, ty := ebiten.TouchPosition(id)
		pos := vantage.Point{X: float64(tx), Y: float64(ty)}
		delta := pos.Sub(d.touchPos)
		if delta.X != 0 || delta.Y != 0 {
			d.sink.Feed(vantage.InputEvent{Type: vantage.InputLeftPointerMove, Position: pos, Delta: delta})
			d.touchPos = pos
		}
		return
	}

	// The tracked touch lifted this tick.
	d.touchDown = false
	d.sink.Feed(vantage.InputEvent{Type: vantage.InputLeftPointerUp, Position: d.touchPos})
}
