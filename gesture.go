package vantage

import "fmt"

// defaultZoomSensitivity converts wheel units into zoom delta per unit of
// current scroll movement.
const defaultZoomSensitivity = 0.005

// PanState names the states of the pan-intent machine.
type PanState uint8

const (
	PanIdle           PanState = iota // no pan gesture in progress
	PanReadyToPan                     // button held, waiting for movement
	PanPanning                        // button-drag panning
	PanReadyToSpacePan                // spacebar held, waiting for movement
	PanSpacePanning                   // spacebar-drag panning (no button)
)

// String returns the state name, for diagnostics.
func (s PanState) String() string {
	switch s {
	case PanIdle:
		return "IDLE"
	case PanReadyToPan:
		return "READY_TO_PAN"
	case PanPanning:
		return "PANNING"
	case PanReadyToSpacePan:
		return "READY_TO_SPACE_PAN"
	case PanSpacePanning:
		return "SPACE_PANNING"
	default:
		return "unknown"
	}
}

// ZoomState names the states of the zoom-intent machine.
type ZoomState uint8

const (
	ZoomIdle    ZoomState = iota // no zoom gesture in progress
	ZoomZooming                  // ctrl-scroll zooming
)

// String returns the state name, for diagnostics.
func (s ZoomState) String() string {
	switch s {
	case ZoomIdle:
		return "IDLE"
	case ZoomZooming:
		return "ZOOMING"
	default:
		return "unknown"
	}
}

// FlowState names the states of the input-flow machine arbitrating between
// user input, programmatic animation, and locked mode.
type FlowState uint8

const (
	FlowAcceptingUserInput FlowState = iota // raw input classified normally
	FlowTransition                          // programmatic animation in flight; user input interrupts
	FlowLockedOnObject                      // input swallowed until unlock
)

// String returns the state name, for diagnostics.
func (s FlowState) String() string {
	switch s {
	case FlowAcceptingUserInput:
		return "ACCEPTING_USER_INPUT"
	case FlowTransition:
		return "TRANSITION"
	case FlowLockedOnObject:
		return "LOCKED_ON_OBJECT"
	default:
		return "unknown"
	}
}

// GestureClassifier consumes primitive input events and emits semantic
// camera gestures (pan-by, zoom-by-at) into a Mux. Classification and
// arbitration are separate phases: transitions always fire their effect into
// the mux, and the mux decides whether the camera actually moves.
//
// Create one classifier per input source; all state is per instance. Reset
// tears the machines back to their initial states.
type GestureClassifier struct {
	mux  Mux
	pan  PanState
	zoom ZoomState
	flow FlowState

	// ZoomSensitivity scales ctrl-scroll wheel units into zoom deltas.
	ZoomSensitivity float64
}

// NewGestureClassifier creates a classifier firing into the given mux.
func NewGestureClassifier(mux Mux) *GestureClassifier {
	return &GestureClassifier{mux: mux, ZoomSensitivity: defaultZoomSensitivity}
}

// PanState returns the current pan-intent state.
func (g *GestureClassifier) PanState() PanState { return g.pan }

// ZoomState returns the current zoom-intent state.
func (g *GestureClassifier) ZoomState() ZoomState { return g.zoom }

// FlowState returns the current input-flow state.
func (g *GestureClassifier) FlowState() FlowState { return g.flow }

// Reset returns all machines to their initial states.
func (g *GestureClassifier) Reset() {
	g.pan = PanIdle
	g.zoom = ZoomIdle
	g.flow = FlowAcceptingUserInput
}

// isRawUserInput reports whether the event originates from the user's
// pointer or keyboard, as opposed to flow-control events.
func isRawUserInput(t InputEventType) bool {
	switch t {
	case InputLockOnObject, InputUnlock, InputTransitionStart, InputTransitionEnd:
		return false
	}
	return true
}

// Feed runs one primitive event through the flow machine and, if the flow
// state admits it, through the pan and zoom machines. Panics on an event
// type outside the closed vocabulary: that is API misuse by a parser, best
// surfaced at integration time.
func (g *GestureClassifier) Feed(ev InputEvent) {
	if ev.Type > InputTransitionEnd {
		panic(fmt.Sprintf("vantage: unknown input event type %d", ev.Type))
	}

	switch g.flow {
	case FlowLockedOnObject:
		// Inputs are swallowed while locked; only unlock gets through.
		if ev.Type == InputUnlock {
			g.flow = FlowAcceptingUserInput
		}
		return
	case FlowTransition:
		switch {
		case ev.Type == InputTransitionEnd:
			g.flow = FlowAcceptingUserInput
			return
		case ev.Type == InputLockOnObject:
			g.flow = FlowLockedOnObject
			return
		case isRawUserInput(ev.Type):
			// User input interrupts the animation and is processed normally.
			g.flow = FlowAcceptingUserInput
		default:
			return
		}
	case FlowAcceptingUserInput:
		switch ev.Type {
		case InputLockOnObject:
			g.flow = FlowLockedOnObject
			return
		case InputTransitionStart:
			g.flow = FlowTransition
			return
		case InputUnlock, InputTransitionEnd:
			return
		}
	}

	g.pan = g.panTransition(g.pan, ev)
	g.zoom = g.zoomTransition(g.zoom, ev)
}

// panTransition is the pan machine's pure transition function. The
// camera-affecting side effect fires into the mux before the next state is
// returned. Dragging moves the world with the pointer, so the forwarded
// camera delta is the negated pointer delta; plain scroll pans directly
// (trackpad convention).
func (g *GestureClassifier) panTransition(s PanState, ev InputEvent) PanState {
	switch ev.Type {
	case InputLeftPointerDown, InputMiddlePointerDown:
		if s == PanIdle {
			return PanReadyToPan
		}
	case InputLeftPointerUp, InputMiddlePointerUp:
		if s == PanReadyToPan || s == PanPanning {
			return PanIdle
		}
	case InputLeftPointerMove, InputMiddlePointerMove:
		if s == PanReadyToPan || s == PanPanning {
			g.mux.NotifyPanInput(ev.Delta.Neg())
			return PanPanning
		}
	case InputSpacebarDown:
		if s == PanIdle {
			return PanReadyToSpacePan
		}
	case InputSpacebarUp:
		if s == PanReadyToSpacePan || s == PanSpacePanning {
			return PanIdle
		}
	case InputPointerMove:
		if s == PanReadyToSpacePan || s == PanSpacePanning {
			g.mux.NotifyPanInput(ev.Delta.Neg())
			return PanSpacePanning
		}
	case InputScroll:
		g.mux.NotifyPanInput(ev.ScrollDelta)
	}
	return s
}

// zoomTransition is the zoom machine's pure transition function. Ctrl-scroll
// is classified as zoom anchored at the pointer; scrolling up (negative Y)
// zooms in.
func (g *GestureClassifier) zoomTransition(s ZoomState, ev InputEvent) ZoomState {
	if ev.Type == InputScrollWithCtrl {
		g.mux.NotifyZoomInput(-ev.ScrollDelta.Y*g.ZoomSensitivity, ev.Position)
		return ZoomZooming
	}
	if s == ZoomZooming {
		return ZoomIdle
	}
	return s
}
