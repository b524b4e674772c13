// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gesture

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Tracker follows one drag at a time.
//
//	Idle --Start--> Dragging --End--> Idle
//
// Move updates the live classification used for visual feedback. Only End
// commits, using whatever the last Move classified. Nothing carries over
// from one gesture to the next.
type Tracker struct {
	state  State
	startX float64
	offset float64
	last   Decision
}

func (t *Tracker) State() State {
	return t.state
}

// Start begins a gesture at x. Starting while already dragging restarts.
func (t *Tracker) Start(x float64) {
	*t = Tracker{state: Dragging, startX: x}
}

// Move reports the classification for the pointer now at x. Moves while
// idle are ignored.
func (t *Tracker) Move(x float64) Decision {
	if t.state != Dragging {
		return Undecided
	}
	t.offset = x - t.startX
	t.last = Classify(t.offset)
	return t.last
}

// Offset is the current drag distance, for rendering
func (t *Tracker) Offset() float64 {
	return t.offset
}

// End finishes the gesture and returns the decision to commit. Undecided
// means reset: no vote and no skip.
func (t *Tracker) End() Decision {
	if t.state != Dragging {
		return Undecided
	}
	d := t.last
	*t = Tracker{}
	return d
}

// Replay runs a recorded trace (first point is the touch start, the rest
// are moves) through a fresh tracker and returns the committed decision.
func Replay(trace []float64) Decision {
	if len(trace) == 0 {
		return Undecided
	}
	var t Tracker
	t.Start(trace[0])
	for _, x := range trace[1:] {
		t.Move(x)
	}
	return t.End()
}
