package engine

import "sync/atomic"

// Input is the single pending-direction slot. Writers and the ticking
// reader may run on different goroutines; the slot is one atomic word and
// the last write before a tick wins.
type Input struct {
	pending atomic.Int32
}

// NewInput returns a slot holding d.
func NewInput(d Direction) *Input {
	in := &Input{}
	in.Reset(d)
	return in
}

// Resolve applies the PUCCI inversion to requested and then the reversal
// guard against the committed heading. ok is false when the request must be
// dropped.
func Resolve(requested, current Direction, pucci bool) (d Direction, ok bool) {
	if !requested.Valid() {
		return current, false
	}
	d = requested
	if pucci {
		d = d.Opposite()
	}
	if d == current.Opposite() {
		return current, false
	}
	return d, true
}

// Submit resolves requested and stores it. It reports whether the slot
// changed hands; a rejected request leaves the previous pending value.
func (in *Input) Submit(requested, current Direction, pucci bool) bool {
	d, ok := Resolve(requested, current, pucci)
	if !ok {
		return false
	}
	in.pending.Store(int32(d))
	return true
}

// Pending returns the direction the next tick will use.
func (in *Input) Pending() Direction {
	return Direction(in.pending.Load())
}

// Reset overwrites the slot unconditionally, used when a new game starts.
func (in *Input) Reset(d Direction) {
	in.pending.Store(int32(d))
}
