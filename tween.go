package sway

import (
	"fmt"
	"reflect"
)

// boundary is the raw tween's position relative to its time span.
type boundary int

const (
	leftEnd boundary = iota
	running
	rightEnd
)

// tween is the atomic, bidirectional, time-integrating state machine. It
// owns one interpolation: elapsed time, boundary state, and the blend over
// (from, to). Loop wrappers and chains decorate it without knowing its
// internals; everything speaks the unit contract.
type tween struct {
	set      Setter
	to       any
	from     any
	fromFn   Getter
	original any
	kind     reflect.Type
	duration float64
	easing   Easing
	blend    BlendFunc

	// elapsed is clamped to [0, duration] at all times.
	elapsed float64
	state   boundary
	last    any

	// A reset request is recorded here and serviced at the start of the
	// next advance, so that resetting alone never touches the setter.
	pending  bool
	resetDir Direction

	// broken latches construction failures (and a from-getter that yields
	// the wrong kind at start). A broken tween permanently reports that it
	// cannot advance in either direction.
	broken bool
}

// newTween validates its arguments and builds a raw tween primed to start
// Forward on its first advance. On failure the returned tween is a
// permanent no-op and the error describes why; nothing is raised later
// during stepping.
func newTween(set Setter, from any, fromFn Getter, to any, duration float64, fn Easing) (*tween, error) {
	t := &tween{
		set:      set,
		to:       to,
		from:     from,
		fromFn:   fromFn,
		duration: duration,
		easing:   fn,
		pending:  true,
		resetDir: Forward,
		broken:   true,
	}
	if t.easing == nil {
		t.easing = EaseInOut
	}
	switch {
	case set == nil:
		return t, fmt.Errorf("nil setter: %w", ErrInvalidArgument)
	case to == nil:
		return t, fmt.Errorf("missing target value: %w", ErrInvalidArgument)
	case from == nil && fromFn == nil:
		return t, fmt.Errorf("missing from source: %w", ErrInvalidArgument)
	case duration <= 0:
		return t, fmt.Errorf("non-positive duration %v: %w", duration, ErrInvalidArgument)
	}
	t.kind = reflect.TypeOf(to)
	if from != nil && reflect.TypeOf(from) != t.kind {
		return t, fmt.Errorf("from is %T but target is %T: %w", from, to, ErrUnsupportedKind)
	}
	blend, err := ResolveBlend(t.kind)
	if err != nil {
		return t, err
	}
	t.blend = blend
	t.broken = false
	return t, nil
}

func (t *tween) reset(dir Direction) {
	t.pending = true
	t.resetDir = dir
}

// service applies a recorded reset: re-evaluate the from-source (the getter
// runs here, at most once per (re)start) and the original value, then
// reinitialize the clock toward the requested direction.
func (t *tween) service() bool {
	t.pending = false
	from := t.from
	if t.fromFn != nil {
		from = t.fromFn()
	}
	if from == nil || reflect.TypeOf(from) != t.kind {
		t.broken = true
		return false
	}
	t.from = from
	t.original = from
	if t.resetDir == Forward {
		t.elapsed = 0
		t.state = leftEnd
	} else {
		t.elapsed = t.duration
		t.state = rightEnd
	}
	return true
}

func (t *tween) advance(dir Direction, dt float64) bool {
	if t.broken {
		return false
	}
	if t.pending && !t.service() {
		return false
	}
	if (t.state == rightEnd && dir == Forward) || (t.state == leftEnd && dir == Reverse) {
		return false
	}

	prior := t.state
	t.elapsed += float64(dir) * dt
	// Snap accumulated drift onto the boundaries, so deltas that nominally
	// sum to the duration (ten 0.1 ticks of a 1s tween) exhaust on the
	// expected tick instead of one late. Also clamps to [0, duration].
	eps := t.duration * 1e-9
	if t.elapsed < eps {
		t.elapsed = 0
	} else if t.duration-t.elapsed < eps {
		t.elapsed = t.duration
	}
	frac := t.elapsed / t.duration

	switch {
	case frac <= 0 && prior != leftEnd:
		// Crossed the left boundary: restore the exact pre-tween value
		// rather than an eased blend at t=0. This compensates both for
		// floating-point drift in elapsed time and for external mutation
		// of the target since the tween started.
		t.state = leftEnd
		t.emit(t.original)
	case prior == running || (prior == leftEnd && frac > 0) || (prior == rightEnd && frac < 1):
		t.emit(t.blend(t.from, t.to, t.easing(frac)))
		if frac >= 1 {
			t.state = rightEnd
		} else {
			t.state = running
		}
	}
	return true
}

func (t *tween) emit(v any) {
	t.last = v
	t.set(v)
}

func (t *tween) value() any { return t.last }
