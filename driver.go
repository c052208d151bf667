package sway

import "reflect"

// Driver owns the active set of handles and fans one tick's elapsed-time
// delta out to them. It is deliberately clock-agnostic: the host (a game
// loop, a timer, a test) measures time however it likes and calls Advance
// once per tick with the delta in seconds.
//
// Evaluation order between distinct handles within a tick is unspecified;
// within one handle's tree it is deterministic.
//
// A Driver is not safe for concurrent use.
type Driver struct {
	handles []*Handle
}

// NewDriver returns an empty driver.
func NewDriver() *Driver { return &Driver{} }

// Advance delivers dt (seconds) to every registered handle, driving each
// Forward once, and deregisters handles that report they can no longer
// move. A negative dt is treated as zero: a tick never rewinds the active
// set. Setters may safely stop, restart, or chain handles from inside the
// tick.
func (d *Driver) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	snapshot := append([]*Handle(nil), d.handles...)
	for _, h := range snapshot {
		if !h.active {
			continue
		}
		if !h.Advance(Forward, dt) {
			d.remove(h)
		}
	}
}

// Len reports the number of registered handles.
func (d *Driver) Len() int { return len(d.handles) }

// StopAll deregisters every handle, leaving targets at their last-set
// values.
func (d *Driver) StopAll() {
	for _, h := range append([]*Handle(nil), d.handles...) {
		d.remove(h)
	}
}

func (d *Driver) add(h *Handle) {
	if h.active {
		return
	}
	h.active = true
	d.handles = append(d.handles, h)
}

func (d *Driver) remove(h *Handle) {
	if !h.active {
		return
	}
	h.active = false
	for i, x := range d.handles {
		if x == h {
			d.handles = append(d.handles[:i], d.handles[i+1:]...)
			break
		}
	}
}

// Tween builds a tween from a literal start value to a target value over
// duration seconds and registers it immediately. fn selects the easing
// curve; nil means EaseInOut. Construction failures degrade the handle to a
// no-op (see Handle.Err) rather than returning an error — a broken tween
// must not take the host loop down with it.
func (d *Driver) Tween(set Setter, from, to any, duration float64, fn Easing) *Handle {
	tw, err := newTween(set, from, nil, to, duration, fn)
	return d.register(tw, err)
}

// TweenFrom builds a tween whose start value is resolved lazily by calling
// get at (re)start time, giving "animate from the current value" semantics.
// Registration and failure behavior match Tween.
func (d *Driver) TweenFrom(set Setter, get Getter, to any, duration float64, fn Easing) *Handle {
	tw, err := newTween(set, nil, get, to, duration, fn)
	return d.register(tw, err)
}

// TweenField binds the named exported field of the struct that target
// points to and animates it to the given value. Binding happens once, here;
// a missing or mismatched field degrades the handle to a no-op carrying
// ErrNoSuchProperty or ErrUnsupportedKind.
func (d *Driver) TweenField(target any, field string, to any, duration float64, fn Easing) *Handle {
	set, get, err := Bind(target, field, reflect.TypeOf(to))
	if err != nil {
		return d.register(&tween{broken: true}, err)
	}
	return d.TweenFrom(set, get, to, duration, fn)
}

func (d *Driver) register(tw *tween, err error) *Handle {
	h := &Handle{driver: d, root: tw, err: err}
	d.add(h)
	return h
}
