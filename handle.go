package sway

// Handle is the caller-visible identity of one running (possibly composite)
// animation. It owns its animation tree exclusively and tracks its
// registration with the Driver that created it.
//
// A Handle is not safe for concurrent use.
type Handle struct {
	driver *Driver
	root   unit
	err    error

	// active mirrors membership in the driver's set.
	active bool

	// absorbed marks a handle whose tree has been transferred into a chain
	// by Then. Absorbed handles are inert: Advance reports false and the
	// lifecycle methods do nothing.
	absorbed bool
}

// Advance integrates one tick's elapsed-time delta through the handle's
// tree and reports whether the animation could still move in the given
// direction. A false return has no side effects; the driver uses it to
// deregister finished handles.
//
// Side switches and loop flips happen synchronously inside this call, so a
// single tick never loses progress across a chain or loop boundary.
func (h *Handle) Advance(dir Direction, dt float64) bool {
	if h.absorbed {
		return false
	}
	return h.root.advance(dir, dt)
}

// Stop deregisters the handle immediately, mid-animation. The last value
// delivered to the setter stays in place. A stopped handle can be revived
// with Restart.
func (h *Handle) Stop() {
	if h.absorbed {
		return
	}
	h.driver.remove(h)
}

// Restart deregisters the handle if present, requests a Forward reset, and
// re-registers it. The reset is serviced on the next advance, so Restart
// alone never touches the target value.
func (h *Handle) Restart() {
	if h.absorbed {
		return
	}
	h.driver.remove(h)
	h.root.reset(Forward)
	h.driver.add(h)
}

// Loop decorates the handle's tree with the given policy and returns the
// same handle, allowing construction chaining:
//
//	d.Tween(set, 0.0, 10.0, 1.0, nil).Loop(sway.LoopPingPong)
func (h *Handle) Loop(policy LoopType) *Handle {
	if h.absorbed {
		return h
	}
	h.root = &loopUnit{inner: h.root, policy: policy}
	return h
}

// Then concatenates h's tree and other's tree into a new composite handle
// that plays h first. Both input handles are deregistered and invalidated —
// their trees now belong to the composite and must not be advanced
// independently again. Only the returned handle is registered.
//
// The composite keeps h's driver and inherits the first construction error
// of its parts, if any.
func (h *Handle) Then(other *Handle) *Handle {
	if h.absorbed || other == nil || other.absorbed || other == h {
		return h
	}
	h.driver.remove(h)
	other.driver.remove(other)

	c := &Handle{
		driver: h.driver,
		root:   &chainUnit{first: h.root, second: other.root},
		err:    h.err,
	}
	if c.err == nil {
		c.err = other.err
	}
	h.absorbed = true
	other.absorbed = true
	c.driver.add(c)
	return c
}

// Err reports the construction failure that degraded this handle to a
// no-op, or nil. Broken handles never panic and never reach their setter;
// they just report false from Advance.
func (h *Handle) Err() error { return h.err }

// Value returns the most recent output delivered by the handle's tree, or
// nil if nothing has been delivered yet. Informational only: the setter
// inside the tree is the actual side effect.
func (h *Handle) Value() any {
	if h.absorbed {
		return nil
	}
	return h.root.value()
}

// Active reports whether the handle is currently registered with its
// driver.
func (h *Handle) Active() bool { return h.active }
