package sway

// loopUnit decorates an inner unit with a looping policy, rewriting
// boundary exhaustion into continued advancement. The reversed flag records
// whether the inner unit is currently driven opposite to the externally
// requested direction; Reflect and PingPong are both built on flipping it.
type loopUnit struct {
	inner    unit
	policy   LoopType
	reversed bool
}

func (l *loopUnit) reset(dir Direction) {
	if l.policy == LoopReflect || l.policy == LoopPingPong {
		// Mirrored policies always start the inner unit Forward; a Reverse
		// entry is expressed through the reversed flag instead.
		l.inner.reset(Forward)
		l.reversed = dir == Reverse
		return
	}
	l.reversed = false
	l.inner.reset(dir)
}

func (l *loopUnit) advance(dir Direction, dt float64) bool {
	eff := dir
	if l.reversed {
		eff = -eff
	}
	if l.inner.advance(eff, dt) {
		return true
	}

	// Inner unit exhausted at a boundary. The failed call had no side
	// effects, so the full delta still belongs to this tick and is applied
	// to the continuation below.
	switch l.policy {
	case LoopRepeat:
		l.inner.reset(eff)
		return l.inner.advance(eff, dt)
	case LoopReflect:
		// Reflect continues only at its first boundary: the one reached
		// while still traveling in the originally requested direction.
		// After one flip the flag no longer matches and the wrapper ends,
		// giving exactly one pass out and one pass back.
		if l.reversed != (dir == Reverse) {
			return false
		}
		fallthrough
	case LoopPingPong:
		l.reversed = !l.reversed
		eff = -eff
		l.inner.reset(eff)
		return l.inner.advance(eff, dt)
	}
	return false
}

func (l *loopUnit) value() any { return l.inner.value() }
