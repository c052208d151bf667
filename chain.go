package sway

// chainUnit concatenates two units into one that is traversed in order,
// reversibly. Reaching the end of one side while there is a next side in
// the travel direction switches sides and advances the new side within the
// same tick, so a chain boundary never swallows a tick's worth of progress.
type chainUnit struct {
	first, second unit
	onSecond      bool
}

func (c *chainUnit) advance(dir Direction, dt float64) bool {
	cur := c.first
	if c.onSecond {
		cur = c.second
	}
	if cur.advance(dir, dt) {
		return true
	}
	// Terminal side for this direction: the whole chain is exhausted.
	if (dir == Forward) == c.onSecond {
		return false
	}
	c.onSecond = !c.onSecond
	if c.onSecond {
		return c.second.advance(dir, dt)
	}
	return c.first.advance(dir, dt)
}

// reset primes both halves for either play direction and positions the
// cursor at the head (Forward) or tail (Reverse) of the chain.
func (c *chainUnit) reset(dir Direction) {
	c.first.reset(dir)
	c.second.reset(dir)
	c.onSecond = dir == Reverse
}

func (c *chainUnit) value() any {
	if c.onSecond {
		return c.second.value()
	}
	return c.first.value()
}
