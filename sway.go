package sway

// Direction selects which way a tween's clock runs during an advance.
// Multiplying a Direction by -1 yields the opposite direction.
type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

// String returns "Forward" or "Reverse".
func (d Direction) String() string {
	if d == Reverse {
		return "Reverse"
	}
	return "Forward"
}

// LoopType is the policy applied when a tween reaches a time boundary.
type LoopType int

const (
	// LoopNone ends the tween at its boundary.
	LoopNone LoopType = iota
	// LoopRepeat restarts the tween from its boundary, forever.
	LoopRepeat
	// LoopReflect plays the tween once in each direction, then ends.
	LoopReflect
	// LoopPingPong alternates direction at each boundary, forever.
	LoopPingPong
)

// Setter receives each intermediate value a tween produces, once per tick
// that produces output. Implementations must tolerate being called twice
// with the same value.
type Setter func(value any)

// Getter resolves a value lazily. A tween built with a Getter as its
// from-source calls it at most once per (re)start, which gives
// "animate from the current value" semantics.
type Getter func() any

// Set adapts a typed assignment function to the Setter contract.
func Set[T any](fn func(T)) Setter {
	return func(v any) { fn(v.(T)) }
}

// Get adapts a typed accessor function to the Getter contract.
func Get[T any](fn func() T) Getter {
	return func() any { return fn() }
}

// Vec2 is a 2D vector. Its Lerp method makes it blendable without an
// explicit registration (see RegisterBlend).
type Vec2 struct {
	X, Y float64
}

// Lerp linearly interpolates between a and b. The fraction is not clamped.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Vec3 is a 3D vector, blendable via its Lerp method like Vec2.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp linearly interpolates between a and b. The fraction is not clamped.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// unit is one advanceable node in a handle's animation tree: a raw tween,
// a loop wrapper, or a chain. Advancement is pull-based; the host driver
// supplies the elapsed-time delta for the tick.
type unit interface {
	// advance integrates one tick's delta in the given direction and
	// reports whether the unit could still move. A false return has no
	// side effects.
	advance(dir Direction, dt float64) bool
	// reset records a request to reinitialize toward the given direction.
	// The request is serviced at the start of the next advance.
	reset(dir Direction)
	// value returns the most recently delivered output, or nil.
	value() any
}
