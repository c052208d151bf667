// Package sway is a driver-agnostic value-interpolation (tweening) engine.
//
// Sway animates any value kind for which a blend function exists: give it a
// start value, a target value, a duration, and an easing curve, and it
// delivers intermediate values to your setter once per tick. The engine
// owns no clock — a host loop (a game engine, a timer, a test) measures
// elapsed time and pushes deltas in, which keeps the core free of any
// frame-clock or scene-graph dependency.
//
// # Quick start
//
// Create a [Driver], build tweens on it, and call [Driver.Advance] from
// your tick source with the elapsed seconds since the previous tick:
//
//	d := sway.NewDriver()
//	d.Tween(sway.Set(func(v float64) { sprite.X = v }), 0.0, 320.0, 1.5, nil)
//
//	// inside the host loop:
//	d.Advance(dt)
//
// Finished tweens deregister themselves. A nil easing selects the default
// [EaseInOut]; any func(float64) float64 works, so the curves in
// [github.com/fogleman/ease] plug in directly and
// [github.com/tanema/gween/ease] curves adapt via [GweenEasing].
//
// # Loops and chains
//
// [Handle.Loop] decorates a tween with a boundary policy — [LoopRepeat],
// [LoopReflect] (once out, once back), or [LoopPingPong] (forever) — and
// [Handle.Then] concatenates two handles into one sequence:
//
//	up := d.Tween(setY, 200.0, 80.0, 0.5, ease.OutQuad)
//	down := d.Tween(setY, 80.0, 200.0, 0.5, ease.InQuad)
//	bounce := up.Then(down).Loop(sway.LoopPingPong)
//
// Then transfers ownership: the two input handles become inert and only the
// composite is driven.
//
// # Value kinds
//
// float64 and float32 blend out of the box, as do [Vec2], [Vec3], and
// [github.com/lucasb-eyer/go-colorful] colors. Other kinds either carry a
// conventional Lerp method, which the registry discovers and caches, or are
// registered explicitly with [RegisterLerp]:
//
//	sway.RegisterLerp(func(a, b MyKind, t float64) MyKind { ... })
//
// # Failure model
//
// Construction problems (nil setter, unknown value kind, non-positive
// duration, missing property) never panic and never surface from stepping:
// the returned handle is a permanent no-op that reports false from its
// first Advance, and [Handle.Err] says why. Animation code is best-effort
// by nature; a broken tween must not crash the host loop.
//
// The engine is single-threaded and cooperative: all advancement happens
// inside the host's tick call. The blend registry is process-wide and
// unsynchronized; guard registration externally if you mutate it from
// multiple goroutines.
package sway
