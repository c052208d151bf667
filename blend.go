package sway

import (
	"fmt"
	"reflect"
)

// BlendFunc combines two values of the same kind and an eased fraction into
// an intermediate value. Fractions outside [0, 1] are passed through from
// overshooting easing curves; each blend decides whether to clamp or
// extrapolate.
type BlendFunc func(a, b any, t float64) any

// The blend registry is process-wide and shared by all tweens. It is not
// synchronized: registration from multiple goroutines requires external
// locking, matching the engine's single-threaded advancement model.
var blends = map[reflect.Type]BlendFunc{}

var float64Type = reflect.TypeOf(float64(0))

// RegisterBlend stores fn as the blend function for kind, replacing any
// previous registration. The last write for a kind wins; overwriting is
// never an error. Kinds may be added at any time, including between ticks.
func RegisterBlend(kind reflect.Type, fn BlendFunc) {
	blends[kind] = fn
}

// RegisterLerp registers a typed blend function for T. It is the type-safe
// convenience form of RegisterBlend.
func RegisterLerp[T any](fn func(a, b T, t float64) T) {
	kind := reflect.TypeOf((*T)(nil)).Elem()
	RegisterBlend(kind, func(a, b any, t float64) any {
		return fn(a.(T), b.(T), t)
	})
}

// ResolveBlend returns the blend function for kind. If none was registered
// it tries to derive one from the conventional method
//
//	func (a T) Lerp(b T, t float64) T
//
// and caches the derived function. Resolution fails with
// ErrUnsupportedKind when neither exists.
func ResolveBlend(kind reflect.Type) (BlendFunc, error) {
	if fn, ok := blends[kind]; ok {
		return fn, nil
	}
	fn, ok := deriveLerp(kind)
	if !ok {
		return nil, fmt.Errorf("no blend function for %v: %w", kind, ErrUnsupportedKind)
	}
	blends[kind] = fn
	return fn, nil
}

// deriveLerp discovers the Lerp convention method on kind via reflection
// and wraps it as a BlendFunc.
func deriveLerp(kind reflect.Type) (BlendFunc, bool) {
	m, ok := kind.MethodByName("Lerp")
	if !ok {
		return nil, false
	}
	mt := m.Type
	if mt.NumIn() != 3 || mt.In(1) != kind || mt.In(2) != float64Type {
		return nil, false
	}
	if mt.NumOut() != 1 || mt.Out(0) != kind {
		return nil, false
	}
	call := m.Func
	return func(a, b any, t float64) any {
		out := call.Call([]reflect.Value{
			reflect.ValueOf(a),
			reflect.ValueOf(b),
			reflect.ValueOf(t),
		})
		return out[0].Interface()
	}, true
}

func init() {
	// float64 extrapolates so overshooting curves work out of the box;
	// float32 clamps.
	RegisterLerp(func(a, b float64, t float64) float64 {
		return a + (b-a)*t
	})
	RegisterLerp(func(a, b float32, t float64) float32 {
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		return a + (b-a)*float32(t)
	})
}
