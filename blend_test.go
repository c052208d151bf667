package sway

import (
	"errors"
	"reflect"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestDefaultFloat64BlendExtrapolates(t *testing.T) {
	fn, err := ResolveBlend(reflect.TypeOf(float64(0)))
	if err != nil {
		t.Fatalf("ResolveBlend: %v", err)
	}
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, 0},
		{"middle", 0.5, 5},
		{"end", 1, 10},
		{"overshoot", 1.5, 15},
		{"undershoot", -0.5, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fn(0.0, 10.0, tt.t); got != any(tt.want) {
				t.Errorf("blend(0, 10, %v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestDefaultFloat32BlendClamps(t *testing.T) {
	fn, err := ResolveBlend(reflect.TypeOf(float32(0)))
	if err != nil {
		t.Fatalf("ResolveBlend: %v", err)
	}
	if got := fn(float32(0), float32(10), 1.5); got != any(float32(10)) {
		t.Errorf("blend(0, 10, 1.5) = %v, want clamped 10", got)
	}
	if got := fn(float32(0), float32(10), -0.5); got != any(float32(0)) {
		t.Errorf("blend(0, 10, -0.5) = %v, want clamped 0", got)
	}
}

func TestRegisterBlendLastWriteWins(t *testing.T) {
	type flick float64
	kind := reflect.TypeOf(flick(0))

	RegisterBlend(kind, func(a, b any, t float64) any { return a })
	RegisterBlend(kind, func(a, b any, t float64) any { return b })

	fn, err := ResolveBlend(kind)
	if err != nil {
		t.Fatalf("ResolveBlend: %v", err)
	}
	if got := fn(flick(1), flick(2), 0.5); got != any(flick(2)) {
		t.Errorf("resolved blend returned %v, want the last-registered one (2)", got)
	}
}

// spiral has the conventional Lerp shape and is never registered
// explicitly; resolution must derive and cache it.
type spiral struct{ R, T float64 }

func (a spiral) Lerp(b spiral, t float64) spiral {
	return spiral{R: a.R + (b.R-a.R)*t, T: a.T + (b.T-a.T)*t}
}

func TestResolveDerivesLerpConvention(t *testing.T) {
	kind := reflect.TypeOf(spiral{})
	fn, err := ResolveBlend(kind)
	if err != nil {
		t.Fatalf("ResolveBlend: %v", err)
	}
	got := fn(spiral{R: 0, T: 0}, spiral{R: 10, T: 2}, 0.5)
	if got != any(spiral{R: 5, T: 1}) {
		t.Errorf("derived blend = %v, want {5 1}", got)
	}

	// Derivation is cached: the registry now holds the kind directly.
	if _, ok := blends[kind]; !ok {
		t.Error("derived blend was not cached")
	}
}

// wrongLerp has a Lerp method with the wrong shape; it must not be derived.
type wrongLerp struct{ N int }

func (a wrongLerp) Lerp(b wrongLerp) wrongLerp { return b }

func TestResolveRejectsWrongLerpShape(t *testing.T) {
	_, err := ResolveBlend(reflect.TypeOf(wrongLerp{}))
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("err = %v, want ErrUnsupportedKind", err)
	}
}

func TestResolveUnsupportedKind(t *testing.T) {
	type inert struct{ A, B string }
	_, err := ResolveBlend(reflect.TypeOf(inert{}))
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("err = %v, want ErrUnsupportedKind", err)
	}
}

func TestVec3RegistryExample(t *testing.T) {
	// Explicit registration for a 3-component vector kind, then a linear
	// tween across it: halfway must be (5,0,0) exactly.
	RegisterLerp(func(a, b Vec3, t float64) Vec3 { return a.Lerp(b, t) })

	rec := &recorder{}
	tw, err := newTween(rec.set, Vec3{}, nil, Vec3{X: 10}, 1.0, Linear)
	if err != nil {
		t.Fatalf("newTween: %v", err)
	}
	tw.advance(Forward, 0.5)

	if got := rec.last(); got != any(Vec3{X: 5}) {
		t.Errorf("value at t=0.5 = %v, want {5 0 0} exactly", got)
	}
}

func TestVec2DerivedBlend(t *testing.T) {
	rec := &recorder{}
	tw, err := newTween(rec.set, Vec2{X: 0, Y: 4}, nil, Vec2{X: 8, Y: 0}, 1.0, Linear)
	if err != nil {
		t.Fatalf("newTween: %v", err)
	}
	tw.advance(Forward, 0.25)
	if got := rec.last(); got != any(Vec2{X: 2, Y: 3}) {
		t.Errorf("value = %v, want {2 3}", got)
	}
}

func TestColorfulBlendRegisteredByDefault(t *testing.T) {
	rec := &recorder{}
	from := colorful.Color{R: 0, G: 0, B: 0}
	to := colorful.Color{R: 1, G: 0.5, B: 0}
	tw, err := newTween(rec.set, from, nil, to, 1.0, Linear)
	if err != nil {
		t.Fatalf("newTween: %v", err)
	}
	tw.advance(Forward, 0.5)

	got := rec.last().(colorful.Color)
	want := from.BlendRgb(to, 0.5)
	if got != want {
		t.Errorf("color at t=0.5 = %v, want %v", got, want)
	}
}
