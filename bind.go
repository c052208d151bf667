package sway

import (
	"fmt"
	"reflect"
)

// Bind resolves the named exported field on the struct that target points
// to and returns a Setter/Getter pair for it. All reflection happens here,
// once, at construction time; the returned closures are plain accessors.
//
// target must be a non-nil pointer to a struct. The field must exist and be
// settable (ErrNoSuchProperty otherwise) and its type must equal kind
// exactly (ErrUnsupportedKind otherwise).
func Bind(target any, field string, kind reflect.Type) (Setter, Getter, error) {
	if target == nil || kind == nil {
		return nil, nil, fmt.Errorf("bind %q: nil target or kind: %w", field, ErrInvalidArgument)
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, nil, fmt.Errorf("bind %q: target must be a non-nil pointer to struct, got %T: %w",
			field, target, ErrInvalidArgument)
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("bind %q: target must point to a struct, got %T: %w",
			field, target, ErrInvalidArgument)
	}
	f := elem.FieldByName(field)
	if !f.IsValid() || !f.CanSet() {
		return nil, nil, fmt.Errorf("bind %q on %T: %w", field, target, ErrNoSuchProperty)
	}
	if f.Type() != kind {
		return nil, nil, fmt.Errorf("bind %q on %T: field is %v, want %v: %w",
			field, target, f.Type(), kind, ErrUnsupportedKind)
	}
	set := func(v any) { f.Set(reflect.ValueOf(v)) }
	get := func() any { return f.Interface() }
	return set, get, nil
}
