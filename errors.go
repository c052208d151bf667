package sway

import "errors"

// Construction-time failures. A tween whose construction hits one of these
// is still returned as a Handle, but it is a permanent no-op: Advance
// reports false in both directions and nothing is ever delivered to the
// setter. Use Handle.Err with errors.Is to find out why. Stepping itself
// never fails.
var (
	// ErrInvalidArgument covers a nil setter, a missing from-source, a
	// missing target value, and a non-positive duration.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedKind means no blend function is registered or
	// derivable for the value's type, or two kinds were mixed.
	ErrUnsupportedKind = errors.New("unsupported value kind")

	// ErrNoSuchProperty is reported by Bind when the named field does not
	// exist on the target struct or is not settable.
	ErrNoSuchProperty = errors.New("no such property")
)
