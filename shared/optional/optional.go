package optional

import "errors"

// ErrAbsent is the panic value MustGet raises on an absent Option.
var ErrAbsent = errors.New("optional: value is absent")

// Option represents a value that may be absent. The zero value is None.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs a present Option.
func Some[T any](v T) Option[T] { return Option[T]{v: v, valid: true} }

// None constructs an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.valid }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.valid }

// Unwrap returns the value and whether it was present.
func (o Option[T]) Unwrap() (T, bool) { return o.v, o.valid }

// Or returns the value if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}

// MustGet is the panic-on-absence variant of Unwrap. Use when the caller has
// already established presence and absence would be a programming error.
func MustGet[T any](o Option[T]) T {
	if !o.valid {
		panic(ErrAbsent)
	}
	return o.v
}

// Map applies f to the value if present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.valid {
		return Some(f(o.v))
	}
	return None[U]()
}
