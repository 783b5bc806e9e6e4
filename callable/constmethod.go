package callable

import "github.com/on-the-ground/call_able_go/shared/optional"

// The ConstMethod family binds value-receiver method expressions such as
// Counter.Value: the callee receives a copy of the receiver, so the caller's
// instance can never be mutated through the wrapper. Everything else —
// guards, CallIf/CallOr semantics, equality — is the shared method core with
// P instantiated as T instead of *T.

// ConstMethod1 wraps a value-receiver method expression func(T, A1) R.
type ConstMethod1[T, A1, R any] struct {
	mc methodCall1[T, A1, R]
}

// BindConstMethod1 binds a method expression such as Counter.Plus. A nil m
// yields an unbound wrapper.
func BindConstMethod1[T, A1, R any](m func(T, A1) R) ConstMethod1[T, A1, R] {
	return ConstMethod1[T, A1, R]{mc: bindMethodCall1(m)}
}

// IsValid reports whether the wrapper is bound.
func (w ConstMethod1[T, A1, R]) IsValid() bool { return w.mc.stub != nil }

// Call dispatches the method against a copy of recv. Calling an unbound
// wrapper panics with ErrUninitializedCall.
func (w ConstMethod1[T, A1, R]) Call(recv T, a1 A1) R { return w.mc.call(recv, a1) }

// CallIf dispatches only when bound; the result is absent otherwise.
func (w ConstMethod1[T, A1, R]) CallIf(recv T, a1 A1) optional.Option[R] {
	return w.mc.callIf(recv, a1)
}

// CallOr dispatches when bound; otherwise it invokes fallback with the call
// arguments.
func (w ConstMethod1[T, A1, R]) CallOr(fallback func(A1) R, recv T, a1 A1) R {
	return w.mc.callOr(fallback, recv, a1)
}

// Equal reports whether both wrappers reference the same method.
func (w ConstMethod1[T, A1, R]) Equal(rhs ConstMethod1[T, A1, R]) bool {
	return w.mc.bind.equal(rhs.mc.bind)
}

// Fingerprint returns a stable hash of the binding identity.
func (w ConstMethod1[T, A1, R]) Fingerprint() uint64 { return w.mc.bind.fingerprint() }

// ConstMethod0 wraps a value-receiver method expression func(T) R.
type ConstMethod0[T, R any] struct {
	mc methodCall0[T, R]
}

// BindConstMethod0 binds a method expression such as Counter.Value.
func BindConstMethod0[T, R any](m func(T) R) ConstMethod0[T, R] {
	return ConstMethod0[T, R]{mc: bindMethodCall0(m)}
}

func (w ConstMethod0[T, R]) IsValid() bool { return w.mc.stub != nil }

func (w ConstMethod0[T, R]) Call(recv T) R { return w.mc.call(recv) }

func (w ConstMethod0[T, R]) CallIf(recv T) optional.Option[R] { return w.mc.callIf(recv) }

func (w ConstMethod0[T, R]) CallOr(fallback func() R, recv T) R {
	return w.mc.callOr(fallback, recv)
}

func (w ConstMethod0[T, R]) Equal(rhs ConstMethod0[T, R]) bool {
	return w.mc.bind.equal(rhs.mc.bind)
}

func (w ConstMethod0[T, R]) Fingerprint() uint64 { return w.mc.bind.fingerprint() }

// ConstMethod2 wraps a value-receiver method expression func(T, A1, A2) R.
type ConstMethod2[T, A1, A2, R any] struct {
	mc methodCall2[T, A1, A2, R]
}

// BindConstMethod2 binds a two-argument value-receiver method expression.
func BindConstMethod2[T, A1, A2, R any](m func(T, A1, A2) R) ConstMethod2[T, A1, A2, R] {
	return ConstMethod2[T, A1, A2, R]{mc: bindMethodCall2(m)}
}

func (w ConstMethod2[T, A1, A2, R]) IsValid() bool { return w.mc.stub != nil }

func (w ConstMethod2[T, A1, A2, R]) Call(recv T, a1 A1, a2 A2) R { return w.mc.call(recv, a1, a2) }

func (w ConstMethod2[T, A1, A2, R]) CallIf(recv T, a1 A1, a2 A2) optional.Option[R] {
	return w.mc.callIf(recv, a1, a2)
}

func (w ConstMethod2[T, A1, A2, R]) CallOr(fallback func(A1, A2) R, recv T, a1 A1, a2 A2) R {
	return w.mc.callOr(fallback, recv, a1, a2)
}

func (w ConstMethod2[T, A1, A2, R]) Equal(rhs ConstMethod2[T, A1, A2, R]) bool {
	return w.mc.bind.equal(rhs.mc.bind)
}

func (w ConstMethod2[T, A1, A2, R]) Fingerprint() uint64 { return w.mc.bind.fingerprint() }

// ConstMethod3 wraps a value-receiver method expression func(T, A1, A2, A3) R.
type ConstMethod3[T, A1, A2, A3, R any] struct {
	mc methodCall3[T, A1, A2, A3, R]
}

// BindConstMethod3 binds a three-argument value-receiver method expression.
func BindConstMethod3[T, A1, A2, A3, R any](m func(T, A1, A2, A3) R) ConstMethod3[T, A1, A2, A3, R] {
	return ConstMethod3[T, A1, A2, A3, R]{mc: bindMethodCall3(m)}
}

func (w ConstMethod3[T, A1, A2, A3, R]) IsValid() bool { return w.mc.stub != nil }

func (w ConstMethod3[T, A1, A2, A3, R]) Call(recv T, a1 A1, a2 A2, a3 A3) R {
	return w.mc.call(recv, a1, a2, a3)
}

func (w ConstMethod3[T, A1, A2, A3, R]) CallIf(recv T, a1 A1, a2 A2, a3 A3) optional.Option[R] {
	return w.mc.callIf(recv, a1, a2, a3)
}

func (w ConstMethod3[T, A1, A2, A3, R]) CallOr(fallback func(A1, A2, A3) R, recv T, a1 A1, a2 A2, a3 A3) R {
	return w.mc.callOr(fallback, recv, a1, a2, a3)
}

func (w ConstMethod3[T, A1, A2, A3, R]) Equal(rhs ConstMethod3[T, A1, A2, A3, R]) bool {
	return w.mc.bind.equal(rhs.mc.bind)
}

func (w ConstMethod3[T, A1, A2, A3, R]) Fingerprint() uint64 { return w.mc.bind.fingerprint() }
