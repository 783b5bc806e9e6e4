package callable

import "github.com/on-the-ground/call_able_go/shared/optional"

// methodCall1 is the single implementation behind Method1 and ConstMethod1.
// The receiver shape P is the dispatch strategy: *T reaches the caller's
// instance, T hands the callee a copy it cannot write back. Keeping one core
// avoids carrying the same call, guard, and equality logic twice.
type methodCall1[P, A1, R any] struct {
	bind   binding
	method func(P, A1) R
	stub   func(recv P, method func(P, A1) R, a1 A1) R
}

func methodStub1[P, A1, R any](recv P, method func(P, A1) R, a1 A1) R {
	return method(recv, a1)
}

func bindMethodCall1[P, A1, R any](m func(P, A1) R) methodCall1[P, A1, R] {
	if m == nil {
		return methodCall1[P, A1, R]{}
	}
	return methodCall1[P, A1, R]{bind: methodBinding(m), method: m, stub: methodStub1[P, A1, R]}
}

func (c methodCall1[P, A1, R]) call(recv P, a1 A1) R {
	if c.stub == nil {
		panic(ErrUninitializedCall)
	}
	return c.stub(recv, c.method, a1)
}

func (c methodCall1[P, A1, R]) callIf(recv P, a1 A1) optional.Option[R] {
	if c.stub == nil {
		return optional.None[R]()
	}
	return optional.Some(c.stub(recv, c.method, a1))
}

func (c methodCall1[P, A1, R]) callOr(fallback func(A1) R, recv P, a1 A1) R {
	if c.stub == nil {
		return fallback(a1)
	}
	return c.stub(recv, c.method, a1)
}

// Method1 wraps a pointer-receiver method expression func(*T, A1) R — the Go
// spelling of a mutable member function pointer. Only the method is stored;
// the receiver is supplied at every call.
type Method1[T, A1, R any] struct {
	mc methodCall1[*T, A1, R]
}

// BindMethod1 binds a method expression such as (*Counter).Add. A nil m
// yields an unbound wrapper.
func BindMethod1[T, A1, R any](m func(*T, A1) R) Method1[T, A1, R] {
	return Method1[T, A1, R]{mc: bindMethodCall1(m)}
}

// IsValid reports whether the wrapper is bound.
func (w Method1[T, A1, R]) IsValid() bool { return w.mc.stub != nil }

// Call dispatches the method against recv. Calling an unbound wrapper
// panics with ErrUninitializedCall.
func (w Method1[T, A1, R]) Call(recv *T, a1 A1) R { return w.mc.call(recv, a1) }

// CallIf dispatches only when bound; the result is absent otherwise.
func (w Method1[T, A1, R]) CallIf(recv *T, a1 A1) optional.Option[R] {
	return w.mc.callIf(recv, a1)
}

// CallOr dispatches when bound; otherwise it invokes fallback with the call
// arguments. The fallback here is a callable, not a value — the Func family
// differs.
func (w Method1[T, A1, R]) CallOr(fallback func(A1) R, recv *T, a1 A1) R {
	return w.mc.callOr(fallback, recv, a1)
}

// Equal reports whether both wrappers reference the same method.
// Two unbound wrappers compare equal.
func (w Method1[T, A1, R]) Equal(rhs Method1[T, A1, R]) bool {
	return w.mc.bind.equal(rhs.mc.bind)
}

// Fingerprint returns a stable hash of the binding identity.
func (w Method1[T, A1, R]) Fingerprint() uint64 { return w.mc.bind.fingerprint() }

// methodCall0 is the nullary methodCall1.
type methodCall0[P, R any] struct {
	bind   binding
	method func(P) R
	stub   func(recv P, method func(P) R) R
}

func methodStub0[P, R any](recv P, method func(P) R) R { return method(recv) }

func bindMethodCall0[P, R any](m func(P) R) methodCall0[P, R] {
	if m == nil {
		return methodCall0[P, R]{}
	}
	return methodCall0[P, R]{bind: methodBinding(m), method: m, stub: methodStub0[P, R]}
}

func (c methodCall0[P, R]) call(recv P) R {
	if c.stub == nil {
		panic(ErrUninitializedCall)
	}
	return c.stub(recv, c.method)
}

func (c methodCall0[P, R]) callIf(recv P) optional.Option[R] {
	if c.stub == nil {
		return optional.None[R]()
	}
	return optional.Some(c.stub(recv, c.method))
}

func (c methodCall0[P, R]) callOr(fallback func() R, recv P) R {
	if c.stub == nil {
		return fallback()
	}
	return c.stub(recv, c.method)
}

// Method0 wraps a pointer-receiver method expression func(*T) R.
// See Method1 for the calling contract.
type Method0[T, R any] struct {
	mc methodCall0[*T, R]
}

// BindMethod0 binds a method expression such as (*Counter).Reset.
func BindMethod0[T, R any](m func(*T) R) Method0[T, R] {
	return Method0[T, R]{mc: bindMethodCall0(m)}
}

func (w Method0[T, R]) IsValid() bool { return w.mc.stub != nil }

func (w Method0[T, R]) Call(recv *T) R { return w.mc.call(recv) }

func (w Method0[T, R]) CallIf(recv *T) optional.Option[R] { return w.mc.callIf(recv) }

func (w Method0[T, R]) CallOr(fallback func() R, recv *T) R {
	return w.mc.callOr(fallback, recv)
}

func (w Method0[T, R]) Equal(rhs Method0[T, R]) bool { return w.mc.bind.equal(rhs.mc.bind) }

func (w Method0[T, R]) Fingerprint() uint64 { return w.mc.bind.fingerprint() }

// methodCall2 is the binary methodCall1.
type methodCall2[P, A1, A2, R any] struct {
	bind   binding
	method func(P, A1, A2) R
	stub   func(recv P, method func(P, A1, A2) R, a1 A1, a2 A2) R
}

func methodStub2[P, A1, A2, R any](recv P, method func(P, A1, A2) R, a1 A1, a2 A2) R {
	return method(recv, a1, a2)
}

func bindMethodCall2[P, A1, A2, R any](m func(P, A1, A2) R) methodCall2[P, A1, A2, R] {
	if m == nil {
		return methodCall2[P, A1, A2, R]{}
	}
	return methodCall2[P, A1, A2, R]{bind: methodBinding(m), method: m, stub: methodStub2[P, A1, A2, R]}
}

func (c methodCall2[P, A1, A2, R]) call(recv P, a1 A1, a2 A2) R {
	if c.stub == nil {
		panic(ErrUninitializedCall)
	}
	return c.stub(recv, c.method, a1, a2)
}

func (c methodCall2[P, A1, A2, R]) callIf(recv P, a1 A1, a2 A2) optional.Option[R] {
	if c.stub == nil {
		return optional.None[R]()
	}
	return optional.Some(c.stub(recv, c.method, a1, a2))
}

func (c methodCall2[P, A1, A2, R]) callOr(fallback func(A1, A2) R, recv P, a1 A1, a2 A2) R {
	if c.stub == nil {
		return fallback(a1, a2)
	}
	return c.stub(recv, c.method, a1, a2)
}

// Method2 wraps a pointer-receiver method expression func(*T, A1, A2) R.
// See Method1 for the calling contract.
type Method2[T, A1, A2, R any] struct {
	mc methodCall2[*T, A1, A2, R]
}

// BindMethod2 binds a two-argument method expression.
func BindMethod2[T, A1, A2, R any](m func(*T, A1, A2) R) Method2[T, A1, A2, R] {
	return Method2[T, A1, A2, R]{mc: bindMethodCall2(m)}
}

func (w Method2[T, A1, A2, R]) IsValid() bool { return w.mc.stub != nil }

func (w Method2[T, A1, A2, R]) Call(recv *T, a1 A1, a2 A2) R { return w.mc.call(recv, a1, a2) }

func (w Method2[T, A1, A2, R]) CallIf(recv *T, a1 A1, a2 A2) optional.Option[R] {
	return w.mc.callIf(recv, a1, a2)
}

func (w Method2[T, A1, A2, R]) CallOr(fallback func(A1, A2) R, recv *T, a1 A1, a2 A2) R {
	return w.mc.callOr(fallback, recv, a1, a2)
}

func (w Method2[T, A1, A2, R]) Equal(rhs Method2[T, A1, A2, R]) bool {
	return w.mc.bind.equal(rhs.mc.bind)
}

func (w Method2[T, A1, A2, R]) Fingerprint() uint64 { return w.mc.bind.fingerprint() }

// methodCall3 is the ternary methodCall1.
type methodCall3[P, A1, A2, A3, R any] struct {
	bind   binding
	method func(P, A1, A2, A3) R
	stub   func(recv P, method func(P, A1, A2, A3) R, a1 A1, a2 A2, a3 A3) R
}

func methodStub3[P, A1, A2, A3, R any](recv P, method func(P, A1, A2, A3) R, a1 A1, a2 A2, a3 A3) R {
	return method(recv, a1, a2, a3)
}

func bindMethodCall3[P, A1, A2, A3, R any](m func(P, A1, A2, A3) R) methodCall3[P, A1, A2, A3, R] {
	if m == nil {
		return methodCall3[P, A1, A2, A3, R]{}
	}
	return methodCall3[P, A1, A2, A3, R]{bind: methodBinding(m), method: m, stub: methodStub3[P, A1, A2, A3, R]}
}

func (c methodCall3[P, A1, A2, A3, R]) call(recv P, a1 A1, a2 A2, a3 A3) R {
	if c.stub == nil {
		panic(ErrUninitializedCall)
	}
	return c.stub(recv, c.method, a1, a2, a3)
}

func (c methodCall3[P, A1, A2, A3, R]) callIf(recv P, a1 A1, a2 A2, a3 A3) optional.Option[R] {
	if c.stub == nil {
		return optional.None[R]()
	}
	return optional.Some(c.stub(recv, c.method, a1, a2, a3))
}

func (c methodCall3[P, A1, A2, A3, R]) callOr(fallback func(A1, A2, A3) R, recv P, a1 A1, a2 A2, a3 A3) R {
	if c.stub == nil {
		return fallback(a1, a2, a3)
	}
	return c.stub(recv, c.method, a1, a2, a3)
}

// Method3 wraps a pointer-receiver method expression func(*T, A1, A2, A3) R.
// See Method1 for the calling contract.
type Method3[T, A1, A2, A3, R any] struct {
	mc methodCall3[*T, A1, A2, A3, R]
}

// BindMethod3 binds a three-argument method expression.
func BindMethod3[T, A1, A2, A3, R any](m func(*T, A1, A2, A3) R) Method3[T, A1, A2, A3, R] {
	return Method3[T, A1, A2, A3, R]{mc: bindMethodCall3(m)}
}

func (w Method3[T, A1, A2, A3, R]) IsValid() bool { return w.mc.stub != nil }

func (w Method3[T, A1, A2, A3, R]) Call(recv *T, a1 A1, a2 A2, a3 A3) R {
	return w.mc.call(recv, a1, a2, a3)
}

func (w Method3[T, A1, A2, A3, R]) CallIf(recv *T, a1 A1, a2 A2, a3 A3) optional.Option[R] {
	return w.mc.callIf(recv, a1, a2, a3)
}

func (w Method3[T, A1, A2, A3, R]) CallOr(fallback func(A1, A2, A3) R, recv *T, a1 A1, a2 A2, a3 A3) R {
	return w.mc.callOr(fallback, recv, a1, a2, a3)
}

func (w Method3[T, A1, A2, A3, R]) Equal(rhs Method3[T, A1, A2, A3, R]) bool {
	return w.mc.bind.equal(rhs.mc.bind)
}

func (w Method3[T, A1, A2, A3, R]) Fingerprint() uint64 { return w.mc.bind.fingerprint() }
