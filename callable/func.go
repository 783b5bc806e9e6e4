package callable

import "github.com/on-the-ground/call_able_go/shared/optional"

// Invoker0..Invoker3 are the call contracts functor types satisfy to be
// bound through BindFunctorN. A wrapper exposes Call, not Invoke, so a
// wrapper can never satisfy the contract and wrap itself.
type Invoker0[R any] interface{ Invoke() R }
type Invoker1[A1, R any] interface{ Invoke(A1) R }
type Invoker2[A1, A2, R any] interface{ Invoke(A1, A2) R }
type Invoker3[A1, A2, A3, R any] interface{ Invoke(A1, A2, A3) R }

// Func1 holds any unary callable — a free function, a closure bound by
// reference, or a functor — behind one fixed-size value. It stores a
// borrowed reference only: the referenced closure or functor must outlive
// every call. The zero value is unbound.
type Func1[A1, R any] struct {
	bind binding
	fn   func(A1) R
	obj  any
	stub func(fn func(A1) R, obj any, a1 A1) R
}

func funcStub1[A1, R any](fn func(A1) R, _ any, a1 A1) R { return fn(a1) }

func refStub1[A1, R any](_ func(A1) R, obj any, a1 A1) R {
	return (*obj.(*func(A1) R))(a1)
}

func functorStub1[A1, R any](_ func(A1) R, obj any, a1 A1) R {
	return obj.(Invoker1[A1, R]).Invoke(a1)
}

// BindFunc1 binds a unary function by its code pointer. A nil fn yields an
// unbound wrapper. All closures created from one literal share a code
// pointer, so two such bindings compare equal even when their captured state
// differs; bind state-capturing closures through BindRef1 or BindFunctor1
// when identity matters.
func BindFunc1[A1, R any](fn func(A1) R) Func1[A1, R] {
	if fn == nil {
		return Func1[A1, R]{}
	}
	return Func1[A1, R]{bind: funcBinding(fn), fn: fn, stub: funcStub1[A1, R]}
}

// BindRef1 binds the closure variable fn points at. Every call goes through
// the current value of *fn, and equality is the identity of the variable
// itself. A nil pointer yields an unbound wrapper.
func BindRef1[A1, R any](fn *func(A1) R) Func1[A1, R] {
	if fn == nil {
		return Func1[A1, R]{}
	}
	return Func1[A1, R]{bind: objectBinding(fn), obj: fn, stub: refStub1[A1, R]}
}

// BindFunctor1 binds a functor instance by reference. f must be a pointer:
// the wrapper never copies the instance, and equality is pointer identity.
// A nil f yields an unbound wrapper.
func BindFunctor1[A1, R any](f Invoker1[A1, R]) Func1[A1, R] {
	if f == nil {
		return Func1[A1, R]{}
	}
	return Func1[A1, R]{bind: objectBinding(mustPointer(f)), obj: f, stub: functorStub1[A1, R]}
}

// IsValid reports whether the wrapper is bound.
func (w Func1[A1, R]) IsValid() bool { return w.stub != nil }

// Call invokes the bound callable. Unlike the Method families, Call performs
// no validity guard: calling an unbound Func1 panics on its nil stub.
func (w Func1[A1, R]) Call(a1 A1) R { return w.stub(w.fn, w.obj, a1) }

// CallIf invokes the callable only when bound; the result is absent
// otherwise. For void-like results instantiate R = Unit and read the
// presence bit.
func (w Func1[A1, R]) CallIf(a1 A1) optional.Option[R] {
	if w.stub == nil {
		return optional.None[R]()
	}
	return optional.Some(w.stub(w.fn, w.obj, a1))
}

// CallOr returns the call result when bound, or fallback when not. The
// fallback is a pre-computed value and is never invoked — the Method
// families treat their fallback as a callable instead.
func (w Func1[A1, R]) CallOr(fallback R, a1 A1) R {
	if w.stub == nil {
		return fallback
	}
	return w.stub(w.fn, w.obj, a1)
}

// Equal reports whether both wrappers reference the same callable: same
// binding category and, per category, the same code pointer or the same
// instance address. Two unbound wrappers compare equal.
func (w Func1[A1, R]) Equal(rhs Func1[A1, R]) bool { return w.bind.equal(rhs.bind) }

// Fingerprint returns a stable hash of the binding identity, usable as a map
// key in place of the non-comparable wrapper value.
func (w Func1[A1, R]) Fingerprint() uint64 { return w.bind.fingerprint() }

// Func0 is the nullary Func1. See Func1 for the binding and calling contract.
type Func0[R any] struct {
	bind binding
	fn   func() R
	obj  any
	stub func(fn func() R, obj any) R
}

func funcStub0[R any](fn func() R, _ any) R { return fn() }

func refStub0[R any](_ func() R, obj any) R { return (*obj.(*func() R))() }

func functorStub0[R any](_ func() R, obj any) R { return obj.(Invoker0[R]).Invoke() }

// BindFunc0 binds a nullary function by its code pointer.
func BindFunc0[R any](fn func() R) Func0[R] {
	if fn == nil {
		return Func0[R]{}
	}
	return Func0[R]{bind: funcBinding(fn), fn: fn, stub: funcStub0[R]}
}

// BindRef0 binds the closure variable fn points at.
func BindRef0[R any](fn *func() R) Func0[R] {
	if fn == nil {
		return Func0[R]{}
	}
	return Func0[R]{bind: objectBinding(fn), obj: fn, stub: refStub0[R]}
}

// BindFunctor0 binds a functor instance by reference.
func BindFunctor0[R any](f Invoker0[R]) Func0[R] {
	if f == nil {
		return Func0[R]{}
	}
	return Func0[R]{bind: objectBinding(mustPointer(f)), obj: f, stub: functorStub0[R]}
}

func (w Func0[R]) IsValid() bool { return w.stub != nil }

func (w Func0[R]) Call() R { return w.stub(w.fn, w.obj) }

func (w Func0[R]) CallIf() optional.Option[R] {
	if w.stub == nil {
		return optional.None[R]()
	}
	return optional.Some(w.stub(w.fn, w.obj))
}

func (w Func0[R]) CallOr(fallback R) R {
	if w.stub == nil {
		return fallback
	}
	return w.stub(w.fn, w.obj)
}

func (w Func0[R]) Equal(rhs Func0[R]) bool { return w.bind.equal(rhs.bind) }

func (w Func0[R]) Fingerprint() uint64 { return w.bind.fingerprint() }

// Func2 is the binary Func1. See Func1 for the binding and calling contract.
type Func2[A1, A2, R any] struct {
	bind binding
	fn   func(A1, A2) R
	obj  any
	stub func(fn func(A1, A2) R, obj any, a1 A1, a2 A2) R
}

func funcStub2[A1, A2, R any](fn func(A1, A2) R, _ any, a1 A1, a2 A2) R { return fn(a1, a2) }

func refStub2[A1, A2, R any](_ func(A1, A2) R, obj any, a1 A1, a2 A2) R {
	return (*obj.(*func(A1, A2) R))(a1, a2)
}

func functorStub2[A1, A2, R any](_ func(A1, A2) R, obj any, a1 A1, a2 A2) R {
	return obj.(Invoker2[A1, A2, R]).Invoke(a1, a2)
}

// BindFunc2 binds a binary function by its code pointer.
func BindFunc2[A1, A2, R any](fn func(A1, A2) R) Func2[A1, A2, R] {
	if fn == nil {
		return Func2[A1, A2, R]{}
	}
	return Func2[A1, A2, R]{bind: funcBinding(fn), fn: fn, stub: funcStub2[A1, A2, R]}
}

// BindRef2 binds the closure variable fn points at.
func BindRef2[A1, A2, R any](fn *func(A1, A2) R) Func2[A1, A2, R] {
	if fn == nil {
		return Func2[A1, A2, R]{}
	}
	return Func2[A1, A2, R]{bind: objectBinding(fn), obj: fn, stub: refStub2[A1, A2, R]}
}

// BindFunctor2 binds a functor instance by reference.
func BindFunctor2[A1, A2, R any](f Invoker2[A1, A2, R]) Func2[A1, A2, R] {
	if f == nil {
		return Func2[A1, A2, R]{}
	}
	return Func2[A1, A2, R]{bind: objectBinding(mustPointer(f)), obj: f, stub: functorStub2[A1, A2, R]}
}

func (w Func2[A1, A2, R]) IsValid() bool { return w.stub != nil }

func (w Func2[A1, A2, R]) Call(a1 A1, a2 A2) R { return w.stub(w.fn, w.obj, a1, a2) }

func (w Func2[A1, A2, R]) CallIf(a1 A1, a2 A2) optional.Option[R] {
	if w.stub == nil {
		return optional.None[R]()
	}
	return optional.Some(w.stub(w.fn, w.obj, a1, a2))
}

func (w Func2[A1, A2, R]) CallOr(fallback R, a1 A1, a2 A2) R {
	if w.stub == nil {
		return fallback
	}
	return w.stub(w.fn, w.obj, a1, a2)
}

func (w Func2[A1, A2, R]) Equal(rhs Func2[A1, A2, R]) bool { return w.bind.equal(rhs.bind) }

func (w Func2[A1, A2, R]) Fingerprint() uint64 { return w.bind.fingerprint() }

// Func3 is the ternary Func1. See Func1 for the binding and calling contract.
type Func3[A1, A2, A3, R any] struct {
	bind binding
	fn   func(A1, A2, A3) R
	obj  any
	stub func(fn func(A1, A2, A3) R, obj any, a1 A1, a2 A2, a3 A3) R
}

func funcStub3[A1, A2, A3, R any](fn func(A1, A2, A3) R, _ any, a1 A1, a2 A2, a3 A3) R {
	return fn(a1, a2, a3)
}

func refStub3[A1, A2, A3, R any](_ func(A1, A2, A3) R, obj any, a1 A1, a2 A2, a3 A3) R {
	return (*obj.(*func(A1, A2, A3) R))(a1, a2, a3)
}

func functorStub3[A1, A2, A3, R any](_ func(A1, A2, A3) R, obj any, a1 A1, a2 A2, a3 A3) R {
	return obj.(Invoker3[A1, A2, A3, R]).Invoke(a1, a2, a3)
}

// BindFunc3 binds a ternary function by its code pointer.
func BindFunc3[A1, A2, A3, R any](fn func(A1, A2, A3) R) Func3[A1, A2, A3, R] {
	if fn == nil {
		return Func3[A1, A2, A3, R]{}
	}
	return Func3[A1, A2, A3, R]{bind: funcBinding(fn), fn: fn, stub: funcStub3[A1, A2, A3, R]}
}

// BindRef3 binds the closure variable fn points at.
func BindRef3[A1, A2, A3, R any](fn *func(A1, A2, A3) R) Func3[A1, A2, A3, R] {
	if fn == nil {
		return Func3[A1, A2, A3, R]{}
	}
	return Func3[A1, A2, A3, R]{bind: objectBinding(fn), obj: fn, stub: refStub3[A1, A2, A3, R]}
}

// BindFunctor3 binds a functor instance by reference.
func BindFunctor3[A1, A2, A3, R any](f Invoker3[A1, A2, A3, R]) Func3[A1, A2, A3, R] {
	if f == nil {
		return Func3[A1, A2, A3, R]{}
	}
	return Func3[A1, A2, A3, R]{bind: objectBinding(mustPointer(f)), obj: f, stub: functorStub3[A1, A2, A3, R]}
}

func (w Func3[A1, A2, A3, R]) IsValid() bool { return w.stub != nil }

func (w Func3[A1, A2, A3, R]) Call(a1 A1, a2 A2, a3 A3) R { return w.stub(w.fn, w.obj, a1, a2, a3) }

func (w Func3[A1, A2, A3, R]) CallIf(a1 A1, a2 A2, a3 A3) optional.Option[R] {
	if w.stub == nil {
		return optional.None[R]()
	}
	return optional.Some(w.stub(w.fn, w.obj, a1, a2, a3))
}

func (w Func3[A1, A2, A3, R]) CallOr(fallback R, a1 A1, a2 A2, a3 A3) R {
	if w.stub == nil {
		return fallback
	}
	return w.stub(w.fn, w.obj, a1, a2, a3)
}

func (w Func3[A1, A2, A3, R]) Equal(rhs Func3[A1, A2, A3, R]) bool { return w.bind.equal(rhs.bind) }

func (w Func3[A1, A2, A3, R]) Fingerprint() uint64 { return w.bind.fingerprint() }
