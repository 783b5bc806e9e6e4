// Package callable provides small, fixed-size wrappers that hold any
// callable — a free function, a closure, a functor, or a method — behind one
// uniform calling surface, resolved once at bind time.
//
// A wrapper is nothing but an invocation record: a payload (code pointer or
// borrowed object reference) paired with a stub that knows how to reinterpret
// the payload and perform the real call. There is no interface embedding, no
// reflection on the call path, and no heap allocation: the stub is the whole
// dispatch mechanism.
//
// Three families exist, distinguished by the shape of the call:
//
//   - Func0..Func3 wrap receiver-less callables: plain functions
//     (BindFuncN), closure variables bound by reference (BindRefN), and
//     functor instances (BindFunctorN).
//   - Method0..Method3 wrap pointer-receiver method expressions such as
//     (*Counter).Add; the receiver is supplied at every call and never
//     stored.
//   - ConstMethod0..ConstMethod3 wrap value-receiver method expressions;
//     the callee gets a copy and cannot mutate the caller's receiver.
//
// Go has no variadic type parameters, so the families are indexed by arity,
// 0 through 3 call arguments.
//
// Wrappers are copyable value types and own nothing. The referenced closure,
// functor, or receiver must outlive every call; the wrapper never tracks,
// extends, or checks that lifetime. The zero value of every wrapper type is
// unbound: Call on an unbound Method or ConstMethod panics with
// ErrUninitializedCall, Call on an unbound Func panics on its nil stub, and
// CallIf/CallOr never panic — they substitute absence or a fallback instead.
//
// Nothing here is synchronized. Concurrent calls through an already-bound
// wrapper are safe; rebinding a wrapper while another goroutine calls it is
// a data race.
package callable
