// Package memo provides bounded memoization fronts for bound callable
// wrappers over comparable argument types.
//
// Memoization assumes purity — not just determinism, but referential
// transparency. Do not memoize wrappers around impure callables (time, I/O,
// random state) or around methods that mutate their receiver: the cache will
// happily replay a stale result.
package memo

import "github.com/on-the-ground/call_able_go/callable"

// Func1 returns a memoizing front for w, bounded at maxSize entries per
// generation. w must be bound: the front calls through Call, so an unbound
// wrapper panics on first miss.
func Func1[A1 comparable, R any](w callable.Func1[A1, R], maxSize uint32) func(A1) R {
	table := newRotating[A1, R](maxSize)
	return func(a1 A1) R {
		if v, ok := table.load(a1); ok {
			return v
		}
		v := w.Call(a1)
		table.store(a1, v)
		return v
	}
}

type key2[A1, A2 comparable] struct {
	a1 A1
	a2 A2
}

// Func2 is the binary Func1.
func Func2[A1, A2 comparable, R any](w callable.Func2[A1, A2, R], maxSize uint32) func(A1, A2) R {
	table := newRotating[key2[A1, A2], R](maxSize)
	return func(a1 A1, a2 A2) R {
		k := key2[A1, A2]{a1: a1, a2: a2}
		if v, ok := table.load(k); ok {
			return v
		}
		v := w.Call(a1, a2)
		table.store(k, v)
		return v
	}
}

type key3[A1, A2, A3 comparable] struct {
	a1 A1
	a2 A2
	a3 A3
}

// Func3 is the ternary Func1.
func Func3[A1, A2, A3 comparable, R any](w callable.Func3[A1, A2, A3, R], maxSize uint32) func(A1, A2, A3) R {
	table := newRotating[key3[A1, A2, A3], R](maxSize)
	return func(a1 A1, a2 A2, a3 A3) R {
		k := key3[A1, A2, A3]{a1: a1, a2: a2, a3: a3}
		if v, ok := table.load(k); ok {
			return v
		}
		v := w.Call(a1, a2, a3)
		table.store(k, v)
		return v
	}
}

// ConstMethod1 memoizes a value-receiver method wrapper against a fixed
// receiver. The receiver is part of neither the key nor the cache: bind one
// front per receiver. The method must be a pure read of the receiver.
func ConstMethod1[T any, A1 comparable, R any](w callable.ConstMethod1[T, A1, R], recv T, maxSize uint32) func(A1) R {
	table := newRotating[A1, R](maxSize)
	return func(a1 A1) R {
		if v, ok := table.load(a1); ok {
			return v
		}
		v := w.Call(recv, a1)
		table.store(a1, v)
		return v
	}
}
