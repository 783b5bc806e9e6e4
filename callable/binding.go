package callable

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// bindKind records which alternative of the payload a binding selected.
// It plays the role the stub pointer's identity plays in equality: two
// bindings of different kinds never compare equal.
type bindKind uint8

const (
	bindNone   bindKind = iota
	bindFunc            // free function: identity is the code pointer
	bindObject          // closure variable or functor: identity is its address
	bindMethod          // method expression: identity is the code pointer
)

// binding is the comparable half of an invocation record. The callable
// payload itself lives in typed fields on each wrapper; binding carries just
// enough to decide equality and produce a fingerprint, with no reflection on
// the call path.
type binding struct {
	kind bindKind
	fn   uintptr
	obj  any
}

// codePointerOf returns the entry address of a func value. Every closure
// created from one literal shares a single code pointer, which is why
// closures with captured state should be bound by reference instead.
func codePointerOf(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func funcBinding(fn any) binding {
	return binding{kind: bindFunc, fn: codePointerOf(fn)}
}

func methodBinding(m any) binding {
	return binding{kind: bindMethod, fn: codePointerOf(m)}
}

func objectBinding(obj any) binding {
	return binding{kind: bindObject, obj: obj}
}

// mustPointer guards the functor constructors: the wrapper stores a borrowed
// reference, so binding a functor by value would silently copy its state and
// break pointer-identity equality.
func mustPointer(f any) any {
	if reflect.ValueOf(f).Kind() != reflect.Pointer {
		panic("callable: functor must be bound through a pointer")
	}
	return f
}

// equal mirrors the invocation-record comparison: kinds must match, then
// unbound bindings always match, code-pointer kinds compare their pointers,
// and object kinds compare the referenced instance's identity. Comparing the
// obj interfaces also compares their dynamic types, so a closure variable
// and a functor that happen to share an address stay distinct.
func (b binding) equal(rhs binding) bool {
	if b.kind != rhs.kind {
		return false
	}
	switch b.kind {
	case bindNone:
		return true
	case bindObject:
		return b.obj == rhs.obj
	default:
		return b.fn == rhs.fn
	}
}

// fingerprint condenses the binding identity into one xxhash value.
// Wrappers hold func fields and therefore cannot be map keys themselves;
// the fingerprint stands in for them.
func (b binding) fingerprint() uint64 {
	var buf [24]byte
	buf[0] = byte(b.kind)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(b.fn))
	if b.obj != nil {
		binary.LittleEndian.PutUint64(buf[16:24], uint64(reflect.ValueOf(b.obj).Pointer()))
	}
	return xxhash.Sum64(buf[:])
}
