package callable

import "errors"

// ErrUninitializedCall is the panic value raised when Call is issued on an
// unbound Method or ConstMethod wrapper. The Func family deliberately skips
// this guard and fails on its nil stub instead; CallIf and CallOr never
// raise in any family.
var ErrUninitializedCall = errors.New("callable: uninitialized wrapper invoked")
