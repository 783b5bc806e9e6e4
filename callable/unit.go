package callable

// Unit is the empty result type for callables that return nothing.
// Instantiate R = Unit and ignore the value; CallIf's presence bit then
// reports whether the call happened, which is all a void result can say.
type Unit struct{}
