package ktrie

// Value is the type of a stored element, Go's native interface{} — already
// a pointer-or-boxed word — rather than a hand-rolled second boxing scheme
// that would fight the garbage collector for no behavioral gain. See
// DESIGN.md for the rationale.
type Value = interface{}
