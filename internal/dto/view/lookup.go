package view

// Lookup is the result of resolving a foreign id against a cached
// collection. It distinguishes "resolved to a value" from "no data", so a
// consumer never has to guess whether a display name is real or a fallback.
type Lookup[T any] struct {
	value T
	ok    bool
}

func Resolved[T any](value T) Lookup[T] {
	return Lookup[T]{value: value, ok: true}
}

func Unresolved[T any]() Lookup[T] {
	return Lookup[T]{}
}

func (l Lookup[T]) Value() (T, bool) {
	return l.value, l.ok
}

func (l Lookup[T]) IsResolved() bool {
	return l.ok
}
