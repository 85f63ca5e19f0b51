package domain

// Cloneable is implemented by values that can produce an independent deep copy of themselves.
// Keys and values held by a persistent cache must satisfy it, so that an entry handed out by
// the cache can never be mutated through an alias.
type Cloneable[T any] interface {
	Clone() T
}
