package slist

// node is a single link of a [List]'s chain. A node is referenced by
// exactly one predecessor, or by the list itself if it is the head.
type node[T any] struct {
	val  T
	next *node[T]
}

// prepend returns a new node holding v whose next node is n. n may be
// nil.
func (n *node[T]) prepend(v T) *node[T] {
	return &node[T]{val: v, next: n}
}
