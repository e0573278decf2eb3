package slist

// List is a singly-linked list. Values can only be added to the front
// of the list. A zero value List is ready to use.
//
// A List must not be copied after first use, as the copy would share
// its nodes with the original. A List is not safe for concurrent use.
type List[T any] struct {
	_ noCopy

	head *node[T]
}

// New returns a new, empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// From returns a new list containing the values of src in order. If
// src is nil, the list is empty.
func From[T any](src Source[T]) *List[T] {
	var ls List[T]
	if src != nil {
		ls.Insert(src)
	}
	return &ls
}

// Insert adds the values of src to the front of the list. The values
// keep the order that src yields them in and are followed by whatever
// the list held before. Inserting a nil or empty Source does nothing.
func (ls *List[T]) Insert(src Source[T]) {
	if src == nil {
		return
	}

	vals := src.values()
	for i := len(vals) - 1; i >= 0; i-- {
		ls.head = ls.head.prepend(vals[i])
	}
}
