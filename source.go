package slist

import (
	"iter"
	"slices"
)

// Source is the argument to [List.Insert]. It is either a single
// value, created with [Single], or a sequence of values, created with
// [Collection].
type Source[T any] interface {
	values() []T
}

type single[T any] struct {
	v T
}

// Single returns a Source containing just v.
func Single[T any](v T) Source[T] {
	return single[T]{v: v}
}

func (s single[T]) values() []T {
	return []T{s.v}
}

type collection[T any] struct {
	seq iter.Seq[T]
}

// Collection returns a Source that yields the values of seq. seq must
// yield its values in the same order every time it is iterated. A nil
// seq is treated as empty.
func Collection[T any](seq iter.Seq[T]) Source[T] {
	return collection[T]{seq: seq}
}

func (c collection[T]) values() []T {
	if c.seq == nil {
		return nil
	}
	return slices.Collect(c.seq)
}
