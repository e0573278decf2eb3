// Package slist provides a singly-linked list that grows only at its
// front.
package slist

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
