// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package list

import (
	"fmt"
	"io"
	"iter"
)

type (
	// Container is a doubly linked list of integers. Implementations differ
	// only in where [Container.Insert] places new values; removal and
	// traversal are shared.
	Container interface {
		// Insert adds a new node holding value. Duplicates are allowed.
		Insert(value int)
		// Remove deletes the first node holding value, scanning from the head.
		// It returns false, leaving the list unchanged, if there is no such node.
		Remove(value int) bool
		// Contents returns the values from head to tail.
		Contents() iter.Seq[int]
		// Backward returns the values from tail to head.
		Backward() iter.Seq[int]
		// Len returns the number of values held.
		Len() int
		// Clear removes all values.
		Clear()
		// Check verifies the structural invariants of the list.
		Check() error
	}

	// Stack is a [Container] that inserts at the head. Since removal is by
	// value, it is not restricted to last-in first-out order.
	Stack struct{ base }

	// Queue is a [Container] that inserts at the tail.
	Queue struct{ base }
)

var (
	_ Container = (*Stack)(nil)
	_ Container = (*Queue)(nil)
)

// NewStack creates a new, empty [Stack].
func NewStack() *Stack {
	return &Stack{}
}

// Insert pushes value at the head of the stack.
func (s *Stack) Insert(value int) {
	s.pushFront(value)
}

// NewQueue creates a new, empty [Queue].
func NewQueue() *Queue {
	return &Queue{}
}

// Insert pushes value at the tail of the queue.
func (q *Queue) Insert(value int) {
	q.pushBack(value)
}

// Fprint writes each value followed by a space, then a newline.
func Fprint(w io.Writer, values iter.Seq[int]) error {
	for v := range values {
		if _, err := fmt.Fprintf(w, "%d ", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
