// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package list provides a doubly linked list of integers, specialized into a
// [Stack] (insertion at the head) and a [Queue] (insertion at the tail). Both
// remove values by scanning the list from its head for the first matching
// node.
//
// Nodes are held in an arena owned by the list, and link to each other using
// integer handles rather than pointers. Released slots are recycled by later
// insertions. The containers are not safe for concurrent use.
package list

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrCorrupt is returned by [Container.Check] when the structure of the list
// violates one of its invariants.
var ErrCorrupt = errors.New("list: corrupted")

type (
	// handle identifies a node in the arena of a [base]. It is the index of the
	// node plus one, so that the zero value means "no node".
	handle uint32

	// node is a single cell of the list.
	node struct {
		value int
		prev  handle
		next  handle
	}

	// base holds the state and the behavior shared by [Stack] and [Queue]. Its
	// zero value is an empty list.
	base struct {
		nodes []node   // The arena; every live node and every released slot
		free  []handle // Released slots available for reuse
		head  handle
		tail  handle
		len   int
	}
)

const nilHandle handle = 0

// at returns the node identified by h, which must not be [nilHandle].
func (b *base) at(h handle) *node {
	return &b.nodes[h-1]
}

// alloc creates a new unlinked node holding value.
func (b *base) alloc(value int) handle {
	b.len++
	if n := len(b.free); n > 0 {
		h := b.free[n-1]
		b.free = b.free[:n-1]
		*b.at(h) = node{value: value}
		return h
	}
	b.nodes = append(b.nodes, node{value: value})
	return handle(len(b.nodes))
}

// release returns the slot of an unlinked node to the arena.
func (b *base) release(h handle) {
	*b.at(h) = node{}
	b.free = append(b.free, h)
	b.len--
}

// pushFront inserts value ahead of the current head.
func (b *base) pushFront(value int) {
	h := b.alloc(value)
	if b.head == nilHandle {
		b.head, b.tail = h, h
		return
	}
	b.at(h).next = b.head
	b.at(b.head).prev = h
	b.head = h
}

// pushBack inserts value after the current tail.
func (b *base) pushBack(value int) {
	h := b.alloc(value)
	if b.tail == nilHandle {
		b.head, b.tail = h, h
		return
	}
	b.at(h).prev = b.tail
	b.at(b.tail).next = h
	b.tail = h
}

// find returns the first node holding value, scanning from the head, or
// [nilHandle] if there is none.
func (b *base) find(value int) handle {
	h := b.head
	for h != nilHandle && b.at(h).value != value {
		h = b.at(h).next
	}
	return h
}

// Remove unlinks and releases the first node holding value, scanning from the
// head. Removing an absent value leaves the list untouched and reports false;
// this is not an error.
func (b *base) Remove(value int) bool {
	h := b.find(value)
	if h == nilHandle {
		return false
	}

	n := b.at(h)
	switch h {
	case b.head:
		b.head = n.next
		if b.head != nilHandle {
			b.at(b.head).prev = nilHandle
		} else {
			b.tail = nilHandle
		}
	case b.tail:
		b.tail = n.prev
		b.at(b.tail).next = nilHandle
	default:
		b.at(n.prev).next = n.next
		b.at(n.next).prev = n.prev
	}

	b.release(h)
	return true
}

// Len returns the number of values in the list.
func (b *base) Len() int {
	return b.len
}

// Clear releases every node of the list, arena included, leaving it empty.
func (b *base) Clear() {
	*b = base{}
}

// Contents returns the values of the list from head to tail. The sequence does
// not consume the list and can be iterated any number of times, but the list
// must not be modified while it is being iterated.
func (b *base) Contents() iter.Seq[int] {
	return func(yield func(int) bool) {
		for h := b.head; h != nilHandle; h = b.at(h).next {
			if !yield(b.at(h).value) {
				return
			}
		}
	}
}

// Backward returns the values of the list from tail to head, following the
// predecessor links.
func (b *base) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for h := b.tail; h != nilHandle; h = b.at(h).prev {
			if !yield(b.at(h).value) {
				return
			}
		}
	}
}

// String returns the values of the list from head to tail, separated by
// spaces.
func (b *base) String() string {
	var sb strings.Builder
	for v := range b.Contents() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Check verifies the structure of the list: head and tail are either both set
// or both empty, the head has no predecessor, the tail has no successor, and
// the successor and predecessor links describe the same chain of exactly
// [base.Len] nodes. The returned error wraps [ErrCorrupt].
func (b *base) Check() error {
	if (b.head == nilHandle) != (b.tail == nilHandle) {
		return fmt.Errorf("%w: head is %d but tail is %d", ErrCorrupt, b.head, b.tail)
	}
	if b.head == nilHandle {
		if b.len != 0 {
			return fmt.Errorf("%w: empty chain but length is %d", ErrCorrupt, b.len)
		}
		return nil
	}
	if p := b.at(b.head).prev; p != nilHandle {
		return fmt.Errorf("%w: head has predecessor %d", ErrCorrupt, p)
	}
	if n := b.at(b.tail).next; n != nilHandle {
		return fmt.Errorf("%w: tail has successor %d", ErrCorrupt, n)
	}

	count := 1
	last := b.head
	for h := b.at(b.head).next; h != nilHandle; h = b.at(h).next {
		if p := b.at(h).prev; p != last {
			return fmt.Errorf("%w: node %d links back to %d instead of %d", ErrCorrupt, h, p, last)
		}
		if count++; count > b.len {
			return fmt.Errorf("%w: chain is longer than %d nodes", ErrCorrupt, b.len)
		}
		last = h
	}
	if last != b.tail {
		return fmt.Errorf("%w: chain ends at %d but tail is %d", ErrCorrupt, last, b.tail)
	}
	if count != b.len {
		return fmt.Errorf("%w: chain has %d nodes but length is %d", ErrCorrupt, count, b.len)
	}
	return nil
}
