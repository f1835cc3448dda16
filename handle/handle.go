// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package handle implements the stack-scoped root list: the doubly
// linked registry of live values a Space's allocator consults as its
// root set. A Handle is how user code keeps a tagged word alive across
// allocations that may trigger collection.
package handle

import "github.com/cznic/tagword/word"

// A Handle is a stack-scoped rooted reference to a tagged word. Every
// live Handle of a List is reachable by walking that List (spec.md
// §3.5, §4.5 invariant 1 and 6).
type Handle struct {
	prev, next *Handle
	value      word.Word
	list       *List
}

// Value returns the word this handle currently roots.
func (h *Handle) Value() word.Word { return h.value }

// SetValue replaces the rooted word. List topology is untouched
// (spec.md §4.2 "Assignment replaces only the value field").
func (h *Handle) SetValue(v word.Word) { h.value = v }

// Close unlinks h from its List in O(1). Closing an already-closed (or
// zero) Handle is a no-op. After Close, h must not be used again —
// handles must never outlive the space that produced them (spec.md
// §4.2).
func (h *Handle) Close() {
	if h.list == nil {
		return
	}
	h.prev.next = h.next
	h.next.prev = h.prev
	h.prev, h.next, h.list = nil, nil, nil
}

// Copy inserts a new Handle adjacent to h, sharing h's current value.
// The copy's lifetime is independent of h: closing one does not affect
// the other, and both remain roots while live (spec.md §3.5).
func (h *Handle) Copy() *Handle {
	if h.list == nil {
		panic(&word.ContractViolation{Op: "Handle.Copy: handle already closed"})
	}
	c := &Handle{value: h.value, list: h.list}
	c.prev = h
	c.next = h.next
	h.next.prev = c
	h.next = c
	return c
}

// List is the root set owned by one Space: a doubly linked list of
// live Handles, threaded through a sentinel node so insertion at the
// head and removal from anywhere are both O(1) (spec.md §3.5, §4.2).
type List struct {
	sentinel Handle
}

// NewList returns an empty, ready to use List.
func NewList() *List {
	l := &List{}
	l.sentinel.next = &l.sentinel
	l.sentinel.prev = &l.sentinel
	l.sentinel.list = l
	return l
}

// New links a fresh Handle rooting v at the head of l and returns it.
// Construction order (spec.md §4.2):
//
//	self.value := v
//	self.next := head.next; self.prev := head
//	head.next.prev := self; head.next := self
func (l *List) New(v word.Word) *Handle {
	h := &Handle{value: v, list: l}
	h.next = l.sentinel.next
	h.prev = &l.sentinel
	l.sentinel.next.prev = h
	l.sentinel.next = h
	return h
}

// Len counts the live handles in l. O(n); intended for tests and
// diagnostics, not hot paths.
func (l *List) Len() int {
	n := 0
	for h := l.sentinel.next; h != &l.sentinel; h = h.next {
		n++
	}
	return n
}

// Walk enumerates l's handles in insertion-adjacent order, forward
// (most-recently-created first) or backward, stopping early if fn
// returns false. A GC may walk the root set in either direction
// (spec.md §4.2); Walk is how it would do so.
func (l *List) Walk(forward bool, fn func(*Handle) bool) {
	if forward {
		for h := l.sentinel.next; h != &l.sentinel; h = h.next {
			if !fn(h) {
				return
			}
		}
		return
	}
	for h := l.sentinel.prev; h != &l.sentinel; h = h.prev {
		if !fn(h) {
			return
		}
	}
}
