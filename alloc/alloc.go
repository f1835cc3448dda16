// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alloc implements the allocation primitive the tagword core
// requires and nothing more: the concrete garbage collector and its
// policy are explicitly out of scope (spec.md §1). An Allocator only
// hands out zeroed, word-aligned storage; callers in package space
// decide what shape to write into it.
package alloc

import "github.com/cznic/tagword/word"

// Allocator is the primitive the core needs from its storage backend:
// three ways to obtain fresh, 8-byte-aligned heap storage, mirroring
// the three gcalloc overloads of the original source (spec.md §4.3).
// Go has no overloading, so these are three named methods on one
// interface (spec.md §9's design note).
type Allocator interface {
	// AllocHeader reserves 1+words words, writes h to the first, and
	// returns the address of that first word. The remaining words are
	// left zeroed.
	AllocHeader(h word.Word, words uintptr) (uintptr, error)
	// AllocHeaderFill reserves 1+words words, writes h to the first
	// and fill to each of the rest, and returns the address of the
	// first word.
	AllocHeaderFill(h word.Word, fill word.Word, words uintptr) (uintptr, error)
	// AllocPair reserves 2 words, writes a and b to them, and returns
	// the address of the first.
	AllocPair(a, b word.Word) (uintptr, error)
}

// Stats reports an Allocator's bookkeeping, mirroring the shape of
// lldb.AllocStats: how much storage is outstanding and how many
// allocation calls produced it. A GC's policy (when to collect) would
// consult this; this core defines it but has no policy of its own.
type Stats struct {
	Bytes int64 // total bytes currently handed out
	Words int64 // total words currently handed out
	Calls int64 // number of Alloc* calls served
}
