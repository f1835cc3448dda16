// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space ties the allocator, the heap layout decoders, and the
// root list together into the single object user code actually talks
// to: a Space is where values live and Handles are how they are kept
// alive (spec.md §4.4).
package space

import (
	"github.com/cznic/tagword/alloc"
	"github.com/cznic/tagword/handle"
	"github.com/cznic/tagword/heap"
	"github.com/cznic/tagword/literal"
	"github.com/cznic/tagword/nym"
	"github.com/cznic/tagword/word"
)

// Storage is what a Space needs from its backing store: the
// Allocator primitive plus the byte/word-addressable view package
// heap's layout functions read and write. alloc.MemAllocator and
// alloc.FileAllocator both satisfy this.
type Storage interface {
	alloc.Allocator
	heap.Memory
}

// Space owns one Storage and the root list of every live Handle
// rooted against it. It is the constructor surface spec.md §4.4
// describes: null, cons, snoc, and the vec/bvl/blob makers.
type Space struct {
	storage Storage
	roots   *handle.List
	opts    Options
}

// New returns a Space backed by storage.
func New(storage Storage, opts Options) *Space {
	return &Space{storage: storage, roots: handle.NewList(), opts: opts}
}

// NewMemSpace is a convenience constructor for an in-memory Space,
// the common case in tests and in cmd/tagword-smoke. The backing
// MemAllocator grows in pages sized by opts' resolved PageSize.
func NewMemSpace(opts Options) *Space {
	return New(alloc.NewMemAllocatorSize(opts.pageSize()), opts)
}

// PageSize reports the growth granularity this Space's Options
// resolved to.
func (sp *Space) PageSize() int { return sp.opts.pageSize() }

// Roots returns the root list new Handles are linked into.
func (sp *Space) Roots() *handle.List { return sp.roots }

// Mem returns the Memory view of this Space's backing storage, for
// callers that need to pass it directly to package heap's accessors.
func (sp *Space) Mem() heap.Memory { return sp.storage }

// NewHandle roots v, returning a Handle the caller must Close when v
// no longer needs to stay reachable.
func (sp *Space) NewHandle(v word.Word) *handle.Handle {
	return sp.roots.New(v)
}

// Null returns the canonical empty sequence. No allocation (spec.md
// §4.4).
func (sp *Space) Null() word.Word { return literal.Null }

// Cons builds a pair whose car is head. If tail is itself a seq
// (Null, a kons cell, or a snok cell) the result is a compact
// header-less 2-word kons cell; otherwise Cons falls back to a
// headered 3-word pair, since a non-seq cdr cannot be distinguished
// from a seq cdr without a header to say which (spec.md §4.4, the
// Open Question resolved in DESIGN.md: a non-seq tail always gets a
// fresh _pr block, even if tail already happens to be a valref).
func (sp *Space) Cons(head, tail word.Word) (word.Word, error) {
	if heap.IsSeq(tail) {
		addr, err := sp.storage.AllocPair(head, tail)
		if err != nil {
			return 0, err
		}
		return heap.WriteKons(sp.storage, addr, head, tail), nil
	}
	addr, err := sp.storage.AllocHeader(0, heap.PairWords())
	if err != nil {
		return 0, err
	}
	return heap.WritePair(sp.storage, addr, head, tail), nil
}

// Snoc appends last onto init. If init is itself a seq (Null, a kons
// cell, or a snok cell) the result is a compact header-less 2-word
// snok cell [init, last]; otherwise Snoc falls back to a headered
// 3-word pair [_pr, init, last], the mirror image of Cons (spec.md
// §4.4).
func (sp *Space) Snoc(init, last word.Word) (word.Word, error) {
	if heap.IsSeq(init) {
		addr, err := sp.storage.AllocPair(init, last)
		if err != nil {
			return 0, err
		}
		return heap.WriteSnok(sp.storage, addr, init, last), nil
	}
	addr, err := sp.storage.AllocHeader(0, heap.PairWords())
	if err != nil {
		return 0, err
	}
	return heap.WritePair(sp.storage, addr, init, last), nil
}

// MakeVec allocates a vec of capacity slots, each initialized to
// fill, with its header tagged with the caller-supplied nym h (spec.md
// §4.4's make_vec(h, n, fill) — h is ordinarily nym.Vec, but any
// vec-shaped vocabulary word, e.g. nym.Rcd for a record, uses the same
// layout).
func (sp *Space) MakeVec(h nym.Nym, capacity uintptr, fill word.Word) (word.Word, error) {
	total := heap.VecWords(capacity)
	addr, err := sp.storage.AllocHeader(0, total-1)
	if err != nil {
		return 0, err
	}
	return heap.WriteVec(sp.storage, addr, h, capacity, fill), nil
}

// MakeBvl allocates a bvl of numBytes raw, unspecified-content bytes,
// with its header tagged with the caller-supplied nym h (spec.md §4.4's
// make_bvl(h, num_bytes) — h is ordinarily nym.Bvl, but any bvl-shaped
// vocabulary word, e.g. nym.Bsq for a bit sequence, uses the same
// layout).
func (sp *Space) MakeBvl(h nym.Nym, numBytes uintptr) (word.Word, error) {
	total := heap.BvlWords(numBytes)
	addr, err := sp.storage.AllocHeader(0, total-1)
	if err != nil {
		return 0, err
	}
	return heap.WriteBvl(sp.storage, addr, h, numBytes), nil
}

// MakeBlob allocates a blob of numVals value slots (each initialized
// to fill) plus numBytes of raw byte storage, with its header tagged
// with the caller-supplied nym h (spec.md §4.4's make_blob(h, num_vals,
// fill, num_bytes) — h is ordinarily nym.Blb).
func (sp *Space) MakeBlob(h nym.Nym, numVals uintptr, fill word.Word, numBytes uintptr) (word.Word, error) {
	total := heap.BlobWords(numVals, numBytes)
	addr, err := sp.storage.AllocHeader(0, total-1)
	if err != nil {
		return 0, err
	}
	return heap.WriteBlob(sp.storage, addr, h, numVals, fill, numBytes), nil
}

// Stats exposes the backing Storage's allocation bookkeeping, when
// the concrete Storage provides it — both alloc.MemAllocator and
// alloc.FileAllocator do.
type statser interface {
	Stats() alloc.Stats
}

// Stats reports the backing storage's cumulative bookkeeping, or the
// zero Stats if the storage doesn't expose any.
func (sp *Space) Stats() alloc.Stats {
	if s, ok := sp.storage.(statser); ok {
		return s.Stats()
	}
	return alloc.Stats{}
}
