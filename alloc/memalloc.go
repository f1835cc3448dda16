// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alloc

import (
	"fmt"

	"github.com/cznic/mathutil"
	"github.com/cznic/tagword/word"
)

const defaultPgBits = 16
const defaultPgSize = 1 << defaultPgBits

// MemFiler is an in-memory, growable byte store addressed by plain
// int64 offsets. It supplies the raw bytes a MemAllocator bump-
// allocates from; nothing above it assumes any particular backing
// (alloc.FileAllocator swaps this for a real file). Pages are
// allocated lazily the first time something writes into them — the
// same sparse, map-of-pages growth strategy the teacher's MemFiler
// uses for its byte-addressable backing store.
type MemFiler struct {
	pages  map[int64][]byte
	pgBits uint
	pgSize int64
	pgMask int64
	size   int64
}

// NewMemFiler returns an empty MemFiler growing in default-sized
// pages.
func NewMemFiler() *MemFiler {
	return NewMemFilerSize(defaultPgSize)
}

// NewMemFilerSize returns an empty MemFiler that grows in pages of at
// least pageSize bytes, rounded up to the nearest power of two.
// pageSize <= 0 uses the default.
func NewMemFilerSize(pageSize int) *MemFiler {
	bits := uint(defaultPgBits)
	if pageSize > 0 {
		bits = 0
		for int(1)<<bits < pageSize {
			bits++
		}
	}
	sz := int64(1) << bits
	return &MemFiler{pages: map[int64][]byte{}, pgBits: bits, pgSize: sz, pgMask: sz - 1}
}

// Size reports the high-water mark of bytes ever written.
func (f *MemFiler) Size() int64 { return f.size }

func (f *MemFiler) grow(to int64) {
	if to > f.size {
		f.size = to
	}
}

// ReadAt copies len(b) bytes starting at off into b. Bytes in a page
// never written are zero, matching a freshly allocated header's
// untouched trailing words.
func (f *MemFiler) ReadAt(b []byte, off int64) {
	for len(b) > 0 {
		pgI := off >> f.pgBits
		pgO := off & f.pgMask
		pg := f.pages[pgI]
		n := mathutil.MinInt64(int64(len(b)), f.pgSize-pgO)
		if pg == nil {
			for i := int64(0); i < n; i++ {
				b[i] = 0
			}
		} else {
			copy(b[:n], pg[pgO:])
		}
		b = b[n:]
		off += n
	}
}

// WriteAt copies b into the store starting at off, allocating
// backing pages as needed.
func (f *MemFiler) WriteAt(b []byte, off int64) {
	f.grow(off + int64(len(b)))
	for len(b) > 0 {
		pgI := off >> f.pgBits
		pgO := off & f.pgMask
		pg := f.pages[pgI]
		if pg == nil {
			pg = make([]byte, f.pgSize)
			f.pages[pgI] = pg
		}
		n := copy(pg[pgO:], b)
		b = b[int64(n):]
		off += int64(n)
	}
}

// MemAllocator is a bump allocator over a MemFiler: it never frees,
// never compacts, and never moves anything, since the concrete
// collector is out of scope for this core (spec.md §1) — it only
// needs somewhere to hand out fresh, word-aligned, zeroed storage for
// package space and package heap to write into. It also implements
// heap.Memory directly, so the same object serves as both the
// Allocator and the addressable store its own output lives in.
type MemAllocator struct {
	f     *MemFiler
	top   uintptr
	stats Stats
}

// NewMemAllocator returns a MemAllocator with nothing allocated yet.
// Address 0 is never handed out, so it can serve as a recognizable
// "no address" sentinel the way a nil pointer would.
func NewMemAllocator() *MemAllocator {
	return &MemAllocator{f: NewMemFiler(), top: word.Align8(word.WordSize)}
}

// NewMemAllocatorSize is NewMemAllocator backed by a MemFiler growing
// in pages of at least pageSize bytes, the way space.Options' resolved
// page size is meant to drive allocator growth.
func NewMemAllocatorSize(pageSize int) *MemAllocator {
	return &MemAllocator{f: NewMemFilerSize(pageSize), top: word.Align8(word.WordSize)}
}

// Stats reports the allocator's cumulative bookkeeping.
func (a *MemAllocator) Stats() Stats { return a.stats }

func (a *MemAllocator) reserve(words uintptr) uintptr {
	addr := a.top
	size := words * word.WordSize
	a.top += size
	a.stats.Words += int64(words)
	a.stats.Bytes += int64(size)
	a.stats.Calls++
	return addr
}

// AllocHeader implements Allocator.
func (a *MemAllocator) AllocHeader(h word.Word, words uintptr) (uintptr, error) {
	addr := a.reserve(1 + words)
	a.WriteWord(addr, h)
	return addr, nil
}

// AllocHeaderFill implements Allocator.
func (a *MemAllocator) AllocHeaderFill(h word.Word, fill word.Word, words uintptr) (uintptr, error) {
	addr := a.reserve(1 + words)
	a.WriteWord(addr, h)
	for i := uintptr(0); i < words; i++ {
		a.WriteWord(addr+(1+i)*word.WordSize, fill)
	}
	return addr, nil
}

// AllocPair implements Allocator.
func (a *MemAllocator) AllocPair(x, y word.Word) (uintptr, error) {
	addr := a.reserve(2)
	a.WriteWord(addr, x)
	a.WriteWord(addr+word.WordSize, y)
	return addr, nil
}

// ReadWord implements heap.Memory.
func (a *MemAllocator) ReadWord(addr uintptr) word.Word {
	var buf [word.WordSize]byte
	a.f.ReadAt(buf[:], int64(addr))
	var w uintptr
	for i := word.WordSize - 1; i >= 0; i-- {
		w = w<<8 | uintptr(buf[i])
	}
	return word.Word(w)
}

// WriteWord implements heap.Memory.
func (a *MemAllocator) WriteWord(addr uintptr, w word.Word) {
	var buf [word.WordSize]byte
	u := uintptr(w)
	for i := 0; i < word.WordSize; i++ {
		buf[i] = byte(u)
		u >>= 8
	}
	a.f.WriteAt(buf[:], int64(addr))
}

// ReadByte implements heap.Memory.
func (a *MemAllocator) ReadByte(addr uintptr) byte {
	var buf [1]byte
	a.f.ReadAt(buf[:], int64(addr))
	return buf[0]
}

// WriteByte implements heap.Memory.
func (a *MemAllocator) WriteByte(addr uintptr, b byte) {
	a.f.WriteAt([]byte{b}, int64(addr))
}

func (a *MemAllocator) String() string {
	return fmt.Sprintf("alloc.MemAllocator{top=%#x, calls=%d}", a.top, a.stats.Calls)
}
