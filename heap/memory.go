// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap implements the header-bearing and header-less object
// layouts of the managed space: kons/snok cells, headered pairs,
// vec/bvl/blob, and the length-overflow convention shared by all three
// header kinds. Every function here operates on a caller-supplied
// Memory, the word/byte-addressable view of a Space's allocated
// storage (spec.md §3.4).
package heap

import "github.com/cznic/tagword/word"

// Memory is the word/byte-addressable storage an Allocator manages.
// heap's layout functions are pure decoders/encoders over this
// interface; they hold no storage of their own.
type Memory interface {
	// ReadWord returns the word at byte address addr. addr must be
	// word aligned (a multiple of word.WordSize).
	ReadWord(addr uintptr) word.Word
	// WriteWord stores w at byte address addr. addr must be word
	// aligned (a multiple of word.WordSize).
	WriteWord(addr uintptr, w word.Word)
	// ReadByte returns the byte at address addr (unaligned).
	ReadByte(addr uintptr) byte
	// WriteByte stores b at address addr (unaligned).
	WriteByte(addr uintptr, b byte)
}

func violate(op string, w word.Word) {
	panic(&word.ContractViolation{Op: op, Word: w})
}
