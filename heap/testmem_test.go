// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "github.com/cznic/tagword/word"

// testMemory is a map-backed Memory fixture for exercising heap's pure
// layout functions without a real allocator. Production storage
// (package alloc) backs Memory with a real byte-addressable buffer;
// this fixture only needs to honor the same interface contract.
type testMemory struct {
	words map[uintptr]word.Word
	bytes map[uintptr]byte
	next  uintptr
}

func newTestMemory() *testMemory {
	return &testMemory{
		words: map[uintptr]word.Word{},
		bytes: map[uintptr]byte{},
		next:  word.WordSize, // keep address 0 reserved/invalid
	}
}

func (m *testMemory) ReadWord(addr uintptr) word.Word    { return m.words[addr] }
func (m *testMemory) WriteWord(addr uintptr, w word.Word) { m.words[addr] = w }
func (m *testMemory) ReadByte(addr uintptr) byte          { return m.bytes[addr] }
func (m *testMemory) WriteByte(addr uintptr, b byte)       { m.bytes[addr] = b }

// alloc hands back a fresh, word-aligned address for n words of
// storage, bumping the fixture's watermark. It mimics only the
// addressing discipline of a real Allocator, not its bookkeeping.
func (m *testMemory) alloc(n uintptr) uintptr {
	addr := m.next
	m.next += n * word.WordSize
	return addr
}
