// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"github.com/cznic/tagword/nym"
	"github.com/cznic/tagword/word"
)

const tag5Bvlhdr = 0x1e

// WriteBvl writes a bvl header (and overflow word, if numBytes
// overflows the packed length field) at addr, reserving
// ceil(numBytes/WordSize) words of byte storage, and returns the
// tagged valref word. Byte contents are left as whatever the backing
// Memory already holds there (spec.md §3.4 leaves initial bvl
// contents unspecified).
func WriteBvl(mem Memory, addr uintptr, n nym.Nym, numBytes uintptr) word.Word {
	hdr, overflow := encodeSingleLenHeader(tag5Bvlhdr, n, numBytes)
	mem.WriteWord(addr, hdr)
	if overflow {
		mem.WriteWord(addr+word.WordSize, word.FixInt(int(numBytes)))
	}
	return word.TagPointer(addr, tag3Valref)
}

// IsBvl reports whether w is a valref whose referent carries a bvl
// header, dereferencing through the pointer to inspect the header's
// variant tag rather than any particular nym — a bvl header may carry
// any nym a caller chose at MakeBvl time (spec.md §4.1, §4.4).
func IsBvl(mem Memory, w word.Word) bool {
	return w.IsValref() && mem.ReadWord(w.Addr()).Variant() == word.Bvlhdr
}

func requireBvl(mem Memory, w word.Word) word.Word {
	if !IsBvl(mem, w) {
		violate("Bvl", w)
	}
	return mem.ReadWord(w.Addr())
}

// BvlNym returns the nym a bvl's header was written with.
func BvlNym(mem Memory, w word.Word) nym.Nym {
	return headerNym(requireBvl(mem, w))
}

// BvlByteCapacity returns a bvl's byte count.
func BvlByteCapacity(mem Memory, w word.Word) uintptr {
	hdr := requireBvl(mem, w)
	length, overflow := decodeSingleLen(hdr)
	if overflow {
		return uintptr(mem.ReadWord(w.Addr() + word.WordSize).FixintValue())
	}
	return length
}

func bvlByte0(hdr word.Word, base uintptr) uintptr {
	if _, overflow := decodeSingleLen(hdr); overflow {
		return base + 2*word.WordSize
	}
	return base + word.WordSize
}

// BvlGet returns byte i of a bvl. Requires i < BvlByteCapacity(w).
func BvlGet(mem Memory, w word.Word, i uintptr) byte {
	hdr := requireBvl(mem, w)
	if i >= BvlByteCapacity(mem, w) {
		violate("BvlGet", w)
	}
	return mem.ReadByte(bvlByte0(hdr, w.Addr()) + i)
}

// BvlSet writes byte i of a bvl. Requires i < BvlByteCapacity(w).
func BvlSet(mem Memory, w word.Word, i uintptr, b byte) {
	hdr := requireBvl(mem, w)
	if i >= BvlByteCapacity(mem, w) {
		violate("BvlSet", w)
	}
	mem.WriteByte(bvlByte0(hdr, w.Addr())+i, b)
}
