// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"github.com/cznic/tagword/nym"
	"github.com/cznic/tagword/word"
)

const tag5Vechdr = 0x02

// VecHeaderWords reports how many words of a vec's storage are header
// (1, or 2 when the length overflowed the packed field and spilled
// into the following word, spec.md §3.4).
func VecHeaderWords(mem Memory, w word.Word) uintptr {
	if _, overflow := decodeSingleLen(mem.ReadWord(w.Addr())); overflow {
		return 2
	}
	return 1
}

// WriteVec writes a vec header (and, if length overflows the packed
// field, the true-length overflow word) at addr, fills capacity slots
// with fill, and returns the tagged valref word.
func WriteVec(mem Memory, addr uintptr, n nym.Nym, capacity uintptr, fill word.Word) word.Word {
	hdr, overflow := encodeSingleLenHeader(tag5Vechdr, n, capacity)
	mem.WriteWord(addr, hdr)
	slot0 := addr + word.WordSize
	if overflow {
		mem.WriteWord(slot0, word.FixInt(int(capacity)))
		slot0 += word.WordSize
	}
	for i := uintptr(0); i < capacity; i++ {
		mem.WriteWord(slot0+i*word.WordSize, fill)
	}
	return word.TagPointer(addr, tag3Valref)
}

// IsVec reports whether w is a valref whose referent carries a vec
// header, dereferencing through the pointer to inspect the header's
// variant tag rather than any particular nym — a vec header may carry
// any nym a caller chose at MakeVec time (spec.md §4.1, §4.4).
func IsVec(mem Memory, w word.Word) bool {
	return w.IsValref() && mem.ReadWord(w.Addr()).Variant() == word.Vechdr
}

func requireVec(mem Memory, w word.Word) word.Word {
	if !IsVec(mem, w) {
		violate("Vec", w)
	}
	return mem.ReadWord(w.Addr())
}

// VecNym returns the nym a vec's header was written with.
func VecNym(mem Memory, w word.Word) nym.Nym {
	return headerNym(requireVec(mem, w))
}

// VecCapacity returns a vec's slot count.
func VecCapacity(mem Memory, w word.Word) uintptr {
	hdr := requireVec(mem, w)
	length, overflow := decodeSingleLen(hdr)
	if overflow {
		return uintptr(mem.ReadWord(w.Addr() + word.WordSize).FixintValue())
	}
	return length
}

func vecSlot0(mem Memory, w word.Word, hdr word.Word) uintptr {
	if _, overflow := decodeSingleLen(hdr); overflow {
		return w.Addr() + 2*word.WordSize
	}
	return w.Addr() + word.WordSize
}

// VecFetch returns slot i of a vec. Requires i < VecCapacity(w).
func VecFetch(mem Memory, w word.Word, i uintptr) word.Word {
	hdr := requireVec(mem, w)
	if i >= VecCapacity(mem, w) {
		violate("VecFetch", w)
	}
	return mem.ReadWord(vecSlot0(mem, w, hdr) + i*word.WordSize)
}

// VecStore writes slot i of a vec. Requires i < VecCapacity(w).
func VecStore(mem Memory, w word.Word, i uintptr, v word.Word) {
	hdr := requireVec(mem, w)
	if i >= VecCapacity(mem, w) {
		violate("VecStore", w)
	}
	mem.WriteWord(vecSlot0(mem, w, hdr)+i*word.WordSize, v)
}
