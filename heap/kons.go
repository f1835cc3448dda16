// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"github.com/cznic/tagword/literal"
	"github.com/cznic/tagword/word"
)

const (
	tag3Konsref = 0x1
	tag3Snokref = 0x3
	tag3Valref  = 0x5
)

// IsSeq reports whether w is null, a kons cell, or a snok cell —
// anything that can stand as the tail of a forward list or the init
// of a reverse one (spec.md §4.1).
func IsSeq(w word.Word) bool {
	return literal.IsNull(w) || w.IsKonsref() || w.IsSnokref()
}

// IsKons reports whether w points to a kons cell.
func IsKons(w word.Word) bool { return w.IsKonsref() }

// IsSnok reports whether w points to a snok cell.
func IsSnok(w word.Word) bool { return w.IsSnokref() }

// WriteKons writes a header-less 2-word kons cell [head, tail] at
// addr and returns the tagged konsref word pointing at it. Callers
// must ensure IsSeq(tail) before calling — cons() on a non-seq tail
// builds a headered Pair instead (spec.md §4.4).
func WriteKons(mem Memory, addr uintptr, head, tail word.Word) word.Word {
	mem.WriteWord(addr, head)
	mem.WriteWord(addr+word.WordSize, tail)
	return word.TagPointer(addr, tag3Konsref)
}

// WriteSnok writes a header-less 2-word snok cell [init, last] at
// addr and returns the tagged snokref word pointing at it. Callers
// must ensure IsSeq(init) before calling.
func WriteSnok(mem Memory, addr uintptr, init, last word.Word) word.Word {
	mem.WriteWord(addr, init)
	mem.WriteWord(addr+word.WordSize, last)
	return word.TagPointer(addr, tag3Snokref)
}

// SeqCar returns word 0 of a kons or snok cell: the head, for a kons;
// the init sub-sequence, for a snok. It requires IsKons(w) ||
// IsSnok(w).
func SeqCar(mem Memory, w word.Word) word.Word {
	if !w.IsKonsref() && !w.IsSnokref() {
		violate("SeqCar", w)
	}
	return mem.ReadWord(w.Addr())
}

// SeqCdr returns word 1 of a kons or snok cell: the remaining seq, for
// a kons; the last element, for a snok. The caller is responsible for
// knowing which representation it is walking (spec.md §4.1).
func SeqCdr(mem Memory, w word.Word) word.Word {
	if !w.IsKonsref() && !w.IsSnokref() {
		violate("SeqCdr", w)
	}
	return mem.ReadWord(w.Addr() + word.WordSize)
}
