// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"github.com/cznic/tagword/nym"
	"github.com/cznic/tagword/word"
)

// pairHeader is the literal header word every headered Pair carries:
// the _pr nym, directly as a tagged word — no bit-packed length field,
// unlike vec/bvl/blob (spec.md §3.4).
var pairHeader = nym.Pr.Word()

// IsPair reports whether w is pair-shaped: a kons cell, a snok cell,
// or a valref pointing at a headered _pr triple (spec.md §4.1). Only
// the last of these three representations accepts PairCar/PairCdr;
// the first two use SeqCar/SeqCdr instead.
func IsPair(mem Memory, w word.Word) bool {
	if w.IsKonsref() || w.IsSnokref() {
		return true
	}
	return IsPairHeadered(mem, w)
}

// IsPairHeadered reports whether w is a valref pointing at a headered
// _pr triple — the representation cons() falls back to when its tail
// argument is not itself a seq (spec.md §4.4).
func IsPairHeadered(mem Memory, w word.Word) bool {
	if !w.IsValref() {
		return false
	}
	return mem.ReadWord(w.Addr()) == pairHeader
}

// WritePair writes a headered 3-word pair [_pr, car, cdr] at addr and
// returns the tagged valref word pointing at it.
func WritePair(mem Memory, addr uintptr, car, cdr word.Word) word.Word {
	mem.WriteWord(addr, pairHeader)
	mem.WriteWord(addr+word.WordSize, car)
	mem.WriteWord(addr+2*word.WordSize, cdr)
	return word.TagPointer(addr, tag3Valref)
}

func requirePairHeadered(mem Memory, w word.Word) {
	if !IsPairHeadered(mem, w) {
		violate("Pair", w)
	}
}

// PairCar returns the car field of a headered pair. Requires
// IsPairHeadered(w).
func PairCar(mem Memory, w word.Word) word.Word {
	requirePairHeadered(mem, w)
	return mem.ReadWord(w.Addr() + word.WordSize)
}

// PairCdr returns the cdr field of a headered pair. Requires
// IsPairHeadered(w).
func PairCdr(mem Memory, w word.Word) word.Word {
	requirePairHeadered(mem, w)
	return mem.ReadWord(w.Addr() + 2*word.WordSize)
}

// PairSetCar replaces the car field of a headered pair in place.
func PairSetCar(mem Memory, w word.Word, v word.Word) {
	requirePairHeadered(mem, w)
	mem.WriteWord(w.Addr()+word.WordSize, v)
}

// PairSetCdr replaces the cdr field of a headered pair in place.
func PairSetCdr(mem Memory, w word.Word, v word.Word) {
	requirePairHeadered(mem, w)
	mem.WriteWord(w.Addr()+2*word.WordSize, v)
}
