// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"github.com/cznic/tagword/nym"
	"github.com/cznic/tagword/word"
)

// Header field layout. The 5-bit variant tag always occupies bits
// [4:0]; the 15-bit nym code always occupies bits [19:5] immediately
// above it. What remains is split between the length field(s), sized
// so every header fits in the low 32 bits of a word and is therefore
// portable to a 32-bit host (spec.md §9 resolves the two conflicting
// header layouts in the original source by fixing one scheme; this is
// that scheme):
//
//	vechdr/bvlhdr: bits[31:20] (12 bits) is the single length field.
//	blobhdr:       bits[25:20] (6 bits) is l, bits[31:26] (6 bits) is k.
//
// A length field saturates at all-ones to signal "see the overflow
// word(s) immediately following the header" (spec.md §3.4, §9).
const (
	nymShift = 5
	nymMask  = 0x7fff // 15 bits

	vecLenShift = 20
	vecLenMask  = 0xfff // 12 bits
	vecLenMax   = vecLenMask - 1

	blobLShift = 20
	blobLMask  = 0x3f // 6 bits
	blobLMax   = blobLMask - 1

	blobKShift = 26
	blobKMask  = 0x3f // 6 bits
	blobKMax   = blobKMask - 1
)

func headerNym(h word.Word) nym.Nym {
	code := (uintptr(h) >> nymShift) & nymMask
	return nym.Nym(code << 2)
}

func withHeaderNym(tag5 uintptr, n nym.Nym) uintptr {
	code := uintptr(n.Word()) >> 2
	return tag5 | code<<nymShift
}

// vechdr / bvlhdr: one length field.

func encodeSingleLenHeader(tag5 uintptr, n nym.Nym, length uintptr) (hdr word.Word, overflow bool) {
	base := withHeaderNym(tag5, n)
	if length > vecLenMax {
		return word.Word(base | vecLenMask<<vecLenShift), true
	}
	return word.Word(base | length<<vecLenShift), false
}

func decodeSingleLen(h word.Word) (length uintptr, overflowed bool) {
	l := (uintptr(h) >> vecLenShift) & vecLenMask
	if l == vecLenMask {
		return 0, true
	}
	return l, false
}

// blobhdr: two length fields, l (word slots) and k (bytes).

func encodeBlobHeader(tag5 uintptr, n nym.Nym, numVals, numBytes uintptr) (hdr word.Word, lOverflow, kOverflow bool) {
	base := withHeaderNym(tag5, n)
	l := numVals
	lOv := false
	if l > blobLMax {
		l, lOv = blobLMask, true
	}
	k := numBytes
	kOv := false
	if k > blobKMax {
		k, kOv = blobKMask, true
	}
	base |= l << blobLShift
	base |= k << blobKShift
	return word.Word(base), lOv, kOv
}

func decodeBlobLen(h word.Word) (l uintptr, lOverflowed bool, k uintptr, kOverflowed bool) {
	l = (uintptr(h) >> blobLShift) & blobLMask
	if l == blobLMask {
		l, lOverflowed = 0, true
	}
	k = (uintptr(h) >> blobKShift) & blobKMask
	if k == blobKMask {
		k, kOverflowed = 0, true
	}
	return
}
