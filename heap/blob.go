// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"github.com/cznic/tagword/nym"
	"github.com/cznic/tagword/word"
)

const (
	tag5Blobhdr = 0x06
	tag5Blobmdr = 0x0a

	blobmdrShift = 5
)

// blobHeaderWords reports how many leading words of a blob's storage
// are header: 1 normally, or 3 when either length field overflowed
// its packed width — spec.md's overflow convention reserves two
// overflow words for a blob (true val count, then true byte count),
// written whenever either field overflows (spec.md §3.4).
func blobHeaderWords(hdr word.Word) uintptr {
	_, lOv, _, kOv := decodeBlobLen(hdr)
	if lOv || kOv {
		return 3
	}
	return 1
}

// WriteBlob writes a blob header (plus overflow words, if numVals or
// numBytes overflows its packed field), fills numVals value slots
// with fill, writes a blobmdr word recording the distance back to the
// header, and reserves numBytes of byte storage after the middler.
// Returns the tagged valref word pointing at the header.
func WriteBlob(mem Memory, addr uintptr, n nym.Nym, numVals uintptr, fill word.Word, numBytes uintptr) word.Word {
	hdr, lOv, kOv := encodeBlobHeader(tag5Blobhdr, n, numVals, numBytes)
	mem.WriteWord(addr, hdr)
	cursor := addr + word.WordSize
	if lOv || kOv {
		mem.WriteWord(cursor, word.FixInt(int(numVals)))
		cursor += word.WordSize
		mem.WriteWord(cursor, word.FixInt(int(numBytes)))
		cursor += word.WordSize
	}
	for i := uintptr(0); i < numVals; i++ {
		mem.WriteWord(cursor+i*word.WordSize, fill)
	}
	middlerAddr := cursor + numVals*word.WordSize
	delta := (middlerAddr - addr) / word.WordSize
	mem.WriteWord(middlerAddr, word.Word(delta<<blobmdrShift|tag5Blobmdr))
	return word.TagPointer(addr, tag3Valref)
}

// IsBlob reports whether w is a valref whose referent carries a blob
// header, dereferencing through the pointer to inspect the header's
// variant tag rather than any particular nym — a blob header may carry
// any nym a caller chose at MakeBlob time (spec.md §4.1, §4.4).
func IsBlob(mem Memory, w word.Word) bool {
	return w.IsValref() && mem.ReadWord(w.Addr()).Variant() == word.Blobhdr
}

func requireBlob(mem Memory, w word.Word) word.Word {
	if !IsBlob(mem, w) {
		violate("Blob", w)
	}
	return mem.ReadWord(w.Addr())
}

// BlobNym returns the nym a blob's header was written with.
func BlobNym(mem Memory, w word.Word) nym.Nym {
	return headerNym(requireBlob(mem, w))
}

// BlobValCapacity returns a blob's value-slot count.
func BlobValCapacity(mem Memory, w word.Word) uintptr {
	hdr := requireBlob(mem, w)
	l, lOv, _, _ := decodeBlobLen(hdr)
	if lOv {
		return uintptr(mem.ReadWord(w.Addr() + word.WordSize).FixintValue())
	}
	return l
}

// BlobByteCapacity returns a blob's byte-region length.
func BlobByteCapacity(mem Memory, w word.Word) uintptr {
	hdr := requireBlob(mem, w)
	_, _, k, kOv := decodeBlobLen(hdr)
	if kOv {
		return uintptr(mem.ReadWord(w.Addr() + 2*word.WordSize).FixintValue())
	}
	return k
}

func blobVal0(hdr word.Word, base uintptr) uintptr {
	return base + blobHeaderWords(hdr)*word.WordSize
}

// BlobFetch returns value slot i of a blob. Requires i <
// BlobValCapacity(w).
func BlobFetch(mem Memory, w word.Word, i uintptr) word.Word {
	hdr := requireBlob(mem, w)
	if i >= BlobValCapacity(mem, w) {
		violate("BlobFetch", w)
	}
	return mem.ReadWord(blobVal0(hdr, w.Addr()) + i*word.WordSize)
}

// BlobStore writes value slot i of a blob. Requires i <
// BlobValCapacity(w).
func BlobStore(mem Memory, w word.Word, i uintptr, v word.Word) {
	hdr := requireBlob(mem, w)
	if i >= BlobValCapacity(mem, w) {
		violate("BlobStore", w)
	}
	mem.WriteWord(blobVal0(hdr, w.Addr())+i*word.WordSize, v)
}

func blobByte0(mem Memory, w word.Word, hdr word.Word) uintptr {
	return blobVal0(hdr, w.Addr()) + BlobValCapacity(mem, w)*word.WordSize + word.WordSize
}

// BlobGet returns byte i of a blob's raw region. Requires i <
// BlobByteCapacity(w).
func BlobGet(mem Memory, w word.Word, i uintptr) byte {
	hdr := requireBlob(mem, w)
	if i >= BlobByteCapacity(mem, w) {
		violate("BlobGet", w)
	}
	return mem.ReadByte(blobByte0(mem, w, hdr) + i)
}

// BlobSet writes byte i of a blob's raw region. Requires i <
// BlobByteCapacity(w).
func BlobSet(mem Memory, w word.Word, i uintptr, b byte) {
	hdr := requireBlob(mem, w)
	if i >= BlobByteCapacity(mem, w) {
		violate("BlobSet", w)
	}
	mem.WriteByte(blobByte0(mem, w, hdr)+i, b)
}

// BlobMiddlerDelta returns the word-distance from a blob's header to
// its middler — header words plus its value-slot count, per spec.md
// §4.5 invariant 5.
func BlobMiddlerDelta(mem Memory, w word.Word) uintptr {
	hdr := requireBlob(mem, w)
	return blobHeaderWords(hdr) + BlobValCapacity(mem, w)
}

// BlobHeaderFromMiddler walks backward from a blobmdr word found at
// middlerAddr to the address of its owning blob's header, the way a
// collector recovers block identity when it only has an interior
// pointer into a blob's byte region (spec.md §3.4).
func BlobHeaderFromMiddler(mem Memory, middlerAddr uintptr) uintptr {
	w := mem.ReadWord(middlerAddr)
	if w.Variant() != word.Blobmdr {
		violate("BlobHeaderFromMiddler", w)
	}
	delta := uintptr(w) >> blobmdrShift
	return middlerAddr - delta*word.WordSize
}
