// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "github.com/cznic/tagword/word"

// Crumb is one 2-bit field of a Layout, describing the kind of a
// single word within an object's allocation.
type Crumb uint8

// The four crumb kinds. Tagged is an ordinary tagged word (decode its
// variant to find out what it is); NonPointer is raw untagged data
// (e.g. a blob's value slots when used as scratch, or padding);
// ClosePointer and FarPointer distinguish, for a future native
// interop layer, words that point within this space from words that
// point outside it.
const (
	Tagged Crumb = iota
	NonPointer
	ClosePointer
	FarPointer
)

const (
	crumbBits = 2
	crumbMask = 0x3
	// crumbsPerWord is how many 2-bit crumbs pack into one backing
	// uintptr — derived from the host's word width so a 32-bit build
	// doesn't over-index the backing slice (16 crumbs/word there,
	// 32 on a 64-bit host).
	crumbsPerWord = word.WordSize * 8 / crumbBits
)

// Layout is a compact bitstring describing, word by word, the kind of
// every word in an object's allocation: two bits per word, packed
// low-to-high into a slice of uintptr. It is descriptive only —
// nothing in this package consumes a Layout; it exists as the shape a
// future native-interop layer would walk to tell pointer words from
// raw data without re-decoding every tagged word (spec.md §1(iv)).
type Layout struct {
	words  []uintptr
	crumbs int
}

// NewLayout returns a Layout with room for n crumbs, all initialized
// to Tagged.
func NewLayout(n int) *Layout {
	return &Layout{
		words:  make([]uintptr, (n+crumbsPerWord-1)/crumbsPerWord),
		crumbs: n,
	}
}

// Len returns the number of crumbs in l.
func (l *Layout) Len() int { return l.crumbs }

func (l *Layout) locate(i int) (word int, shift uint) {
	if i < 0 || i >= l.crumbs {
		panic("heap: Layout index out of range")
	}
	return i / crumbsPerWord, uint(i%crumbsPerWord) * crumbBits
}

// Set records the kind of the i'th word.
func (l *Layout) Set(i int, c Crumb) {
	wi, shift := l.locate(i)
	l.words[wi] = l.words[wi]&^(crumbMask<<shift) | uintptr(c)<<shift
}

// At returns the kind of the i'th word.
func (l *Layout) At(i int) Crumb {
	wi, shift := l.locate(i)
	return Crumb((l.words[wi] >> shift) & crumbMask)
}
