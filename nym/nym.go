// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nym implements three-letter symbolic header tags packed
// into one word: the small vocabulary of names ("_pr", "vec", "blb",
// ...) that headers and type names use throughout the tagword
// runtime.
package nym

import (
	"fmt"

	"github.com/cznic/tagword/word"
)

// alphabetLo and alphabetHi bound the restricted alphabet a nym
// letter may be drawn from: the uppercase-and-adjacent range
// '[' (91) through 'z' (122), 32 letters, fitting in 5 bits.
const (
	alphabetLo = 91
	alphabetHi = 122
)

// Nym is a 3-letter symbolic tag, encoded in the low 15 bits above the
// 2-bit fixnum tag slot so it doubles as an immediate fixnum-shaped
// word usable inside headers.
type Nym word.Word

func validLetter(c byte) bool { return c >= alphabetLo && c <= alphabetHi }

// New encodes the three letters a, b, c as a Nym. It panics with a
// *word.ContractViolation if any letter falls outside [91, 122].
func New(a, b, c byte) Nym {
	if !validLetter(a) || !validLetter(b) || !validLetter(c) {
		panic(&word.ContractViolation{Op: fmt.Sprintf("nym.New(%q,%q,%q): letter out of alphabet", a, b, c)})
	}
	packed := uintptr(a-alphabetLo)<<10 | uintptr(b-alphabetLo)<<5 | uintptr(c-alphabetLo)
	return Nym(packed << 2)
}

// MustParse encodes the first three bytes of s as a Nym. It panics if
// s is not exactly three bytes or contains an out-of-alphabet letter.
func MustParse(s string) Nym {
	if len(s) != 3 {
		panic(&word.ContractViolation{Op: fmt.Sprintf("nym.MustParse(%q): want 3 bytes", s)})
	}
	return New(s[0], s[1], s[2])
}

// Word returns n reinterpreted as a plain tagged word (a fixnum-shaped
// immediate), for embedding in a header.
func (n Nym) Word() word.Word { return word.Word(n) }

// Decode returns the three-letter string n was built from. Lossless:
// Decode(New(a,b,c)) == string(a)+string(b)+string(c).
func (n Nym) Decode() string {
	packed := uintptr(n) >> 2
	c := byte(packed&0x1f) + alphabetLo
	b := byte((packed>>5)&0x1f) + alphabetLo
	a := byte((packed>>10)&0x1f) + alphabetLo
	return string([]byte{a, b, c})
}

func (n Nym) String() string { return n.Decode() }

// Canonical nyms in the core vocabulary (spec.md §3.2).
var (
	Pr  = New('_', 'p', 'r') // pair
	Cns = New('c', 'n', 's') // cons
	Snc = New('s', 'n', 'c') // snoc
	Vec = New('v', 'e', 'c') // vector-like
	Bvl = New('b', 'v', 'l') // byte-vector-like
	Rcd = New('r', 'c', 'd') // record
	Blb = New('b', 'l', 'b') // blob
	Bsq = New('b', 's', 'q') // bit-sequence
	Seq = New('s', 'e', 'q') // sequence
	Lst = New('l', 's', 't') // list
	Deq = New('d', 'e', 'q') // deque
	Fcn = New('f', 'c', 'n') // function
	Ref = New('r', 'e', 'f') // reference
	Atm = New('a', 't', 'm') // atom
)
