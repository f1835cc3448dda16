// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package literal implements the core's immediate values: the fixnum
// constructor and the four canonical literal constants. None of these
// require allocation — they are self-contained words.
package literal

import "github.com/cznic/tagword/word"

// literalTag is the fixed low-5-bit pattern shared by every literal
// word (spec.md §3.1's "11010" row); the payload occupies the bits
// above it.
const literalTag = 0x1a

func literalWord(payload uintptr) word.Word {
	return word.Word(payload<<5 | literalTag)
}

// The four canonical literals (spec.md §3.3). Payloads 0..3.
var (
	True  = literalWord(0) // #t, truth
	False = literalWord(1) // #f, the sole falsy value
	Void  = literalWord(2) // #void, undisplayed value
	Null  = literalWord(3) // #null, the empty sequence
)

// FixInt encodes a signed integer as a fixnum word.
func FixInt(i int) word.Word { return word.FixInt(i) }

// IsBool reports whether w is exactly #t or #f.
func IsBool(w word.Word) bool { return w == True || w == False }

// IsNull reports whether w is exactly #null.
func IsNull(w word.Word) bool { return w == Null }

// IsVoid reports whether w is exactly #void.
func IsVoid(w word.Word) bool { return w == Void }

// Truth reports whether w is truthy. Every word except #f is truthy;
// #f is the sole falsy value.
func Truth(w word.Word) bool { return w != False }
