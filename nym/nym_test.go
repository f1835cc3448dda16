// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nym

import "testing"

func TestRoundTrip(t *testing.T) {
	cases := [][3]byte{
		{'v', 'e', 'c'},
		{'b', 'l', 'b'},
		{'_', 'p', 'r'},
		{'[', '[', '['}, // low bound of the alphabet
		{'z', 'z', 'z'}, // high bound
	}
	for _, c := range cases {
		n := New(c[0], c[1], c[2])
		if g, e := n.Decode(), string(c[:]); g != e {
			t.Fatalf("New(%q).Decode() = %q, want %q", c, g, e)
		}
	}
}

func TestCanonicalVocabulary(t *testing.T) {
	cases := map[Nym]string{
		Pr: "_pr", Cns: "cns", Snc: "snc", Vec: "vec", Bvl: "bvl",
		Rcd: "rcd", Blb: "blb", Bsq: "bsq", Seq: "seq", Lst: "lst",
		Deq: "deq", Fcn: "fcn", Ref: "ref", Atm: "atm",
	}
	for n, want := range cases {
		if g := n.Decode(); g != want {
			t.Fatalf("nym.Decode() = %q, want %q", g, want)
		}
	}
}

func TestMustParse(t *testing.T) {
	if g, e := MustParse("vec").Decode(), "vec"; g != e {
		t.Fatalf("MustParse(%q).Decode() = %q, want %q", "vec", g, e)
	}
}

func TestOutOfAlphabetLowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for letter below the alphabet")
		}
	}()
	New(0, 'e', 'c')
}

func TestOutOfAlphabetHighPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for letter above the alphabet")
		}
	}()
	New('v', '{', 'c') // '{' == 123 is one past 'z' == 122
}

func TestWrongLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-3-byte input")
		}
	}()
	MustParse("toolong")
}
