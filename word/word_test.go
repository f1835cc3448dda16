// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package word

import "testing"

func TestFixintRoundTrip(t *testing.T) {
	for _, i := range []int{0, 1, -1, 42, -42, 1 << 20, -(1 << 20)} {
		w := FixInt(i)
		if g, e := w.Variant(), Fixnum; g != e {
			t.Fatalf("FixInt(%d).Variant() = %v, want %v", i, g, e)
		}
		if !w.IsFixint() {
			t.Fatalf("IsFixint(FixInt(%d)) = false", i)
		}
		if g, e := w.FixintValue(), i; g != e {
			t.Fatalf("FixintValue(FixInt(%d)) = %d, want %d", i, g, e)
		}
	}
}

func TestVariantPointerTags(t *testing.T) {
	cases := []struct {
		tag3 uintptr
		want Variant
	}{
		{0x1, Konsref},
		{0x3, Snokref},
		{0x5, Valref},
		{0x7, Intrref},
	}
	for _, c := range cases {
		w := TagPointer(0x1000, c.tag3)
		if g := w.Variant(); g != c.want {
			t.Fatalf("TagPointer(0x1000, %#x).Variant() = %v, want %v", c.tag3, g, c.want)
		}
		if g, e := w.Addr(), uintptr(0x1000); g != e {
			t.Fatalf("Addr() = %#x, want %#x", g, e)
		}
	}
}

func TestVariantHeaderTags(t *testing.T) {
	cases := []struct {
		low5 uintptr
		want Variant
	}{
		{tag5Blobmdr, Blobmdr},
		{tag5Blobhdr, Blobhdr},
		{tag5Vechdr, Vechdr},
		{tag5Bvlhdr, Bvlhdr},
		{tag5Literal, Literal},
	}
	for _, c := range cases {
		w := Word(c.low5)
		if g := w.Variant(); g != c.want {
			t.Fatalf("Word(%#x).Variant() = %v, want %v", c.low5, g, c.want)
		}
	}
}

func TestMalformedWordPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on malformed word")
		} else if _, ok := r.(*ContractViolation); !ok {
			t.Fatalf("expected *ContractViolation, got %T", r)
		}
	}()
	// low5 == 0x0e matches no variant (reserved/unused per the word table).
	Word(0x0e).Variant()
}

func TestAddrRequiresPointerVariant(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic calling Addr on a fixnum")
		}
	}()
	FixInt(7).Addr()
}

func TestAlign8(t *testing.T) {
	cases := map[uintptr]uintptr{0: 0, 1: 8, 7: 8, 8: 8, 9: 16, 17: 24}
	for in, want := range cases {
		if g := Align8(in); g != want {
			t.Fatalf("Align8(%d) = %d, want %d", in, g, want)
		}
	}
}

func TestTagPointerRequiresAlignment(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic tagging a misaligned address")
		}
	}()
	TagPointer(0x1003, 0x1)
}
