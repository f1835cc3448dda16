// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/cznic/tagword/nym"
	"github.com/cznic/tagword/word"
)

func TestBvlSmall(t *testing.T) {
	mem := newTestMemory()
	const n = 10
	addr := mem.alloc(4) // header + enough words to cover n bytes
	b := WriteBvl(mem, addr, nym.Bvl, n)

	if g, e := BvlByteCapacity(mem, b), uintptr(n); g != e {
		t.Fatalf("BvlByteCapacity = %d, want %d", g, e)
	}
	for i := uintptr(0); i < n; i++ {
		BvlSet(mem, b, i, byte(i+1))
	}
	for i := uintptr(0); i < n; i++ {
		if g, e := BvlGet(mem, b, i), byte(i+1); g != e {
			t.Fatalf("BvlGet(%d) = %d, want %d", i, g, e)
		}
	}
}

func TestBvlOverflow(t *testing.T) {
	mem := newTestMemory()
	const n = vecLenMax + 5 // overflows the packed 12-bit length field
	addr := mem.alloc(2 + n)
	b := WriteBvl(mem, addr, nym.Bvl, n)

	if g, e := BvlByteCapacity(mem, b), uintptr(n); g != e {
		t.Fatalf("BvlByteCapacity = %d, want %d", g, e)
	}
	BvlSet(mem, b, n-1, 0xff)
	if g, e := BvlGet(mem, b, n-1), byte(0xff); g != e {
		t.Fatalf("BvlGet(last) = %d, want %d", g, e)
	}
}

func TestIsBvl(t *testing.T) {
	mem := newTestMemory()
	addr := mem.alloc(4)
	b := WriteBvl(mem, addr, nym.Bsq, 3)

	if !IsBvl(mem, b) {
		t.Fatal("IsBvl false for a bvl-shaped bsq header")
	}
	if g, e := BvlNym(mem, b), nym.Bsq; g != e {
		t.Fatalf("BvlNym = %v, want %v", g, e)
	}

	vaddr := mem.alloc(1 + 3)
	v := WriteVec(mem, vaddr, nym.Vec, 3, word.FixInt(0))
	if IsBvl(mem, v) {
		t.Fatal("IsBvl true for a vec")
	}
}

func TestBvlOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	mem := newTestMemory()
	addr := mem.alloc(4)
	b := WriteBvl(mem, addr, nym.Bvl, 3)
	BvlGet(mem, b, 3)
}
