// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/cznic/tagword/literal"
	"github.com/cznic/tagword/nym"
	"github.com/cznic/tagword/word"
)

func TestVecSmall(t *testing.T) {
	mem := newTestMemory()
	const n = 5
	addr := mem.alloc(1 + n)
	v := WriteVec(mem, addr, nym.Vec, n, literal.False)

	if g, e := VecCapacity(mem, v), uintptr(n); g != e {
		t.Fatalf("VecCapacity = %d, want %d", g, e)
	}
	for i := uintptr(0); i < n; i++ {
		if VecFetch(mem, v, i) != literal.False {
			t.Fatalf("slot %d not filled", i)
		}
	}
	VecStore(mem, v, 2, word.FixInt(7))
	if g, e := VecFetch(mem, v, 2).FixintValue(), 7; g != e {
		t.Fatalf("VecFetch(2) = %d, want %d", g, e)
	}
}

func TestVecOverflow(t *testing.T) {
	mem := newTestMemory()
	const n = vecLenMax + 10
	addr := mem.alloc(2 + n)
	v := WriteVec(mem, addr, nym.Vec, n, word.FixInt(0))

	if g, e := VecCapacity(mem, v), uintptr(n); g != e {
		t.Fatalf("VecCapacity = %d, want %d", g, e)
	}
	VecStore(mem, v, n-1, word.FixInt(99))
	if g, e := VecFetch(mem, v, n-1).FixintValue(), 99; g != e {
		t.Fatalf("VecFetch(last) = %d, want %d", g, e)
	}
}

func TestIsVec(t *testing.T) {
	mem := newTestMemory()
	addr := mem.alloc(1 + 3)
	v := WriteVec(mem, addr, nym.Rcd, 3, literal.Null)

	if !IsVec(mem, v) {
		t.Fatal("IsVec false for a vec-shaped rcd header")
	}
	if g, e := VecNym(mem, v), nym.Rcd; g != e {
		t.Fatalf("VecNym = %v, want %v", g, e)
	}

	baddr := mem.alloc(4)
	b := WriteBvl(mem, baddr, nym.Bvl, 3)
	if IsVec(mem, b) {
		t.Fatal("IsVec true for a bvl")
	}
	if IsVec(mem, word.FixInt(0)) {
		t.Fatal("IsVec true for a fixnum")
	}
}

func TestVecOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	mem := newTestMemory()
	addr := mem.alloc(1 + 3)
	v := WriteVec(mem, addr, nym.Vec, 3, literal.Null)
	VecFetch(mem, v, 3)
}
