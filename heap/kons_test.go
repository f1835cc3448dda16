// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/cznic/tagword/literal"
	"github.com/cznic/tagword/word"
)

func TestKonsRoundTrip(t *testing.T) {
	mem := newTestMemory()
	addr := mem.alloc(2)
	k := WriteKons(mem, addr, word.FixInt(1), literal.Null)

	if !IsKons(k) || IsSnok(k) {
		t.Fatalf("variant mismatch for kons")
	}
	if !IsSeq(k) {
		t.Fatal("kons should satisfy IsSeq")
	}
	if g, e := SeqCar(mem, k).FixintValue(), 1; g != e {
		t.Fatalf("SeqCar = %d, want %d", g, e)
	}
	if SeqCdr(mem, k) != literal.Null {
		t.Fatal("SeqCdr should be Null")
	}
}

func TestSnokRoundTrip(t *testing.T) {
	mem := newTestMemory()
	addr := mem.alloc(2)
	s := WriteSnok(mem, addr, literal.Null, word.FixInt(9))

	if !IsSnok(s) || IsKons(s) {
		t.Fatalf("variant mismatch for snok")
	}
	if SeqCar(mem, s) != literal.Null {
		t.Fatal("SeqCar (init) should be Null")
	}
	if g, e := SeqCdr(mem, s).FixintValue(), 9; g != e {
		t.Fatalf("SeqCdr (last) = %d, want %d", g, e)
	}
}

func TestIsSeqIncludesNull(t *testing.T) {
	if !IsSeq(literal.Null) {
		t.Fatal("Null must satisfy IsSeq")
	}
	if IsSeq(word.FixInt(1)) {
		t.Fatal("a fixnum is not a seq")
	}
}

func TestSeqCdrOnNullPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	mem := newTestMemory()
	SeqCdr(mem, literal.Null)
}
