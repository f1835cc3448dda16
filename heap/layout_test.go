// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "testing"

func TestLayoutDefaultsToTagged(t *testing.T) {
	l := NewLayout(5)
	for i := 0; i < 5; i++ {
		if g, e := l.At(i), Tagged; g != e {
			t.Fatalf("At(%d) = %v, want %v", i, g, e)
		}
	}
}

func TestLayoutSetAt(t *testing.T) {
	n := 2*crumbsPerWord + 6
	last := crumbsPerWord - 1 // last crumb of the first backing word
	l := NewLayout(n)         // spans more than one backing word
	l.Set(0, NonPointer)
	l.Set(last, ClosePointer)
	l.Set(last+1, FarPointer)
	l.Set(n-1, Tagged)

	cases := []struct {
		i int
		c Crumb
	}{
		{0, NonPointer},
		{1, Tagged},
		{last, ClosePointer},
		{last + 1, FarPointer},
		{n - 1, Tagged},
	}
	for _, c := range cases {
		if g, e := l.At(c.i), c.c; g != e {
			t.Fatalf("At(%d) = %v, want %v", c.i, g, e)
		}
	}
}

func TestLayoutOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	l := NewLayout(3)
	l.Set(3, Tagged)
}
