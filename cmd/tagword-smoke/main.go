// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tagword-smoke drives a Space through a batch of allocations
// and verifies the resulting values against the invariants package
// heap and package space implement, reporting allocator stats at the
// end. It stands in for the external test driver/harness this core
// leaves out of scope (spec.md §1).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/cznic/tagword/alloc"
	"github.com/cznic/tagword/heap"
	"github.com/cznic/tagword/nym"
	"github.com/cznic/tagword/space"
	"github.com/cznic/tagword/word"
)

var (
	oN      = flag.Int("n", 10000, "number of cons cells to build in the list stress pass")
	oSeed   = flag.Int64("seed", 1, "random seed for the vec/blob fuzz pass")
	oFile   = flag.String("f", "", "back the space with this file instead of memory")
	oVerify = flag.Bool("verify", true, "re-read every built value and check it matches what was written")
)

func buildList(sp *space.Space, n int) (word.Word, error) {
	l := sp.Null()
	for i := 0; i < n; i++ {
		var err error
		l, err = sp.Cons(word.FixInt(i), l)
		if err != nil {
			return 0, err
		}
	}
	return l, nil
}

func verifyList(sp *space.Space, l word.Word, n int) error {
	cur := l
	for i := n - 1; i >= 0; i-- {
		if !heap.IsKons(cur) {
			return fmt.Errorf("element %d: not a kons cell", i)
		}
		if g := heap.SeqCar(sp.Mem(), cur).FixintValue(); g != i {
			return fmt.Errorf("element %d: seq_car = %d", i, g)
		}
		cur = heap.SeqCdr(sp.Mem(), cur)
	}
	if cur != sp.Null() {
		return fmt.Errorf("list did not terminate at Null")
	}
	return nil
}

func fuzzVecsAndBlobs(sp *space.Space, rnd *rand.Rand, rounds int) error {
	for i := 0; i < rounds; i++ {
		capacity := uintptr(rnd.Intn(4096))
		v, err := sp.MakeVec(nym.Vec, capacity, word.FixInt(0))
		if err != nil {
			return err
		}
		if capacity > 0 {
			idx := uintptr(rnd.Intn(int(capacity)))
			heap.VecStore(sp.Mem(), v, idx, word.FixInt(i))
			if g := heap.VecFetch(sp.Mem(), v, idx).FixintValue(); g != i {
				return fmt.Errorf("round %d: vec slot mismatch: %d", i, g)
			}
		}

		nb := uintptr(rnd.Intn(128))
		b, err := sp.MakeBlob(nym.Blb, uintptr(rnd.Intn(16)), word.FixInt(0), nb)
		if err != nil {
			return err
		}
		if nb > 0 {
			idx := uintptr(rnd.Intn(int(nb)))
			heap.BlobSet(sp.Mem(), b, idx, byte(i))
			if g := heap.BlobGet(sp.Mem(), b, idx); g != byte(i) {
				return fmt.Errorf("round %d: blob byte mismatch: %d", i, g)
			}
		}
	}
	return nil
}

func run() error {
	var sp *space.Space
	if *oFile != "" {
		f, err := os.OpenFile(*oFile, os.O_RDWR|os.O_CREATE, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		fa, err := alloc.NewFileAllocator(f)
		if err != nil {
			return err
		}
		sp = space.New(fa, space.Options{})
	} else {
		sp = space.NewMemSpace(space.Options{})
	}

	l, err := buildList(sp, *oN)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	h := sp.NewHandle(l)
	defer h.Close()

	if *oVerify {
		if err := verifyList(sp, h.Value(), *oN); err != nil {
			return fmt.Errorf("verify list: %w", err)
		}
	}

	rnd := rand.New(rand.NewSource(*oSeed))
	if err := fuzzVecsAndBlobs(sp, rnd, 256); err != nil {
		return fmt.Errorf("fuzz: %w", err)
	}

	stats := sp.Stats()
	fmt.Printf("ok: %d cons cells, %d fuzz rounds, roots=%d, alloc calls=%d words=%d bytes=%d, page size=%d\n",
		*oN, 256, sp.Roots().Len(), stats.Calls, stats.Words, stats.Bytes, sp.PageSize())
	return nil
}

func main() {
	log.SetFlags(0)
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
