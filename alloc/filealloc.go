// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alloc

import (
	"os"

	"github.com/cznic/fileutil"
	"github.com/cznic/mathutil"
	"github.com/cznic/tagword/word"
)

// FileAllocator is an os.File backed Allocator: the same bump-
// allocation discipline as MemAllocator, but durable. It does not
// implement structural consistency across crashes by itself — like
// the teacher's SimpleFileFiler, it is intended for working sets where
// that is handled elsewhere, or isn't required.
type FileAllocator struct {
	file  *os.File
	top   uintptr
	size  int64
	stats Stats
}

// NewFileAllocator returns a FileAllocator backed by f. f must already
// be open for reading and writing; the caller owns closing it.
func NewFileAllocator(f *os.File) (*FileAllocator, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return &FileAllocator{file: f, size: fi.Size(), top: word.Align8(word.WordSize)}, nil
}

// Stats reports the allocator's cumulative bookkeeping.
func (a *FileAllocator) Stats() Stats { return a.stats }

// Reset truncates the backing file to empty and punches a hole over
// whatever the filesystem had allocated for it, then rewinds the bump
// pointer, so one scratch file can serve independent runs.
func (a *FileAllocator) Reset() error {
	if err := fileutil.PunchHole(a.file, 0, a.size); err != nil {
		// Not every filesystem supports hole punching; a failure here
		// just means Reset falls back to a plain truncate.
	}
	if err := a.file.Truncate(0); err != nil {
		return err
	}
	a.size = 0
	a.top = word.Align8(word.WordSize)
	a.stats = Stats{}
	return nil
}

func (a *FileAllocator) reserve(words uintptr) uintptr {
	addr := a.top
	size := words * word.WordSize
	a.top += size
	a.size = mathutil.MaxInt64(a.size, int64(a.top))
	a.stats.Words += int64(words)
	a.stats.Bytes += int64(size)
	a.stats.Calls++
	return addr
}

// AllocHeader implements Allocator.
func (a *FileAllocator) AllocHeader(h word.Word, words uintptr) (uintptr, error) {
	addr := a.reserve(1 + words)
	a.WriteWord(addr, h)
	for i := uintptr(0); i < words; i++ {
		a.WriteWord(addr+(1+i)*word.WordSize, 0)
	}
	return addr, nil
}

// AllocHeaderFill implements Allocator.
func (a *FileAllocator) AllocHeaderFill(h word.Word, fill word.Word, words uintptr) (uintptr, error) {
	addr := a.reserve(1 + words)
	a.WriteWord(addr, h)
	for i := uintptr(0); i < words; i++ {
		a.WriteWord(addr+(1+i)*word.WordSize, fill)
	}
	return addr, nil
}

// AllocPair implements Allocator.
func (a *FileAllocator) AllocPair(x, y word.Word) (uintptr, error) {
	addr := a.reserve(2)
	a.WriteWord(addr, x)
	a.WriteWord(addr+word.WordSize, y)
	return addr, nil
}

// ReadWord implements heap.Memory.
func (a *FileAllocator) ReadWord(addr uintptr) word.Word {
	var buf [word.WordSize]byte
	a.file.ReadAt(buf[:], int64(addr))
	var w uintptr
	for i := word.WordSize - 1; i >= 0; i-- {
		w = w<<8 | uintptr(buf[i])
	}
	return word.Word(w)
}

// WriteWord implements heap.Memory.
func (a *FileAllocator) WriteWord(addr uintptr, w word.Word) {
	var buf [word.WordSize]byte
	u := uintptr(w)
	for i := 0; i < word.WordSize; i++ {
		buf[i] = byte(u)
		u >>= 8
	}
	a.file.WriteAt(buf[:], int64(addr))
}

// ReadByte implements heap.Memory.
func (a *FileAllocator) ReadByte(addr uintptr) byte {
	var buf [1]byte
	a.file.ReadAt(buf[:], int64(addr))
	return buf[0]
}

// WriteByte implements heap.Memory.
func (a *FileAllocator) WriteByte(addr uintptr, b byte) {
	a.file.WriteAt([]byte{b}, int64(addr))
}
