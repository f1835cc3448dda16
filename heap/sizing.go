// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "github.com/cznic/tagword/word"

// VecWords returns the total word count (header included) a vec of
// the given capacity occupies, so a caller can reserve exactly that
// much storage from an Allocator before calling WriteVec.
func VecWords(capacity uintptr) uintptr {
	if capacity > vecLenMax {
		return 2 + capacity
	}
	return 1 + capacity
}

// BvlWords returns the total word count (header included) a bvl of
// the given byte length occupies.
func BvlWords(numBytes uintptr) uintptr {
	data := (numBytes + word.WordSize - 1) / word.WordSize
	if numBytes > vecLenMax {
		return 2 + data
	}
	return 1 + data
}

// BlobWords returns the total word count (header included) a blob
// with numVals value slots and numBytes of raw byte storage occupies,
// including its middler word.
func BlobWords(numVals, numBytes uintptr) uintptr {
	header := uintptr(1)
	if numVals > blobLMax || numBytes > blobKMax {
		header = 3
	}
	data := (numBytes + word.WordSize - 1) / word.WordSize
	return header + numVals + 1 /* middler */ + data
}

// PairWords returns the payload word count of a headered pair — the
// argument an Allocator.AllocHeader call needs, not counting the
// header word it reserves on top.
func PairWords() uintptr { return 2 }
