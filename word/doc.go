// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Word format (assuming a 32-bit word minimum):

	konsref : ... aaaa aaaa aaaa aaaa aaaa aaaa aaaa a001
	snokref : ... aaaa aaaa aaaa aaaa aaaa aaaa aaaa a011
	 valref : ... aaaa aaaa aaaa aaaa aaaa aaaa aaaa a101
	intrref : ... aaaa aaaa aaaa aaaa aaaa aaaa aaaa a111

	blobmdr : ... dddd dddd dddd dddd dddd dddd ddd0 1010
	blobhdr : ... kkkk kkll llll aaaa abbb bbcc ccc0 0110
	 vechdr : ... llll llll llll aaaa abbb bbcc ccc0 0010
	 bvlhdr : ... kkkk kkkk kkkk aaaa abbb bbcc ccc1 1110
	literal : ... xxxx xxxx xxxx xxxx xxxx xxxx xxx1 1010

	 fixnum : ... xxxx xxxx xxxx xxxx xxxx xxxx xxxx xx00

shorthands above:

	a: address or tag name; b, c: tag name; d: delta;
	k: byte length; l: word length; x: uninterpreted content.

Explanation, in reverse order:

  - fixnum is its own immediate contents: (w >> 2).
  - literal is some word-sized constant: (w >> 5).
  - bvlhdr starts a byte-vector-like, length k in bytes.
  - vechdr starts a vector-like, length l in words.
  - blobhdr starts a blob, length l words + k bytes.
  - blobmdr is the interior marker of a blob; header is d words above.
  - intrref is a pointer into the tagged portion of an object; scan up for header.
  - valref is a pointer to a header (or middler, for a blob).
  - konsref is a pointer to a list (rest); interpret self as [head] ++ rest.
  - snokref is a pointer to a list (prev); interpret self as prev ++ [last].

All of the -hdr variants are the starting word of a heap object. The
length of the object is either encoded in the header (the l/k fields)
or, if those bits are insufficient (in which case the field that does
not fit is set to all-ones), held in the word immediately following
the header — two words, for blobs, since they carry two distinct
length fields. This
means the bit widths of l/k are not a fundamental limit on object size;
oversized objects just carry a little more overhead.

*/
package word
