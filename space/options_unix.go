// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package space

import "golang.org/x/sys/unix"

// DefaultPageSize reports the host's native page size.
func DefaultPageSize() int {
	return unix.Getpagesize()
}
