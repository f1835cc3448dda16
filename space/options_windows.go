// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package space

// DefaultPageSize reports the host's native page size. Windows has no
// direct equivalent of unix.Getpagesize in golang.org/x/sys; 4096 is
// the universal page size on every Windows architecture this runtime
// targets.
func DefaultPageSize() int {
	return 4096
}
