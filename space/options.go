// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

// Options configures a new Space. The zero value is valid and uses
// the host's native page size.
type Options struct {
	// PageSize hints how much storage a backing MemAllocator should
	// grow by at a time. 0 means "ask the host", via DefaultPageSize.
	PageSize int
}

func (o Options) pageSize() int {
	if o.PageSize > 0 {
		return o.PageSize
	}
	return DefaultPageSize()
}
