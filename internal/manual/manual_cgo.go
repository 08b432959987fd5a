// Copyright 2020 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build cgo

package manual

// #include <stdlib.h>
import "C"
import "unsafe"

// New allocates a zeroed buffer of size n from the C heap. The returned buffer
// MUST be released by calling Free. Failure to do so will result in a memory
// leak. A zero-length request returns an empty Buf.
func New(n uintptr) (Buf, error) {
	if n == 0 {
		return Buf{}, nil
	}
	if n > MaxArrayLen {
		return Buf{}, ErrOutOfMemory
	}
	// Zero the memory in C before handing it to Go; see the cgo pointer
	// passing rules.
	ptr := C.calloc(C.size_t(n), 1)
	if ptr == nil {
		return Buf{}, ErrOutOfMemory
	}
	recordAlloc(n)
	return Buf{data: unsafe.Pointer(ptr), n: n}, nil
}

// Free frees the specified buffer. It has to be exactly the buffer that was
// returned by New.
func Free(b Buf) {
	if b.data == nil {
		return
	}
	recordFree(b.n)
	C.free(b.data)
}
