// Copyright 2020 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !cgo

package manual

import (
	"math/bits"
	"sync"
	"unsafe"

	"github.com/nbench/sysspec/internal/aligned"
)

// Provides versions of New and Free when cgo is not available (e.g. cross
// compilation). Memory comes from the Go heap, recycled by power-of-two size
// class.

// New allocates a zeroed buffer of size n.
func New(n uintptr) (Buf, error) {
	if n == 0 {
		return Buf{}, nil
	}
	if n > MaxArrayLen {
		return Buf{}, ErrOutOfMemory
	}
	recordAlloc(n)
	b := Buf{
		data: pools[sizeClass(n)].Get().(unsafe.Pointer),
		n:    n,
	}
	clear(b.Slice())
	return b, nil
}

// Free frees the specified buffer. It has to be exactly the buffer that was
// returned by New.
func Free(b Buf) {
	if b.data == nil {
		return
	}
	recordFree(b.n)
	pools[sizeClass(b.n)].Put(b.data)
}

var pools = mkPools() // pools[n] is for allocs of size 1 << n

func mkPools() [bits.UintSize]sync.Pool {
	var pools [bits.UintSize]sync.Pool
	for i := range pools {
		pools[i].New = func() any {
			return unsafe.Pointer(unsafe.SliceData(aligned.ByteSlice(1 << i)))
		}
	}
	return pools
}

// sizeClass determines the smallest n such that 1 << n >= size
func sizeClass(size uintptr) int {
	return bits.UintSize - bits.LeadingZeros(uint(size-1))
}
