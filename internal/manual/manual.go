// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package manual provides memory that is not managed by the Go garbage
// collector (when cgo is available). Every Buf returned by New must be passed
// to Free exactly once.
package manual

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// ErrOutOfMemory is returned by New when the underlying allocator refuses the
// request.
var ErrOutOfMemory = errors.New("manual: out of memory")

// MaxArrayLen is the largest buffer New will attempt. On 64-bit platforms it
// is bounded by the 48-bit virtual address space; on 32-bit platforms by a
// quarter of the address space.
const MaxArrayLen = min(1<<48-1, math.MaxInt/4)

// Buf is a buffer allocated by New.
type Buf struct {
	data unsafe.Pointer
	n    uintptr
}

// Data returns a pointer to the start of the buffer.
func (b Buf) Data() unsafe.Pointer {
	return b.data
}

// Len returns the length of the buffer.
func (b Buf) Len() uintptr {
	return b.n
}

// Addr returns the address of the start of the buffer.
func (b Buf) Addr() uintptr {
	return uintptr(b.data)
}

// Slice returns the buffer as a byte slice.
func (b Buf) Slice() []byte {
	if b.data == nil {
		return nil
	}
	return unsafe.Slice((*byte)(b.data), b.n)
}

// Metrics contains memory statistics for manually allocated memory.
type Metrics struct {
	// InUseBytes is the total number of bytes currently allocated. This is just
	// the sum of the lengths of the allocations and does not include any overhead
	// or fragmentation.
	InUseBytes uint64

	// TotalBytes is the total cumulative number of bytes allocated since the
	// process started.
	TotalBytes uint64
}

var counters struct {
	TotalAllocated atomic.Uint64
	TotalFreed     atomic.Uint64
}

// GetMetrics returns manual memory usage statistics.
func GetMetrics() Metrics {
	var res Metrics
	res.TotalBytes = counters.TotalAllocated.Load()
	res.InUseBytes = res.TotalBytes - counters.TotalFreed.Load()
	return res
}

func recordAlloc(n uintptr) {
	counters.TotalAllocated.Add(uint64(n))
}

func recordFree(n uintptr) {
	counters.TotalFreed.Add(uint64(n))
}
