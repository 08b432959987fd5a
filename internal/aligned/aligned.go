// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package aligned computes the address slide used to place a block at a
// requested alignment inside a larger raw allocation.
package aligned

import (
	"fmt"
	"math"
	"unsafe"
)

// ByteSlice allocates a new byte slice of length n, ensuring the address of the
// beginning of the slice is word aligned. This is the "default alignment" the
// Go heap allocator provides to callers of the host package.
func ByteSlice(n int) []byte {
	if n == 0 {
		return nil
	}
	a := make([]uint64, (n+7)/8)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&a[0])), n)

	// Verify alignment.
	ptr := uintptr(unsafe.Pointer(&b[0]))
	if ptr%unsafe.Sizeof(int(0)) != 0 {
		panic(fmt.Sprintf("allocated []uint64 slice not %d-aligned: pointer %p", unsafe.Sizeof(int(0)), &b[0]))
	}
	return b
}

// Slack returns the number of extra bytes reserved beyond n so that the
// adjusted address plus n still lies within the raw allocation: 2*align. ok is
// false if n+2*align overflows.
func Slack(n uintptr, align uint64) (total uintptr, ok bool) {
	if align > math.MaxUint64/2 || 2*align > uint64(^uintptr(0)) {
		return 0, false
	}
	slack := uintptr(2 * align)
	if n > ^uintptr(0)-slack {
		return 0, false
	}
	return n + slack, true
}

// Adjust slides addr forward to satisfy align:
//
//   - align == 0: addr is returned unchanged.
//   - align == 1: an even addr is bumped by one, so the result is always odd.
//     This deliberately produces misaligned addresses.
//   - align > 1: addr is rounded up to a multiple of align; if the result is
//     also a multiple of 2*align, align is added once more. Results are thus
//     multiples of align but never of 2*align.
//
// The slide never exceeds 2*align-1 bytes, which Slack reserves.
func Adjust(addr uintptr, align uint64) uintptr {
	switch {
	case align == 0:
		return addr
	case align == 1:
		if addr%2 == 0 {
			addr++
		}
		return addr
	}
	g := uintptr(align)
	if r := addr % g; r != 0 {
		addr += g - r
	}
	if addr%(2*g) == 0 {
		addr += g
	}
	return addr
}

// Check reports whether addr satisfies the law Adjust establishes for align.
func Check(addr uintptr, align uint64) bool {
	switch {
	case align == 0:
		return true
	case align == 1:
		return addr%2 == 1
	}
	g := uintptr(align)
	return addr%g == 0 && addr%(2*g) != 0
}
