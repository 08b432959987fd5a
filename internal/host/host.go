// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package host defines the narrow capabilities the shim consumes from the
// platform (a raw allocator, an overlap-safe copy and a monotonic clock) along
// with their implementations. Platform-specific variants are selected by
// build tags.
package host

// Allocator is a raw allocator that guarantees only default (word)
// alignment.
type Allocator interface {
	// Alloc returns the address of a new block of at least n bytes, or false
	// if the request cannot be satisfied.
	Alloc(n uintptr) (addr uintptr, ok bool)
	// Free releases a block previously returned by Alloc.
	Free(addr uintptr)
}

// Mover copies memory between possibly overlapping ranges.
type Mover interface {
	Move(dst, src, n uintptr)
}

// Ticks is an opaque monotonic clock reading.
type Ticks uint64

// Clock is a monotonic tick source.
type Clock interface {
	// Now returns the current tick count.
	Now() Ticks
	// TicksPerSecond returns the fixed conversion rate for Now.
	TicksPerSecond() uint64
}
