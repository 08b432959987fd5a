// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package sysspec is the system-specific layer of a native-mode benchmark
// harness. It provides:
//
//   - Allocator, which hands out blocks aligned to an arbitrary boundary on
//     top of a host allocator that only guarantees default alignment, and
//     recovers the raw allocation from the aligned address through a bounded
//     side table rather than a header stored in the block;
//   - Stopwatch, a monotonic elapsed-time measurement over a host Clock;
//   - Reporter, which prints error conditions and exits.
//
// None of the types are safe for concurrent use, except LockedAllocator.
package sysspec

import (
	"github.com/nbench/sysspec/internal/addrtable"
	"github.com/nbench/sysspec/internal/base"
	"github.com/nbench/sysspec/internal/host"
)

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger = base.DefaultLogger

// NoopLogger discards informational and error messages.
type NoopLogger = base.NoopLogger

// HostAllocator is the raw allocator the Allocator draws from.
type HostAllocator = host.Allocator

// Mover copies memory between possibly overlapping ranges.
type Mover = host.Mover

// Clock is a monotonic tick source.
type Clock = host.Clock

// Ticks is an opaque monotonic clock reading.
type Ticks = host.Ticks

// Heap is the default HostAllocator, backed by manually managed memory.
type Heap = host.Heap

// NewHeap returns a Heap. If maxBytes is non-zero, allocations fail with
// ErrOutOfMemory once the bytes in use would exceed it.
func NewHeap(maxBytes uintptr) *Heap {
	return host.NewHeap(maxBytes)
}

// SystemClock returns the preferred monotonic Clock for this platform.
func SystemClock() Clock {
	return host.SystemClock()
}

// TableKind selects the data structure backing the address table.
type TableKind = addrtable.Kind

const (
	// ArrayTable is a fixed array scanned linearly on release. Survivors keep
	// their insertion order.
	ArrayTable = addrtable.ArrayKind
	// HashTable is a hash map keyed by adjusted address.
	HashTable = addrtable.HashKind
)

// ParseTableKind parses "array" or "hash".
func ParseTableKind(s string) (TableKind, error) {
	return addrtable.ParseKind(s)
}
