// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sysspec

import "sync"

// LockedAllocator wraps an Allocator so that it can be shared between
// goroutines. Each operation, including the address table scan and the host
// allocator call, runs under a single mutex.
type LockedAllocator struct {
	mu sync.Mutex
	a  *Allocator
}

// NewLocked wraps a. The caller must not use a directly afterwards.
func NewLocked(a *Allocator) *LockedAllocator {
	return &LockedAllocator{a: a}
}

// Align returns the alignment setting, which never changes.
func (l *LockedAllocator) Align() uint64 {
	return l.a.Align()
}

// Allocate is the synchronized Allocator.Allocate.
func (l *LockedAllocator) Allocate(n uintptr) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Allocate(n)
}

// Release is the synchronized Allocator.Release.
func (l *LockedAllocator) Release(addr uintptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Release(addr)
}

// Move copies n bytes from src to dst. It does not take the lock; the caller
// owns both ranges.
func (l *LockedAllocator) Move(dst, src, n uintptr) {
	l.a.Move(dst, src, n)
}

// Reset is the synchronized Allocator.Reset.
func (l *LockedAllocator) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Reset()
}

// Live is the synchronized Allocator.Live.
func (l *LockedAllocator) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Live()
}

// Metrics is the synchronized Allocator.Metrics.
func (l *LockedAllocator) Metrics() Metrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Metrics()
}
