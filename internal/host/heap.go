// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package host

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
	"github.com/nbench/sysspec/internal/manual"
)

// Heap is an Allocator over manually managed memory (see package manual). It
// remembers the live blocks so Free needs only the address, and optionally
// enforces a byte budget.
//
// Heap is not safe for concurrent use.
type Heap struct {
	maxBytes uintptr
	inUse    uintptr
	live     swiss.Map[uintptr, manual.Buf]
}

var _ Allocator = (*Heap)(nil)

// NewHeap returns a Heap. If maxBytes is non-zero, Alloc fails once the bytes
// in use would exceed it.
func NewHeap(maxBytes uintptr) *Heap {
	h := &Heap{maxBytes: maxBytes}
	h.live.Init(16)
	return h
}

// Alloc implements Allocator. A zero-byte request still returns a distinct
// one-byte block.
func (h *Heap) Alloc(n uintptr) (uintptr, bool) {
	if n == 0 {
		n = 1
	}
	if h.maxBytes != 0 && (n > h.maxBytes || h.inUse > h.maxBytes-n) {
		return 0, false
	}
	b, err := manual.New(n)
	if err != nil {
		return 0, false
	}
	h.live.Put(b.Addr(), b)
	h.inUse += n
	return b.Addr(), true
}

// Free implements Allocator. Freeing an address that Alloc did not return is
// a programming error.
func (h *Heap) Free(addr uintptr) {
	b, ok := h.live.Get(addr)
	if !ok {
		panic(errors.AssertionFailedf("host: free of unknown address %#x", addr))
	}
	h.live.Delete(addr)
	h.inUse -= b.Len()
	manual.Free(b)
}

// Live returns the number of blocks allocated and not yet freed.
func (h *Heap) Live() int {
	return h.live.Len()
}

// InUse returns the number of bytes allocated and not yet freed.
func (h *Heap) InUse() uintptr {
	return h.inUse
}

// Memmove is a Mover backed by the built-in copy, which handles overlapping
// ranges.
type Memmove struct{}

var _ Mover = Memmove{}

// Move implements Mover.
func (Memmove) Move(dst, src, n uintptr) {
	if n == 0 || dst == src {
		return
	}
	copy(Bytes(dst, n), Bytes(src, n))
}

// Bytes returns a byte slice viewing n bytes of memory starting at addr. The
// memory must come from a live Heap block.
func Bytes(addr, n uintptr) []byte {
	if n == 0 {
		return nil
	}
	// addr is either C memory or Go heap memory from manual's pools. In both
	// cases the Heap's live map holds the block's Buf, whose unsafe.Pointer
	// keeps the memory reachable and unmoved until Free, so converting the
	// address back to a pointer is sound. go vet flags it regardless.
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}
