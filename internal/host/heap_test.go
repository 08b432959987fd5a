// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package host

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestHeap(t *testing.T) {
	h := NewHeap(0)
	a, ok := h.Alloc(64)
	require.True(t, ok)
	require.Zero(t, a%unsafe.Sizeof(uintptr(0)))
	b, ok := h.Alloc(0)
	require.True(t, ok)
	require.NotEqual(t, a, b)
	require.Equal(t, 2, h.Live())
	require.Equal(t, uintptr(65), h.InUse())

	buf := Bytes(a, 64)
	for i := range buf {
		buf[i] = byte(i)
	}

	h.Free(a)
	h.Free(b)
	require.Zero(t, h.Live())
	require.Zero(t, h.InUse())
	require.Panics(t, func() { h.Free(a) })
}

func TestHeapBudget(t *testing.T) {
	h := NewHeap(100)
	a, ok := h.Alloc(60)
	require.True(t, ok)
	_, ok = h.Alloc(41)
	require.False(t, ok)
	require.Equal(t, 1, h.Live())
	_, ok = h.Alloc(1 << 20)
	require.False(t, ok)

	b, ok := h.Alloc(40)
	require.True(t, ok)
	h.Free(a)
	h.Free(b)
}

func TestMemmoveOverlap(t *testing.T) {
	h := NewHeap(0)
	addr, ok := h.Alloc(16)
	require.True(t, ok)
	defer h.Free(addr)

	fill := func() {
		buf := Bytes(addr, 16)
		for i := range buf {
			buf[i] = byte(i)
		}
	}

	// Forward overlap: destination after source.
	fill()
	Memmove{}.Move(addr+4, addr, 8)
	require.Equal(t,
		[]byte{0, 1, 2, 3, 0, 1, 2, 3, 4, 5, 6, 7, 12, 13, 14, 15},
		Bytes(addr, 16))

	// Backward overlap: destination before source.
	fill()
	Memmove{}.Move(addr, addr+4, 8)
	require.Equal(t,
		[]byte{4, 5, 6, 7, 8, 9, 10, 11, 8, 9, 10, 11, 12, 13, 14, 15},
		Bytes(addr, 16))

	// Zero-length and self moves are no-ops.
	fill()
	Memmove{}.Move(addr, addr, 16)
	Memmove{}.Move(addr+1, addr, 0)
	require.Equal(t, byte(1), Bytes(addr, 16)[1])
}

func TestBytesSurviveGC(t *testing.T) {
	h := NewHeap(0)
	addrs := make([]uintptr, 8)
	for i := range addrs {
		addr, ok := h.Alloc(4096)
		require.True(t, ok)
		buf := Bytes(addr, 4096)
		for j := range buf {
			buf[j] = byte(i + j)
		}
		addrs[i] = addr
	}
	// Churn the Go heap so that unreachable pool memory would be reclaimed.
	for i := 0; i < 3; i++ {
		_ = make([]byte, 1<<20)
		runtime.GC()
	}
	for i, addr := range addrs {
		buf := Bytes(addr, 4096)
		for j := range buf {
			if buf[j] != byte(i+j) {
				t.Fatalf("block %d byte %d: got %d, want %d", i, j, buf[j], byte(i+j))
			}
		}
		h.Free(addr)
	}
	require.Zero(t, h.Live())
}
