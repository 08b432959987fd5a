// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package aligned

import (
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestByteSlice(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 63, 64, 65, 4096} {
		b := ByteSlice(n)
		require.Len(t, b, n)
		require.Zero(t, uintptr(unsafe.Pointer(&b[0]))%unsafe.Sizeof(int(0)))
	}
	require.Nil(t, ByteSlice(0))
}

func TestAdjustEveryResidue(t *testing.T) {
	for _, align := range []uint64{2, 3, 4, 8, 12, 16, 64, 4096} {
		t.Run(fmt.Sprintf("align=%d", align), func(t *testing.T) {
			base := uintptr(1 << 20)
			for off := uintptr(0); off < 2*uintptr(align); off++ {
				addr := base + off
				adj := Adjust(addr, align)
				require.True(t, Check(adj, align), "addr=%#x adj=%#x", addr, adj)
				require.GreaterOrEqual(t, adj, addr)
				require.Less(t, adj-addr, 2*uintptr(align))
			}
		})
	}
}

func TestAdjustDegenerate(t *testing.T) {
	require.Equal(t, uintptr(0x1000), Adjust(0x1000, 0))
	require.Equal(t, uintptr(0x1003), Adjust(0x1003, 0))
	require.Equal(t, uintptr(0x1001), Adjust(0x1000, 1))
	require.Equal(t, uintptr(0x1003), Adjust(0x1003, 1))
	require.True(t, Check(0x1002, 0))
	require.False(t, Check(0x1002, 1))
}

func TestAdjustTieBreak(t *testing.T) {
	// 0x1000 is a multiple of both 8 and 16, so it is pushed to 0x1008.
	require.Equal(t, uintptr(0x1008), Adjust(0x1000, 8))
	// 0x1001 rounds up to 0x1008, which is not a multiple of 16.
	require.Equal(t, uintptr(0x1008), Adjust(0x1001, 8))
	// 0x1009 rounds up to 0x1010, a multiple of 16, so it lands on 0x1018.
	require.Equal(t, uintptr(0x1018), Adjust(0x1009, 8))
}

func TestSlack(t *testing.T) {
	n, ok := Slack(16, 8)
	require.True(t, ok)
	require.Equal(t, uintptr(32), n)

	n, ok = Slack(16, 0)
	require.True(t, ok)
	require.Equal(t, uintptr(16), n)

	_, ok = Slack(^uintptr(0)-3, 2)
	require.False(t, ok)
	_, ok = Slack(0, math.MaxUint64)
	require.False(t, ok)
}
