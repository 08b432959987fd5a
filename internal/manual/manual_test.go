// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package manual

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFree(t *testing.T) {
	before := GetMetrics()

	b, err := New(100)
	require.NoError(t, err)
	require.Equal(t, uintptr(100), b.Len())
	require.NotZero(t, b.Addr())
	s := b.Slice()
	require.Len(t, s, 100)
	for i := range s {
		require.Zero(t, s[i])
		s[i] = byte(i)
	}

	m := GetMetrics()
	require.Equal(t, before.TotalBytes+100, m.TotalBytes)
	require.Equal(t, before.InUseBytes+100, m.InUseBytes)

	Free(b)
	m = GetMetrics()
	require.Equal(t, before.InUseBytes, m.InUseBytes)
}

func TestNewZero(t *testing.T) {
	b, err := New(0)
	require.NoError(t, err)
	require.Zero(t, b.Len())
	require.Nil(t, b.Slice())
	// Freeing an empty buffer is a no-op.
	Free(b)
}

func TestNewTooLarge(t *testing.T) {
	_, err := New(MaxArrayLen + 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
}
