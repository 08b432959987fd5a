// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package host

import (
	"testing"
	"time"

	"github.com/nbench/sysspec/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestClocksMonotonic(t *testing.T) {
	for _, c := range []Clock{MonoClock{}, SystemClock()} {
		a := c.Now()
		time.Sleep(2 * time.Millisecond)
		b := c.Now()
		require.GreaterOrEqual(t, b, a)
		testutils.TicksAreAtLeast(t, uint64(b-a), c.TicksPerSecond(), 2*time.Millisecond)
	}
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	require.Equal(t, Ticks(0), c.Now())
	require.Equal(t, uint64(1000), c.TicksPerSecond())
	c.Advance(1500)
	require.Equal(t, Ticks(1500), c.Now())

	c2 := ManualClock{PerSecond: 1e6}
	require.Equal(t, uint64(1e6), c2.TicksPerSecond())
}
