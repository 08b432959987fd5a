// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package testutils

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// coarseTimers is set on platforms whose sleep and timer resolution is on the
// order of a millisecond.
var coarseTimers = runtime.GOOS == "windows"

// ElapsedIsAtLeast verifies that a measured duration covers at least minValue
// of wall time, allowing the measurement to lose up to one millisecond to
// tick truncation.
func ElapsedIsAtLeast(t testing.TB, d, minValue time.Duration) {
	t.Helper()
	if coarseTimers && minValue < 10*time.Millisecond {
		return
	}
	require.GreaterOrEqual(t, d, minValue-time.Millisecond)
}

// TicksAreAtLeast is ElapsedIsAtLeast for a raw tick count read at
// perSecond ticks per second.
func TicksAreAtLeast(t testing.TB, ticks, perSecond uint64, minValue time.Duration) {
	t.Helper()
	require.NotZero(t, perSecond)
	d := time.Duration(float64(ticks) / float64(perSecond) * float64(time.Second))
	ElapsedIsAtLeast(t, d, minValue)
}
