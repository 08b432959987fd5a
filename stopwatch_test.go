// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sysspec

import (
	"testing"
	"time"

	"github.com/nbench/sysspec/internal/host"
	"github.com/nbench/sysspec/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestStopwatchManual(t *testing.T) {
	c := &host.ManualClock{PerSecond: 1000}
	sw := NewStopwatch(c)
	c.Advance(500)
	start := sw.Start()
	require.Equal(t, Ticks(500), start)

	c.Advance(2750)
	elapsed := sw.Stop(start)
	require.Equal(t, Ticks(2750), elapsed)
	require.Equal(t, uint64(2), sw.TicksToSecs(elapsed))
	require.Equal(t, 2.75, sw.TicksToFracSecs(elapsed))
	require.Equal(t, 2750*time.Millisecond, sw.Elapsed(elapsed))
	require.Equal(t, uint64(1000), sw.TicksPerSecond())

	// A stop without any clock movement yields zero.
	require.Zero(t, sw.Stop(c.Now()))
}

func TestStopwatchSystem(t *testing.T) {
	for _, sw := range []Stopwatch{NewStopwatch(nil), NewStopwatch(host.MonoClock{})} {
		start := sw.Start()
		time.Sleep(5 * time.Millisecond)
		elapsed := sw.Stop(start)
		require.Greater(t, uint64(elapsed), uint64(0))
		require.LessOrEqual(t, float64(sw.TicksToSecs(elapsed)), sw.TicksToFracSecs(elapsed))
		testutils.ElapsedIsAtLeast(t, sw.Elapsed(elapsed), 5*time.Millisecond)
	}
}

// TestTicksToSecsTruncates checks that the integer conversion never exceeds
// the exact one.
func TestTicksToSecsTruncates(t *testing.T) {
	sw := NewStopwatch(host.MonoClock{})
	for _, ticks := range []Ticks{0, 1, 999_999, 1_000_000, 1_500_000, 59_999_999, 1 << 40} {
		secs := sw.TicksToSecs(ticks)
		frac := sw.TicksToFracSecs(ticks)
		require.LessOrEqual(t, float64(secs), frac)
		require.Less(t, frac-float64(secs), 1.0)
	}
}
