// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build linux

package host

import "golang.org/x/sys/unix"

// SystemClock returns the preferred Clock for this platform. On Linux it is
// CLOCK_MONOTONIC_RAW, which is not slewed by NTP.
func SystemClock() Clock {
	return RawClock{}
}

// RawClock reads CLOCK_MONOTONIC_RAW in nanosecond ticks.
type RawClock struct{}

var _ Clock = RawClock{}

// Now implements Clock.
func (RawClock) Now() Ticks {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		// clock_gettime on a supported clock id does not fail in practice.
		panic(err)
	}
	return Ticks(ts.Nano())
}

// TicksPerSecond implements Clock.
func (RawClock) TicksPerSecond() uint64 {
	return 1e9
}
