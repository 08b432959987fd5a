// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package host

import (
	"sync/atomic"
	"time"

	"github.com/cockroachdb/crlib/crtime"
)

// MonoClock reads the Go monotonic clock in microsecond ticks.
type MonoClock struct{}

var _ Clock = MonoClock{}

// Now implements Clock.
func (MonoClock) Now() Ticks {
	return Ticks(crtime.NowMono() / crtime.Mono(time.Microsecond))
}

// TicksPerSecond implements Clock.
func (MonoClock) TicksPerSecond() uint64 {
	return uint64(time.Second / time.Microsecond)
}

// ManualClock is a Clock that only moves when told to. It is meant for tests.
type ManualClock struct {
	ticks atomic.Uint64
	// PerSecond is returned by TicksPerSecond; zero means 1000.
	PerSecond uint64
}

var _ Clock = (*ManualClock)(nil)

// Now implements Clock.
func (c *ManualClock) Now() Ticks {
	return Ticks(c.ticks.Load())
}

// TicksPerSecond implements Clock.
func (c *ManualClock) TicksPerSecond() uint64 {
	if c.PerSecond == 0 {
		return 1000
	}
	return c.PerSecond
}

// Advance moves the clock forward by d ticks.
func (c *ManualClock) Advance(d Ticks) {
	c.ticks.Add(uint64(d))
}
