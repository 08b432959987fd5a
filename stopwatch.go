// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sysspec

import "time"

// Stopwatch measures elapsed time in clock ticks.
//
//	sw := NewStopwatch(nil)
//	start := sw.Start()
//	...
//	elapsed := sw.Stop(start)
//	fmt.Println(sw.TicksToFracSecs(elapsed))
//
// Ticks from different clocks are not comparable.
type Stopwatch struct {
	clock Clock
}

// NewStopwatch returns a Stopwatch reading c, or SystemClock() if c is nil.
func NewStopwatch(c Clock) Stopwatch {
	if c == nil {
		c = SystemClock()
	}
	return Stopwatch{clock: c}
}

// Start returns the current tick count.
func (s Stopwatch) Start() Ticks {
	return s.clock.Now()
}

// Stop returns the ticks elapsed since start.
func (s Stopwatch) Stop(start Ticks) Ticks {
	return s.clock.Now() - start
}

// TicksPerSecond returns the conversion rate of the underlying clock.
func (s Stopwatch) TicksPerSecond() uint64 {
	return s.clock.TicksPerSecond()
}

// TicksToSecs converts ticks to whole seconds, discarding any fraction.
func (s Stopwatch) TicksToSecs(t Ticks) uint64 {
	return uint64(t) / s.clock.TicksPerSecond()
}

// TicksToFracSecs converts ticks to seconds exactly.
func (s Stopwatch) TicksToFracSecs(t Ticks) float64 {
	return float64(t) / float64(s.clock.TicksPerSecond())
}

// Elapsed converts ticks to a Duration.
func (s Stopwatch) Elapsed(t Ticks) time.Duration {
	return time.Duration(s.TicksToFracSecs(t) * float64(time.Second))
}
