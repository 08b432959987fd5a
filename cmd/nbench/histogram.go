// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	minLatency = 10 * time.Nanosecond
	maxLatency = 10 * time.Second
)

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 2)
}

// namedHistogram records operation latencies. It is safe for concurrent use.
type namedHistogram struct {
	name string
	mu   struct {
		sync.Mutex
		hist *hdrhistogram.Histogram
	}
}

func newNamedHistogram(name string) *namedHistogram {
	w := &namedHistogram{name: name}
	w.mu.hist = newHistogram()
	return w
}

func (w *namedHistogram) Record(elapsed time.Duration) {
	if elapsed < minLatency {
		elapsed = minLatency
	} else if elapsed > maxLatency {
		elapsed = maxLatency
	}

	w.mu.Lock()
	err := w.mu.hist.RecordValue(elapsed.Nanoseconds())
	w.mu.Unlock()

	if err != nil {
		// Note that a histogram only drops recorded values that are out of range,
		// but we clamp the latency value to the configured range to prevent such
		// drops. This code path should never happen.
		panic(fmt.Sprintf(`%s: recording value: %s`, w.name, err))
	}
}

// Snapshot returns a copy of the recorded values.
func (w *namedHistogram) Snapshot() *hdrhistogram.Histogram {
	w.mu.Lock()
	defer w.mu.Unlock()
	h := newHistogram()
	h.Merge(w.mu.hist)
	return h
}

// histogramRegistry holds the histograms of a run in registration order.
type histogramRegistry struct {
	mu struct {
		sync.Mutex
		registered []*namedHistogram
	}
}

func (r *histogramRegistry) Register(name string) *namedHistogram {
	hist := newNamedHistogram(name)
	r.mu.Lock()
	r.mu.registered = append(r.mu.registered, hist)
	r.mu.Unlock()
	return hist
}

// Each calls fn with a snapshot of every registered histogram.
func (r *histogramRegistry) Each(fn func(name string, h *hdrhistogram.Histogram)) {
	r.mu.Lock()
	registered := append([]*namedHistogram(nil), r.mu.registered...)
	r.mu.Unlock()
	for _, hist := range registered {
		fn(hist.name, hist.Snapshot())
	}
}
