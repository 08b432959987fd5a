// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sysspec

import (
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
	"github.com/prometheus/client_golang/prometheus"
)

// CountAndSize tracks the count and total size of a set of allocations.
type CountAndSize struct {
	// Count is the number of allocations.
	Count uint64

	// Bytes is the total usable size of the allocations.
	Bytes uint64
}

// Inc increases the count and size for a single allocation.
func (cs *CountAndSize) Inc(size uint64) {
	cs.Count++
	cs.Bytes += size
}

// IsZero returns true if no allocation was counted.
func (cs CountAndSize) IsZero() bool {
	return cs.Count == 0 && cs.Bytes == 0
}

func (cs CountAndSize) String() string {
	return redact.StringWithoutMarkers(cs)
}

// SafeFormat implements redact.SafeFormatter.
func (cs CountAndSize) SafeFormat(w redact.SafePrinter, verb rune) {
	w.Printf("%s (%s)", crhumanize.Count(cs.Count, crhumanize.Compact), crhumanize.Bytes(cs.Bytes, crhumanize.Compact, crhumanize.OmitI))
}

// Metrics holds the counters of an Allocator.
type Metrics struct {
	// Allocated counts successful Allocate calls and their requested bytes,
	// including blocks that overflowed the address table.
	Allocated CountAndSize
	// Released is the number of successful Release calls.
	Released uint64
	// Live is the number of entries in the address table.
	Live int
	// Overflows is the number of blocks returned with ErrCapacityExceeded.
	// Each of them is leaked.
	Overflows uint64
	// NotRegistered is the number of Release calls that failed with
	// ErrNotRegistered.
	NotRegistered uint64
	// OutOfMemory is the number of Allocate calls that failed with
	// ErrOutOfMemory.
	OutOfMemory uint64
}

func (m Metrics) String() string {
	return redact.StringWithoutMarkers(m)
}

// SafeFormat implements redact.SafeFormatter.
func (m Metrics) SafeFormat(w redact.SafePrinter, verb rune) {
	w.Printf("allocated: %s\n", m.Allocated)
	w.Printf("released: %d  live: %d\n", redact.Safe(m.Released), redact.Safe(m.Live))
	w.Printf("overflows: %d  not-registered: %d  out-of-memory: %d\n",
		redact.Safe(m.Overflows), redact.Safe(m.NotRegistered), redact.Safe(m.OutOfMemory))
}

// PrometheusMetrics exports Allocator activity as Prometheus collectors.
type PrometheusMetrics struct {
	Allocations     prometheus.Counter
	Releases        prometheus.Counter
	Overflows       prometheus.Counter
	ReleaseFailures prometheus.Counter
	OutOfMemory     prometheus.Counter
	LiveEntries     prometheus.Gauge
}

// NewPrometheusMetrics creates the collectors under the given namespace. They
// are not registered; see Collectors.
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "allocator",
			Name:      name,
			Help:      help,
		})
	}
	return &PrometheusMetrics{
		Allocations:     counter("allocations_total", "Blocks returned by Allocate."),
		Releases:        counter("releases_total", "Blocks freed by Release."),
		Overflows:       counter("table_overflows_total", "Blocks that could not be registered and leak."),
		ReleaseFailures: counter("release_failures_total", "Release calls for unregistered addresses."),
		OutOfMemory:     counter("out_of_memory_total", "Allocate calls refused by the host allocator."),
		LiveEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "allocator",
			Name:      "live_entries",
			Help:      "Entries in the address table.",
		}),
	}
}

// Collectors returns all collectors, for registration.
func (m *PrometheusMetrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Allocations, m.Releases, m.Overflows, m.ReleaseFailures, m.OutOfMemory, m.LiveEntries,
	}
}
