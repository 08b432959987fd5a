// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sysspec

import (
	"github.com/cockroachdb/errors"
	"github.com/nbench/sysspec/internal/aligned"
	"github.com/nbench/sysspec/internal/host"
)

// DefaultTableCapacity is the number of live aligned allocations the address
// table holds when Options.TableCapacity is zero.
const DefaultTableCapacity = 20

// Options holds the parameters for configuring an Allocator. The zero value
// is usable after EnsureDefaults.
type Options struct {
	// GlobalAlign is the alignment requested for every allocation:
	//
	//   - 0 means no adjustment;
	//   - 1 forces an odd address (a deliberate misalignment);
	//   - g > 1 yields addresses that are multiples of g but not of 2*g.
	//
	// It is fixed for the life of the Allocator.
	GlobalAlign uint64

	// TableCapacity is the maximum number of live registered allocations. Once
	// reached, Allocate still returns usable blocks but reports
	// ErrCapacityExceeded, and such blocks can never be released.
	TableCapacity int

	// TableKind selects the address table implementation. The default is
	// ArrayTable.
	TableKind TableKind

	// Host is the raw allocator. The default is a new unbounded Heap.
	Host HostAllocator

	// Mover performs Allocator.Move. The default is the built-in copy.
	Mover Mover

	// Logger is used to report address table overflow. The default is
	// DefaultLogger.
	Logger Logger

	// Prometheus, if set, is updated by every Allocator operation.
	Prometheus *PrometheusMetrics
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.TableCapacity == 0 {
		o.TableCapacity = DefaultTableCapacity
	}
	if o.Host == nil {
		o.Host = host.NewHeap(0)
	}
	if o.Mover == nil {
		o.Mover = host.Memmove{}
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger{}
	}
	return o
}

// Validate verifies that the options are mutually consistent.
func (o *Options) Validate() error {
	if o.TableCapacity < 0 {
		return errors.Errorf("sysspec: TableCapacity (%d) must be positive", o.TableCapacity)
	}
	if _, ok := aligned.Slack(0, o.GlobalAlign); !ok {
		return errors.Errorf("sysspec: GlobalAlign (%d) is too large to reserve slack for", o.GlobalAlign)
	}
	switch o.TableKind {
	case ArrayTable, HashTable:
	default:
		return errors.Errorf("sysspec: unknown TableKind %s", o.TableKind)
	}
	return nil
}
