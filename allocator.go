// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sysspec

import (
	"github.com/cockroachdb/errors"
	"github.com/nbench/sysspec/internal/addrtable"
	"github.com/nbench/sysspec/internal/aligned"
	"github.com/nbench/sysspec/internal/host"
	"github.com/nbench/sysspec/internal/invariants"
)

// Block describes an aligned allocation.
type Block struct {
	// Addr is the adjusted address: the only address the caller may use or
	// pass to Release.
	Addr uintptr
	// Len is the number of usable bytes starting at Addr.
	Len uintptr
	// Reserved is the number of bytes requested from the host allocator.
	Reserved uintptr
}

// Bytes returns the usable bytes of the block. The slice is only valid until
// the block is released.
func (b Block) Bytes() []byte {
	return host.Bytes(b.Addr, b.Len)
}

// Allocator hands out aligned blocks from a host allocator and maps them back
// to the raw allocation on release.
//
// For every allocation of n bytes the host is asked for n+2*GlobalAlign bytes
// and the returned address is slid forward to satisfy the alignment (see
// Options.GlobalAlign). The (raw, adjusted) pair is recorded in a bounded
// address table; Release looks the adjusted address up, removes the entry and
// frees the raw address.
//
// When the table is full, Allocate still returns a usable block together with
// ErrCapacityExceeded. That block is not registered and therefore leaks: a
// later Release of it fails with ErrNotRegistered and frees nothing.
//
// Allocator is not safe for concurrent use; see LockedAllocator.
type Allocator struct {
	align   uint64
	table   addrtable.Table
	host    HostAllocator
	mover   Mover
	logger  Logger
	prom    *PrometheusMetrics
	metrics Metrics
}

// New returns an Allocator configured by opts.
func New(opts Options) (*Allocator, error) {
	opts.EnsureDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	a := &Allocator{
		align:  opts.GlobalAlign,
		table:  addrtable.New(opts.TableKind, opts.TableCapacity),
		host:   opts.Host,
		mover:  opts.Mover,
		logger: opts.Logger,
		prom:   opts.Prometheus,
	}
	return a, nil
}

// Align returns the alignment setting the allocator was created with.
func (a *Allocator) Align() uint64 {
	return a.align
}

// Allocate returns a block of n usable bytes at an address adjusted to the
// configured alignment.
//
// On ErrOutOfMemory the returned Block is zero. On ErrCapacityExceeded the
// returned Block is valid and usable but can never be released.
func (a *Allocator) Allocate(n uintptr) (Block, error) {
	total, ok := aligned.Slack(n, a.align)
	if !ok {
		a.recordOutOfMemory()
		return Block{}, errors.Wrapf(ErrOutOfMemory, "%d bytes with alignment %d", n, a.align)
	}
	trueAddr, ok := a.host.Alloc(total)
	if !ok {
		a.recordOutOfMemory()
		return Block{}, errors.Wrapf(ErrOutOfMemory, "host refused %d bytes", total)
	}
	adjAddr := aligned.Adjust(trueAddr, a.align)
	if invariants.Enabled && !aligned.Check(adjAddr, a.align) {
		panic(errors.AssertionFailedf("adjusted address %#x violates alignment %d", adjAddr, a.align))
	}
	b := Block{Addr: adjAddr, Len: n, Reserved: total}

	err := a.table.Insert(trueAddr, adjAddr)
	if err != nil && !errors.Is(err, addrtable.ErrCapacityExceeded) {
		// The host returned overlapping blocks.
		a.host.Free(trueAddr)
		return Block{}, errors.NewAssertionErrorWithWrappedErrf(err, "registering %#x", adjAddr)
	}
	a.metrics.Allocated.Inc(uint64(n))
	if a.prom != nil {
		a.prom.Allocations.Inc()
	}
	if err != nil {
		a.metrics.Overflows++
		if a.prom != nil {
			a.prom.Overflows.Inc()
		}
		a.logger.Errorf("sysspec: address table full (%d entries); block %#x cannot be released and will leak",
			a.table.Cap(), adjAddr)
		return b, errors.Wrapf(ErrCapacityExceeded, "registering %#x", adjAddr)
	}
	a.updateLive()
	return b, nil
}

// Release frees the block whose adjusted address is addr. It fails with
// ErrNotRegistered, without freeing anything, if addr is not registered.
func (a *Allocator) Release(addr uintptr) error {
	trueAddr, err := a.table.RemoveByAdjusted(addr)
	if err != nil {
		a.metrics.NotRegistered++
		if a.prom != nil {
			a.prom.ReleaseFailures.Inc()
		}
		return errors.Wrapf(ErrNotRegistered, "releasing %#x", addr)
	}
	a.host.Free(trueAddr)
	a.metrics.Released++
	if a.prom != nil {
		a.prom.Releases.Inc()
	}
	a.updateLive()
	return nil
}

// Move copies n bytes from src to dst. The ranges may overlap.
func (a *Allocator) Move(dst, src, n uintptr) {
	a.mover.Move(dst, src, n)
}

// Reset empties the address table. Blocks that were registered are forgotten,
// not freed.
func (a *Allocator) Reset() {
	if n := a.table.Len(); n > 0 {
		a.logger.Infof("sysspec: resetting address table with %d live entries", n)
	}
	a.table.Init()
	a.updateLive()
}

// Live returns the number of registered allocations.
func (a *Allocator) Live() int {
	return a.table.Len()
}

// Capacity returns the maximum number of registered allocations.
func (a *Allocator) Capacity() int {
	return a.table.Cap()
}

// Metrics returns the allocator's counters.
func (a *Allocator) Metrics() Metrics {
	m := a.metrics
	m.Live = a.table.Len()
	return m
}

func (a *Allocator) recordOutOfMemory() {
	a.metrics.OutOfMemory++
	if a.prom != nil {
		a.prom.OutOfMemory.Inc()
	}
}

func (a *Allocator) updateLive() {
	if a.prom != nil {
		a.prom.LiveEntries.Set(float64(a.table.Len()))
	}
}
