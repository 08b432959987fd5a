// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"github.com/nbench/sysspec"
)

// allocConfig holds the flags shared by the commands that build an
// allocator.
var allocConfig struct {
	align    uint64
	capacity int
	table    string
	size     int
	memLimit uint64
}

// allocatorOptions maps the shared flags onto sysspec.Options.
func allocatorOptions() (sysspec.Options, error) {
	kind, err := sysspec.ParseTableKind(allocConfig.table)
	if err != nil {
		return sysspec.Options{}, err
	}
	opts := sysspec.Options{
		GlobalAlign:   allocConfig.align,
		TableCapacity: allocConfig.capacity,
		TableKind:     kind,
		Host:          sysspec.NewHeap(uintptr(allocConfig.memLimit)),
		Logger:        sysspec.NoopLogger{},
	}
	if err := opts.EnsureDefaults().Validate(); err != nil {
		return sysspec.Options{}, err
	}
	return opts, nil
}
