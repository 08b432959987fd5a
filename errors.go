// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sysspec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrOutOfMemory is returned by Allocate when the host allocator refuses the
	// request. No table entry is created.
	ErrOutOfMemory = errors.New("sysspec: out of memory")

	// ErrCapacityExceeded is returned by Allocate alongside a usable Block when
	// the address table is full. The block cannot be released.
	ErrCapacityExceeded = errors.New("sysspec: address table full")

	// ErrNotRegistered is returned by Release for an address the table does not
	// hold: a double release, an address that was never allocated, or a block
	// whose registration overflowed the table. Nothing is freed.
	ErrNotRegistered = errors.New("sysspec: address not registered")
)

// Code is the small integer form of an error reported to the harness.
type Code int

const (
	// CodeOK means no error.
	CodeOK Code = 0
	// CodeMemory corresponds to ErrOutOfMemory.
	CodeMemory Code = 1
	// CodeMemArrayFull corresponds to ErrCapacityExceeded.
	CodeMemArrayFull Code = 2
	// CodeMemArrayNotFound corresponds to ErrNotRegistered.
	CodeMemArrayNotFound Code = 3
	// CodeUnknown is any other error.
	CodeUnknown Code = 99
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeMemory:
		return "out of memory"
	case CodeMemArrayFull:
		return "memory array full"
	case CodeMemArrayNotFound:
		return "memory array entry not found"
	case CodeUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// CodeOf returns the Code for err.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrOutOfMemory):
		return CodeMemory
	case errors.Is(err, ErrCapacityExceeded):
		return CodeMemArrayFull
	case errors.Is(err, ErrNotRegistered):
		return CodeMemArrayNotFound
	default:
		return CodeUnknown
	}
}
