// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package addrtable implements the side table that maps the adjusted address
// of an aligned block back to the raw address the host allocator returned.
// The table has a fixed capacity and holds no other state.
//
// Tables are not safe for concurrent use.
package addrtable

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrCapacityExceeded is returned by Insert when the table is full.
	ErrCapacityExceeded = errors.New("addrtable: capacity exceeded")
	// ErrNotFound is returned by RemoveByAdjusted when no entry matches.
	ErrNotFound = errors.New("addrtable: adjusted address not found")
	// ErrDuplicate is returned by Hash.Insert when the adjusted address is
	// already present.
	ErrDuplicate = errors.New("addrtable: duplicate adjusted address")
)

// Entry correlates the raw address of an allocation with the adjusted address
// handed to the caller.
type Entry struct {
	True     uintptr
	Adjusted uintptr
}

func (e Entry) String() string {
	return fmt.Sprintf("%#x -> %#x", e.Adjusted, e.True)
}

// Table is the interface implemented by Array and Hash.
type Table interface {
	// Init empties the table. It is idempotent.
	Init()
	// Insert records a (true, adjusted) pair. It fails with ErrCapacityExceeded
	// when Len() == Cap(), leaving the table unchanged.
	Insert(trueAddr, adjAddr uintptr) error
	// RemoveByAdjusted removes the entry for adjAddr and returns its true
	// address. It fails with ErrNotFound, leaving the table unchanged, if there
	// is no such entry.
	RemoveByAdjusted(adjAddr uintptr) (uintptr, error)
	// Len returns the number of live entries.
	Len() int
	// Cap returns the maximum number of live entries.
	Cap() int
	// Entries returns a snapshot of the live entries.
	Entries() []Entry
}

// Kind selects a Table implementation.
type Kind uint8

const (
	// ArrayKind is a fixed array with linear lookup. See Array.
	ArrayKind Kind = iota
	// HashKind is a hash map keyed by adjusted address. See Hash.
	HashKind
)

func (k Kind) String() string {
	switch k {
	case ArrayKind:
		return "array"
	case HashKind:
		return "hash"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind parses the String form of a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "array":
		return ArrayKind, nil
	case "hash":
		return HashKind, nil
	}
	return 0, errors.Newf("addrtable: unknown table kind %q", s)
}

// New returns an empty table of the given kind and capacity. Capacity must be
// positive.
func New(kind Kind, capacity int) Table {
	if capacity <= 0 {
		panic(errors.AssertionFailedf("addrtable: invalid capacity %d", capacity))
	}
	switch kind {
	case ArrayKind:
		return NewArray(capacity)
	case HashKind:
		return NewHash(capacity)
	default:
		panic(errors.AssertionFailedf("addrtable: unknown kind %d", errors.Safe(kind)))
	}
}

func format(t Table) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%d/%d\n", t.Len(), t.Cap())
	for _, e := range t.Entries() {
		fmt.Fprintf(&buf, "  %s\n", e)
	}
	return buf.String()
}
