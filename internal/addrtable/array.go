// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package addrtable

import "github.com/nbench/sysspec/internal/invariants"

// Array is a Table stored as a fixed-capacity array of entries in insertion
// order. RemoveByAdjusted is a linear scan; removal shifts the later entries
// down by one so the survivors keep their relative order.
//
// Array does not enforce uniqueness of adjusted addresses. If the same
// adjusted address is inserted twice, RemoveByAdjusted removes the earliest
// inserted live entry first.
type Array struct {
	entries []Entry
	n       int
}

var _ Table = (*Array)(nil)

// NewArray returns an empty Array holding at most capacity entries.
func NewArray(capacity int) *Array {
	return &Array{entries: make([]Entry, capacity)}
}

// Init implements Table.
func (a *Array) Init() {
	a.n = 0
}

// Insert implements Table.
func (a *Array) Insert(trueAddr, adjAddr uintptr) error {
	if a.n >= len(a.entries) {
		return ErrCapacityExceeded
	}
	invariants.CheckBounds(a.n, len(a.entries))
	a.entries[a.n] = Entry{True: trueAddr, Adjusted: adjAddr}
	a.n++
	return nil
}

// RemoveByAdjusted implements Table.
func (a *Array) RemoveByAdjusted(adjAddr uintptr) (uintptr, error) {
	for i := 0; i < a.n; i++ {
		if a.entries[i].Adjusted != adjAddr {
			continue
		}
		trueAddr := a.entries[i].True
		copy(a.entries[i:a.n-1], a.entries[i+1:a.n])
		a.n = invariants.SafeSub(a.n, 1)
		a.entries[a.n] = Entry{}
		return trueAddr, nil
	}
	return 0, ErrNotFound
}

// Len implements Table.
func (a *Array) Len() int {
	return a.n
}

// Cap implements Table.
func (a *Array) Cap() int {
	return len(a.entries)
}

// Entries implements Table. Entries are returned in table order.
func (a *Array) Entries() []Entry {
	return append([]Entry(nil), a.entries[:a.n]...)
}

func (a *Array) String() string {
	return format(a)
}
