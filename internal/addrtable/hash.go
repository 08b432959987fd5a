// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package addrtable

import (
	"slices"

	"github.com/cockroachdb/swiss"
)

// Hash is a Table backed by a swiss map keyed by adjusted address. Lookups are
// constant time. Unlike Array, Hash rejects a second entry for an adjusted
// address that is already live (ErrDuplicate); entry order carries no meaning.
type Hash struct {
	capacity int
	m        swiss.Map[uintptr, uintptr]
}

var _ Table = (*Hash)(nil)

// NewHash returns an empty Hash holding at most capacity entries.
func NewHash(capacity int) *Hash {
	h := &Hash{capacity: capacity}
	h.m.Init(capacity)
	return h
}

// Init implements Table.
func (h *Hash) Init() {
	h.m.Clear()
}

// Insert implements Table.
func (h *Hash) Insert(trueAddr, adjAddr uintptr) error {
	if h.m.Len() >= h.capacity {
		return ErrCapacityExceeded
	}
	if _, ok := h.m.Get(adjAddr); ok {
		return ErrDuplicate
	}
	h.m.Put(adjAddr, trueAddr)
	return nil
}

// RemoveByAdjusted implements Table.
func (h *Hash) RemoveByAdjusted(adjAddr uintptr) (uintptr, error) {
	trueAddr, ok := h.m.Get(adjAddr)
	if !ok {
		return 0, ErrNotFound
	}
	h.m.Delete(adjAddr)
	return trueAddr, nil
}

// Len implements Table.
func (h *Hash) Len() int {
	return h.m.Len()
}

// Cap implements Table.
func (h *Hash) Cap() int {
	return h.capacity
}

// Entries implements Table. Entries are sorted by adjusted address.
func (h *Hash) Entries() []Entry {
	res := make([]Entry, 0, h.m.Len())
	h.m.All(func(adj, tr uintptr) bool {
		res = append(res, Entry{True: tr, Adjusted: adj})
		return true
	})
	slices.SortFunc(res, func(a, b Entry) int {
		switch {
		case a.Adjusted < b.Adjusted:
			return -1
		case a.Adjusted > b.Adjusted:
			return 1
		}
		return 0
	})
	return res
}

func (h *Hash) String() string {
	return format(h)
}
