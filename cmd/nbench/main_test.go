// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/crlib/testutils/leaktest"
	"github.com/nbench/sysspec"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T, align uint64, capacity int) sysspec.Options {
	t.Helper()
	allocConfig.align = align
	allocConfig.capacity = capacity
	allocConfig.table = "array"
	allocConfig.size = 32
	allocConfig.memLimit = 0
	opts, err := allocatorOptions()
	require.NoError(t, err)
	return opts
}

func TestRunBench(t *testing.T) {
	defer leaktest.AfterTest(t)()

	var buf bytes.Buffer
	opts := testOptions(t, 16, 64)
	err := runBench(&buf, opts, benchParams{ops: 1000, live: 4, concurrency: 4, plot: true})
	require.NoError(t, err)
	out := buf.String()
	for _, s := range []string{"ALLOCATE", "RELEASE", "MOVE", "nbench_allocator_allocations_total", "released: 1000"} {
		require.True(t, strings.Contains(strings.ToUpper(out), strings.ToUpper(s)), "missing %q in:\n%s", s, out)
	}
}

func TestRunBenchOverflow(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(t, 8, 2)
	err := runBench(&buf, opts, benchParams{ops: 20, live: 4, concurrency: 1})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "overflowed the address table")
}

func TestRunBenchInvalid(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(t, 8, 2)
	require.Error(t, runBench(&buf, opts, benchParams{ops: 0, live: 1, concurrency: 1}))
}

func TestRunAlign(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(t, 8, 4)
	require.NoError(t, runAlign(&buf, opts, 6))
	out := buf.String()
	require.Equal(t, 4, strings.Count(out, "registered"))
	require.Equal(t, 2, strings.Count(out, "overflow "))
	require.Contains(t, out, "released 4 blocks, 2 overflowed and leaked")
}

func TestRunAlignOutOfMemory(t *testing.T) {
	var buf bytes.Buffer
	opts := testOptions(t, 8, 4)
	opts.Host = sysspec.NewHeap(16)
	err := runAlign(&buf, opts, 1)
	require.ErrorIs(t, err, sysspec.ErrOutOfMemory)
	require.Contains(t, buf.String(), "ERROR CONDITION\nContext: align\nCode: 1")
}

func TestRunClock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runClock(&buf, 5*time.Millisecond))
	require.Contains(t, buf.String(), "system")
	require.Contains(t, buf.String(), "mono")
	require.Error(t, runClock(&buf, 0))
}
