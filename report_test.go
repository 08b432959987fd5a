// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sysspec

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/nbench/sysspec/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	var exitCode int
	exited := false
	r := Reporter{Out: &buf, Exit: func(code int) {
		exited = true
		exitCode = code
	}}

	r.ReportError("numeric sort", CodeMemory)
	require.Equal(t, "ERROR CONDITION\nContext: numeric sort\nCode: 1\n", buf.String())
	require.False(t, exited)

	buf.Reset()
	r.Check("no error", nil)
	require.Empty(t, buf.String())
	require.False(t, exited)

	err := errors.Wrapf(ErrNotRegistered, "releasing %#x", 0x1008)
	r.Check("string sort", err)
	require.Equal(t,
		"ERROR CONDITION\nContext: string sort\nCode: 3\nError: releasing 0x1008: sysspec: address not registered\n",
		buf.String())
	require.True(t, exited)
	require.Equal(t, 1, exitCode)
}

func TestReporterLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := &testutils.CaptureLogger{}
	r := Reporter{Out: &buf, Exit: func(int) {}, Logger: logger}

	r.ReportError("bitfield", CodeMemArrayFull)
	require.Equal(t, "ERROR CONDITION\nContext: bitfield\nCode: 2\n", buf.String())
	require.Equal(t, []string{"sysspec: bitfield: memory array full (code 2)"}, logger.Errors)

	r.Check("fourier", errors.Wrap(ErrOutOfMemory, "coefficients"))
	require.Len(t, logger.Errors, 2)
	require.Equal(t, "sysspec: fourier: out of memory (code 1)", logger.Errors[1])
	require.Empty(t, logger.Infos)
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, CodeOK, CodeOf(nil))
	require.Equal(t, CodeMemory, CodeOf(errors.Wrap(ErrOutOfMemory, "x")))
	require.Equal(t, CodeMemArrayFull, CodeOf(ErrCapacityExceeded))
	require.Equal(t, CodeMemArrayNotFound, CodeOf(ErrNotRegistered))
	require.Equal(t, CodeUnknown, CodeOf(errors.New("boom")))

	require.Equal(t, "memory array full", CodeMemArrayFull.String())
	require.Equal(t, "Code(42)", Code(42).String())
}
