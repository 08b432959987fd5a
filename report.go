// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package sysspec

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints error conditions for the harness and terminates the
// process on request. The allocator never terminates the process itself.
type Reporter struct {
	// Out receives error reports. The default is os.Stderr.
	Out io.Writer
	// Exit terminates the process. The default is os.Exit.
	Exit func(code int)
	// Logger, if set, also receives every reported condition through Errorf.
	Logger Logger
}

func (r Reporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

// ReportError prints an error condition with its context.
func (r Reporter) ReportError(context string, code Code) {
	fmt.Fprintf(r.out(), "ERROR CONDITION\nContext: %s\nCode: %d\n", context, int(code))
	if r.Logger != nil {
		r.Logger.Errorf("sysspec: %s: %s (code %d)", context, code, int(code))
	}
}

// ReportErr prints err as an error condition, with its Code and message.
func (r Reporter) ReportErr(context string, err error) {
	r.ReportError(context, CodeOf(err))
	fmt.Fprintf(r.out(), "Error: %v\n", err)
}

// ErrorExit terminates the process with status 1.
func (r Reporter) ErrorExit() {
	if r.Exit == nil {
		os.Exit(1)
	}
	r.Exit(1)
}

// Check reports err and exits if err is non-nil.
func (r Reporter) Check(context string, err error) {
	if err == nil {
		return
	}
	r.ReportErr(context, err)
	r.ErrorExit()
}
