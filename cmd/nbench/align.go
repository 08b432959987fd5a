// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/nbench/sysspec"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Show how raw host addresses are adjusted.",
	Long: `
Allocate --count blocks and print, for each, the raw address returned by the
host allocator, the adjusted address handed to the caller, and their residues.
Allocations beyond the address table capacity are marked as overflowed; they
cannot be released.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := allocatorOptions()
		if err != nil {
			return err
		}
		return runAlign(cmd.OutOrStdout(), opts, alignCount)
	},
}

var alignCount int

func init() {
	alignCmd.Flags().IntVar(&alignCount, "count", 8, "number of blocks to allocate")
}

// recordingHost remembers the last raw address handed out by the wrapped
// host allocator.
type recordingHost struct {
	sysspec.HostAllocator
	last uintptr
}

func (h *recordingHost) Alloc(n uintptr) (uintptr, bool) {
	addr, ok := h.HostAllocator.Alloc(n)
	if ok {
		h.last = addr
	}
	return addr, ok
}

func runAlign(out io.Writer, opts sysspec.Options, count int) error {
	rh := &recordingHost{HostAllocator: opts.Host}
	opts.Host = rh
	a, err := sysspec.New(opts)
	if err != nil {
		return err
	}
	reporter := sysspec.Reporter{Out: out}
	g := uintptr(a.Align())

	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"#", "raw", "adjusted", "slide", "mod g", "mod 2g", "status"})
	var blocks []sysspec.Block
	overflowed := 0
	for i := 0; i < count; i++ {
		b, err := a.Allocate(uintptr(allocConfig.size))
		status := "registered"
		switch {
		case errors.Is(err, sysspec.ErrCapacityExceeded):
			status = "overflow"
			overflowed++
		case err != nil:
			reporter.ReportErr("align", err)
			return err
		default:
			blocks = append(blocks, b)
		}
		modG, mod2G := "-", "-"
		if g > 0 {
			modG = fmt.Sprint(b.Addr % g)
			mod2G = fmt.Sprint(b.Addr % (2 * g))
		}
		tw.Append([]string{
			fmt.Sprint(i),
			fmt.Sprintf("%#x", rh.last),
			fmt.Sprintf("%#x", b.Addr),
			fmt.Sprint(b.Addr - rh.last),
			modG,
			mod2G,
			status,
		})
	}
	tw.Render()

	for _, b := range blocks {
		if err := a.Release(b.Addr); err != nil {
			reporter.ReportErr("align release", err)
			return err
		}
	}
	fmt.Fprintf(out, "released %d blocks, %d overflowed and leaked\n", len(blocks), overflowed)
	return nil
}
