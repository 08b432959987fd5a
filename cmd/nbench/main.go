// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nbench [command] (flags)",
	Short: "benchmark harness host shim tool",
	Long: `
Exercise the aligned allocator, address table and stopwatch that the
benchmark harness runs on.
`,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		benchCmd,
		alignCmd,
		clockCmd,
	)

	for _, cmd := range []*cobra.Command{benchCmd, alignCmd} {
		cmd.Flags().Uint64VarP(
			&allocConfig.align, "align", "a", 16,
			"global alignment: 0 none, 1 odd addresses, g>1 multiples of g but not of 2g")
		cmd.Flags().IntVar(
			&allocConfig.capacity, "capacity", 0, "address table capacity (0 means the default)")
		cmd.Flags().StringVar(
			&allocConfig.table, "table", "array", "address table implementation (array|hash)")
		cmd.Flags().IntVarP(
			&allocConfig.size, "size", "s", 64, "bytes per allocation")
		cmd.Flags().Uint64Var(
			&allocConfig.memLimit, "mem-limit", 0, "host heap budget in bytes (0 means unlimited)")
	}

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
