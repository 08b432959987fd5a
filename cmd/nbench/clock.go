// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/nbench/sysspec"
	"github.com/nbench/sysspec/internal/host"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Calibrate the stopwatch tick sources.",
	Long: `
Time a sleep of --duration with each available tick source and print the
elapsed ticks, their conversion to whole and fractional seconds, and the
difference from the Go monotonic clock.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClock(cmd.OutOrStdout(), clockDuration)
	},
}

var clockDuration time.Duration

func init() {
	clockCmd.Flags().DurationVarP(
		&clockDuration, "duration", "d", 100*time.Millisecond, "time to sleep per source")
}

func runClock(out io.Writer, d time.Duration) error {
	if d <= 0 {
		return errors.Errorf("duration (%s) must be positive", d)
	}
	sources := []struct {
		name  string
		clock sysspec.Clock
	}{
		{"system", sysspec.SystemClock()},
		{"mono", host.MonoClock{}},
	}

	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"source", "ticks/s", "ticks", "secs", "frac secs", "drift"})
	for _, s := range sources {
		sw := sysspec.NewStopwatch(s.clock)
		ref := crtime.NowMono()
		start := sw.Start()
		time.Sleep(d)
		ticks := sw.Stop(start)
		actual := ref.Elapsed()
		tw.Append([]string{
			s.name,
			fmt.Sprint(sw.TicksPerSecond()),
			fmt.Sprint(uint64(ticks)),
			fmt.Sprint(sw.TicksToSecs(ticks)),
			fmt.Sprintf("%.6f", sw.TicksToFracSecs(ticks)),
			(sw.Elapsed(ticks) - actual).String(),
		})
	}
	tw.Render()
	return nil
}
