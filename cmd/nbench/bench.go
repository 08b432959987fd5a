// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/tokenbucket"
	"github.com/guptarohit/asciigraph"
	"github.com/nbench/sysspec"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run allocate/move/release cycles against the aligned allocator.",
	Long: `
Run allocate/move/release cycles against the aligned allocator and report
per-operation latency. Each worker keeps up to --live blocks outstanding, so
releases scan a partially full address table. Blocks that overflow the
table are counted and leaked, as the allocator leaks them.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := allocatorOptions()
		if err != nil {
			return err
		}
		return runBench(cmd.OutOrStdout(), opts, benchConfig)
	},
}

type benchParams struct {
	ops         int
	live        int
	concurrency int
	rate        float64
	plot        bool
	size        int
}

var benchConfig benchParams

func init() {
	benchCmd.Flags().IntVarP(
		&benchConfig.ops, "ops", "n", 100000, "total number of allocate/release cycles")
	benchCmd.Flags().IntVar(
		&benchConfig.live, "live", 8, "blocks each worker keeps outstanding")
	benchCmd.Flags().IntVarP(
		&benchConfig.concurrency, "concurrency", "c", 1, "number of concurrent workers")
	benchCmd.Flags().Float64Var(
		&benchConfig.rate, "rate", 0, "maximum cycles per second (0 means unlimited)")
	benchCmd.Flags().BoolVar(
		&benchConfig.plot, "plot", false, "plot allocation latency by percentile")
}

// pacer limits the rate of operations across workers.
type pacer struct {
	mu      sync.Mutex
	limiter *tokenbucket.TokenBucket
}

func newPacer(rate float64) *pacer {
	p := &pacer{}
	if rate > 0 {
		p.limiter = &tokenbucket.TokenBucket{}
		p.limiter.Init(tokenbucket.TokensPerSecond(rate), tokenbucket.Tokens(max(rate/10, 1)))
	}
	return p
}

func (p *pacer) wait() {
	if p.limiter == nil {
		return
	}
	for {
		p.mu.Lock()
		ok, d := p.limiter.TryToFulfill(1)
		p.mu.Unlock()
		if ok {
			return
		}
		time.Sleep(d)
	}
}

type benchStats struct {
	reg      histogramRegistry
	alloc    *namedHistogram
	move     *namedHistogram
	release  *namedHistogram
	overflow struct {
		sync.Mutex
		count int
	}
}

func runBench(out io.Writer, opts sysspec.Options, params benchParams) error {
	if params.size <= 0 {
		params.size = allocConfig.size
	}
	if params.ops <= 0 || params.concurrency <= 0 || params.live <= 0 {
		return errors.Errorf("ops (%d), concurrency (%d) and live (%d) must be positive",
			params.ops, params.concurrency, params.live)
	}
	opts.Prometheus = sysspec.NewPrometheusMetrics("nbench")
	promReg := prometheus.NewRegistry()
	for _, c := range opts.Prometheus.Collectors() {
		if err := promReg.Register(c); err != nil {
			return err
		}
	}

	a, err := sysspec.New(opts)
	if err != nil {
		return err
	}
	l := sysspec.NewLocked(a)
	sw := sysspec.NewStopwatch(nil)
	p := newPacer(params.rate)

	var stats benchStats
	stats.alloc = stats.reg.Register("allocate")
	stats.move = stats.reg.Register("move")
	stats.release = stats.reg.Register("release")

	size := uintptr(params.size)
	worker := func(ops int) error {
		var live []sysspec.Block
		release := func(b sysspec.Block) error {
			start := sw.Start()
			err := l.Release(b.Addr)
			stats.release.Record(sw.Elapsed(sw.Stop(start)))
			return err
		}
		for i := 0; i < ops; i++ {
			p.wait()
			start := sw.Start()
			b, err := l.Allocate(size)
			stats.alloc.Record(sw.Elapsed(sw.Stop(start)))
			switch {
			case errors.Is(err, sysspec.ErrCapacityExceeded):
				stats.overflow.Lock()
				stats.overflow.count++
				stats.overflow.Unlock()
				continue
			case err != nil:
				return err
			}

			if size >= 2 {
				half := size / 2
				start = sw.Start()
				l.Move(b.Addr, b.Addr+half, half)
				stats.move.Record(sw.Elapsed(sw.Stop(start)))
			}

			live = append(live, b)
			if len(live) > params.live {
				if err := release(live[0]); err != nil {
					return err
				}
				live = live[1:]
			}
		}
		for _, b := range live {
			if err := release(b); err != nil {
				return err
			}
		}
		return nil
	}

	begin := crtime.NowMono()
	var g errgroup.Group
	for w := 0; w < params.concurrency; w++ {
		ops := params.ops / params.concurrency
		if w < params.ops%params.concurrency {
			ops++
		}
		g.Go(func() error { return worker(ops) })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := begin.Elapsed()

	fmt.Fprintf(out, "%d cycles of %s (align %d, %s table of %d) in %s with %d workers\n",
		params.ops, crhumanize.Bytes(params.size, crhumanize.Compact, crhumanize.OmitI),
		a.Align(), opts.TableKind, a.Capacity(), elapsed.Round(time.Microsecond), params.concurrency)

	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"op", "count", "mean", "p50", "p95", "p99", "max"})
	stats.reg.Each(func(name string, h *hdrhistogram.Histogram) {
		if h.TotalCount() == 0 {
			return
		}
		d := func(v int64) string { return time.Duration(v).String() }
		tw.Append([]string{
			name,
			fmt.Sprint(h.TotalCount()),
			d(int64(h.Mean())),
			d(h.ValueAtQuantile(50)),
			d(h.ValueAtQuantile(95)),
			d(h.ValueAtQuantile(99)),
			d(h.Max()),
		})
	})
	tw.Render()

	fmt.Fprintf(out, "%s", l.Metrics())
	if stats.overflow.count > 0 {
		fmt.Fprintf(out, "%d blocks overflowed the address table and were leaked\n", stats.overflow.count)
	}

	if err := printPrometheus(out, promReg); err != nil {
		return err
	}

	if params.plot {
		h := stats.alloc.Snapshot()
		values := make([]float64, 0, 100)
		for q := 1; q <= 100; q++ {
			values = append(values, float64(h.ValueAtQuantile(float64(q)))/1e3)
		}
		fmt.Fprintln(out, asciigraph.Plot(values,
			asciigraph.Height(10),
			asciigraph.Caption("allocate latency (µs) by percentile")))
	}
	return nil
}

// printPrometheus prints the current value of every gathered counter and
// gauge.
func printPrometheus(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"metric", "value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			tw.Append([]string{mf.GetName(), fmt.Sprint(v)})
		}
	}
	tw.Render()
	return nil
}
