// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// scoresweep is a comparison/training harness: it replays a record file of named
// sliders against a repository, perturbs a scorer's parameters one at a time, and reports how
// often each perturbation reproduces the recorded shift — the same kind of sweep
// diff-slider-tools' run-comparisons.sh drives, rewired against this package's scorers.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
	"github.com/spf13/cobra"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/halvard/diffslider"
	"github.com/halvard/diffslider/internal/gitdriver"
	"github.com/halvard/diffslider/scorer"
)

var (
	flagRepo       string
	flagContext    int
	flagScorer     string
	flagRecords    string
	flagPerturb    int
	flagMetricsOut string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scoresweep: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scoresweep",
	Short: "Sweep scorer parameters against a recorded set of sliders and report accuracy",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&flagRepo, "repo", ".", "git repository the record file's blobs live in")
	rootCmd.Flags().IntVar(&flagContext, "context", 3, "lines of context around each hunk")
	rootCmd.Flags().StringVar(&flagScorer, "scorer", "Scorer3", "scorer class to sweep: Scorer1, Scorer2 or Scorer3")
	rootCmd.Flags().StringVar(&flagRecords, "records", "", "path to a record file in ReadRecords format")
	rootCmd.Flags().IntVar(&flagPerturb, "perturb", 1, "amount to perturb each parameter by, in both directions")
	rootCmd.Flags().StringVar(&flagMetricsOut, "metrics-out", "", "path to write a Prometheus text exposition to (stdout if empty)")
}

// counters accumulates one sweep's results as Prometheus metrics rather than ad hoc printed
// totals, so a training run can be diffed against a previous one with promtool or pushed to a
// gateway.
type counters struct {
	registry       *prometheus.Registry
	total          prometheus.Counter
	baselineMatch  prometheus.Counter
	paramMatch     *prometheus.CounterVec
	goDiffMismatch prometheus.Counter
}

func newCounters() *counters {
	reg := prometheus.NewRegistry()
	c := &counters{
		registry: reg,
		total: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoresweep_records_total",
			Help: "Total records replayed.",
		}),
		baselineMatch: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoresweep_baseline_match_total",
			Help: "Records where the unperturbed scorer reproduced the recorded shift.",
		}),
		paramMatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoresweep_param_match_total",
			Help: "Records where a perturbed parameter still reproduced the recorded shift.",
		}, []string{"param", "direction"}),
		goDiffMismatch: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoresweep_godiff_hunk_count_mismatch_total",
			Help: "Records where go-diff's independent parse disagreed on hunk count.",
		}),
	}
	reg.MustRegister(c.total, c.baselineMatch, c.paramMatch, c.goDiffMismatch)
	return c
}

func run(cmd *cobra.Command, args []string) error {
	if flagRecords == "" {
		return fmt.Errorf("--records is required")
	}
	f, err := os.Open(flagRecords)
	if err != nil {
		return fmt.Errorf("opening record file: %w", err)
	}
	defer f.Close()

	records, err := diffslider.ReadRecords(f)
	if err != nil {
		return fmt.Errorf("reading records: %w", err)
	}

	names, err := scorer.Names(flagScorer)
	if err != nil {
		return err
	}

	c := newCounters()
	driver := gitdriver.NewDriver(flagRepo, flagContext)
	ctx := context.Background()

	for _, rec := range records {
		if len(rec.Shifts) == 0 {
			continue
		}
		want := rec.Shifts[len(rec.Shifts)-1]
		c.total.Inc()

		text, err := driver.Diff(ctx, rec.Name.Old, rec.Name.New)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scoresweep: %s: %v\n", rec.Name, err)
			continue
		}

		diffs, err := diffslider.ParseFileDiffs(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scoresweep: %s: parsing: %v\n", rec.Name, err)
		}

		crossCheckHunkCount(c, rec.Name, text, diffs)

		slider, err := diffslider.Find(diffs, rec.Name.Prefix, rec.Name.LineNumber)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scoresweep: %s: %v\n", rec.Name, err)
			continue
		}

		baseline, _, err := scorer.New(flagScorer, nil)
		if err != nil {
			return err
		}
		if slider.FindBestShift(baseline) == want {
			c.baselineMatch.Inc()
		}

		for _, name := range names {
			for _, direction := range []string{"up", "down"} {
				delta := flagPerturb
				if direction == "down" {
					delta = -flagPerturb
				}
				perturbed, unknown, err := scorer.New(flagScorer, map[string]int{name: baseValue(baseline, name) + delta})
				if err != nil || len(unknown) > 0 {
					continue
				}
				if slider.FindBestShift(perturbed) == want {
					c.paramMatch.WithLabelValues(name, direction).Inc()
				}
			}
		}
	}

	return writeMetrics(c)
}

// baseValue reads a scorer's current value for a named parameter (a snake_case name as returned
// by [scorer.Names]) by round-tripping through its flag representation, since [scorer.Scorer] has
// no direct field accessor by name.
func baseValue(sc scorer.Scorer, name string) int {
	want := strings.ReplaceAll(name, "_", "-")
	for _, flag := range sc.Flags() {
		flag = strings.TrimPrefix(flag, "--")
		key, value, ok := strings.Cut(flag, "=")
		if !ok || key != want {
			continue
		}
		var v int
		fmt.Sscanf(value, "%d", &v)
		return v
	}
	return 0
}

// crossCheckHunkCount verifies that an independent parser agrees on how many hunks this package's
// own parser found, catching parser regressions that wouldn't otherwise surface in a sweep that
// only exercises scorers, by cross-checking against an independent parse via go-diff.
func crossCheckHunkCount(c *counters, name diffslider.Name, text string, diffs []*diffslider.FileDiff) {
	gd, err := godiff.ParseMultiFileDiff([]byte(text))
	if err != nil {
		return
	}
	var want, got int
	for _, fd := range gd {
		want += len(fd.Hunks)
	}
	for _, fd := range diffs {
		got += len(fd.Hunks)
	}
	if want != got {
		c.goDiffMismatch.Inc()
		fmt.Fprintf(os.Stderr, "scoresweep: %s: hunk count mismatch: go-diff=%d diffslider=%d\n", name, want, got)
	}
}

func writeMetrics(c *counters) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })

	out := os.Stdout
	if flagMetricsOut != "" {
		f, err := os.Create(flagMetricsOut)
		if err != nil {
			return fmt.Errorf("creating metrics output: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := expfmt.NewEncoder(out, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding metrics: %w", err)
		}
	}
	return nil
}
