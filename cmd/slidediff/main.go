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

// slidediff prints the `git diff` between two revisions with every slidable change group moved
// to its best-scoring position, the same transformation `git diff --indent-heuristic` applies,
// but with a choice of scorer.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halvard/diffslider"
	"github.com/halvard/diffslider/internal/gitdriver"
	"github.com/halvard/diffslider/scorer"
)

var (
	flagRepo    string
	flagContext int
	flagScorer  string
	flagShow    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "slidediff: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slidediff <old-rev> <new-rev>",
	Short: "Print a diff with slidable change groups moved to their best-scoring position",
	Args:  cobra.ExactArgs(2),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&flagRepo, "repo", ".", "git repository to diff in")
	rootCmd.Flags().IntVar(&flagContext, "context", 3, "lines of context around each hunk")
	rootCmd.Flags().StringVar(&flagScorer, "scorer", "Scorer3", "scorer to use: Scorer1, Scorer2 or Scorer3")
	rootCmd.Flags().BoolVar(&flagShow, "show-shifts", false, "log each shift applied to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	old, new := args[0], args[1]

	sc, err := scorer.New(flagScorer, nil)
	if err != nil {
		return fmt.Errorf("selecting scorer: %w", err)
	}

	driver := gitdriver.NewDriver(flagRepo, flagContext)
	text, err := driver.Diff(context.Background(), old, new)
	if err != nil {
		return fmt.Errorf("computing diff: %w", err)
	}

	diffs, err := diffslider.ParseFileDiffs(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slidediff: some file sections could not be parsed: %v\n", err)
	}

	for _, fd := range diffs {
		for _, h := range fd.Hunks {
			slideHunk(h, sc)
		}
	}

	render(os.Stdout, diffs)
	return nil
}

// slideHunk moves every slidable change in h to the shift sc scores best. Sliders are collected
// up front because [diffslider.Slider.Slide] mutates h.Groups, which would otherwise invalidate
// the range loop over [diffslider.Hunk.Sliders].
func slideHunk(h *diffslider.Hunk, sc scorer.Scorer) {
	var sliders []*diffslider.Slider
	for s := range h.Sliders() {
		sliders = append(sliders, s)
	}
	for _, s := range sliders {
		best := s.FindBestShift(sc)
		if flagShow && best != 0 {
			fmt.Fprintf(os.Stderr, "slidediff: shifted %c-change at line %d by %d\n", s.Prefix(), s.LineNumber(), best)
		}
		s.Slide(best)
	}
}

// render writes diffs back out as unified-diff text. This is deliberately kept out of the
// diffslider package itself, since rendering is a caller concern and it only ever needs to
// reproduce the envelope/header format the diffs were parsed from, not compute a diff from
// scratch.
func render(w *os.File, diffs []*diffslider.FileDiff) {
	for _, fd := range diffs {
		old, new := fd.OldFilename, fd.NewFilename
		if old == "" {
			old = new
		}
		if new == "" {
			new = old
		}
		fmt.Fprintf(w, "diff --git a/%s b/%s\n", old, new)
		if fd.OldSHA1 != "" || fd.NewSHA1 != "" {
			fmt.Fprintf(w, "index %s..%s\n", fd.OldSHA1, fd.NewSHA1)
		}
		if fd.Binary {
			fmt.Fprintf(w, "Binary files a/%s and b/%s differ\n", old, new)
			continue
		}
		if fd.OldFilename == "" {
			fmt.Fprintf(w, "--- /dev/null\n")
		} else {
			fmt.Fprintf(w, "--- a/%s\n", fd.OldFilename)
		}
		if fd.NewFilename == "" {
			fmt.Fprintf(w, "+++ /dev/null\n")
		} else {
			fmt.Fprintf(w, "+++ b/%s\n", fd.NewFilename)
		}
		for _, h := range fd.Hunks {
			renderHunk(w, h)
		}
	}
}

func renderHunk(w *os.File, h *diffslider.Hunk) {
	old := h.OldLines()
	new := h.NewLines()
	oldLen, newLen := len(old), len(new)
	if h.OldLen >= 0 {
		oldLen = h.OldLen
	}
	if h.NewLen >= 0 {
		newLen = h.NewLen
	}
	fmt.Fprintf(w, "@@ -%d,%d +%d,%d @@\n", h.OldLine, oldLen, h.NewLine, newLen)
	for _, l := range h.Lines {
		fmt.Fprintln(w, l.String())
	}
}
