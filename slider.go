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

package diffslider

import (
	"iter"

	"github.com/halvard/diffslider/scorer"
)

// shiftRange is the inclusive-exclusive range of shifts a [Slider] may be moved by, i.e. the Go
// equivalent of a Python range(min, limit): valid shifts are min, min+1, ..., limit-1.
type shiftRange struct {
	min, limit int
}

func (r shiftRange) len() int { return r.limit - r.min }

// Slider is a single-sided change group (a run of only deletions or only insertions) that can be
// moved up or down within its hunk without changing the resulting file content, because a
// boundary of the change duplicates the adjacent context line.
//
// A Slider aliases its owning [Hunk]: [Slider.Slide] mutates the hunk's lines and groups in
// place rather than building a new hunk.
type Slider struct {
	hunk  *Hunk
	group int // index into hunk.Groups of the Change group this Slider slides

	prefix ChangeKind // Delete or Insert; never Mixed: replacements cannot be slid

	// lines is the text of every line visible to prefix's side (Context lines, plus Delete
	// lines if prefix is Delete or Insert lines if prefix is Insert), in order. It never
	// changes for the lifetime of the Slider: sliding only reclassifies which of these lines
	// counts as "change" versus "context", it never alters the text sequence itself.
	lines []string
	// real maps an index into lines to the corresponding index into hunk.Lines.
	real []int

	preLen    int // current offset of the start of the change within lines
	changeLen int // length of the change within lines; constant for the Slider's lifetime

	lineNumber int // 1-based old- or new-file line number of the first line of the change
	shiftRange shiftRange

	measurements map[int]scorer.Measurement
}

// Sliders iterates every slidable change group of h, in order ("one Hunk produces zero
// or more Sliders, one per maximal single-sided change group that has a slidable boundary").
func (h *Hunk) Sliders() iter.Seq[*Slider] {
	return func(yield func(*Slider) bool) {
		for i, g := range h.Groups {
			if g.Kind != GroupChange || g.Prefix == Mixed {
				continue
			}
			s, ok := newSlider(h, i)
			if !ok {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// newSlider builds the Slider for the Change group at h.Groups[group], returning ok=false if that
// change has no slidable boundary (neither edge duplicates the adjacent line on its side).
func newSlider(h *Hunk, group int) (*Slider, bool) {
	g := h.Groups[group]
	prefix := g.Prefix

	lines := make([]string, 0, len(h.Lines))
	real := make([]int, 0, len(h.Lines))
	preLen, changeLen := -1, 0
	for i, l := range h.Lines {
		visible := l.Kind == Context || l.Kind == prefix
		if !visible {
			continue
		}
		if i == g.Start {
			preLen = len(lines)
		}
		lines = append(lines, l.Text)
		real = append(real, i)
		if i >= g.Start && i < g.End {
			changeLen++
		}
	}
	if preLen < 0 {
		// The change group is empty; cannot happen for a well-formed Change (parseHunk
		// never produces an empty change group).
		return nil, false
	}

	referenceLine := h.OldLine
	if prefix == Insert {
		referenceLine = h.NewLine
	}

	s := &Slider{
		hunk:         h,
		group:        group,
		prefix:       prefix,
		lines:        lines,
		real:         real,
		preLen:       preLen,
		changeLen:    changeLen,
		lineNumber:   referenceLine + preLen,
		measurements: make(map[int]scorer.Measurement),
	}
	s.shiftRange = s.computeShiftRange()
	if s.shiftRange.len() <= 1 {
		return nil, false
	}
	return s, true
}

// computeShiftRange mirrors Slider._compute_shift_range: it extends the allowed shift in each
// direction for as long as the line leaving the change on one edge is identical to the line
// already present on the other edge, i.e. as long as the move is a no-op on file content.
func (s *Slider) computeShiftRange() shiftRange {
	postLen := len(s.lines) - s.preLen - s.changeLen

	min := 0
	for s.preLen+min-1 >= 0 && s.changeLen+min-1 >= 0 &&
		s.lines[s.preLen+min-1] == s.lines[s.preLen+s.changeLen+min-1] {
		min--
	}

	limit := 1
	for limit <= s.changeLen && limit <= postLen &&
		s.lines[s.preLen+limit-1] == s.lines[s.preLen+s.changeLen+limit-1] {
		limit++
	}

	return shiftRange{min: min, limit: limit}
}

// LineNumber returns the current 1-based line number (in the old file if this change deletes, in
// the new file if it inserts) of the first line of the change.
func (s *Slider) LineNumber() int { return s.lineNumber }

// Prefix returns the single-sided kind (Delete or Insert) of the change this Slider moves.
func (s *Slider) Prefix() ChangeKind { return s.prefix }

// ShiftRange returns the inclusive bounds [min, max] of shifts currently allowed, relative to the
// change's present position.
func (s *Slider) ShiftRange() (min, max int) { return s.shiftRange.min, s.shiftRange.limit - 1 }

// measure returns the cached (or newly computed) split measurement for the given split, which is
// expressed relative to the start of the change, as with [Slider.GetScore].
func (s *Slider) measure(split int) scorer.Measurement {
	if m, ok := s.measurements[split]; ok {
		return m
	}
	m := scorer.Measure(s.lines, s.preLen+split)
	s.measurements[split] = m
	return m
}

// GetScore returns the combined badness of shifting the change by shift: the sum of the scores of
// the two splits that would bracket the change at that position.
func (s *Slider) GetScore(sc scorer.Scorer, shift int) scorer.Score {
	top := sc.Evaluate(s.measure(shift))
	bottom := sc.Evaluate(s.measure(shift + s.changeLen))
	return top.Add(bottom)
}

// FindBestShift returns the shift in [Slider.ShiftRange] with the lowest (best) [scorer.Score],
// preferring the largest shift on a tie.
func (s *Slider) FindBestShift(sc scorer.Scorer) int {
	if s.shiftRange.len() == 1 {
		return s.shiftRange.min
	}

	best := s.shiftRange.min
	var bestScore scorer.Score
	for shift := s.shiftRange.min; shift < s.shiftRange.limit; shift++ {
		score := s.GetScore(sc, shift)
		if bestScore == nil || score.Compare(bestScore) <= 0 {
			best = shift
			bestScore = score
		}
	}
	return best
}

// ShiftCanonically slides the change as far down as its range allows, the shift Git itself has
// applied by default since 2.9.0. It returns the shift the change had immediately
// before this call, relative to the now-canonical position (always <= 0).
func (s *Slider) ShiftCanonically() int {
	maxShift := s.shiftRange.limit - 1
	s.Slide(maxShift)
	return -maxShift
}

// Slide moves the change by shift (relative to its current position), reclassifying exactly
// |shift| lines of the owning hunk from context to change or vice versa, and recomputing the
// hunk's group boundaries. Shift must lie within [Slider.ShiftRange]; a shift of 0 is a no-op.
func (s *Slider) Slide(shift int) {
	if shift == 0 {
		return
	}

	oldStart := s.preLen
	newStart := s.preLen + shift

	switch {
	case shift < 0:
		// The last |shift| lines of the change exit to context; the last |shift| lines of
		// pre-context enter the change.
		for pos := oldStart + s.changeLen + shift; pos < oldStart+s.changeLen; pos++ {
			s.hunk.Lines[s.real[pos]].Kind = Context
		}
		for pos := newStart; pos < oldStart; pos++ {
			s.hunk.Lines[s.real[pos]].Kind = s.prefix
		}
	case shift > 0:
		// The first shift lines of the change exit to context; the first shift lines of
		// post-context enter the change.
		for pos := oldStart; pos < newStart; pos++ {
			s.hunk.Lines[s.real[pos]].Kind = Context
		}
		for pos := oldStart + s.changeLen; pos < newStart+s.changeLen; pos++ {
			s.hunk.Lines[s.real[pos]].Kind = s.prefix
		}
	}

	s.preLen = newStart
	s.shiftRange.min -= shift
	s.shiftRange.limit -= shift
	s.lineNumber += shift
	s.measurements = make(map[int]scorer.Measurement)

	s.hunk.Groups = groupLines(s.hunk.Lines)
	// The change group may have moved to a different index after regrouping; re-locate it by
	// scanning from the previous index, which is never far off since only the groups adjacent
	// to the change can have grown, shrunk or merged.
	s.group = locateGroup(s.hunk.Groups, s.group, s.real[newStart])
}

// locateGroup finds the index of the Change group spanning real line index realStart, searching
// outward from hint first since regrouping rarely moves a group far from its previous index.
func locateGroup(groups []Group, hint, realStart int) int {
	for d := 0; d <= len(groups); d++ {
		for _, i := range [2]int{hint + d, hint - d} {
			if i < 0 || i >= len(groups) {
				continue
			}
			if groups[i].Kind == GroupChange && groups[i].Start <= realStart && realStart < groups[i].End {
				return i
			}
		}
	}
	return hint
}
