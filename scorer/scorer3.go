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

package scorer

// Scorer3 is the default scoring model. Unlike [Scorer1] and [Scorer2], which fold
// indentation and bonuses into a single integer, Scorer3 keeps them separate: the sign of the
// EffectiveIndent difference between two splits counts 60 units, and the Penalty difference is
// added to it (see [LexScore]).
type Scorer3 struct {
	StartOfHunkPenalty               int
	EndOfHunkPenalty                 int
	TotalBlankWeight                 int
	PostBlankWeight                  int
	RelativeIndentPenalty            int
	RelativeIndentWithBlankPenalty   int
	RelativeOutdentPenalty           int
	RelativeOutdentWithBlankPenalty  int
	RelativeDedentPenalty            int
	RelativeDedentWithBlankPenalty   int
}

// NewScorer3 returns a [Scorer3] with the tuned default parameters.
func NewScorer3() *Scorer3 {
	return &Scorer3{
		StartOfHunkPenalty:              1,
		EndOfHunkPenalty:                21,
		TotalBlankWeight:                -30,
		PostBlankWeight:                 6,
		RelativeIndentPenalty:           -4,
		RelativeIndentWithBlankPenalty:  10,
		RelativeOutdentPenalty:          24,
		RelativeOutdentWithBlankPenalty: 17,
		RelativeDedentPenalty:           23,
		RelativeDedentWithBlankPenalty:  17,
	}
}

func (s *Scorer3) fields() []paramField {
	return []paramField{
		{"start_of_hunk_penalty", &s.StartOfHunkPenalty},
		{"end_of_hunk_penalty", &s.EndOfHunkPenalty},
		{"total_blank_weight", &s.TotalBlankWeight},
		{"post_blank_weight", &s.PostBlankWeight},
		{"relative_indent_penalty", &s.RelativeIndentPenalty},
		{"relative_indent_with_blank_penalty", &s.RelativeIndentWithBlankPenalty},
		{"relative_outdent_penalty", &s.RelativeOutdentPenalty},
		{"relative_outdent_with_blank_penalty", &s.RelativeOutdentWithBlankPenalty},
		{"relative_dedent_penalty", &s.RelativeDedentPenalty},
		{"relative_dedent_with_blank_penalty", &s.RelativeDedentWithBlankPenalty},
	}
}

// Evaluate implements [Scorer], following SplitScorer3.evaluate exactly.
func (s *Scorer3) Evaluate(m Measurement) Score {
	penalty := 0

	if m.PreIndent == NoIndent && m.PreBlank == 0 {
		penalty += s.StartOfHunkPenalty
	}
	if m.EndOfHunk {
		penalty += s.EndOfHunkPenalty
	}

	postBlank := 0
	if m.Indent == NoIndent {
		postBlank = 1 + m.PostBlank
	}
	totalBlank := m.PreBlank + postBlank
	penalty += s.TotalBlankWeight*totalBlank + s.PostBlankWeight*postBlank

	indent := m.Indent
	if indent == NoIndent {
		indent = m.PostIndent
	}

	isBlank := totalBlank != 0

	effectiveIndent := indent
	if indent == NoIndent {
		effectiveIndent = -1
	}

	switch {
	case indent == NoIndent:
		// No adjustment.
	case m.PreIndent == NoIndent:
		// No adjustment.
	case indent > m.PreIndent:
		if isBlank {
			penalty += s.RelativeIndentWithBlankPenalty
		} else {
			penalty += s.RelativeIndentPenalty
		}
	case indent == m.PreIndent:
		// No adjustment.
	default:
		if m.PostIndent == NoIndent || indent >= m.PostIndent {
			if isBlank {
				penalty += s.RelativeDedentWithBlankPenalty
			} else {
				penalty += s.RelativeDedentPenalty
			}
		} else {
			if isBlank {
				penalty += s.RelativeOutdentWithBlankPenalty
			} else {
				penalty += s.RelativeOutdentPenalty
			}
		}
	}

	return LexScore{EffectiveIndent: effectiveIndent, Penalty: penalty}
}

func (s *Scorer3) Name() string           { return "Scorer3" }
func (s *Scorer3) String() string         { return paramRepr(s.Name(), s.fields()) }
func (s *Scorer3) Flags() []string        { return paramFlags(s.fields()) }
func (s *Scorer3) FilenameString() string { return paramFilenameString(s.fields()) }
func (s *Scorer3) Hash() uint64           { return paramHash(s.Name(), s.fields()) }

func (s *Scorer3) Equal(other Scorer) bool {
	o, ok := other.(*Scorer3)
	if !ok {
		return false
	}
	return paramsEqual(s.fields(), o.fields())
}

// Default returns a freshly constructed [Scorer3], the scoring model used when none is specified.
func Default() Scorer {
	return NewScorer3()
}
