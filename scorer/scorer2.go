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

// Scorer2 refines [Scorer1] by weighting the total run of blank lines around the split rather
// than just whether one exists, and by distinguishing relative-indent bonuses depending on
// whether any blank line is present.
type Scorer2 struct {
	StartOfHunkBonus              int
	EndOfHunkBonus                int
	TotalBlankWeight              int
	PreBlankWeight                int
	RelativeIndentBonus           int
	RelativeIndentHasBlankBonus   int
	RelativeOutdentBonus          int
	RelativeOutdentHasBlankBonus  int
	RelativeDedentBonus           int
	RelativeDedentHasBlankBonus   int
}

// NewScorer2 returns a [Scorer2] with the tuned default parameters.
func NewScorer2() *Scorer2 {
	return &Scorer2{
		StartOfHunkBonus:             9,
		EndOfHunkBonus:               46,
		TotalBlankWeight:             4,
		PreBlankWeight:               16,
		RelativeIndentBonus:          -1,
		RelativeIndentHasBlankBonus:  15,
		RelativeOutdentBonus:         -19,
		RelativeOutdentHasBlankBonus: 2,
		RelativeDedentBonus:          -63,
		RelativeDedentHasBlankBonus:  50,
	}
}

func (s *Scorer2) fields() []paramField {
	return []paramField{
		{"start_of_hunk_bonus", &s.StartOfHunkBonus},
		{"end_of_hunk_bonus", &s.EndOfHunkBonus},
		{"total_blank_weight", &s.TotalBlankWeight},
		{"pre_blank_weight", &s.PreBlankWeight},
		{"relative_indent_bonus", &s.RelativeIndentBonus},
		{"relative_indent_has_blank_bonus", &s.RelativeIndentHasBlankBonus},
		{"relative_outdent_bonus", &s.RelativeOutdentBonus},
		{"relative_outdent_has_blank_bonus", &s.RelativeOutdentHasBlankBonus},
		{"relative_dedent_bonus", &s.RelativeDedentBonus},
		{"relative_dedent_has_blank_bonus", &s.RelativeDedentHasBlankBonus},
	}
}

// Evaluate implements [Scorer], following SplitScorer2.evaluate exactly.
func (s *Scorer2) Evaluate(m Measurement) Score {
	bonus := 0

	if m.PreIndent == NoIndent && m.PreBlank == 0 {
		bonus += s.StartOfHunkBonus
	}
	if m.EndOfHunk {
		bonus += s.EndOfHunkBonus
	}

	totalBlank := m.PreBlank
	if m.Indent == NoIndent {
		totalBlank += 1 + m.PostBlank
	}
	bonus += s.TotalBlankWeight*totalBlank + s.PreBlankWeight*m.PreBlank

	indent := m.Indent
	if indent == NoIndent {
		indent = m.PostIndent
	}

	isBlank := 0
	if totalBlank != 0 {
		isBlank = 1
	}

	var score int
	switch {
	case indent == NoIndent:
		score = 0
	case m.PreIndent == NoIndent:
		score = indent
	case indent > m.PreIndent:
		score = indent
		bonus += s.RelativeIndentBonus + s.RelativeIndentHasBlankBonus*isBlank
	case indent < m.PreIndent:
		score = indent
		if m.PostIndent == NoIndent || indent >= m.PostIndent {
			bonus += s.RelativeDedentBonus + s.RelativeDedentHasBlankBonus*isBlank
		} else {
			bonus += s.RelativeOutdentBonus + s.RelativeOutdentHasBlankBonus*isBlank
		}
	default:
		score = indent
	}

	return IntScore(10*score - bonus)
}

func (s *Scorer2) Name() string           { return "Scorer2" }
func (s *Scorer2) String() string         { return paramRepr(s.Name(), s.fields()) }
func (s *Scorer2) Flags() []string        { return paramFlags(s.fields()) }
func (s *Scorer2) FilenameString() string { return paramFilenameString(s.fields()) }
func (s *Scorer2) Hash() uint64           { return paramHash(s.Name(), s.fields()) }

func (s *Scorer2) Equal(other Scorer) bool {
	o, ok := other.(*Scorer2)
	if !ok {
		return false
	}
	return paramsEqual(s.fields(), o.fields())
}
