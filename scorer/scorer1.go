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

// Scorer1 is the original "legacy bonus" scoring model. It scores a split by its
// own indentation, adjusted up or down by bonuses that depend on blank-line placement and how the
// split's indentation relates to its predecessor's, then returns 10*indent - bonus, so each
// column of indentation weighs as much as ten points of bonus.
type Scorer1 struct {
	StartOfHunkBonus     int
	EndOfHunkBonus       int
	FollowsBlankBonus    int
	PrecedesBlankBonus   int
	BetweenBlanksBonus   int
	RelativeIndentBonus  int
	RelativeOutdentBonus int
	RelativeDedentBonus  int
	BlockBonus           int
}

// NewScorer1 returns a [Scorer1] with the tuned default parameters.
func NewScorer1() *Scorer1 {
	return &Scorer1{
		StartOfHunkBonus:     9,
		EndOfHunkBonus:       20,
		FollowsBlankBonus:    20,
		PrecedesBlankBonus:   5,
		BetweenBlanksBonus:   19,
		RelativeIndentBonus:  -2,
		RelativeOutdentBonus: -13,
		RelativeDedentBonus:  -13,
		BlockBonus:           -1,
	}
}

func (s *Scorer1) fields() []paramField {
	return []paramField{
		{"start_of_hunk_bonus", &s.StartOfHunkBonus},
		{"end_of_hunk_bonus", &s.EndOfHunkBonus},
		{"follows_blank_bonus", &s.FollowsBlankBonus},
		{"precedes_blank_bonus", &s.PrecedesBlankBonus},
		{"between_blanks_bonus", &s.BetweenBlanksBonus},
		{"relative_indent_bonus", &s.RelativeIndentBonus},
		{"relative_outdent_bonus", &s.RelativeOutdentBonus},
		{"relative_dedent_bonus", &s.RelativeDedentBonus},
		{"block_bonus", &s.BlockBonus},
	}
}

// Evaluate implements [Scorer], following SplitScorer1.evaluate exactly.
func (s *Scorer1) Evaluate(m Measurement) Score {
	bonus := 0

	if m.PreIndent == NoIndent && m.PreBlank == 0 {
		bonus += s.StartOfHunkBonus
	}
	if m.EndOfHunk {
		bonus += s.EndOfHunkBonus
	}

	switch {
	case m.PreBlank > 0 && m.Indent != NoIndent:
		bonus += s.FollowsBlankBonus
	case m.Indent == NoIndent && m.PreBlank == 0:
		bonus += s.PrecedesBlankBonus
	case m.Indent == NoIndent && m.PreBlank > 0:
		bonus += s.BetweenBlanksBonus
	}

	indent := m.Indent
	if indent == NoIndent {
		indent = m.PostIndent
	}

	// This model counts an undefined indent as column 0.
	if indent == NoIndent {
		indent = 0
	}
	preIndent := m.PreIndent
	if preIndent == NoIndent {
		preIndent = 0
	}

	var score int
	switch {
	case indent > preIndent:
		score = indent
		bonus += s.RelativeIndentBonus
	case indent < preIndent:
		score = indent
		if m.PostIndent == NoIndent || indent >= m.PostIndent {
			bonus += s.RelativeDedentBonus
		} else {
			bonus += s.RelativeOutdentBonus
		}
	default:
		score = indent
		if m.Indent != NoIndent {
			bonus += s.BlockBonus
		}
	}

	return IntScore(10*score - bonus)
}

func (s *Scorer1) Name() string           { return "Scorer1" }
func (s *Scorer1) String() string         { return paramRepr(s.Name(), s.fields()) }
func (s *Scorer1) Flags() []string        { return paramFlags(s.fields()) }
func (s *Scorer1) FilenameString() string { return paramFilenameString(s.fields()) }
func (s *Scorer1) Hash() uint64           { return paramHash(s.Name(), s.fields()) }

func (s *Scorer1) Equal(other Scorer) bool {
	o, ok := other.(*Scorer1)
	if !ok {
		return false
	}
	return paramsEqual(s.fields(), o.fields())
}
