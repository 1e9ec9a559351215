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

import "cmp"

// Score is the badness assigned to a split, or the sum of two splits bracketing a shifted change
// (see the diffslider package's Slider.GetScore). Lower is better. Scores of the same concrete
// type can be added (to combine the two splits of a shift) and compared (to pick the best shift).
type Score interface {
	// Add combines this score with another score of the same concrete type.
	Add(Score) Score

	// Compare returns a negative number if this score is better than other, zero if they're
	// equally good, and a positive number if other is better.
	Compare(other Score) int
}

// IntScore is the [Score] produced by [Scorer1] and [Scorer2]: a single integer, lower is better.
type IntScore int

func (s IntScore) Add(other Score) Score {
	return s + other.(IntScore)
}

func (s IntScore) Compare(other Score) int {
	return cmp.Compare(int(s), int(other.(IntScore)))
}

// LexScore is the [Score] produced by [Scorer3]: a lexicographic pair. EffectiveIndent dominates
// the comparison, scaled by a factor of 60, and Penalty breaks ties
// within a 60-unit band (and otherwise allows a smaller penalty to outweigh a one-step indent
// difference).
type LexScore struct {
	EffectiveIndent int
	Penalty         int
}

func (s LexScore) Add(other Score) Score {
	o := other.(LexScore)
	return LexScore{
		EffectiveIndent: s.EffectiveIndent + o.EffectiveIndent,
		Penalty:         s.Penalty + o.Penalty,
	}
}

func (s LexScore) Compare(other Score) int {
	o := other.(LexScore)
	return 60*cmp.Compare(s.EffectiveIndent, o.EffectiveIndent) + (s.Penalty - o.Penalty)
}
