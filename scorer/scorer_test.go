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

import (
	"testing"
)

func allScorers() []Scorer {
	return []Scorer{NewScorer1(), NewScorer2(), NewScorer3()}
}

func TestScorerStringRoundTrip(t *testing.T) {
	for _, s := range allScorers() {
		got, err := Parse(s.String())
		if err != nil {
			t.Fatalf("%s: Parse(%q) failed: %v", s.Name(), s.String(), err)
		}
		if !s.Equal(got) {
			t.Errorf("%s: Parse(String()) = %v, want equal to %v", s.Name(), got, s)
		}
	}
}

func TestScorerFlagsRoundTrip(t *testing.T) {
	for _, s := range allScorers() {
		got, err := ParseFlags(s.Name(), s.Flags())
		if err != nil {
			t.Fatalf("%s: ParseFlags failed: %v", s.Name(), err)
		}
		if !s.Equal(got) {
			t.Errorf("%s: ParseFlags(Flags()) = %v, want equal to %v", s.Name(), got, s)
		}
	}
}

func TestScorerEqualHash(t *testing.T) {
	a := NewScorer1()
	b := NewScorer1()
	if !a.Equal(b) {
		t.Error("two default Scorer1 instances should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("two default Scorer1 instances should hash the same")
	}
	b.BlockBonus = 5
	if a.Equal(b) {
		t.Error("scorers with different parameters should not be equal")
	}
	if a.Hash() == b.Hash() {
		t.Error("scorers with different parameters should (almost certainly) hash differently")
	}
	if a.Equal(NewScorer2()) {
		t.Error("scorers of different concrete types should not be equal")
	}
}

// A start-of-hunk split (no predecessor, at column 0) should score better under Scorer1 than a
// split buried in the middle of an indented, non-blank-adjacent block, since the legacy model
// rewards exactly that configuration with start_of_hunk_bonus.
func TestScorer1PrefersStartOfHunk(t *testing.T) {
	s := NewScorer1()
	startOfHunk := Measurement{Indent: 0, PreIndent: NoIndent, PostIndent: 0}
	midBlock := Measurement{Indent: 4, PreIndent: 4, PostIndent: 4}

	got := s.Evaluate(startOfHunk)
	other := s.Evaluate(midBlock)
	if got.Compare(other) >= 0 {
		t.Errorf("Evaluate(startOfHunk) = %v should be better (lower) than Evaluate(midBlock) = %v", got, other)
	}
}

// Scorer3's lexicographic comparison must let a smaller indentation win, even against a better
// penalty, as long as the penalty difference stays within the 60-unit band.
func TestLexScoreIndentDominates(t *testing.T) {
	lower := LexScore{EffectiveIndent: 0, Penalty: 59}
	higher := LexScore{EffectiveIndent: 1, Penalty: 0}
	if lower.Compare(higher) >= 0 {
		t.Errorf("LexScore{0,59}.Compare({1,0}) = %d, want < 0 (lower indent wins while the penalty gap is under 60)", lower.Compare(higher))
	}
}

func TestScorer3EndOfHunkPenalized(t *testing.T) {
	s := NewScorer3()
	mid := Measurement{Indent: 4, PreIndent: 4, PostIndent: 4}
	end := mid
	end.EndOfHunk = true

	gotMid := s.Evaluate(mid).(LexScore)
	gotEnd := s.Evaluate(end).(LexScore)
	if gotEnd.Penalty <= gotMid.Penalty {
		t.Errorf("end-of-hunk penalty %d should exceed mid-block penalty %d", gotEnd.Penalty, gotMid.Penalty)
	}
}
