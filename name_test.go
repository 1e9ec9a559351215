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

import "testing"

func TestNameString(t *testing.T) {
	n := Name{Old: "a:x.go", New: "b:x.go", Prefix: Insert, LineNumber: 42}
	want := "a:x.go b:x.go + 42"
	if got := n.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFindLocatesCanonicalSlider(t *testing.T) {
	h := slidableHunk(t)
	fd := &FileDiff{NewFilename: "f", Hunks: []*Hunk{h}}

	var want *Slider
	for s := range h.Sliders() {
		want = s
	}
	_, max := want.ShiftRange()
	canonicalLine := want.LineNumber() + max

	got, err := Find([]*FileDiff{fd}, Insert, canonicalLine)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.LineNumber() != want.LineNumber() {
		t.Errorf("Find returned a slider at line %d, want %d", got.LineNumber(), want.LineNumber())
	}
}

func TestFindReturnsErrorWhenNoMatch(t *testing.T) {
	h := slidableHunk(t)
	fd := &FileDiff{NewFilename: "f", Hunks: []*Hunk{h}}
	if _, err := Find([]*FileDiff{fd}, Delete, 999); err == nil {
		t.Fatal("Find: want error when no slider matches")
	}
}
