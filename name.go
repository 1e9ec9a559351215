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
	"fmt"
)

// Name identifies a single Slider stably across recomputations of the same diff: the blob/path
// pair on each side, which side the change is on, and the line number the change would have once
// shifted to its canonical (furthest-down) position ("a comparison/training harness
// needs to name the same Slider across repeated runs").
type Name struct {
	// Old is "<blob-sha1>:<path>" identifying the old side, or "" if the file was created.
	Old string
	// New is "<blob-sha1>:<path>" identifying the new side, or "" if the file was deleted.
	New string
	// Prefix is Delete or Insert.
	Prefix ChangeKind
	// LineNumber is the canonical (post shift-to-max) line number of the change's first line.
	LineNumber int
}

// String renders n as "<old> <new> <prefix> <line_number>", the same order SliderName.__str__
// writes a record's identifying fields.
func (n Name) String() string {
	return fmt.Sprintf("%s %s %c %d", n.Old, n.New, n.Prefix, n.LineNumber)
}

// Find locates the Slider identified by prefix and line number (which must already be canonical)
// among the sliders of diffs, mirroring find_slider. It returns an error if no such Slider exists
// — for example because the diff was recomputed against a different revision than the one the
// Name was recorded against.
func Find(diffs []*FileDiff, prefix ChangeKind, lineNumber int) (*Slider, error) {
	for _, fd := range diffs {
		for _, h := range fd.Hunks {
			for s := range h.Sliders() {
				if s.Prefix() != prefix {
					continue
				}
				_, max := s.ShiftRange()
				if s.LineNumber()+max == lineNumber {
					return s, nil
				}
			}
		}
	}
	return nil, parsingErrorf("find slider", "no slider found for prefix %c at canonical line %d", prefix, lineNumber)
}
