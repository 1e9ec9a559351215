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

	"github.com/google/go-cmp/cmp"
)

func TestMeasure(t *testing.T) {
	lines := []string{
		"func f() {",  // 0
		"\tx := 1",    // 1
		"",            // 2
		"",            // 3
		"\ty := 2",    // 4
		"}",           // 5
	}

	tests := []struct {
		name  string
		index int
		want  Measurement
	}{
		{
			name:  "start of hunk",
			index: 0,
			want: Measurement{
				Indent:     0,
				PreIndent:  NoIndent,
				PostIndent: 8,
			},
		},
		{
			name:  "split before a run of blanks",
			index: 2,
			want: Measurement{
				Indent:     NoIndent,
				PreIndent:  8,
				PostIndent: 8,
				PostBlank:  1,
			},
		},
		{
			name:  "split inside a run of blanks",
			index: 3,
			want: Measurement{
				Indent:     NoIndent,
				PreIndent:  8,
				PreBlank:   1,
				PostIndent: 8,
			},
		},
		{
			name:  "split at end of hunk",
			index: len(lines),
			want: Measurement{
				EndOfHunk:  true,
				Indent:     NoIndent,
				PreIndent:  0,
				PostIndent: NoIndent,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Measure(lines, tt.index)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Measure(lines, %d) mismatch (-want +got):\n%s", tt.index, diff)
			}
		})
	}
}

func TestIndentOf(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"", NoIndent},
		{"   ", NoIndent},
		{"\t\t  ", NoIndent},
		{"x", 0},
		{"  x", 2},
		{"\tx", 8},
		{"\t \tx", 16},
		{"x   ", 0},
	}
	for _, tt := range tests {
		if got := indentOf(tt.line); got != tt.want {
			t.Errorf("indentOf(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
