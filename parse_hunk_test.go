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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseHunk(t *testing.T) {
	lines := strings.Split(`@@ -10,4 +10,5 @@ func f() {
 a
-b
+b2
+c
 d`, "\n")

	h, err := parseHunk("old.go", "new.go", lines)
	if err != nil {
		t.Fatalf("parseHunk: %v", err)
	}

	if h.OldLine != 10 || h.OldLen != 4 || h.NewLine != 10 || h.NewLen != 5 {
		t.Errorf("header = %+v, want OldLine=10 OldLen=4 NewLine=10 NewLen=5", h)
	}

	wantLines := []DiffLine{
		{Kind: Context, Text: "a"},
		{Kind: Delete, Text: "b"},
		{Kind: Insert, Text: "b2"},
		{Kind: Insert, Text: "c"},
		{Kind: Context, Text: "d"},
	}
	if diff := cmp.Diff(wantLines, h.Lines); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}

	wantGroups := []Group{
		{Kind: GroupContext, Start: 0, End: 1},
		{Kind: GroupChange, Start: 1, End: 4, Prefix: Mixed},
		{Kind: GroupContext, Start: 4, End: 5},
	}
	if diff := cmp.Diff(wantGroups, h.Groups, cmpopts.IgnoreFields(Group{}, "Prefix")); diff != "" {
		t.Errorf("Groups mismatch (-want +got):\n%s", diff)
	}
	if h.Groups[1].Prefix != Mixed {
		t.Errorf("Groups[1].Prefix = %c, want Mixed", h.Groups[1].Prefix)
	}
}

func TestParseHunkNoHeaderLengths(t *testing.T) {
	lines := strings.Split(`@@ -5 +5 @@
-x
+y`, "\n")
	h, err := parseHunk("a", "b", lines)
	if err != nil {
		t.Fatalf("parseHunk: %v", err)
	}
	if h.OldLen != -1 || h.NewLen != -1 {
		t.Errorf("OldLen=%d NewLen=%d, want -1, -1", h.OldLen, h.NewLen)
	}
}

func TestParseHunkMalformedHeader(t *testing.T) {
	_, err := parseHunk("a", "b", []string{"not a header"})
	if err == nil {
		t.Fatal("parseHunk: want error for malformed header, got nil")
	}
}

func TestParseHunkDropsNoNewlineMarker(t *testing.T) {
	lines := strings.Split(`@@ -1 +1 @@
-x
\ No newline at end of file
+y`, "\n")
	h, err := parseHunk("a", "b", lines)
	if err != nil {
		t.Fatalf("parseHunk: %v", err)
	}
	if len(h.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2 (no-newline marker dropped)", len(h.Lines))
	}
}

func TestGroupLinesAlwaysBracketedByContext(t *testing.T) {
	lines := []DiffLine{{Kind: Delete, Text: "x"}, {Kind: Insert, Text: "y"}}
	groups := groupLines(lines)
	if groups[0].Kind != GroupContext || groups[0].Len() != 0 {
		t.Errorf("first group = %+v, want empty GroupContext", groups[0])
	}
	if groups[len(groups)-1].Kind != GroupContext || groups[len(groups)-1].Len() != 0 {
		t.Errorf("last group = %+v, want empty GroupContext", groups[len(groups)-1])
	}
}

func TestHunkOldNewLines(t *testing.T) {
	h := &Hunk{Lines: []DiffLine{
		{Kind: Context, Text: "a"},
		{Kind: Delete, Text: "b"},
		{Kind: Insert, Text: "c"},
		{Kind: Context, Text: "d"},
	}}
	old := h.OldLines()
	if diff := cmp.Diff([]DiffLine{{Kind: Context, Text: "a"}, {Kind: Delete, Text: "b"}, {Kind: Context, Text: "d"}}, old); diff != "" {
		t.Errorf("OldLines mismatch (-want +got):\n%s", diff)
	}
	new := h.NewLines()
	if diff := cmp.Diff([]DiffLine{{Kind: Context, Text: "a"}, {Kind: Insert, Text: "c"}, {Kind: Context, Text: "d"}}, new); diff != "" {
		t.Errorf("NewLines mismatch (-want +got):\n%s", diff)
	}
}
