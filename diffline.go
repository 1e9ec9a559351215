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

//go:generate stringer -type=GroupKind -output=diffline_string.go

// ChangeKind classifies a line of a unified-diff hunk by its one-character prefix.
type ChangeKind byte

const (
	// Context is an unchanged line, prefixed by a single space.
	Context ChangeKind = ' '
	// Delete is a line removed from the old file, prefixed by '-'.
	Delete ChangeKind = '-'
	// Insert is a line added in the new file, prefixed by '+'.
	Insert ChangeKind = '+'
	// Mixed marks a [Group] that contains both deletions and insertions; it never appears on a
	// single [DiffLine].
	Mixed ChangeKind = '?'
)

// DiffLine is a single line of a hunk body, with the one-character prefix that classifies it.
type DiffLine struct {
	Kind ChangeKind
	Text string
}

// String renders the line the way it appeared (or would appear) in unified-diff text.
func (d DiffLine) String() string {
	return string(d.Kind) + d.Text
}

// Blank reports whether the line is blank once trailing whitespace is stripped: the negation of
// Python's DiffLine.__bool__ (used there to mean "this line is truthy", i.e. non-blank).
func (d DiffLine) Blank() bool {
	return rstrip(d.Text) == ""
}

// GroupKind distinguishes a run of unchanged lines from a run of changed lines within a hunk.
// A hunk's groups always alternate Context, Change, Context, Change, ..., Context.
type GroupKind int

const (
	GroupContext GroupKind = iota
	GroupChange
)

// Group is a maximal run of consecutive lines of the same [GroupKind] within a [Hunk], named by
// index range into the hunk's flat Lines slice rather than owning a sublist of its own — this is
// what lets [Slider.Slide] move the boundary between two groups by changing line kinds in place
// instead of moving lines between sublists. Slide then recomputes every group of the hunk, so
// its cost grows with the hunk's length, not only with |shift|.
type Group struct {
	Kind  GroupKind
	Start int // inclusive index into the owning Hunk.Lines
	End   int // exclusive index into the owning Hunk.Lines

	// Prefix is set only for GroupChange groups: Delete if the group contains only deletions,
	// Insert if it contains only insertions, Mixed if it contains both. A Mixed change can never
	// be a slider: replacements cannot be slid.
	Prefix ChangeKind
}

// Len returns the number of lines in the group.
func (g Group) Len() int { return g.End - g.Start }

// computePrefix derives a Change group's Prefix from the lines it spans, matching
// Change._compute_prefix.
func computePrefix(lines []DiffLine, start, end int) ChangeKind {
	hasDelete, hasInsert := false, false
	for _, l := range lines[start:end] {
		switch l.Kind {
		case Delete:
			hasDelete = true
		case Insert:
			hasInsert = true
		}
	}
	switch {
	case hasDelete && hasInsert:
		return Mixed
	case hasDelete:
		return Delete
	case hasInsert:
		return Insert
	default:
		panic("diffslider: empty change group")
	}
}

// rstrip trims trailing ASCII whitespace, matching Python's str.rstrip() default behavior.
func rstrip(s string) string {
	i := len(s)
	for i > 0 {
		switch s[i-1] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i--
			continue
		}
		break
	}
	return s[:i]
}
