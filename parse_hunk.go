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
	"regexp"
	"strconv"
)

// hunkHeaderRE matches a unified-diff hunk header, e.g. "@@ -12,5 +14,7 @@ func example() {".
// Capture groups: old line, old length (optional), new line, new length (optional).
var hunkHeaderRE = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Hunk is one `@@ ... @@`-delimited hunk of a file diff: the line ranges it covers in the old and
// new file, and the lines themselves, segmented into alternating Context/Change groups.
type Hunk struct {
	OldFilename string
	NewFilename string

	OldLine int
	OldLen  int // -1 if the header omitted a length (a one-line hunk)
	NewLine int
	NewLen  int

	// Lines is the flat sequence of every line in the hunk, in order. Groups index into this
	// slice rather than owning their own copies (see [Group]).
	Lines []DiffLine

	// Groups alternates Context, Change, Context, ..., Context; the first and last groups are
	// always Context groups, though they may be empty.
	Groups []Group
}

// parseHunk parses a single hunk, given its header line and body lines (without prefixes
// stripped). It mirrors Hunk.__init__ and Hunk.iter_groups.
func parseHunk(oldFilename, newFilename string, lines []string) (*Hunk, error) {
	if len(lines) == 0 {
		return nil, parsingErrorf("hunk", "empty hunk")
	}

	m := hunkHeaderRE.FindStringSubmatch(lines[0])
	if m == nil {
		return nil, parsingErrorf("hunk", "malformed hunk header %q", lines[0])
	}

	h := &Hunk{
		OldFilename: oldFilename,
		NewFilename: newFilename,
	}
	h.OldLine, _ = strconv.Atoi(m[1])
	if m[2] == "" {
		h.OldLen = -1
	} else {
		h.OldLen, _ = strconv.Atoi(m[2])
	}
	h.NewLine, _ = strconv.Atoi(m[3])
	if m[4] == "" {
		h.NewLen = -1
	} else {
		h.NewLen, _ = strconv.Atoi(m[4])
	}

	h.Lines = make([]DiffLine, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		if line[0] == '\\' {
			// "\ No newline at end of file" and similar: not part of the content.
			continue
		}
		h.Lines = append(h.Lines, DiffLine{Kind: ChangeKind(line[0]), Text: line[1:]})
	}

	h.Groups = groupLines(h.Lines)
	return h, nil
}

// groupLines segments a flat line sequence into alternating Context/Change groups, mirroring
// Hunk.iter_groups: the result always starts and ends with a Context group, which may be empty.
func groupLines(lines []DiffLine) []Group {
	var groups []Group
	start := 0
	inChange := false

	flush := func(end int) {
		if inChange {
			groups = append(groups, Group{
				Kind:   GroupChange,
				Start:  start,
				End:    end,
				Prefix: computePrefix(lines, start, end),
			})
		} else {
			groups = append(groups, Group{Kind: GroupContext, Start: start, End: end})
		}
	}

	for i, l := range lines {
		isChange := l.Kind != Context
		if isChange != inChange {
			flush(i)
			start = i
			inChange = isChange
		}
	}
	flush(len(lines))

	if len(groups) == 0 || groups[0].Kind != GroupContext {
		groups = append([]Group{{Kind: GroupContext, Start: 0, End: 0}}, groups...)
	}
	if groups[len(groups)-1].Kind != GroupContext {
		groups = append(groups, Group{Kind: GroupContext, Start: len(lines), End: len(lines)})
	}
	return groups
}

// OldLines returns every line present in the old file, in order.
func (h *Hunk) OldLines() []DiffLine {
	var out []DiffLine
	for _, l := range h.Lines {
		if l.Kind == Context || l.Kind == Delete {
			out = append(out, l)
		}
	}
	return out
}

// NewLines returns every line present in the new file, in order.
func (h *Hunk) NewLines() []DiffLine {
	var out []DiffLine
	for _, l := range h.Lines {
		if l.Kind == Context || l.Kind == Insert {
			out = append(out, l)
		}
	}
	return out
}
