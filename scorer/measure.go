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

// Package scorer measures structural features around a candidate split in a line array and maps
// those measurements to a badness score for three progressively refined scoring models.
//
// A split is an integer position j in a line array: it lies between lines[j-1] and lines[j]. The
// measurement extracted at a split (indentation of the following line, runs of blank lines on
// either side, whether the split falls at the end of the array) is a pure function of the array
// and the index; see [Measure]. [Scorer1], [Scorer2] and [Scorer3] map a [Measurement] to a
// [Score]; [Scorer3] is the default.
package scorer

// NoIndent is the sentinel [Measurement] field value meaning "no indentation is defined here",
// either because the line is blank (whitespace only) or because there is no such line.
const NoIndent = -1

// maxIndent bounds the indentation values we report. Lines indented further than this are
// clamped, which keeps pathological input (e.g. minified data with very long runs of spaces) from
// doing unbounded work or overflowing score arithmetic.
const maxIndent = 200

// Measurement holds the structural features of a candidate split.
type Measurement struct {
	// EndOfHunk is true iff the split is at or past the end of the line array.
	EndOfHunk bool

	// Indent is the indentation of the line immediately following the split, or NoIndent if
	// that line is blank or doesn't exist.
	Indent int

	// PreBlank is the number of consecutive blank lines immediately before the split.
	PreBlank int

	// PreIndent is the indentation of the nearest non-blank line above those blanks, or
	// NoIndent if there is no such line.
	PreIndent int

	// PostBlank is the number of consecutive blank lines strictly after the split (not
	// counting lines[index] itself).
	PostBlank int

	// PostIndent is the indentation of the nearest non-blank line after those blanks, or
	// NoIndent if there is no such line.
	PostIndent int
}

// Measure computes the [Measurement] for splitting lines before lines[index]. It depends only on
// lines and index.
func Measure(lines []string, index int) Measurement {
	var m Measurement

	if index >= len(lines) {
		m.EndOfHunk = true
		m.Indent = NoIndent
	} else {
		m.Indent = indentOf(lines[index])
	}

	m.PreIndent = NoIndent
	for i := index - 1; i >= 0; i-- {
		m.PreIndent = indentOf(lines[i])
		if m.PreIndent != NoIndent {
			break
		}
		m.PreBlank++
	}

	m.PostIndent = NoIndent
	for i := index + 1; i < len(lines); i++ {
		m.PostIndent = indentOf(lines[i])
		if m.PostIndent != NoIndent {
			break
		}
		m.PostBlank++
	}

	return m
}

// indentOf returns the indentation of line (spaces count as 1 column, tabs advance to the next
// multiple of 8), or NoIndent if line is blank once trailing whitespace is stripped.
func indentOf(line string) int {
	line = rstrip(line)
	if line == "" {
		return NoIndent
	}

	indent := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			indent++
		case '\t':
			indent += 8 - indent%8
		default:
			if indent >= maxIndent {
				return maxIndent
			}
			return indent
		}
		if indent >= maxIndent {
			return maxIndent
		}
	}
	return indent
}

// rstrip trims trailing ASCII whitespace, the same set Python's str.rstrip() removes by default.
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
