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
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Record pairs a [Name] with the shift(s) recorded against it in a record file — typically the
// shift a scorer chose, or a history of shifts from a sweep across scorer variants.
type Record struct {
	Name   Name
	Shifts []int
}

var commentRE = regexp.MustCompile(`^\s*(#.*)?$`)

// ReadRecords parses Name/shifts pairs from r, one per non-blank, non-comment line, in the format
// written by [WriteRecord]: "<old> <new> <prefix> <line_number> [shift ...]". It mirrors
// iter_shifts/SliderName.read.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if commentRE.MatchString(line) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 4 {
			return nil, parsingErrorf("record", "could not read %q", line)
		}

		lineNumber, err := strconv.Atoi(words[3])
		if err != nil {
			return nil, parsingErrorf("record", "line number %q is not an integer in line %q", words[3], line)
		}
		if len(words[2]) != 1 {
			return nil, parsingErrorf("record", "prefix %q is not a single character in line %q", words[2], line)
		}

		rec := Record{
			Name: Name{
				Old:        words[0],
				New:        words[1],
				Prefix:     ChangeKind(words[2][0]),
				LineNumber: lineNumber,
			},
		}
		for _, w := range words[4:] {
			shift, err := strconv.Atoi(w)
			if err != nil {
				return nil, parsingErrorf("record", "shift %q is not an integer in line %q", w, line)
			}
			rec.Shifts = append(rec.Shifts, shift)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// WriteRecord writes name and its shifts to w as one line, in the format [ReadRecords] parses.
func WriteRecord(w io.Writer, name Name, shifts []int) error {
	var b strings.Builder
	b.WriteString(name.String())
	for _, s := range shifts {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(s))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
