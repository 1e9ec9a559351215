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
)

func TestReadRecords(t *testing.T) {
	input := `# a comment line

abc123:foo.go def456:foo.go + 12 0 1
abc123:bar.go def456:bar.go - 3
`
	records, err := ReadRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	want := []Record{
		{
			Name:   Name{Old: "abc123:foo.go", New: "def456:foo.go", Prefix: Insert, LineNumber: 12},
			Shifts: []int{0, 1},
		},
		{
			Name: Name{Old: "abc123:bar.go", New: "def456:bar.go", Prefix: Delete, LineNumber: 3},
		},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("ReadRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRecordsRejectsMalformedLine(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("only three fields\n"))
	if err == nil {
		t.Fatal("ReadRecords: want error for a line with too few fields")
	}
}

func TestReadRecordsRejectsBadLineNumber(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("a b + notanumber\n"))
	if err == nil {
		t.Fatal("ReadRecords: want error for a non-integer line number")
	}
}

func TestWriteRecordReadRecordsRoundTrip(t *testing.T) {
	name := Name{Old: "a:x.go", New: "b:x.go", Prefix: Insert, LineNumber: 7}
	shifts := []int{-1, 0, 2}

	var buf strings.Builder
	if err := WriteRecord(&buf, name, shifts); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	records, err := ReadRecords(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if diff := cmp.Diff(name, records[0].Name); diff != "" {
		t.Errorf("Name mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(shifts, records[0].Shifts); diff != "" {
		t.Errorf("Shifts mismatch (-want +got):\n%s", diff)
	}
}
