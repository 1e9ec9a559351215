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
	"log/slog"
	"strings"
	"testing"
)

const sampleDiff = `diff --git a/foo.go b/foo.go
index e69de29..4b825dc 100644
--- a/foo.go
+++ b/foo.go
@@ -1,3 +1,4 @@
 package foo

-func old() {}
+func old() {}
+func new() {}
diff --git a/bar.go b/bar.go
index 1111111..2222222 100644
--- a/bar.go
+++ b/bar.go
@@ -1,2 +1,2 @@
-x
+y
 z
`

func TestParseFileDiffs(t *testing.T) {
	diffs, err := ParseFileDiffs(sampleDiff)
	if err != nil {
		t.Fatalf("ParseFileDiffs: %v", err)
	}
	if len(diffs) != 2 {
		t.Fatalf("len(diffs) = %d, want 2", len(diffs))
	}
	if diffs[0].OldFilename != "foo.go" || diffs[0].NewFilename != "foo.go" {
		t.Errorf("diffs[0] filenames = %q, %q, want foo.go, foo.go", diffs[0].OldFilename, diffs[0].NewFilename)
	}
	if len(diffs[0].Hunks) != 1 {
		t.Fatalf("len(diffs[0].Hunks) = %d, want 1", len(diffs[0].Hunks))
	}
	if diffs[1].OldFilename != "bar.go" {
		t.Errorf("diffs[1].OldFilename = %q, want bar.go", diffs[1].OldFilename)
	}
}

func TestParseFileDiffsNewFile(t *testing.T) {
	text := `diff --git a/new.go b/new.go
new file mode 100644
index 0000000..e69de29
--- /dev/null
+++ b/new.go
@@ -0,0 +1,2 @@
+package new
+
`
	diffs, err := ParseFileDiffs(text)
	if err != nil {
		t.Fatalf("ParseFileDiffs: %v", err)
	}
	if len(diffs) != 1 {
		t.Fatalf("len(diffs) = %d, want 1", len(diffs))
	}
	if diffs[0].OldFilename != "" {
		t.Errorf("OldFilename = %q, want empty for a new file", diffs[0].OldFilename)
	}
	if diffs[0].NewFilename != "new.go" {
		t.Errorf("NewFilename = %q, want new.go", diffs[0].NewFilename)
	}
}

func TestParseFileDiffsBinary(t *testing.T) {
	text := `diff --git a/img.png b/img.png
index 1111111..2222222 100644
Binary files a/img.png and b/img.png differ
diff --git a/ok.go b/ok.go
index 3333333..4444444 100644
--- a/ok.go
+++ b/ok.go
@@ -1 +1 @@
-x
+y
`
	diffs, err := ParseFileDiffs(text)
	if err != nil {
		t.Fatalf("ParseFileDiffs: %v", err)
	}
	if len(diffs) != 2 {
		t.Fatalf("len(diffs) = %d, want 2", len(diffs))
	}
	if !diffs[0].Binary {
		t.Error("diffs[0].Binary = false, want true")
	}
	if len(diffs[1].Hunks) != 1 {
		t.Errorf("len(diffs[1].Hunks) = %d, want 1", len(diffs[1].Hunks))
	}
}

func TestParseFileDiffsRecoversFromUnparsableFile(t *testing.T) {
	text := `diff --git a/bad.go b/bad.go
this is not a valid envelope at all
@@ nonsense @@
diff --git a/ok.go b/ok.go
index 3333333..4444444 100644
--- a/ok.go
+++ b/ok.go
@@ -1 +1 @@
-x
+y
`
	var buf strings.Builder
	log := slog.New(slog.NewTextHandler(&buf, nil))

	diffs, err := ParseFileDiffs(text, WithLogger(log))
	if err == nil {
		t.Error("ParseFileDiffs: want non-nil aggregated error for the unparsable file")
	}
	if len(diffs) != 1 {
		t.Fatalf("len(diffs) = %d, want 1 (bad.go skipped, ok.go recovered)", len(diffs))
	}
	if diffs[0].NewFilename != "ok.go" {
		t.Errorf("NewFilename = %q, want ok.go", diffs[0].NewFilename)
	}
	if buf.Len() == 0 {
		t.Error("logger received no output for the recovered error")
	}
}

func TestIsShellSafeFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"foo/bar.go", true},
		{"foo-bar_baz.go", true},
		{"foo bar.go", false},
		{"foo;rm -rf.go", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isShellSafeFilename(tt.name); got != tt.want {
			t.Errorf("isShellSafeFilename(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
