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
	"strings"

	"go.uber.org/multierr"
)

// FileDiff is the portion of a unified diff concerning a single file: its envelope (old/new
// filenames, blob hashes) and the hunks within it.
type FileDiff struct {
	OldFilename string // empty if the file was created
	NewFilename string // empty if the file was deleted
	OldSHA1     string
	NewSHA1     string
	Binary      bool

	Hunks []*Hunk
}

var (
	indexRE   = regexp.MustCompile(`^index ([0-9a-f]+)\.\.([0-9a-f]+)(?: [0-7]+)?$`)
	oldFileRE = regexp.MustCompile(`^--- (?:/dev/null|a/(.*))$`)
	newFileRE = regexp.MustCompile(`^\+\+\+ (?:/dev/null|b/(.*))$`)
)

// getFilename extracts the filename captured by re from line, returning a ParsingError if line
// doesn't match.
func getFilename(re *regexp.Regexp, line string) (string, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", parsingErrorf("file diff", "could not parse filename from %q", line)
	}
	return m[1], nil
}

// isShellSafeFilename reports whether name can appear unquoted as a POSIX shell word: this is a
// narrow reimplementation of Python's shlex.quote(name) == name check, used to reject filenames
// that unified-diff envelopes can't represent unambiguously. There is no
// standard-library or ecosystem equivalent of POSIX shell-word quoting in the retrieved examples.
func isShellSafeFilename(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("@%_+=:,./-", rune(c)):
		default:
			return false
		}
	}
	return true
}

// parseFileDiff parses one "diff "-prefixed envelope and its hunks, mirroring FileDiff.__init__.
// lines must start with a "diff " line.
func parseFileDiff(lines []string, opts options) (*FileDiff, error) {
	if len(lines) == 0 {
		return nil, parsingErrorf("file diff", "no lines in file diff")
	}

	i := 0
	for !strings.HasPrefix(lines[i], "diff ") {
		i++
		if i >= len(lines) {
			return nil, parsingErrorf("file diff", "diff line not found")
		}
	}
	i++

	if i < len(lines) && strings.HasPrefix(lines[i], "similarity ") {
		i++
		for i < len(lines) && strings.HasPrefix(lines[i], "rename ") {
			i++
		}
	}
	if i < len(lines) && (strings.HasPrefix(lines[i], "new ") || strings.HasPrefix(lines[i], "deleted ")) {
		i++
	}

	fd := &FileDiff{}
	if i >= len(lines) {
		return fd, nil
	}

	m := indexRE.FindStringSubmatch(lines[i])
	if m == nil {
		return nil, parsingErrorf("file diff", "could not parse index line %q", lines[i])
	}
	i++
	fd.OldSHA1, fd.NewSHA1 = m[1], m[2]

	if i < len(lines) && strings.HasPrefix(lines[i], "Binary files ") {
		fd.Binary = true
		return fd, nil
	}

	if i >= len(lines) {
		return nil, parsingErrorf("file diff", "missing --- line")
	}
	oldFilename, err := getFilename(oldFileRE, lines[i])
	if err != nil {
		return nil, err
	}
	if oldFilename != "" && !isShellSafeFilename(oldFilename) {
		return nil, parsingErrorf("file diff", "filename %q is not safe for shell commands", oldFilename)
	}
	fd.OldFilename = oldFilename
	i++

	if i >= len(lines) {
		return nil, parsingErrorf("file diff", "missing +++ line")
	}
	newFilename, err := getFilename(newFileRE, lines[i])
	if err != nil {
		return nil, err
	}
	if newFilename != "" && !isShellSafeFilename(newFilename) {
		return nil, parsingErrorf("file diff", "filename %q is not safe for shell commands", newFilename)
	}
	fd.NewFilename = newFilename
	i++

	log := opts.logger()
	for i < len(lines) {
		if !strings.HasPrefix(lines[i], "@@ ") {
			return nil, parsingErrorf("file diff", "expected hunk header, got %q", lines[i])
		}
		start := i
		i++
		for i < len(lines) && !strings.HasPrefix(lines[i], "@@ ") {
			i++
		}
		h, err := parseHunk(fd.OldFilename, fd.NewFilename, lines[start:i])
		if err != nil {
			log.Warn("skipping unparsable hunk", "file", fd.NewFilename, "error", err)
			continue
		}
		fd.Hunks = append(fd.Hunks, h)
	}

	return fd, nil
}

// ParseFileDiffs parses every file section of a unified-diff text (as produced by `git diff` or
// `diff -u`), recovering at file granularity: a malformed file section is skipped and reported
// to the logger set by [WithLogger] rather than aborting the whole patch. The returned error, if
// non-nil, combines the [ParsingError] of every skipped file section via [multierr]; a hunk that
// fails to parse is logged and dropped from its file, and is not part of the returned error.
// Callers that only care about the successfully parsed diffs can ignore it.
func ParseFileDiffs(text string, opt ...Option) ([]*FileDiff, error) {
	opts := defaultOptions
	for _, o := range opt {
		o(&opts)
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	log := opts.logger()
	var diffs []*FileDiff
	var errs error

	i := 0
	for i < len(lines) {
		if !strings.HasPrefix(lines[i], "diff ") {
			i++
			continue
		}
		start := i
		i++
		for i < len(lines) && !strings.HasPrefix(lines[i], "diff ") {
			i++
		}

		fd, err := parseFileDiff(lines[start:i], opts)
		if err != nil {
			log.Warn("skipping unparsable file diff", "error", err)
			errs = multierr.Append(errs, err)
			continue
		}
		diffs = append(diffs, fd)
	}

	return diffs, errs
}
