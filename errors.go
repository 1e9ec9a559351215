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

import "fmt"

// ParsingError reports a malformed hunk or file-diff envelope encountered while iterating a
// patch. Parsing continues past a ParsingError at file or hunk granularity: the
// offending hunk or file is skipped, and the caller collects these through an iteration option
// rather than aborting the whole patch.
type ParsingError struct {
	// Context names what was being parsed when the error occurred, e.g. a filename or a hunk
	// header line, for use in diagnostics.
	Context string
	Err     error
}

func (e *ParsingError) Error() string {
	if e.Context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Context, e.Err)
}

func (e *ParsingError) Unwrap() error { return e.Err }

func parsingErrorf(context, format string, args ...any) *ParsingError {
	return &ParsingError{Context: context, Err: fmt.Errorf(format, args...)}
}
