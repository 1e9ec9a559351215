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
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
)

// Scorer is implemented by every split-scoring model. Lower [Score] is better.
// Evaluate does not modify a scorer; construction from a parameter map, round-tripping
// through command-line flags, structural equality and a stable hash are all required so scorers
// can be persisted, swept over and memoized.
type Scorer interface {
	// Evaluate returns the badness of splitting at the measured position. Lower is better.
	Evaluate(m Measurement) Score

	// Name is the scorer's class name, e.g. "Scorer3".
	Name() string

	// String renders the scorer in persistence form: "Name(param=value, ...)".
	String() string

	// Flags renders the scorer as command-line flags: []string{"--param-with-dashes=value", ...}.
	Flags() []string

	// FilenameString renders the scorer's parameter values underscore-joined, safe to embed in
	// a filename.
	FilenameString() string

	// Equal reports whether other is a scorer of the same concrete type with identical
	// parameter values.
	Equal(other Scorer) bool

	// Hash returns a stable hash of the scorer's type and parameter values, suitable for use as
	// a map key when memoizing scores across a sweep.
	Hash() uint64
}

// paramField names one of a scorer's integer parameters and points at its live storage, letting
// generic code (String, Flags, Equal, Hash, parameter-map/flag parsing) operate uniformly across
// Scorer1/2/3 without each one reimplementing it, the same role BaseSplitScorer.PARAMETERS plays
// in the reference implementation.
type paramField struct {
	name  string
	value *int
}

func fieldNames(fields []paramField) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

func paramRepr(className string, fields []paramField) string {
	var b strings.Builder
	b.WriteString(className)
	b.WriteByte('(')
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%d", f.name, *f.value)
	}
	b.WriteByte(')')
	return b.String()
}

func paramFlags(fields []paramField) []string {
	flags := make([]string, len(fields))
	for i, f := range fields {
		flags[i] = fmt.Sprintf("--%s=%d", strings.ReplaceAll(f.name, "_", "-"), *f.value)
	}
	return flags
}

func paramFilenameString(fields []paramField) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = strconv.Itoa(*f.value)
	}
	return strings.Join(parts, "_")
}

func paramsEqual(a, b []paramField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].name != b[i].name || *a[i].value != *b[i].value {
			return false
		}
	}
	return true
}

func paramHash(className string, fields []paramField) uint64 {
	h := fnv.New64a()
	h.Write([]byte(className))
	for _, f := range fields {
		h.Write([]byte{0})
		h.Write([]byte(f.name))
		h.Write([]byte{'='})
		h.Write([]byte(strconv.Itoa(*f.value)))
	}
	return h.Sum64()
}

// applyParamMap sets each field named in m, returning the names in m that matched no field of
// fields (the caller should report these as a warning, matching BaseSplitScorer's constructor
// behavior of warning about, but not rejecting, unknown parameters).
func applyParamMap(fields []paramField, m map[string]int) (unknown []string) {
	byName := make(map[string]*int, len(fields))
	for _, f := range fields {
		byName[f.name] = f.value
	}
	for k, v := range m {
		if p, ok := byName[k]; ok {
			*p = v
		} else {
			unknown = append(unknown, k)
		}
	}
	return unknown
}

var flagRE = regexp.MustCompile(`^--([a-z0-9-]+)=(-?\d+)$`)

// applyFlags parses command-line flags of the form "--param-with-dashes=value" and sets the
// matching fields. It returns an error for a malformed flag or one naming an unknown parameter.
func applyFlags(fields []paramField, args []string) error {
	byName := make(map[string]*int, len(fields))
	for _, f := range fields {
		byName[strings.ReplaceAll(f.name, "_", "-")] = f.value
	}
	for _, arg := range args {
		m := flagRE.FindStringSubmatch(arg)
		if m == nil {
			return fmt.Errorf("scorer: malformed flag %q", arg)
		}
		p, ok := byName[m[1]]
		if !ok {
			return fmt.Errorf("scorer: unknown parameter %q in flag %q", m[1], arg)
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return fmt.Errorf("scorer: invalid value in flag %q: %w", arg, err)
		}
		*p = n
	}
	return nil
}

var reprRE = regexp.MustCompile(`^(\w+)\((.*)\)$`)
var reprParamRE = regexp.MustCompile(`^\s*(\w+)\s*=\s*(-?\d+)\s*$`)

// parseRepr parses the persistence form "Name(param=value, ...)" produced by [Scorer.String].
func parseRepr(s string) (className string, params map[string]int, err error) {
	m := reprRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", nil, fmt.Errorf("scorer: malformed repr %q", s)
	}
	className = m[1]
	params = make(map[string]int)
	if strings.TrimSpace(m[2]) == "" {
		return className, params, nil
	}
	for _, part := range strings.Split(m[2], ",") {
		pm := reprParamRE.FindStringSubmatch(part)
		if pm == nil {
			return "", nil, fmt.Errorf("scorer: malformed parameter %q in repr %q", part, s)
		}
		n, err := strconv.Atoi(pm[2])
		if err != nil {
			return "", nil, fmt.Errorf("scorer: invalid value in repr %q: %w", s, err)
		}
		params[pm[1]] = n
	}
	return className, params, nil
}
