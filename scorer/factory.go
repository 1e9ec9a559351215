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

import "fmt"

// New constructs a scorer of the named class ("Scorer1", "Scorer2" or "Scorer3"), starting from
// its tuned defaults and overriding any parameter present in params. A name present in params but
// not a parameter of the named class is returned as an unknown name, matching BaseSplitScorer's
// behavior of warning about, rather than rejecting, unrecognized parameters — the caller decides
// whether to treat that as fatal.
func New(className string, params map[string]int) (s Scorer, unknown []string, err error) {
	switch className {
	case "Scorer1":
		sc := NewScorer1()
		return sc, applyParamMap(sc.fields(), params), nil
	case "Scorer2":
		sc := NewScorer2()
		return sc, applyParamMap(sc.fields(), params), nil
	case "Scorer3":
		sc := NewScorer3()
		return sc, applyParamMap(sc.fields(), params), nil
	default:
		return nil, nil, fmt.Errorf("scorer: unknown scorer class %q", className)
	}
}

// Parse constructs a [Scorer] from its persistence form, as produced by [Scorer.String].
func Parse(s string) (Scorer, error) {
	className, params, err := parseRepr(s)
	if err != nil {
		return nil, err
	}
	sc, unknown, err := New(className, params)
	if err != nil {
		return nil, err
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("scorer: unknown parameter(s) for %s: %v", className, unknown)
	}
	return sc, nil
}

// ParseFlags constructs a [Scorer] of the named class, applying command-line flags of the form
// "--param-with-dashes=value" on top of its tuned defaults.
func ParseFlags(className string, flags []string) (Scorer, error) {
	sc, _, err := New(className, nil)
	if err != nil {
		return nil, err
	}
	var fields []paramField
	switch v := sc.(type) {
	case *Scorer1:
		fields = v.fields()
	case *Scorer2:
		fields = v.fields()
	case *Scorer3:
		fields = v.fields()
	}
	if err := applyFlags(fields, flags); err != nil {
		return nil, err
	}
	return sc, nil
}

// Names lists the parameter names of the named scorer class, in declaration order, matching
// BaseSplitScorer.get_parameter_names.
func Names(className string) ([]string, error) {
	sc, _, err := New(className, nil)
	if err != nil {
		return nil, err
	}
	switch v := sc.(type) {
	case *Scorer1:
		return fieldNames(v.fields()), nil
	case *Scorer2:
		return fieldNames(v.fields()), nil
	case *Scorer3:
		return fieldNames(v.fields()), nil
	}
	return nil, nil
}
