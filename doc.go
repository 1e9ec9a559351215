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

// Package diffslider repositions single-sided change groups within a unified diff to the most
// readable boundary, the same post-processing step `git diff --indent-heuristic` performs.
//
// A [Hunk] is parsed from unified-diff text by [ParseFileDiffs] into alternating [Group]s of
// Context and Change lines. Every maximal, single-sided Change group that touches an identical
// line across one of its boundaries is slidable: moving it up or down by that many lines leaves
// the resulting file unchanged. [Hunk.Sliders] yields a [Slider] for each one.
//
// A [Slider] reports the range of shifts that preserve file content ([Slider.ShiftRange]), scores
// each one with a [scorer.Scorer] ([Slider.GetScore], [Slider.FindBestShift]), and commits a shift
// by mutating its hunk in place ([Slider.Slide]).
//
// Computing the diff itself, rendering the result back to text, and understanding any particular
// programming language's syntax are all out of scope: those are the job of the caller's VCS
// driver and text formatter (see the gitdriver subpackage for one such driver).
package diffslider
