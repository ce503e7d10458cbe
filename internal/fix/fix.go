// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package fix turns violations into text replacements.
package fix

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/dupcheck/internal/check"
)

// Message is the display text of the suggested fix.
const Message = "Make duplicate code consistent"

var (
	// ErrOverlap is returned when two edits of one document overlap.
	ErrOverlap = errors.New("overlapping edits")

	// ErrOutOfRange is returned when an edit does not fit into the document.
	ErrOutOfRange = errors.New("edit out of range")
)

// SuggestedFix returns the fix replacing the offending declaration with the expected text.
func SuggestedFix(v check.Violation) analysis.SuggestedFix {
	return analysis.SuggestedFix{
		Message: Message,
		TextEdits: []analysis.TextEdit{{
			Pos:     v.Decl.Pos(),
			End:     v.Decl.End(),
			NewText: []byte(v.Expected),
		}},
	}
}

// Edit replaces the byte range [Start, End) of a document with Text.
type Edit struct {
	Start, End int
	Text       string
}

// Edits returns the edits for violations, keyed by file name.
func Edits(violations []check.Violation) map[string][]Edit {
	edits := make(map[string][]Edit)

	for _, v := range violations {
		span := v.Decl.Span()
		edits[span.Filename] = append(edits[span.Filename], Edit{Start: span.Start, End: span.End, Text: v.Expected})
	}

	return edits
}

// Apply returns src with all edits applied. Edits are applied left to right and must not overlap.
// src is not modified.
func Apply(src []byte, edits []Edit) ([]byte, error) {
	sorted := slices.SortedFunc(slices.Values(edits), func(a, b Edit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	size := len(src)
	for _, e := range sorted {
		size += len(e.Text) - (e.End - e.Start)
	}

	out := make([]byte, 0, max(size, 0))

	last := 0
	for _, e := range sorted {
		if e.Start < 0 || e.End > len(src) || e.Start > e.End {
			return nil, fmt.Errorf("%w: [%d:%d] in %d bytes", ErrOutOfRange, e.Start, e.End, len(src))
		}

		if e.Start < last {
			return nil, fmt.Errorf("%w: [%d:%d] starts before %d", ErrOverlap, e.Start, e.End, last)
		}

		out = append(out, src[last:e.Start]...)
		out = append(out, e.Text...)
		last = e.End
	}

	out = append(out, src[last:]...)

	return out, nil
}

// ApplyViolation returns src with the declaration of v replaced by the expected text.
func ApplyViolation(src []byte, v check.Violation) ([]byte, error) {
	span := v.Decl.Span()

	return Apply(src, []Edit{{Start: span.Start, End: span.End, Text: v.Expected}})
}
