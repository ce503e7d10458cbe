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

package fix_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/dupcheck/internal/check"
	. "fillmore-labs.com/dupcheck/internal/fix"
	"fillmore-labs.com/dupcheck/internal/group"
	"fillmore-labs.com/dupcheck/internal/testsource"
	"fillmore-labs.com/dupcheck/internal/variant"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		edits []Edit
		want  string
		err   error
	}{
		{
			name: "None",
			src:  "abc",
			want: "abc",
		},
		{
			name:  "Unordered",
			src:   "one two three",
			edits: []Edit{{Start: 8, End: 13, Text: "3"}, {Start: 0, End: 3, Text: "1"}},
			want:  "1 two 3",
		},
		{
			name:  "Adjacent",
			src:   "abcd",
			edits: []Edit{{Start: 0, End: 2, Text: "x"}, {Start: 2, End: 4, Text: "y"}},
			want:  "xy",
		},
		{
			name:  "Insert",
			src:   "ac",
			edits: []Edit{{Start: 1, End: 1, Text: "b"}},
			want:  "abc",
		},
		{
			name:  "Overlap",
			src:   "abcd",
			edits: []Edit{{Start: 0, End: 3, Text: "x"}, {Start: 2, End: 4, Text: "y"}},
			err:   ErrOverlap,
		},
		{
			name:  "OutOfRange",
			src:   "abcd",
			edits: []Edit{{Start: 2, End: 5, Text: "x"}},
			err:   ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := []byte(tt.src)

			got, err := Apply(src, tt.edits)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.src, string(src), "source modified")
		})
	}
}

func TestFixViolations(t *testing.T) {
	t.Parallel()

	const src = `
//dupcheck:real float32 Add
func Add32(a, b float32) float32 { return a + b }

//dupcheck:real float64 Add
func Add64(a, b float64) float64 { return a - b }

//dupcheck:all float32 Neg
func Neg32(x float32) float32 { return -x }

//dupcheck:all complex64 Neg
func NegC64(x complex64) complex64 { return x }

//dupcheck:all complex128 Neg
func NegC128(x complex128) complex128 { return -x }
`

	const fixedSrc = `
//dupcheck:real float32 Add
func Add32(a, b float32) float32 { return a + b }

//dupcheck:real float64 Add
func Add64(a, b float64) float64 { return a + b }

//dupcheck:all float32 Neg
func Neg32(x float32) float32 { return -x }

//dupcheck:all complex64 Neg
func NegC64(x complex64) complex64 { return -x }

//dupcheck:all complex128 Neg
func NegC128(x complex128) complex128 { return -x }
`

	f := testsource.Parse(t, src)
	symbols := group.Index(group.DefaultDirective, f.Declarations(t, nil))

	r, err := check.New(variant.Default, nil, 0).Check(context.Background(), symbols)
	require.NoError(t, err)
	require.Len(t, r.Violations, 2)

	edits := Edits(r.Violations)
	require.Len(t, edits, 1)

	for _, v := range r.Violations {
		sf := SuggestedFix(v)
		assert.Equal(t, Message, sf.Message)
		require.Len(t, sf.TextEdits, 1)
		assert.Equal(t, v.Expected, string(sf.TextEdits[0].NewText))
	}

	one, err := ApplyViolation(f.Src, r.Violations[0])
	require.NoError(t, err)
	assert.Contains(t, string(one), "func Add64(a, b float64) float64 { return a + b }")
	assert.Contains(t, string(one), "func NegC64(x complex64) complex64 { return x }")

	fixed, err := Apply(f.Src, edits["test.go"])
	require.NoError(t, err)
	assert.Equal(t, "package test\n\n"+fixedSrc, string(fixed))

	// Fixed source is consistent.
	again := testsource.Parse(t, string(fixed[len("package test\n\n"):]))
	r, err = check.New(variant.Default, nil, 0).Check(context.Background(), group.Index(group.DefaultDirective, again.Declarations(t, nil)))
	require.NoError(t, err)
	assert.Empty(t, r.Violations)
}
