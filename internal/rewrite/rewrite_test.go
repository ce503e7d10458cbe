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

package rewrite_test

import (
	"errors"
	"go/ast"
	"testing"

	. "fillmore-labs.com/dupcheck/internal/rewrite"
	"fillmore-labs.com/dupcheck/internal/testsource"
	"fillmore-labs.com/dupcheck/internal/variant"
)

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		from, to variant.Variant
		opts     []Option
		want     string
	}{
		{
			name: "Scenario",
			src:  "func Add(a float32, b float32) float32 { return a + b }",
			from: variant.SingleReal,
			to:   variant.DoubleReal,
			want: "func Add(a float64, b float64) float64 { return a + b }",
		},
		{
			name: "Trivia",
			src:  "func Add(a, b float32 /* in */) float32 {\n\t// float32 stays in comments\n\treturn a + b\n}",
			from: variant.SingleReal,
			to:   variant.SingleComplex,
			want: "func Add(a, b complex64 /* in */) complex64 {\n\t// float32 stays in comments\n\treturn a + b\n}",
		},
		{
			name: "Conversion",
			src:  "func Half(x float32) float32 { return x * float32(0.5) }",
			from: variant.SingleReal,
			to:   variant.DoubleComplex,
			want: "func Half(x complex128) complex128 { return x * complex128(0.5) }",
		},
		{
			name: "Composite",
			src:  "var zeros = map[string][]complex64{\"a\": {0}}",
			from: variant.SingleComplex,
			to:   variant.DoubleComplex,
			want: "var zeros = map[string][]complex128{\"a\": {0}}",
		},
		{
			name: "FieldSelectorUntouched",
			src:  "func Get(s S) float32 { return s.float32 }",
			from: variant.SingleReal,
			to:   variant.DoubleReal,
			want: "func Get(s S) float64 { return s.float32 }",
		},
		{
			name: "StringUntouched",
			src:  `const name = "float32"`,
			from: variant.SingleReal,
			to:   variant.DoubleReal,
			want: `const name = "float32"`,
		},
		{
			name: "Absent",
			src:  "func Len(s []int) int { return len(s) }",
			from: variant.SingleReal,
			to:   variant.DoubleComplex,
			want: "func Len(s []int) int { return len(s) }",
		},
		{
			name: "OtherTokenUntouched",
			src:  "func Mix(a float32, b float64) float32 { return a + float32(b) }",
			from: variant.SingleReal,
			to:   variant.SingleComplex,
			want: "func Mix(a complex64, b float64) complex64 { return a + complex64(b) }",
		},
		{
			name: "Rename",
			src:  "func (v Vec32) Scale(s float32) Vec32 { return Vec32{v.X * s, v.Y * s} }",
			from: variant.SingleReal,
			to:   variant.DoubleReal,
			opts: []Option{WithRename("Vec32", "Vec64")},
			want: "func (v Vec64) Scale(s float64) Vec64 { return Vec64{v.X * s, v.Y * s} }",
		},
		{
			name: "RenameRecursive",
			src:  "func Pow32(x float32, n int) float32 { if n == 0 { return 1 }; return x * Pow32(x, n-1) }",
			from: variant.SingleReal,
			to:   variant.DoubleReal,
			opts: []Option{WithRename("Pow32", "Pow64"), WithRename("Same", "Same")},
			want: "func Pow64(x float64, n int) float64 { if n == 0 { return 1 }; return x * Pow64(x, n-1) }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := testsource.Declaration(t, tt.src)

			got, err := Rewrite(d, variant.Default, tt.from, tt.to, tt.opts...)
			if err != nil {
				t.Fatalf("Rewrite failed: %v", err)
			}

			if got.Text() != tt.want {
				t.Errorf("Got %q, want %q", got.Text(), tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	const src = `func Dot(x, y []float32) float32 {
	var sum float32 // accumulator
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum
}`

	d := testsource.Declaration(t, src)

	for _, to := range variant.All() {
		if to == variant.SingleReal {
			continue
		}

		t.Run(to.String(), func(t *testing.T) {
			t.Parallel()

			there, err := Rewrite(d, variant.Default, variant.SingleReal, to)
			if err != nil {
				t.Fatalf("Rewrite failed: %v", err)
			}

			if there.Text() == src {
				t.Errorf("Rewrite to %v did not change the text", to)
			}

			back, err := Rewrite(there, variant.Default, to, variant.SingleReal)
			if err != nil {
				t.Fatalf("Rewrite back failed: %v", err)
			}

			if back.Text() != src {
				t.Errorf("Round trip got %q, want %q", back.Text(), src)
			}
		})
	}
}

func TestShapeCrossing(t *testing.T) {
	t.Parallel()

	table := variant.MustTable(variant.Spellings{"float32", "f64.Scalar", "complex64", "complex128"})

	const (
		src      = "func Abs(x float32) float32 { if x < 0 { return -x }; return x }"
		expected = "func Abs(x f64.Scalar) f64.Scalar { if x < 0 { return -x }; return x }"
	)

	d := testsource.Declaration(t, src)

	got, err := Rewrite(d, table, variant.SingleReal, variant.DoubleReal)
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	if got.Text() != expected {
		t.Fatalf("Got %q, want %q", got.Text(), expected)
	}

	if _, ok := resultType(t, got).(*ast.SelectorExpr); !ok {
		t.Errorf("Got result type %T, want *ast.SelectorExpr", resultType(t, got))
	}

	back, err := Rewrite(got, table, variant.DoubleReal, variant.SingleComplex)
	if err != nil {
		t.Fatalf("Rewrite back failed: %v", err)
	}

	if want := "func Abs(x complex64) complex64 { if x < 0 { return -x }; return x }"; back.Text() != want {
		t.Errorf("Got %q, want %q", back.Text(), want)
	}

	if _, ok := resultType(t, back).(*ast.Ident); !ok {
		t.Errorf("Got result type %T, want *ast.Ident", resultType(t, back))
	}
}

func resultType(tb testing.TB, d interface{ Node() ast.Decl }) ast.Expr {
	tb.Helper()

	fun, ok := d.Node().(*ast.FuncDecl)
	if !ok || fun.Type.Results == nil || len(fun.Type.Results.List) == 0 {
		tb.Fatalf("No result type in %T", d.Node())
	}

	return fun.Type.Results.List[0].Type
}

func TestShadowed(t *testing.T) {
	t.Parallel()

	const src = `func Shadow(x float32) float32 {
	{
		float32 := 2
		_ = float32
	}

	return x
}`

	f := testsource.Parse(t, src)
	_, info := f.Check(t)
	d := f.Declarations(t, info)[0]

	got, err := Rewrite(d, variant.Default, variant.SingleReal, variant.DoubleReal)
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	const want = `func Shadow(x float64) float64 {
	{
		float32 := 2
		_ = float32
	}

	return x
}`

	if got.Text() != want {
		t.Errorf("Got %q, want %q", got.Text(), want)
	}
}

func TestShadowedType(t *testing.T) {
	t.Parallel()

	const src = `func Local(x float32) float32 {
	type float32 int

	var y float32 = 1
	_ = y

	return x
}`

	f := testsource.Parse(t, src)
	_, info := f.Check(t)
	d := f.Declarations(t, info)[0]

	got, err := Rewrite(d, variant.Default, variant.SingleReal, variant.DoubleReal)
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	const want = `func Local(x float64) float64 {
	type float32 int

	var y float32 = 1
	_ = y

	return x
}`

	if got.Text() != want {
		t.Errorf("Got %q, want %q", got.Text(), want)
	}
}

func TestRewriteErrors(t *testing.T) {
	t.Parallel()

	d := testsource.Declaration(t, "func F(x float32) {}")

	if _, err := Rewrite(d, variant.Default, variant.SingleReal, variant.SingleReal); !errors.Is(err, ErrSameVariant) {
		t.Errorf("Got error %v, want %v", err, ErrSameVariant)
	}

	if _, err := Rewrite(d, variant.Default, variant.SingleReal, variant.Variant(9)); !errors.Is(err, variant.ErrUnrecognizedToken) {
		t.Errorf("Got error %v, want %v", err, variant.ErrUnrecognizedToken)
	}
}
