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

package variant

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// ErrUnrecognizedToken signals a lookup of a spelling or variant outside the table.
// Well-formed groups never trigger it, so callers treat it as an invariant failure.
var ErrUnrecognizedToken = errors.New("unrecognized token")

// Shape is the syntactic form of a type token.
type Shape uint8

const (
	// ShapeIdent is a bare identifier like float32.
	ShapeIdent Shape = iota // ident

	// ShapeSelector is a package-qualified identifier like f32.Scalar.
	ShapeSelector // selector
)

// Token is the spelling of one domain variant's type.
type Token struct {
	spelling  string
	shape     Shape
	qualifier string
	name      string
}

// Spelling returns the literal source spelling.
func (t Token) Spelling() string { return t.spelling }

// Shape returns the syntactic form of the token.
func (t Token) Shape() Shape { return t.shape }

// Qualifier returns the package name of a [ShapeSelector] token, or "".
func (t Token) Qualifier() string { return t.qualifier }

// Name returns the (unqualified) type name.
func (t Token) Name() string { return t.name }

func parseToken(spelling string) (Token, error) {
	qualifier, name, qualified := strings.Cut(spelling, ".")
	if !qualified {
		if !token.IsIdentifier(spelling) {
			return Token{}, fmt.Errorf("invalid type token %q", spelling)
		}

		return Token{spelling: spelling, shape: ShapeIdent, name: spelling}, nil
	}

	if !token.IsIdentifier(qualifier) || !token.IsIdentifier(name) {
		return Token{}, fmt.Errorf("invalid qualified type token %q", spelling)
	}

	return Token{spelling: spelling, shape: ShapeSelector, qualifier: qualifier, name: name}, nil
}

// Table maps domain variants to their type tokens and back.
type Table struct {
	tokens [NumVariants]Token
}

// Spellings holds one type token spelling per domain variant, indexed by [Variant].
type Spellings [NumVariants]string

// DefaultSpellings are Go's predeclared floating-point and complex types.
var DefaultSpellings = Spellings{"float32", "float64", "complex64", "complex128"}

// Default is the [Table] for Go's predeclared types.
var Default = MustTable(DefaultSpellings)

// NewTable creates a [Table] from four distinct spellings.
func NewTable(spellings Spellings) (Table, error) {
	var t Table

	seen := make(map[string]Variant, NumVariants)

	for _, v := range All() {
		s := spellings[v]
		if prev, ok := seen[s]; ok {
			return Table{}, fmt.Errorf("type token %q used for both %v and %v", s, prev, v)
		}

		seen[s] = v

		tok, err := parseToken(s)
		if err != nil {
			return Table{}, fmt.Errorf("%v: %w", v, err)
		}

		t.tokens[v] = tok
	}

	return t, nil
}

// MustTable is like [NewTable] but panics on invalid spellings.
func MustTable(spellings Spellings) Table {
	t, err := NewTable(spellings)
	if err != nil {
		panic(err)
	}

	return t
}

// Token returns the type token of v.
func (t Table) Token(v Variant) (Token, error) {
	if !v.Valid() {
		return Token{}, fmt.Errorf("%w: variant %d", ErrUnrecognizedToken, v)
	}

	tok := t.tokens[v]
	if tok.spelling == "" {
		return Token{}, fmt.Errorf("%w: empty table entry for %v", ErrUnrecognizedToken, v)
	}

	return tok, nil
}

// Lookup returns the variant spelled by spelling.
func (t Table) Lookup(spelling string) (Variant, error) {
	for _, v := range All() {
		if t.tokens[v].spelling == spelling && spelling != "" {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnrecognizedToken, spelling)
}

// Families returns the families whose member set contains the variant spelled by spelling.
func (t Table) Families(spelling string) []Family {
	v, err := t.Lookup(spelling)
	if err != nil {
		return nil
	}

	var families []Family

	for _, f := range Families() {
		if f.Contains(v) {
			families = append(families, f)
		}
	}

	return families
}

// Spellings returns the token spellings of the table.
func (t Table) Spellings() Spellings {
	var s Spellings
	for v, tok := range t.tokens {
		s[v] = tok.spelling
	}

	return s
}

// Spelling returns the token spelling of v, or the variant name when v is not in the table.
func (t Table) Spelling(v Variant) string {
	tok, err := t.Token(v)
	if err != nil {
		return v.String()
	}

	return tok.Spelling()
}
