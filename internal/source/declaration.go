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

// Package source provides immutable views of top-level declarations together
// with their exact source text and location.
package source

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
)

// ErrNoDeclaration is returned when a source fragment does not contain exactly one declaration.
var ErrNoDeclaration = errors.New("expected exactly one declaration")

// Span is a byte range in a named file.
type Span struct {
	Filename   string
	Start, End int
}

// Declaration is a read-only view of one top-level declaration.
//
// The text starts at the declaration's keyword (func, type, var or const) and
// ends with its last token. The doc comment is not part of the text.
type Declaration struct {
	node ast.Decl
	text string
	base token.Pos
	span Span
	info *types.Info
}

// New creates a [Declaration] for decl, a top-level declaration of a file whose
// content is src. info may be nil.
func New(fset *token.FileSet, src []byte, decl ast.Decl, info *types.Info) (*Declaration, error) {
	tf := fset.File(decl.Pos())
	if tf == nil {
		return nil, fmt.Errorf("no file for declaration at %d", decl.Pos())
	}

	start, end := tf.Offset(decl.Pos()), tf.Offset(decl.End())
	if start < 0 || end > len(src) || start > end {
		return nil, fmt.Errorf("declaration span [%d:%d] outside of %s (%d bytes)", start, end, tf.Name(), len(src))
	}

	return &Declaration{
		node: decl,
		text: string(src[start:end]),
		base: decl.Pos(),
		span: Span{Filename: tf.Name(), Start: start, End: end},
		info: info,
	}, nil
}

// fragmentHeader turns a declaration text into a parsable file.
const fragmentHeader = "package fragment\n\n"

// Parse parses a standalone declaration text. The resulting declaration carries no type information and its span
// refers to the text itself.
func Parse(text string) (*Declaration, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "", fragmentHeader+text, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	if len(f.Decls) != 1 {
		return nil, fmt.Errorf("%w, got %d", ErrNoDeclaration, len(f.Decls))
	}

	decl := f.Decls[0]

	tf := fset.File(decl.Pos())
	start, end := tf.Offset(decl.Pos()), tf.Offset(decl.End())

	// Only white space may follow the declaration.
	if start != len(fragmentHeader) || !trailingTrivia(text[end-len(fragmentHeader):]) {
		return nil, fmt.Errorf("%w: unexpected text around declaration", ErrNoDeclaration)
	}

	return &Declaration{
		node: decl,
		text: text[:end-len(fragmentHeader)],
		base: decl.Pos(),
		span: Span{Start: 0, End: end - start},
	}, nil
}

func trailingTrivia(s string) bool {
	for _, c := range s {
		switch c {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}

	return true
}

// Node returns the declaration's syntax tree.
func (d *Declaration) Node() ast.Decl { return d.node }

// Text returns the exact source text of the declaration.
func (d *Declaration) Text() string { return d.text }

// Span returns the declaration's location.
func (d *Declaration) Span() Span { return d.span }

// Pos returns the position of the first character of the declaration.
func (d *Declaration) Pos() token.Pos { return d.node.Pos() }

// End returns the position immediately after the declaration.
func (d *Declaration) End() token.Pos { return d.node.End() }

// Info returns the type information the declaration was created with, or nil.
func (d *Declaration) Info() *types.Info { return d.info }

// Offset returns the offset of pos relative to the start of [Declaration.Text].
func (d *Declaration) Offset(pos token.Pos) int { return int(pos - d.base) }

// Doc returns the declaration's doc comment, or nil.
func (d *Declaration) Doc() *ast.CommentGroup {
	switch n := d.node.(type) {
	case *ast.FuncDecl:
		return n.Doc

	case *ast.GenDecl:
		return n.Doc

	default:
		return nil
	}
}
