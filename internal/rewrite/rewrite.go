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

// Package rewrite derives a declaration written for one numeric domain variant
// into the declaration for another by substituting type tokens.
//
// Substitution works on the syntax tree but splices the original source text,
// so white space and comments are carried over unchanged. The result is parsed
// again, so a token crossing between identifier and selector shape yields a
// node of the target's kind.
package rewrite

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"slices"
	"strings"

	"fillmore-labs.com/dupcheck/internal/source"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// ErrSameVariant is returned when source and target variant are equal.
var ErrSameVariant = errors.New("source and target variant are the same")

// Option configures a [Rewrite].
type Option func(r *rewriter)

// WithRename additionally replaces every identifier spelled from by to.
func WithRename(from, to string) Option {
	return func(r *rewriter) {
		if from == to || from == "" || to == "" {
			return
		}

		r.renames[from] = to
	}
}

// Rewrite returns d written for variant to instead of variant from.
//
// Every type token of from is replaced by the token of to; no other node is touched.
// When d contains no such token and no renamed identifier, the result's text equals d's text.
func Rewrite(d *source.Declaration, table variant.Table, from, to variant.Variant, opts ...Option) (*source.Declaration, error) {
	if from == to {
		return nil, fmt.Errorf("%w: %v", ErrSameVariant, from)
	}

	src, err := table.Token(from)
	if err != nil {
		return nil, err
	}

	dst, err := table.Token(to)
	if err != nil {
		return nil, err
	}

	r := &rewriter{
		decl:    d,
		info:    d.Info(),
		src:     src,
		dst:     dst,
		renames: make(map[string]string),
	}

	for _, opt := range opts {
		opt(r)
	}

	ast.Inspect(d.Node(), r.visit)

	text := r.apply()

	rewritten, err := source.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("rewriting %v to %v: %w", from, to, err)
	}

	return rewritten, nil
}

// edit replaces text[start:end].
type edit struct {
	start, end int
	text       string
}

type rewriter struct {
	decl     *source.Declaration
	info     *types.Info
	src, dst variant.Token
	renames  map[string]string
	edits    []edit
}

func (r *rewriter) visit(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.SelectorExpr:
		if r.src.Shape() == variant.ShapeSelector && r.matchSelector(n) {
			r.replace(n, r.dst.Spelling())

			return false
		}

		// The selected name is a field, method or qualified identifier, never a token or an identity name.
		ast.Inspect(n.X, r.visit)

		return false

	case *ast.Ident:
		if r.src.Shape() == variant.ShapeIdent && r.matchIdent(n) {
			r.replace(n, r.dst.Spelling())

			return false
		}

		if to, ok := r.renames[n.Name]; ok {
			r.replace(n, to)
		}

		return false

	case *ast.Comment, *ast.CommentGroup, *ast.BasicLit:
		return false
	}

	return true
}

// matchIdent reports whether id is the source token.
// With type information, id must refer to a type name: a local variable
// shadowing a predeclared type is left alone. A token spelling a predeclared
// type must refer to the predeclared type, not to a type declared with the same name.
func (r *rewriter) matchIdent(id *ast.Ident) bool {
	if id.Name != r.src.Name() {
		return false
	}

	if r.info == nil {
		return true
	}

	obj, ok := r.info.Uses[id]
	if !ok {
		// declared here, not a use of the type
		return false
	}

	tn, isType := obj.(*types.TypeName)
	if !isType {
		return false
	}

	if _, predeclared := types.Universe.Lookup(id.Name).(*types.TypeName); predeclared {
		return tn.Parent() == types.Universe
	}

	return true
}

// matchSelector reports whether sel is the qualified source token.
func (r *rewriter) matchSelector(sel *ast.SelectorExpr) bool {
	x, ok := sel.X.(*ast.Ident)
	if !ok || x.Name != r.src.Qualifier() || sel.Sel.Name != r.src.Name() {
		return false
	}

	if r.info == nil {
		return true
	}

	_, isPkg := r.info.Uses[x].(*types.PkgName)

	return isPkg
}

func (r *rewriter) replace(n ast.Node, text string) {
	r.edits = append(r.edits, edit{
		start: r.decl.Offset(n.Pos()),
		end:   r.decl.Offset(n.End()),
		text:  text,
	})
}

// apply splices all edits into the declaration text.
func (r *rewriter) apply() string {
	text := r.decl.Text()
	if len(r.edits) == 0 {
		return text
	}

	slices.SortFunc(r.edits, func(a, b edit) int { return a.start - b.start })

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, e := range r.edits {
		b.WriteString(text[last:e.start]) // ignore error
		b.WriteString(e.text)             // ignore error
		last = e.end
	}

	b.WriteString(text[last:]) // ignore error

	return b.String()
}
