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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the dupcheck components by handling common
// boilerplate code for parsing and type-checking Go source fragments.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"fillmore-labs.com/dupcheck/internal/source"
)

const (
	testpkg  = "test"
	filename = "test.go"
	header   = "package " + testpkg + "\n\n"
)

// File is a parsed test source file.
type File struct {
	Fset *token.FileSet
	File *ast.File
	Src  []byte
}

// Parse parses a Go source code fragment of top-level declarations.
// The provided source `src` is automatically prefixed with a package clause `package test`.
//
// Call [File.Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) File {
	tb.Helper()

	return ParseFile(tb, header+src)
}

// ParseFile parses a complete Go source file, including its package clause.
func ParseFile(tb testing.TB, src string) File {
	tb.Helper()

	fset := token.NewFileSet()
	srcFile := []byte(src)

	f, err := parser.ParseFile(fset, filename, srcFile, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return File{Fset: fset, File: f, Src: srcFile}
}

// Check performs type checking on the parsed file.
// Use this helper when testing components that resolve identifiers, for example to tell
// predeclared types from shadowing variables.
func (f File) Check(tb testing.TB) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, f.Fset, []*ast.File{f.File}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Declarations returns views of all top-level declarations except imports.
// info may be nil.
func (f File) Declarations(tb testing.TB, info *types.Info) []*source.Declaration {
	tb.Helper()

	decls := make([]*source.Declaration, 0, len(f.File.Decls))

	for _, decl := range f.File.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
			continue
		}

		d, err := source.New(f.Fset, f.Src, decl, info)
		if err != nil {
			tb.Fatalf("Can't create declaration: %v", err)
		}

		decls = append(decls, d)
	}

	return decls
}

// Declaration parses src and returns its first declaration without type information.
func Declaration(tb testing.TB, src string) *source.Declaration {
	tb.Helper()

	decls := Parse(tb, src).Declarations(tb, nil)
	if len(decls) == 0 {
		tb.Fatalf("No declaration in %q", src)
	}

	return decls[0]
}
