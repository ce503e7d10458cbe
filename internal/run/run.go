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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"runtime/trace"

	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/dupcheck/internal/astutil"
	"fillmore-labs.com/dupcheck/internal/check"
	"fillmore-labs.com/dupcheck/internal/config"
	"fillmore-labs.com/dupcheck/internal/group"
	"fillmore-labs.com/dupcheck/internal/source"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the dupcheck analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("dupcheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	table, err := variant.NewTable(o.Spellings)
	if err != nil {
		return nil, fmt.Errorf("dupcheck: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "DupCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	var files []*ast.File
	for c := range in.Root().Children() {
		if file, ok := c.Node().(*ast.File); ok {
			files = append(files, file)
		}
	}

	unit := Unit{
		Fset:     p.Fset,
		Files:    files,
		Info:     p.TypesInfo,
		ReadFile: p.ReadFile,
	}

	result, err := o.Analyze(ctx, table, unit)
	if err != nil {
		return nil, err
	}

	o.report(ctx, p, table, result)

	return nil, nil
}

// Unit is a type-checked package to analyze.
type Unit struct {
	Fset  *token.FileSet
	Files []*ast.File
	Info  *types.Info // may be nil

	// ReadFile returns the content of a source file, defaults to [os.ReadFile].
	ReadFile func(filename string) ([]byte, error)
}

// Analyze checks all marked declarations of a package.
//
// Stage 1 collects marked declarations, stage 2 groups them by symbol and
// stage 3 compares each sibling against its derived text.
func (o *Options) Analyze(ctx context.Context, table variant.Table, u Unit) (check.Result, error) {
	decls, suppressed, err := o.collect(ctx, u)
	if err != nil {
		return check.Result{}, err
	}

	symbols := group.Index(o.Directive, decls)

	result, err := check.New(table, o.Logger, o.Workers).Check(ctx, symbols)
	if err != nil {
		return check.Result{}, err
	}

	if len(suppressed) > 0 {
		result = filterSuppressed(result, suppressed)
	}

	return result, nil
}

// collect returns the declarations carrying a marker and those suppressed with a nolint directive.
func (o *Options) collect(ctx context.Context, u Unit) ([]*source.Declaration, map[*source.Declaration]bool, error) {
	defer trace.StartRegion(ctx, "Collect").End()

	readFile := u.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	var (
		decls      []*source.Declaration
		suppressed map[*source.Declaration]bool
	)

	for _, file := range u.Files {
		currentFile := astutil.NewCurrentFile(u.Fset, file)
		if !currentFile.Valid() {
			o.Logger.Warn("File without valid info", zap.String("package", file.Name.Name))

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		var src []byte

		for _, decl := range file.Decls {
			doc := declDoc(decl)
			if !astutil.MayHaveMarkers(doc, o.Directive) {
				continue
			}

			if src == nil {
				var err error
				if src, err = readFile(currentFile.Filename()); err != nil {
					return nil, nil, fmt.Errorf("dupcheck: %w", err)
				}
			}

			d, err := source.New(u.Fset, src, decl, u.Info)
			if err != nil {
				return nil, nil, fmt.Errorf("dupcheck: %w", err)
			}

			decls = append(decls, d)

			if astutil.DocHasNoLint(doc) {
				if suppressed == nil {
					suppressed = make(map[*source.Declaration]bool)
				}

				suppressed[d] = true
			}
		}
	}

	return decls, suppressed, nil
}

func declDoc(decl ast.Decl) *ast.CommentGroup {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return d.Doc

	case *ast.GenDecl:
		if d.Tok == token.IMPORT {
			return nil
		}

		return d.Doc

	default:
		return nil
	}
}

// filterSuppressed drops findings located at suppressed declarations.
// Suppressed declarations still serve as main declarations for their siblings.
func filterSuppressed(r check.Result, suppressed map[*source.Declaration]bool) check.Result {
	var violations []check.Violation

	for _, v := range r.Violations {
		if !suppressed[v.Decl] {
			violations = append(violations, v)
		}
	}

	var skipped []group.Skipped

	for _, s := range r.Skipped {
		if len(s.Decls) == 0 || !suppressed[s.Decls[0]] {
			skipped = append(skipped, s)
		}
	}

	r.Violations, r.Skipped = violations, skipped

	return r
}
