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


package main

import (
	"cmp"
	"context"
	"fmt"
	"go/token"
	"runtime/trace"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/dupcheck/internal/check"
	"fillmore-labs.com/dupcheck/internal/group"
	"fillmore-labs.com/dupcheck/internal/run"
	"fillmore-labs.com/dupcheck/internal/source"
	"fillmore-labs.com/dupcheck/internal/variant"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

// loaded is the combined result of all analyzed packages.
type loaded struct {
	Fset   *token.FileSet
	Result check.Result
}

// analyzePackages loads the packages matching patterns and checks them one after another.
// Results of files shared between a package and its test variant are reported once.
func analyzePackages(ctx context.Context, o *run.Options, table variant.Table, dir string, tests bool, patterns []string) (loaded, error) {
	ctx, task := trace.NewTask(ctx, "DupCheckPackages")
	defer task.End()

	cfg := &packages.Config{
		Mode:    loadMode,
		Fset:    token.NewFileSet(),
		Context: ctx,
		Dir:     dir,
		Tests:   tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return loaded{}, fmt.Errorf("loading packages: %w", err)
	}

	var all check.Result

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			o.Logger.Warn("Package error", zap.String("package", pkg.PkgPath), zap.Error(e))
		}

		if len(pkg.Syntax) == 0 || pkg.Fset == nil {
			continue
		}

		unit := run.Unit{
			Fset:  pkg.Fset,
			Files: pkg.Syntax,
			Info:  pkg.TypesInfo,
		}

		r, err := o.Analyze(ctx, table, unit)
		if err != nil {
			return loaded{}, fmt.Errorf("%s: %w", pkg.PkgPath, err)
		}

		all.Violations = append(all.Violations, r.Violations...)
		all.Skipped = append(all.Skipped, r.Skipped...)
		all.Errors = append(all.Errors, r.Errors...)
	}

	return loaded{Fset: cfg.Fset, Result: dedup(all)}, nil
}

// dedup removes results reported for the same declaration more than once and sorts them by position.
func dedup(r check.Result) check.Result {
	type key struct {
		span   source.Span
		family variant.Family
	}

	r.Violations = compactBy(r.Violations, func(v check.Violation) source.Span { return v.Decl.Span() },
		func(v check.Violation) key { return key{v.Decl.Span(), v.Family} })
	r.Skipped = compactBy(r.Skipped, func(s group.Skipped) source.Span { return s.Decls[0].Span() },
		func(s group.Skipped) key { return key{s.Decls[0].Span(), s.Family} })
	r.Errors = compactBy(r.Errors, func(e *check.GroupError) source.Span { return e.Group.MainDecl().Span() },
		func(e *check.GroupError) key { return key{e.Group.MainDecl().Span(), e.Group.Family} })

	return r
}

func compactBy[T any, K comparable](items []T, span func(T) source.Span, key func(T) K) []T {
	slices.SortStableFunc(items, func(a, b T) int {
		sa, sb := span(a), span(b)

		return cmp.Or(cmp.Compare(sa.Filename, sb.Filename), cmp.Compare(sa.Start, sb.Start))
	})

	seen := make(map[K]struct{}, len(items))

	return slices.DeleteFunc(items, func(item T) bool {
		k := key(item)
		if _, ok := seen[k]; ok {
			return true
		}

		seen[k] = struct{}{}

		return false
	})
}
