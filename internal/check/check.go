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

// Package check compares sibling declarations of duplicate groups against
// the text mechanically derived from the group's main declaration.
package check

import (
	"context"
	"runtime"
	"runtime/trace"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/dupcheck/internal/group"
	"fillmore-labs.com/dupcheck/internal/rewrite"
	"fillmore-labs.com/dupcheck/internal/source"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// Checker runs consistency checks.
type Checker struct {
	table   variant.Table
	logger  *zap.Logger
	workers int
}

// New creates a [Checker]. A nil logger disables logging, workers <= 0 uses one worker per CPU.
func New(table variant.Table, logger *zap.Logger, workers int) Checker {
	if logger == nil {
		logger = zap.NewNop()
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return Checker{table: table, logger: logger, workers: workers}
}

// Result is the outcome of checking a list of symbols.
type Result struct {
	Violations []Violation
	Skipped    []group.Skipped
	Errors     []*GroupError
}

// Check analyzes all symbols. Symbols are independent and are checked concurrently;
// the context is consulted between symbols. A failing group is recorded in [Result.Errors]
// and does not stop the analysis of other groups.
// Results are ordered by symbol, then family, then variant.
func (c Checker) Check(ctx context.Context, symbols []group.Symbol) (Result, error) {
	defer trace.StartRegion(ctx, "Check").End()

	results := make([]Result, len(symbols))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers)

	for i := range symbols {
		if gctx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = c.Symbol(symbols[i])

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	// canceled before all symbols were scheduled
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var all Result
	for _, r := range results {
		all.Violations = append(all.Violations, r.Violations...)
		all.Skipped = append(all.Skipped, r.Skipped...)
		all.Errors = append(all.Errors, r.Errors...)
	}

	return all, nil
}

// Symbol checks all groups of one symbol.
func (c Checker) Symbol(s group.Symbol) Result {
	groups, skipped := s.Groups(c.table)

	for _, skip := range skipped {
		c.logger.Debug("Skipping duplicate group",
			zap.String("symbol", skip.Symbol),
			zap.Stringer("family", skip.Family),
			zap.Stringer("reason", skip.Reason),
			zap.Int("declarations", len(skip.Decls)))
	}

	r := Result{Skipped: skipped}

	for _, g := range groups {
		violations, err := c.Group(g)
		if err != nil {
			c.logger.Warn("Duplicate group check failed",
				zap.String("symbol", g.Symbol),
				zap.Stringer("family", g.Family),
				zap.Error(err))

			r.Errors = append(r.Errors, &GroupError{Group: g, Err: err})

			continue
		}

		r.Violations = append(r.Violations, violations...)
	}

	return r
}

// Group derives every non-main member of g from the main declaration and
// returns one [Violation] per member whose text differs.
func (c Checker) Group(g group.Group) ([]Violation, error) {
	main := g.MainDecl()

	var violations []Violation

	for _, v := range g.Siblings() {
		sibling := g.Member(v)

		expected, err := rewrite.Rewrite(main, c.table, g.Main, v, renames(main, sibling)...)
		if err != nil {
			return nil, err
		}

		if expected.Text() == sibling.Text() {
			continue
		}

		c.logger.Debug("Inconsistent duplicate",
			zap.String("symbol", g.Symbol),
			zap.Stringer("family", g.Family),
			zap.Stringer("variant", v),
			zap.String("file", sibling.Span().Filename))

		violations = append(violations, Violation{
			Symbol:   g.Symbol,
			Family:   g.Family,
			Variant:  v,
			Main:     g.Main,
			Decl:     sibling,
			MainDecl: main,
			Expected: expected.Text(),
		})
	}

	return violations, nil
}

// renames maps the main declaration's identity names to the sibling's.
func renames(main, sibling *source.Declaration) []rewrite.Option {
	var opts []rewrite.Option

	if from, to := main.Name(), sibling.Name(); from != "" && to != "" {
		opts = append(opts, rewrite.WithRename(from, to))
	}

	if from, to := main.Receiver(), sibling.Receiver(); from != "" && to != "" {
		opts = append(opts, rewrite.WithRename(from, to))
	}

	return opts
}
