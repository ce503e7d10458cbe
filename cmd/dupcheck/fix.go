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
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fillmore-labs.com/dupcheck/internal/check"
	"fillmore-labs.com/dupcheck/internal/config"
	"fillmore-labs.com/dupcheck/internal/fix"
)

func newFixCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix [flags] [packages]",
		Short: "Rewrite inconsistent duplicates",
		Long:  "Replace every sibling that differs from its derived text in the given packages (default ./...) by the derived text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.analyze(cmd, args)
			if err != nil {
				return err
			}

			if s.options.Behavior.Enabled(config.ReportSkipped) {
				s.printer.skipped(s.result)
			}

			fixErr := applyFixes(s.result.Violations, dryRun, s.printer, s.options.Logger)

			return errors.Join(fixErr, s.groupErrors())
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report files that would be changed without writing them")

	return cmd
}

// applyFixes rewrites all files containing violations. A file that can not be fixed
// does not prevent fixing the others.
func applyFixes(violations []check.Violation, dryRun bool, p *printer, logger *zap.Logger) error {
	byFile := fix.Edits(violations)

	var errs []error

	for _, filename := range slices.Sorted(maps.Keys(byFile)) {
		edits := uniqueEdits(byFile[filename])

		if err := fixFile(filename, edits, dryRun); err != nil {
			logger.Warn("Can't fix file", zap.String("file", filename), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", filename, err))

			continue
		}

		p.fixed(filename, len(edits), dryRun)
	}

	return errors.Join(errs...)
}

// uniqueEdits drops identical edits of a declaration that is a sibling in more than one family.
func uniqueEdits(edits []fix.Edit) []fix.Edit {
	slices.SortFunc(edits, func(a, b fix.Edit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End), cmp.Compare(a.Text, b.Text))
	})

	return slices.Compact(edits)
}

func fixFile(filename string, edits []fix.Edit, dryRun bool) error {
	info, err := os.Stat(filename)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	out, err := fix.Apply(src, edits)
	if err != nil {
		return err
	}

	if dryRun {
		return nil
	}

	return os.WriteFile(filename, out, info.Mode().Perm())
}
