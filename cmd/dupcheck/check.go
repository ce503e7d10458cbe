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
	"errors"

	"github.com/spf13/cobra"

	"fillmore-labs.com/dupcheck/internal/check"
	"fillmore-labs.com/dupcheck/internal/config"
	"fillmore-labs.com/dupcheck/internal/run"
	"fillmore-labs.com/dupcheck/internal/variant"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [flags] [packages]",
		Short: "Report inconsistent duplicates",
		Long:  "Check all marked duplicate groups of the given packages (default ./...) and report siblings that differ from their derived text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.analyze(cmd, args)
			if err != nil {
				return err
			}

			s.printer.violations(s.result.Violations)

			if s.options.Behavior.Enabled(config.ReportSkipped) {
				s.printer.skipped(s.result)
			}

			if len(s.result.Violations) > 0 {
				return errInconsistent
			}

			return s.groupErrors()
		},
	}
}

// session is the outcome of one analysis run.
type session struct {
	options *run.Options
	table   variant.Table
	result  check.Result
	printer *printer
}

func (s session) groupErrors() error {
	errs := make([]error, 0, len(s.result.Errors))
	for _, err := range s.result.Errors {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// analyze loads and checks the packages named by args.
func (a *app) analyze(cmd *cobra.Command, args []string) (session, error) {
	o, err := a.options(cmd)
	if err != nil {
		return session{}, err
	}

	table, err := variant.NewTable(o.Spellings)
	if err != nil {
		return session{}, err
	}

	l, err := analyzePackages(cmd.Context(), o, table, a.dir, a.tests, patterns(args))
	if err != nil {
		return session{}, err
	}

	p, err := newPrinter(cmd.OutOrStdout(), a.colorMode, l.Fset, table, a.dir)
	if err != nil {
		return session{}, err
	}

	return session{options: o, table: table, result: l.Result, printer: p}, nil
}
