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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fillmore-labs.com/dupcheck/internal/config"
	"fillmore-labs.com/dupcheck/internal/run"
)

// errInconsistent signals inconsistent duplicates. It has already been reported.
var errInconsistent = errors.New("inconsistent duplicates found")

// app holds the state shared by all sub-commands.
type app struct {
	stdout, stderr io.Writer

	dir           string
	configFile    string
	colorMode     string
	verbose       bool
	tests         bool
	generated     bool
	reportSkipped bool
	directive     string
	workers       int

	logger *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "dupcheck",
		Short: "Keep hand-duplicated numeric code consistent",
		Long: `dupcheck derives the float64, complex64 and complex128 copies of marked
declarations from their float32 (or complex64) original and reports copies
that drifted apart.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.setupLogger() },
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.dir, "dir", "C", ".", "directory to load packages from")
	flags.StringVar(&a.configFile, "config", "", "configuration file (default "+strings.Join(config.DefaultFiles, " or ")+" in --dir, if present)")
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|always|never)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug information")
	flags.BoolVar(&a.tests, "tests", false, "include test files")
	flags.BoolVar(&a.generated, "generated", false, "check generated files")
	flags.BoolVar(&a.reportSkipped, "report-skipped", false, "report duplicate groups that can not be checked")
	flags.StringVar(&a.directive, "directive", "", "name of the marker directive")
	flags.IntVar(&a.workers, "workers", 0, "number of symbols checked concurrently (default one per CPU)")

	root.AddCommand(newCheckCmd(a), newFixCmd(a))

	return root
}

func (a *app) setupLogger() error {
	if a.logger != nil {
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	if a.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("can't create logger: %w", err)
	}

	a.logger = logger

	return nil
}

// options merges the configuration file and the command line flags.
func (a *app) options(cmd *cobra.Command) (*run.Options, error) {
	path, optional := a.configFile, false
	if path == "" {
		var found bool
		if path, found = config.Find(a.dir); !found {
			path, optional = filepath.Join(a.dir, config.DefaultFile), true
		}
	}

	file, err := config.Load(path, optional)
	if err != nil {
		return nil, err
	}

	o := run.DefaultOptions()
	o.Logger = a.logger
	o.Behavior = file.Behavior()
	o.Spellings = file.Tokens.Spellings(o.Spellings)
	o.Workers = file.Workers

	if file.Directive != "" {
		o.Directive = file.Directive
	}

	flags := cmd.Flags()

	if flags.Changed("generated") {
		o.Behavior.Set(config.IncludeGenerated, a.generated)
	}

	if flags.Changed("report-skipped") {
		o.Behavior.Set(config.ReportSkipped, a.reportSkipped)
	}

	if flags.Changed("directive") {
		o.Directive = a.directive
	}

	if flags.Changed("workers") {
		o.Workers = a.workers
	}

	a.logger.Debug("Options",
		zap.String("config", path),
		zap.String("directive", o.Directive),
		zap.Strings("tokens", o.Spellings[:]),
		zap.Bool("generated", o.Behavior.Enabled(config.IncludeGenerated)),
		zap.Bool("report-skipped", o.Behavior.Enabled(config.ReportSkipped)),
		zap.Int("workers", o.Workers))

	return o, nil
}

func patterns(args []string) []string {
	if len(args) == 0 {
		return []string{"./..."}
	}

	return args
}
