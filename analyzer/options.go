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


package analyzer

import (
	"log/slog"

	"go.uber.org/zap"

	"fillmore-labs.com/dupcheck/internal/config"
	"fillmore-labs.com/dupcheck/internal/run"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// Option configures specific behavior of a [New] dupcheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithReportSkipped is an [Option] to report ambiguous groups and groups without main declaration.
func WithReportSkipped(report bool) Option { return reportSkippedOption{report: report} }

type reportSkippedOption struct{ report bool }

func (o reportSkippedOption) apply(r *run.Options) {
	r.Behavior.Set(config.ReportSkipped, o.report)
}

func (o reportSkippedOption) LogAttr() slog.Attr {
	return slog.Bool("report-skipped", o.report)
}

// WithDirective is an [Option] to configure the marker directive name.
func WithDirective(directive string) Option { return directiveOption{directive: directive} }

type directiveOption struct{ directive string }

func (o directiveOption) apply(r *run.Options) {
	r.Directive = o.directive
}

func (o directiveOption) LogAttr() slog.Attr {
	return slog.String("directive", o.directive)
}

// WithToken is an [Option] to configure the type token spelling of a single variant.
func WithToken(v variant.Variant, spelling string) Option {
	return tokenOption{variant: v, spelling: spelling}
}

type tokenOption struct {
	variant  variant.Variant
	spelling string
}

func (o tokenOption) apply(r *run.Options) {
	if o.variant.Valid() {
		r.Spellings[o.variant] = o.spelling
	}
}

func (o tokenOption) LogAttr() slog.Attr {
	return slog.String(o.variant.String(), o.spelling)
}

// WithSpellings is an [Option] to configure the type token spellings of all variants.
func WithSpellings(spellings variant.Spellings) Option { return spellingsOption{spellings: spellings} }

type spellingsOption struct{ spellings variant.Spellings }

func (o spellingsOption) apply(r *run.Options) {
	r.Spellings = o.spellings
}

func (o spellingsOption) LogAttr() slog.Attr {
	return slog.Any("spellings", o.spellings[:])
}

// WithWorkers is an [Option] to limit the number of symbols checked concurrently.
func WithWorkers(workers int) Option { return workersOption{workers: workers} }

type workersOption struct{ workers int }

func (o workersOption) apply(r *run.Options) {
	r.Workers = o.workers
}

func (o workersOption) LogAttr() slog.Attr {
	return slog.Int("workers", o.workers)
}

// WithLogger is an [Option] to receive debug information about skipped and failed groups.
func WithLogger(logger *zap.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *zap.Logger }

func (o loggerOption) apply(r *run.Options) {
	if o.logger != nil {
		r.Logger = o.logger
	}
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
