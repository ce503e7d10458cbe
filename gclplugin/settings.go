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


package gclplugin

import (
	dupcheck "fillmore-labs.com/dupcheck/analyzer"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// ReportSkipped reports duplicate groups that can not be checked.
	ReportSkipped *bool `json:"report-skipped,omitzero"`
	// Directive sets the name of the marker directive.
	Directive *string `json:"directive,omitzero"`
	// SingleReal sets the type token of the single-precision real variant.
	SingleReal *string `json:"single-real,omitzero"`
	// DoubleReal sets the type token of the double-precision real variant.
	DoubleReal *string `json:"double-real,omitzero"`
	// SingleComplex sets the type token of the single-precision complex variant.
	SingleComplex *string `json:"single-complex,omitzero"`
	// DoubleComplex sets the type token of the double-precision complex variant.
	DoubleComplex *string `json:"double-complex,omitzero"`
	// Workers limits the number of symbols checked concurrently.
	Workers *int `json:"workers,omitzero"`
}

// Options converts [Settings] into a list of [dupcheck.Option] for the dupcheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []dupcheck.Option {
	var opts []dupcheck.Option

	opts = appendOption(opts, s.ReportSkipped, dupcheck.WithReportSkipped)
	opts = appendOption(opts, s.Directive, dupcheck.WithDirective)
	opts = appendOption(opts, s.SingleReal, token(variant.SingleReal))
	opts = appendOption(opts, s.DoubleReal, token(variant.DoubleReal))
	opts = appendOption(opts, s.SingleComplex, token(variant.SingleComplex))
	opts = appendOption(opts, s.DoubleComplex, token(variant.DoubleComplex))
	opts = appendOption(opts, s.Workers, dupcheck.WithWorkers)

	return opts
}

func token(v variant.Variant) func(string) dupcheck.Option {
	return func(spelling string) dupcheck.Option { return dupcheck.WithToken(v, spelling) }
}

// appendOption appends a non-nil setting to a [dupcheck.Option] list.
func appendOption[T any](opts []dupcheck.Option, value *T, constructor func(T) dupcheck.Option) []dupcheck.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
