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


package analyzer_test

import (
	"log/slog"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/dupcheck/analyzer"
	"fillmore-labs.com/dupcheck/internal/variant"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
		fix     bool
	}{
		{
			name:    "Default",
			dir:     "./a",
			options: WithWorkers(2),
			fix:     true,
		},
		{
			name:    "CustomTokens",
			dir:     "./custom",
			options: WithSpellings(variant.Spellings{"S", "D", "C", "Z"}),
			fix:     true,
		},
		{
			name:    "ReportSkipped",
			dir:     "./skipped",
			options: WithReportSkipped(true),
		},
		{
			name: "Generated",
			dir:  "./generated",
		},
		{
			name:    "Directive",
			dir:     "./directive",
			options: WithDirective("vec"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options, WithLogger(zaptest.NewLogger(t))); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithGenerated(true),
		nil,
		Options{WithDirective("vec"), WithToken(variant.DoubleReal, "f64.Scalar")},
		WithWorkers(3),
	}

	got := opts.LogValue().Group()

	want := []slog.Attr{
		slog.Bool("generated", true),
		slog.String("nil", "<nil>"),
		slog.String("directive", "vec"),
		slog.String("double-real", "f64.Scalar"),
		slog.Int("workers", 3),
	}

	if len(got) != len(want) {
		t.Fatalf("Got %d attributes, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("Attribute %d = %v, want %v", i, got[i], want[i])
		}
	}
}
