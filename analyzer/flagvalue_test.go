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
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/dupcheck/analyzer"
	"fillmore-labs.com/dupcheck/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Flag
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.IncludeGenerated,
			args:    []string{"-report-skipped"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.ReportSkipped,
			args:    []string{"-report-skipped=false"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Behavior
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.ReportSkipped
			fv := NewBehaviorValue(&flags, value)
			fs.Var(fv, "report-skipped", "report skipped groups")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("ReportSkipped enabled = %v, want %v", flags.Enabled(value), tt.want)
			}

			if tt.initial != value && !flags.Enabled(tt.initial) {
				t.Errorf("Unrelated flag %v was reset", tt.initial)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Behavior
	flags.Set(config.IncludeGenerated, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewBehaviorValue(&flags, config.IncludeGenerated)
	fs.Var(fv, "generated", "check generated files")

	const expectedUsage = `
  -generated
    	check generated files (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range []string{"generated", "report-skipped", "directive", "single-real", "double-real", "single-complex", "double-complex"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Flag %q not registered", name)
		}
	}

	if got := a.Flags.Lookup("double-real").DefValue; got != "float64" {
		t.Errorf("double-real default = %q, want %q", got, "float64")
	}
}
