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
	"flag"

	"fillmore-labs.com/dupcheck/internal/config"
	"fillmore-labs.com/dupcheck/internal/run"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// flagNames are the command line flags of the type tokens.
var flagNames = [variant.NumVariants]string{
	variant.SingleReal:    "single-real",
	variant.DoubleReal:    "double-real",
	variant.SingleComplex: "single-complex",
	variant.DoubleComplex: "double-complex",
}

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, o *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&o.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&o.Behavior, config.ReportSkipped), "report-skipped", "report duplicate groups that can not be checked")
	flags.StringVar(&o.Directive, "directive", o.Directive, "name of the marker directive")

	for v, name := range flagNames {
		flags.StringVar(&o.Spellings[v], name, o.Spellings[v], "type token of the "+name+" variant")
	}
}
