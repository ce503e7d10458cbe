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

package run

import (
	"context"
	"fmt"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/dupcheck/internal/astutil"
	"fillmore-labs.com/dupcheck/internal/check"
	"fillmore-labs.com/dupcheck/internal/config"
	"fillmore-labs.com/dupcheck/internal/fix"
	"fillmore-labs.com/dupcheck/internal/group"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// report emits diagnostics with suggested fixes for inconsistent duplicates.
func (o *Options) report(ctx context.Context, p *analysis.Pass, table variant.Table, r check.Result) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, v := range r.Violations {
		p.Report(analysis.Diagnostic{
			Pos:      v.Decl.Pos(),
			End:      v.Decl.End(),
			Category: "inconsistent",
			Message:  v.Message(table),
			Related: []analysis.RelatedInformation{{
				Pos:     v.MainDecl.Pos(),
				End:     v.MainDecl.End(),
				Message: fmt.Sprintf("Derived from this %s declaration", table.Spelling(v.Main)),
			}},
			SuggestedFixes: []analysis.SuggestedFix{fix.SuggestedFix(v)},
		})
	}

	for _, err := range r.Errors {
		astutil.InternalError(p, err.Group.MainDecl(), "%v", err)
	}

	if !o.Behavior.Enabled(config.ReportSkipped) {
		return
	}

	for _, s := range r.Skipped {
		msg, ok := SkippedMessage(table, s)
		if !ok {
			continue
		}

		d := s.Decls[0]
		p.Report(analysis.Diagnostic{
			Pos:      d.Pos(),
			End:      d.End(),
			Category: "skipped",
			Message:  msg,
		})
	}
}

// SkippedMessage describes why a group was not checked.
// Singletons are trivially consistent and have no message.
func SkippedMessage(table variant.Table, s group.Skipped) (string, bool) {
	if len(s.Decls) == 0 {
		return "", false
	}

	switch s.Reason {
	case group.Ambiguous:
		return fmt.Sprintf("Duplicates of '%s' not checked: %s is claimed more than once (dc:%s)",
			s.Symbol, table.Spelling(s.Variant), s.Family), true

	case group.NoMain:
		var mains []string
		for _, v := range [...]variant.Variant{variant.SingleReal, variant.SingleComplex} {
			if s.Family.Contains(v) {
				mains = append(mains, table.Spelling(v))
			}
		}

		return fmt.Sprintf("Duplicates of '%s' not checked: no %s declaration to derive from (dc:%s)",
			s.Symbol, strings.Join(mains, " or "), s.Family), true

	default:
		return "", false
	}
}
