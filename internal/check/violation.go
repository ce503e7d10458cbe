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

package check

import (
	"fmt"

	"fillmore-labs.com/dupcheck/internal/group"
	"fillmore-labs.com/dupcheck/internal/source"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// Violation is a sibling declaration whose text differs from the text derived from the main declaration.
type Violation struct {
	Symbol   string
	Family   variant.Family
	Variant  variant.Variant
	Main     variant.Variant
	Decl     *source.Declaration
	MainDecl *source.Declaration
	Expected string
}

// Message returns a human-readable description, using the table's spellings.
func (v Violation) Message(table variant.Table) string {
	return fmt.Sprintf("Duplicate %s of '%s' for %s is inconsistent with its %s variant (dc:%s)",
		v.Decl.Kind(), v.Symbol, table.Spelling(v.Variant), table.Spelling(v.Main), v.Family)
}

// GroupError is a failure while checking one group. It does not affect other groups.
type GroupError struct {
	Group group.Group
	Err   error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("checking %s group of '%s': %v", e.Group.Family, e.Group.Symbol, e.Err)
}

func (e *GroupError) Unwrap() error { return e.Err }
