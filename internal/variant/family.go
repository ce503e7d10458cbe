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

package variant

import "fmt"

// Family is a named grouping of domain variants a marker can bind to.
type Family uint8

const (
	// FamilyAll contains all four domain variants.
	FamilyAll Family = iota // all

	// FamilyReal contains the real variants only.
	FamilyReal // real

	// FamilyComplex contains the complex variants only.
	FamilyComplex // complex
)

// Families returns all known families in a stable order.
func Families() []Family {
	return []Family{FamilyAll, FamilyReal, FamilyComplex}
}

// ParseFamily returns the family spelled by name.
func ParseFamily(name string) (Family, error) {
	for _, f := range Families() {
		if f.String() == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown family %q", name)
}

// Members returns the variants belonging to f.
func (f Family) Members() []Variant {
	switch f {
	case FamilyAll:
		return []Variant{SingleReal, DoubleReal, SingleComplex, DoubleComplex}

	case FamilyReal:
		return []Variant{SingleReal, DoubleReal}

	case FamilyComplex:
		return []Variant{SingleComplex, DoubleComplex}

	default:
		return nil
	}
}

// Contains reports whether v is a member of f.
func (f Family) Contains(v Variant) bool {
	switch f {
	case FamilyAll:
		return v.Valid()

	case FamilyReal:
		return v == SingleReal || v == DoubleReal

	case FamilyComplex:
		return v == SingleComplex || v == DoubleComplex

	default:
		return false
	}
}

// Main selects the variant the other members of a group are derived from:
// [SingleReal] when present, otherwise [SingleComplex].
// It returns false when neither is present.
func Main(present func(Variant) bool) (Variant, bool) {
	for _, v := range [...]Variant{SingleReal, SingleComplex} {
		if present(v) {
			return v, true
		}
	}

	return 0, false
}
