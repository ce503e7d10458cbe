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

// Package variant defines the four numeric domain variants a duplicated
// declaration can be written for, the families they are grouped into
// and the table of type tokens spelling each variant.
package variant

//go:generate go tool stringer -type Variant,Family,Shape -linecomment

// Variant is one of the four fixed numeric domain kinds.
type Variant uint8

const (
	// SingleReal is the single-precision real variant (float32).
	SingleReal Variant = iota // single-real

	// DoubleReal is the double-precision real variant (float64).
	DoubleReal // double-real

	// SingleComplex is the single-precision complex variant (complex64).
	SingleComplex // single-complex

	// DoubleComplex is the double-precision complex variant (complex128).
	DoubleComplex // double-complex
)

// NumVariants is the number of domain variants.
const NumVariants = 4

// All returns the domain variants in declaration order.
func All() [NumVariants]Variant {
	return [...]Variant{SingleReal, DoubleReal, SingleComplex, DoubleComplex}
}

// Valid reports whether v is one of the four domain variants.
func (v Variant) Valid() bool { return v < NumVariants }

// Complex reports whether v is a complex variant.
func (v Variant) Complex() bool { return v == SingleComplex || v == DoubleComplex }
