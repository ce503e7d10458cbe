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

// Package analyzer implements the dupcheck static analysis pass.
//
// # Overview
//
// Numeric code is often written four times, once for each of float32, float64,
// complex64 and complex128. dupcheck keeps these hand-written copies in sync:
// every copy is derived mechanically from the single-precision one by
// substituting type tokens, and copies that differ from the derived text are
// reported with a suggested fix.
//
// # Markers
//
// Duplicates are marked with a directive in their doc comment:
//
//	//dupcheck:<family> <token> [symbol]
//
// The family is one of
//
//   - all: float32, float64, complex64 and complex128
//   - real: float32 and float64
//   - complex: complex64 and complex128
//
// The token names the variant the declaration is written for. Declarations of
// one family sharing a symbol form a group. The symbol defaults to the declared
// name. Methods default to Receiver.Method, where Receiver is the explicit
// symbol of the marked receiver type or else the receiver type name without
// trailing digits: Vec32.Norm and Vec64.Norm share the symbol Vec.Norm.
//
// A declaration claiming two variants of one family makes its group ambiguous;
// ambiguous groups are not checked.
//
// # Example
//
//	//dupcheck:real float32 Add
//	func Add32(a, b float32) float32 { return a + b }
//
//	//dupcheck:real float64 Add
//	func Add64(a, b float64) float64 { return a - b } // reported, fix replaces "-" by "+"
//
// The declared name and the receiver base type are mapped between siblings,
// so Add32 becomes Add64 in the derived text.
//
// # Main declaration
//
// The float32 declaration is derived from, or the complex64 declaration when
// there is no float32 one. Groups without either, groups claiming a variant
// more than once and single declarations are not checked.
package analyzer
