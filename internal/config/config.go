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

// Package config holds the dupcheck configuration shared by the analyzer, the
// golangci-lint plugin and the command line tool.
package config

// Flag represents a behavioral option.
type Flag uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Flag = 1 << iota

	// ReportSkipped reports duplicate groups that can not be analyzed
	// (ambiguous variants or missing single-precision declaration).
	ReportSkipped
)

// Behavior holds the enabled [Flag]s.
type Behavior = BitMask[Flag]

// DefaultBehavior returns the default flags: everything disabled.
func DefaultBehavior() Behavior {
	return NewBitMask[Flag]()
}
