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
	"go.uber.org/zap"

	"fillmore-labs.com/dupcheck/internal/config"
	"fillmore-labs.com/dupcheck/internal/group"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// Options represent configuration options for the dupcheck analyzer.
type Options struct {
	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Directive is the name of the marker directive, as in //dupcheck:real float32.
	Directive string

	// Spellings are the type tokens of the four domain variants.
	Spellings variant.Spellings

	// Logger receives debug information about skipped and failed groups.
	Logger *zap.Logger

	// Workers limits the number of symbols checked concurrently, <= 0 means one per CPU.
	Workers int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior:  config.DefaultBehavior(),
		Directive: group.DefaultDirective,
		Spellings: variant.DefaultSpellings,
		Logger:    zap.NewNop(),
	}
}
