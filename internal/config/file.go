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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/dupcheck/internal/variant"
)

// DefaultFile is the configuration file name looked up by the command line tool.
const DefaultFile = ".dupcheck.yaml"

// DefaultFiles are the configuration file names looked up by the command line tool, in order.
var DefaultFiles = []string{DefaultFile, ".dupcheck.toml"}

// Tokens are the type token spellings of the domain variants.
type Tokens struct {
	SingleReal    string `toml:"single-real,omitempty" yaml:"single-real,omitempty"`
	DoubleReal    string `toml:"double-real,omitempty" yaml:"double-real,omitempty"`
	SingleComplex string `toml:"single-complex,omitempty" yaml:"single-complex,omitempty"`
	DoubleComplex string `toml:"double-complex,omitempty" yaml:"double-complex,omitempty"`
}

// File is the configuration of the command line tool, in YAML:
//
//	directive: dupcheck
//	generated: false
//	report-skipped: true
//	workers: 4
//	tokens:
//	  double-real: f64.Scalar
type File struct {
	Directive     string `toml:"directive,omitempty" yaml:"directive,omitempty"`
	Generated     bool   `toml:"generated,omitempty" yaml:"generated,omitempty"`
	ReportSkipped bool   `toml:"report-skipped,omitempty" yaml:"report-skipped,omitempty"`
	Workers       int    `toml:"workers,omitempty" yaml:"workers,omitempty"`
	Tokens        Tokens `toml:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// Find returns the first of [DefaultFiles] present in dir.
func Find(dir string) (string, bool) {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// Load reads the configuration file at path. Files ending in .toml are TOML, all others YAML.
// A missing file yields the zero configuration when optional is set.
func Load(path string, optional bool) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}

		return File{}, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return Parse(data)
}

// Parse decodes a YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return f, nil
}

// ParseTOML decodes a TOML configuration. Unknown keys are rejected.
func ParseTOML(data []byte) (File, error) {
	var f File

	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, fmt.Errorf("invalid configuration: unknown key %q", undecoded[0].String())
	}

	return f, nil
}

// Spellings merges the configured tokens over base.
func (t Tokens) Spellings(base variant.Spellings) variant.Spellings {
	for v, s := range map[variant.Variant]string{
		variant.SingleReal:    t.SingleReal,
		variant.DoubleReal:    t.DoubleReal,
		variant.SingleComplex: t.SingleComplex,
		variant.DoubleComplex: t.DoubleComplex,
	} {
		if s != "" {
			base[v] = s
		}
	}

	return base
}

// Behavior returns the behavioral flags of the configuration.
func (f File) Behavior() Behavior {
	b := DefaultBehavior()
	b.Set(IncludeGenerated, f.Generated)
	b.Set(ReportSkipped, f.ReportSkipped)

	return b
}
