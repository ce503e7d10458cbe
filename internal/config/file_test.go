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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/dupcheck/internal/config"
	"fillmore-labs.com/dupcheck/internal/variant"
)

func TestParse(t *testing.T) {
	t.Parallel()

	const data = `
directive: dup
generated: true
report-skipped: true
workers: 3
tokens:
  double-real: f64.Scalar
`

	f, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "dup", f.Directive)
	assert.Equal(t, 3, f.Workers)

	b := f.Behavior()
	assert.True(t, b.Enabled(IncludeGenerated))
	assert.True(t, b.Enabled(ReportSkipped))

	want := variant.Spellings{"float32", "f64.Scalar", "complex64", "complex128"}
	assert.Equal(t, want, f.Tokens.Spellings(variant.DefaultSpellings))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("unknown: 1\n"))
	require.Error(t, err)

	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	f, err := Load(filepath.Join(dir, DefaultFile), true)
	require.NoError(t, err)
	assert.Equal(t, File{}, f)

	_, err = Load(filepath.Join(dir, DefaultFile), false)
	require.Error(t, err)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generated: true\n"), 0o600))

	f, err = Load(path, false)
	require.NoError(t, err)
	assert.True(t, f.Generated)
}

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated)
	assert.True(t, b.Enabled(IncludeGenerated))
	assert.False(t, b.Enabled(ReportSkipped))

	b.Set(ReportSkipped, true)
	b.Set(IncludeGenerated, false)
	assert.False(t, b.Enabled(IncludeGenerated))
	assert.True(t, b.Enabled(ReportSkipped))

	assert.False(t, DefaultBehavior().Enabled(IncludeGenerated))
}

func TestParseTOML(t *testing.T) {
	t.Parallel()

	const data = `
directive = "dup"
report-skipped = true

[tokens]
single-real = "f32.Scalar"
`

	f, err := ParseTOML([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "dup", f.Directive)
	assert.True(t, f.Behavior().Enabled(ReportSkipped))
	assert.Equal(t, "f32.Scalar", f.Tokens.SingleReal)

	_, err = ParseTOML([]byte("unknown = 1\n"))
	require.ErrorContains(t, err, "unknown")
}

func TestFind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, ok := Find(dir)
	assert.False(t, ok)

	tomlPath := filepath.Join(dir, ".dupcheck.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("workers = 2\n"), 0o600))

	path, ok := Find(dir)
	require.True(t, ok)
	assert.Equal(t, tomlPath, path)

	f, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Workers)

	yamlPath := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(yamlPath, []byte("workers: 3\n"), 0o600))

	path, ok = Find(dir)
	require.True(t, ok)
	assert.Equal(t, yamlPath, path)
}
