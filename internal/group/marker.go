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

package group

import (
	"go/ast"
	"go/token"
	"strings"

	"fillmore-labs.com/dupcheck/internal/variant"
)

// DefaultDirective is the default directive name of markers.
const DefaultDirective = "dupcheck"

// Marker is a parsed directive comment binding a declaration to a family:
//
//	//dupcheck:<family> <token> [symbol]
type Marker struct {
	Family variant.Family
	Token  string
	Symbol string // empty when not given explicitly
	Pos    token.Pos
}

// Prefix returns the comment prefix of markers with the given directive name.
func Prefix(directive string) string {
	return "//" + directive + ":"
}

// ParseMarkers returns the markers in a doc comment, in source order.
// Comments that are not well-formed markers are ignored.
func ParseMarkers(directive string, doc *ast.CommentGroup) []Marker {
	if doc == nil {
		return nil
	}

	prefix := Prefix(directive)

	var markers []Marker

	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, prefix)
		if !ok {
			continue
		}

		m, ok := parseMarker(rest)
		if !ok {
			continue
		}

		m.Pos = c.Slash
		markers = append(markers, m)
	}

	return markers
}

func parseMarker(text string) (Marker, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 || len(fields) > 3 {
		return Marker{}, false
	}

	family, err := variant.ParseFamily(fields[0])
	if err != nil {
		return Marker{}, false
	}

	m := Marker{Family: family, Token: fields[1]}

	if len(fields) == 3 {
		if !token.IsIdentifier(fields[2]) {
			return Marker{}, false
		}

		m.Symbol = fields[2]
	}

	return m, true
}
