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

// Package group collects marked sibling declarations into duplicate groups.
//
// A symbol is the logical name shared by the duplicates of one algorithm,
// either given explicitly in the marker or defaulting to the declared name.
// For each family a symbol forms at most one group, with at most one
// declaration per domain variant.
package group

import (
	"go/token"
	"strings"
	"unicode"

	"fillmore-labs.com/dupcheck/internal/source"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// Entry is a declaration together with one of its markers.
type Entry struct {
	Decl   *source.Declaration
	Marker Marker
}

// Symbol is a logical symbol with all its marked declarations.
type Symbol struct {
	Name    string
	Entries []Entry
}

// Index groups the marked declarations by symbol. Symbols are returned in order of first appearance.
// Declarations without markers are ignored.
//
// Without an explicit symbol a declaration's symbol is its declared name. Methods are keyed by
// receiver and method name, see [ReceiverKey].
func Index(directive string, decls []*source.Declaration) []Symbol {
	var symbols []Symbol

	index := make(map[string]int)
	receivers := typeSymbols(directive, decls)

	for _, d := range decls {
		for _, m := range ParseMarkers(directive, d.Doc()) {
			name := m.Symbol
			if name == "" {
				name = defaultSymbol(d, receivers)
			}

			if name == "" || name == "_" {
				continue // grouped declaration without explicit symbol
			}

			i, ok := index[name]
			if !ok {
				i = len(symbols)
				index[name] = i
				symbols = append(symbols, Symbol{Name: name})
			}

			symbols[i].Entries = append(symbols[i].Entries, Entry{Decl: d, Marker: m})
		}
	}

	return symbols
}

// typeSymbols maps the names of type declarations to their explicit marker symbol.
func typeSymbols(directive string, decls []*source.Declaration) map[string]string {
	symbols := make(map[string]string)

	for _, d := range decls {
		if d.Kind() != token.TYPE || d.Name() == "" {
			continue
		}

		for _, m := range ParseMarkers(directive, d.Doc()) {
			if m.Symbol != "" {
				symbols[d.Name()] = m.Symbol

				break
			}
		}
	}

	return symbols
}

func defaultSymbol(d *source.Declaration, receivers map[string]string) string {
	name := d.Name()

	recv := d.Receiver()
	if name == "" || recv == "" {
		return name
	}

	key, ok := receivers[recv]
	if !ok {
		key = ReceiverKey(recv)
	}

	return key + "." + name
}

// ReceiverKey returns the part of a receiver type name shared by its numeric variants:
// the name without trailing digits, so Vec32 and Vec64 both yield Vec.
// Receiver types marked with an explicit symbol use that symbol instead.
func ReceiverKey(recv string) string {
	if key := strings.TrimRightFunc(recv, unicode.IsDigit); key != "" {
		return key
	}

	return recv
}

// Group is a set of sibling declarations of one symbol and family,
// each bound to a distinct domain variant.
type Group struct {
	Symbol  string
	Family  variant.Family
	Main    variant.Variant
	members [variant.NumVariants]*source.Declaration
}

// Member returns the declaration for v, or nil.
func (g Group) Member(v variant.Variant) *source.Declaration {
	if !v.Valid() {
		return nil
	}

	return g.members[v]
}

// MainDecl returns the declaration of the main variant.
func (g Group) MainDecl() *source.Declaration { return g.members[g.Main] }

// Siblings returns the present non-main variants in [variant.Variant] order.
func (g Group) Siblings() []variant.Variant {
	var siblings []variant.Variant

	for _, v := range g.Family.Members() {
		if v != g.Main && g.members[v] != nil {
			siblings = append(siblings, v)
		}
	}

	return siblings
}

// Reason describes why a symbol's family was not analyzed.
type Reason uint8

const (
	// Singleton means fewer than two declarations, which are trivially consistent.
	Singleton Reason = iota + 1

	// Ambiguous means a domain variant is claimed by more than one declaration.
	Ambiguous

	// NoMain means neither the single-precision real nor complex variant is present.
	NoMain
)

// String returns a human-readable description.
func (r Reason) String() string {
	switch r {
	case Singleton:
		return "single declaration"

	case Ambiguous:
		return "ambiguous variant"

	case NoMain:
		return "no single-precision variant"

	default:
		return "unknown"
	}
}

// Skipped records a symbol's family excluded from analysis.
type Skipped struct {
	Symbol  string
	Family  variant.Family
	Reason  Reason
	Variant variant.Variant // the ambiguous variant when Reason is Ambiguous
	Decls   []*source.Declaration
}

// Groups builds the duplicate groups of s, one per family with a valid main declaration.
// Families where s has marked declarations but which can not be analyzed are returned as [Skipped].
func (s Symbol) Groups(table variant.Table) ([]Group, []Skipped) {
	var (
		groups  []Group
		skipped []Skipped
	)

	for _, family := range variant.Families() {
		g, skip, ok := s.group(table, family)
		switch {
		case ok:
			groups = append(groups, g)

		case skip.Reason != 0:
			skipped = append(skipped, skip)
		}
	}

	return groups, skipped
}

func (s Symbol) group(table variant.Table, family variant.Family) (Group, Skipped, bool) {
	g := Group{Symbol: s.Name, Family: family}

	var (
		decls     []*source.Declaration
		claims    = make(map[*source.Declaration]variant.Variant)
		ambiguous bool
		claimed   variant.Variant
	)

	for _, e := range s.Entries {
		if e.Marker.Family != family {
			continue
		}

		v, err := table.Lookup(e.Marker.Token)
		if err != nil || !family.Contains(v) {
			continue // malformed marker
		}

		prev, seen := claims[e.Decl]
		if seen && prev == v {
			continue // repeated marker
		}

		if !seen {
			claims[e.Decl] = v
			decls = append(decls, e.Decl)
		}

		// a variant claimed twice, or one declaration claiming two variants
		if seen || g.members[v] != nil {
			if !ambiguous {
				ambiguous, claimed = true, v
			}

			continue
		}

		g.members[v] = e.Decl
	}

	skip := Skipped{Symbol: s.Name, Family: family, Decls: decls}

	switch {
	case len(decls) == 0:
		return Group{}, Skipped{}, false

	case ambiguous:
		skip.Reason, skip.Variant = Ambiguous, claimed

		return Group{}, skip, false

	case len(decls) < 2:
		skip.Reason = Singleton

		return Group{}, skip, false
	}

	main, ok := variant.Main(func(v variant.Variant) bool { return g.members[v] != nil })
	if !ok {
		skip.Reason = NoMain

		return Group{}, skip, false
	}

	g.Main = main

	return g, Skipped{}, true
}
