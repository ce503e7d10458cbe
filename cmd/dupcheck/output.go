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


package main

import (
	"fmt"
	"go/token"
	"io"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"golang.org/x/term"

	"fillmore-labs.com/dupcheck/internal/check"
	"fillmore-labs.com/dupcheck/internal/run"
	"fillmore-labs.com/dupcheck/internal/variant"
)

// printer writes human-readable findings.
type printer struct {
	w     io.Writer
	fset  *token.FileSet
	table variant.Table
	dir   string

	pos, problem, note, ok *color.Color
}

func newPrinter(w io.Writer, mode string, fset *token.FileSet, table variant.Table, dir string) (*printer, error) {
	p := &printer{
		w:       w,
		fset:    fset,
		table:   table,
		pos:     color.New(color.Bold),
		problem: color.New(color.FgRed),
		note:    color.New(color.FgYellow),
		ok:      color.New(color.FgGreen),
	}

	if abs, err := filepath.Abs(dir); err == nil {
		p.dir = abs
	}

	switch mode {
	case "auto":
		if !isTerminal(w) {
			for _, c := range p.colors() {
				c.DisableColor()
			}
		}

	case "always":
		for _, c := range p.colors() {
			c.EnableColor()
		}

	case "never":
		for _, c := range p.colors() {
			c.DisableColor()
		}

	default:
		return nil, fmt.Errorf("invalid color mode %q, want auto, always or never", mode)
	}

	return p, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	fd, err := safecast.Conv[int](uint64(f.Fd()))
	if err != nil {
		return false
	}

	return term.IsTerminal(fd)
}

func (p *printer) colors() []*color.Color {
	return []*color.Color{p.pos, p.problem, p.note, p.ok}
}

// position formats pos relative to the working directory.
func (p *printer) position(pos token.Pos) string {
	position := p.fset.Position(pos)

	if p.dir != "" {
		if rel, err := filepath.Rel(p.dir, position.Filename); err == nil && !strings.HasPrefix(rel, "..") {
			position.Filename = rel
		}
	}

	return position.String()
}

func (p *printer) violations(vs []check.Violation) {
	for _, v := range vs {
		_, _ = fmt.Fprintf(p.w, "%s: %s\n", p.pos.Sprint(p.position(v.Decl.Pos())), p.problem.Sprint(v.Message(p.table)))
		_, _ = fmt.Fprintf(p.w, "\t%s %s\n", p.note.Sprintf("derived from %s declaration at", p.table.Spelling(v.Main)),
			p.position(v.MainDecl.Pos()))
	}
}

func (p *printer) skipped(r check.Result) {
	for _, s := range r.Skipped {
		msg, ok := run.SkippedMessage(p.table, s)
		if !ok {
			continue
		}

		_, _ = fmt.Fprintf(p.w, "%s: %s\n", p.pos.Sprint(p.position(s.Decls[0].Pos())), p.note.Sprint(msg))
	}
}

func (p *printer) fixed(filename string, n int, dryRun bool) {
	verb := "Fixed"
	if dryRun {
		verb = "Would fix"
	}

	if p.dir != "" {
		if rel, err := filepath.Rel(p.dir, filename); err == nil && !strings.HasPrefix(rel, "..") {
			filename = rel
		}
	}

	_, _ = fmt.Fprintf(p.w, "%s %d %s in %s\n", p.ok.Sprint(verb), n, plural(n, "declaration"), p.pos.Sprint(filename))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
