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

package source

import (
	"go/ast"
	"go/token"
)

// Name returns the declared name: the function or method name, or the name of
// the single spec of a general declaration. It returns "" for grouped declarations.
func (d *Declaration) Name() string {
	if id := d.nameIdent(); id != nil {
		return id.Name
	}

	return ""
}

func (d *Declaration) nameIdent() *ast.Ident {
	switch n := d.node.(type) {
	case *ast.FuncDecl:
		return n.Name

	case *ast.GenDecl:
		if len(n.Specs) != 1 {
			return nil
		}

		switch s := n.Specs[0].(type) {
		case *ast.TypeSpec:
			return s.Name

		case *ast.ValueSpec:
			if len(s.Names) == 1 {
				return s.Names[0]
			}
		}
	}

	return nil
}

// Receiver returns the base type name of a method receiver, or "" for non-methods.
func (d *Declaration) Receiver() string {
	fun, ok := d.node.(*ast.FuncDecl)
	if !ok || fun.Recv == nil || len(fun.Recv.List) != 1 {
		return ""
	}

	typ := fun.Recv.List[0].Type
	for {
		switch t := typ.(type) {
		case *ast.ParenExpr:
			typ = t.X

		case *ast.StarExpr:
			typ = t.X

		case *ast.IndexExpr:
			typ = t.X

		case *ast.IndexListExpr:
			typ = t.X

		case *ast.Ident:
			return t.Name

		default:
			return ""
		}
	}
}

// Kind returns the declaration keyword.
func (d *Declaration) Kind() token.Token {
	switch n := d.node.(type) {
	case *ast.FuncDecl:
		return token.FUNC

	case *ast.GenDecl:
		return n.Tok

	default:
		return token.ILLEGAL
	}
}

// IdentityNames returns the names identifying the declaration among its siblings:
// the declared name and, for methods, the receiver base type name. Empty names are omitted.
func (d *Declaration) IdentityNames() []string {
	var names []string

	if name := d.Name(); name != "" && name != "_" {
		names = append(names, name)
	}

	if recv := d.Receiver(); recv != "" {
		names = append(names, recv)
	}

	return names
}
