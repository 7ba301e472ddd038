// Copyright 2026 The Prolog Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pp renders terms the way a user who typed them would
// recognize: unbound variables print by their source name alone (no
// internal id), bound variables print as whatever they resolve to.
// This is the surface syntax the parser accepts, which is what makes
// the parse/print/parse round trip in spec.md section 8 meaningful;
// package ast's own Term.String() methods are the debug form used by
// trace output and are not suitable for user-facing text.
package pp

import (
	"strings"

	"github.com/logicbase/prolog/ast"
)

// Term renders t for user-facing output, walking through any variable
// bindings before printing.
func Term(t ast.Term) string {
	switch x := t.(type) {
	case ast.Variable:
		if bound := x.Binding(); bound != nil {
			return Term(bound)
		}
		return x.Name
	case ast.Predicate:
		if x.Args.IsNil() {
			return x.Name.Name
		}
		return x.Name.Name + "(" + list(x.Args) + ")"
	case ast.List:
		return list(x)
	default:
		return ""
	}
}

func list(l ast.List) string {
	var parts []string
	for cur := l; !cur.IsNil(); cur = cur.Tail() {
		parts = append(parts, Term(cur.Head()))
	}
	return strings.Join(parts, ", ")
}

// Clause renders c the way a user would type it back in.
func Clause(c ast.Clause) string {
	if c.IsFact() {
		return Term(c.Head) + "."
	}
	return Term(c.Head) + " :- " + list(c.Body) + "."
}
