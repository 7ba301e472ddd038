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

// Package unify implements structural unification over the ast term
// model, recording every binding cell it writes on a Trail so a caller
// doing backtracking search can undo an attempt that ultimately failed.
package unify

import "github.com/logicbase/prolog/ast"

// Trail is an undo log of variable bindings, in the order they were
// made. It is the mechanism by which the derivation engine satisfies
// the contract that a failed candidate leaves binding state exactly as
// it found it: record a Mark before trying a candidate, Unify onto the
// same Trail, and Undo back to the Mark on failure.
type Trail struct {
	entries []ast.Variable
}

// Mark returns a position that can later be passed to Undo to roll
// back every binding made since this call.
func (tr *Trail) Mark() int {
	return len(tr.entries)
}

// record appends v to the trail. Called by Unify, never by clients
// directly.
func (tr *Trail) record(v ast.Variable) {
	tr.entries = append(tr.entries, v)
}

// Undo unbinds every variable recorded since mark, in reverse order,
// and truncates the trail back to mark.
func (tr *Trail) Undo(mark int) {
	for i := len(tr.entries) - 1; i >= mark; i-- {
		tr.entries[i].Unbind()
	}
	tr.entries = tr.entries[:mark]
}
