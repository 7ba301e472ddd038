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

package engine

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/logicbase/prolog/ast"
	"github.com/logicbase/prolog/unify"
)

// indent tracks nested Derive depth for debug tracing, mirroring
// package unify's own indent counter. The two counters are independent;
// SetDebug below switches on both packages' tracing, while
// unify.SetDebug alone switches on only unify's.
var indent int

var debug bool

// SetDebug enables or disables indented trace lines for every Derive
// call. Tracing is a pure observer of control flow: turning it off
// never changes which questions succeed or what bindings they produce.
func SetDebug(on bool) {
	debug = on
	unify.SetDebug(on)
}

func trace(format string, args ...any) {
	if !debug {
		return
	}
	glog.V(1).Infof("%*s"+format, append([]any{indent * 2, ""}, args...)...)
}

// Derive attempts to prove goal against kb, writing every binding it
// makes onto tr. On success it returns nil and leaves the winning
// bindings on tr and in the variable cells they touched. On failure it
// returns the reason the last candidate failed; per spec.md's
// backtracking contract, the caller observes no net change to binding
// state for any trail entry written since the Mark it took before
// calling Derive (the call undoes its own failed attempts internally,
// but only down to entries it itself created).
func Derive(goal ast.Term, kb *KnowledgeBase, tr *unify.Trail) error {
	indent++
	defer func() { indent-- }()

	goal = ast.Walk(goal)
	trace("derive %v\n", goal)

	switch g := goal.(type) {
	case ast.Variable:
		// A free variable goal is unconstrained and trivially succeeds.
		return nil
	case ast.Predicate:
		return derivePred(g, kb, tr)
	case ast.List:
		mark := tr.Mark()
		if err := deriveConjunction(g, kb, tr); err != nil {
			tr.Undo(mark)
			return err
		}
		return nil
	default:
		return fmt.Errorf("cannot derive goal of type %T", goal)
	}
}

func derivePred(goal ast.Predicate, kb *KnowledgeBase, tr *unify.Trail) error {
	clauses := kb.Clauses(goal)
	if len(clauses) == 0 && !kb.KnowsPredicate(goal.Name.Name) {
		return fmt.Errorf("no matching clause: predicate %q is never defined", goal.Name.Name)
	}

	lastErr := fmt.Errorf("no matching clause for %v", goal)
	for _, candidate := range clauses {
		renamed := ast.Instantiate(candidate)
		mark := tr.Mark()

		if err := unify.Unify(goal, renamed.Head, tr); err != nil {
			tr.Undo(mark)
			lastErr = err
			continue
		}
		if err := deriveConjunction(renamed.Body, kb, tr); err != nil {
			tr.Undo(mark)
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

// deriveConjunction derives each element of goals in order, left to
// right, sharing bindings between siblings. It does not retry an
// earlier element's clause choice when a later element fails — once a
// Derive call for one element succeeds, that success is final (per
// spec.md's non-goal of multi-solution enumeration); a later failure
// fails the whole conjunction. The caller (derivePred, for the clause
// whose body this is, or Derive, for a list goal) is responsible for
// undoing every binding this produced.
func deriveConjunction(goals ast.List, kb *KnowledgeBase, tr *unify.Trail) error {
	if goals.IsNil() {
		return nil
	}
	if err := Derive(goals.Head(), kb, tr); err != nil {
		return err
	}
	return deriveConjunction(goals.Tail(), kb, tr)
}
