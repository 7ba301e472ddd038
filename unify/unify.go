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

package unify

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/logicbase/prolog/ast"
)

// Error is the reason a unification attempt failed. It is never fatal:
// it only signals that this candidate does not unify, driving
// backtracking in the caller.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func fail(format string, args ...any) error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

// indent tracks the depth of nested Unify calls, for debug tracing.
// It is process-scoped like ast's variable counter: a pure observer of
// control flow, never consulted for correctness.
var indent int

// SetDebug enables or disables indented trace lines for every Unify
// call. Disabling it must not change results, only remove the log
// output.
var debug bool

// SetDebug toggles unify tracing.
func SetDebug(on bool) {
	debug = on
}

func trace(format string, args ...any) {
	if !debug {
		return
	}
	glog.V(1).Infof("%*s"+format, append([]any{indent * 2, ""}, args...)...)
}

// Unify attempts to make a and b denote the same term by binding
// unbound variables reachable from either side, recording every write
// on tr. On failure, bindings made during this call (including any
// nested recursive calls) remain on tr; the caller is responsible for
// calling tr.Undo back to a Mark taken before the call if it wants to
// retry a different candidate.
func Unify(a, b ast.Term, tr *Trail) error {
	indent++
	defer func() { indent-- }()
	a, b = ast.Walk(a), ast.Walk(b)
	trace("unify %v ~ %v\n", a, b)

	va, aIsVar := a.(ast.Variable)
	vb, bIsVar := b.(ast.Variable)

	switch {
	case aIsVar && bIsVar && va.Equal(vb):
		// Rule 1: same variable identity, trivially equal.
		return nil

	case aIsVar && !va.IsBound():
		// Rule 2: bind the unbound variable to the other side.
		va.Bind(b)
		tr.record(va)
		return nil

	case bIsVar && !vb.IsBound():
		vb.Bind(a)
		tr.record(vb)
		return nil

	// Rule 3 is already subsumed: Walk followed the binding of any
	// bound variable, so aIsVar/bIsVar here only ever hold for unbound
	// variables. A variable bound to t walks to t before we ever see
	// it as a Variable again.

	default:
		return unifyNonVar(a, b, tr)
	}
}

func unifyNonVar(a, b ast.Term, tr *Trail) error {
	switch x := a.(type) {
	case ast.Predicate:
		y, ok := b.(ast.Predicate)
		if !ok {
			return fail("type mismatch: %v is a predicate, %v is not", a, b)
		}
		if x.Name.Name != y.Name.Name {
			return fail("predicate name mismatch: %q != %q", x.Name.Name, y.Name.Name)
		}
		return unifyLists(x.Args, y.Args, tr)

	case ast.List:
		y, ok := b.(ast.List)
		if !ok {
			return fail("type mismatch: %v is a list, %v is not", a, b)
		}
		return unifyLists(x, y, tr)

	default:
		return fail("type mismatch: cannot unify %v with %v", a, b)
	}
}

func unifyLists(a, b ast.List, tr *Trail) error {
	if a.IsNil() && b.IsNil() {
		// Rule 5.
		return nil
	}
	if a.IsNil() || b.IsNil() {
		return fail("arity mismatch: argument lists have different lengths")
	}
	// Rule 6: unify heads, then tails. Sequencing matters — bindings
	// made while unifying the heads are visible when unifying the
	// tails, which is how shared variables across arguments work.
	if err := Unify(a.Head(), b.Head(), tr); err != nil {
		return err
	}
	return unifyLists(a.Tail(), b.Tail(), tr)
}
