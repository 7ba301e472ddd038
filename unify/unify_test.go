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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/logicbase/prolog/ast"
)

func TestUnifyTwoConstants(t *testing.T) {
	var tr Trail
	if err := Unify(ast.Pred("tom"), ast.Pred("tom"), &tr); err != nil {
		t.Fatalf("Unify(tom, tom) failed: %v", err)
	}
}

func TestUnifyConstantMismatch(t *testing.T) {
	var tr Trail
	if err := Unify(ast.Pred("tom"), ast.Pred("bob"), &tr); err == nil {
		t.Fatalf("Unify(tom, bob) succeeded, want predicate-name-mismatch error")
	}
}

func TestUnifyBindsUnboundVariable(t *testing.T) {
	var tr Trail
	x := ast.NewVariable("X")
	if err := Unify(x, ast.Pred("bob"), &tr); err != nil {
		t.Fatalf("Unify(X, bob) failed: %v", err)
	}
	if got, want := ast.Walk(x), ast.Term(ast.Pred("bob")); got != want {
		t.Errorf("Walk(X) = %v, want %v", got, want)
	}
}

func TestUnifyArityMismatch(t *testing.T) {
	var tr Trail
	a := ast.Pred("p", ast.Pred("a"))
	b := ast.Pred("p", ast.Pred("a"), ast.Pred("b"))
	if err := Unify(a, b, &tr); err == nil {
		t.Fatalf("Unify(p/1, p/2) succeeded, want arity-mismatch error")
	}
}

func TestUnifyTypeMismatch(t *testing.T) {
	var tr Trail
	pred := ast.Pred("p", ast.Pred("a"))
	list := ast.Term(ast.NewList(ast.Pred("a")))
	if err := Unify(pred, list, &tr); err == nil {
		t.Fatalf("Unify(predicate, list) succeeded, want type-mismatch error")
	}
}

func TestUnifySharedVariablePropagates(t *testing.T) {
	var tr Trail
	x := ast.NewVariable("X")
	// p(X, X) ~ p(a, a) should succeed.
	left := ast.Pred("p", x, x)
	right := ast.Pred("p", ast.Pred("a"), ast.Pred("a"))
	if err := Unify(left, right, &tr); err != nil {
		t.Fatalf("Unify(p(X,X), p(a,a)) failed: %v", err)
	}
}

func TestUnifySharedVariableConflict(t *testing.T) {
	var tr Trail
	x := ast.NewVariable("X")
	left := ast.Pred("p", x, x)
	right := ast.Pred("p", ast.Pred("a"), ast.Pred("b"))
	if err := Unify(left, right, &tr); err == nil {
		t.Fatalf("Unify(p(X,X), p(a,b)) succeeded, want failure")
	}
}

func TestUnifyRollbackOnFailureLeavesNoBindings(t *testing.T) {
	var tr Trail
	x := ast.NewVariable("X")
	y := ast.NewVariable("Y")
	left := ast.Pred("p", x, y, ast.Pred("a"))
	right := ast.Pred("p", ast.Pred("c"), ast.Pred("d"), ast.Pred("b"))

	mark := tr.Mark()
	err := Unify(left, right, &tr)
	if err == nil {
		t.Fatalf("Unify succeeded unexpectedly")
	}
	tr.Undo(mark)

	if x.IsBound() {
		t.Errorf("X is bound to %v after rollback, want unbound", x.Binding())
	}
	if y.IsBound() {
		t.Errorf("Y is bound to %v after rollback, want unbound", y.Binding())
	}
}

func TestUnifySuccessWalksToIdenticalTerms(t *testing.T) {
	var tr Trail
	x := ast.NewVariable("X")
	y := ast.NewVariable("Y")
	left := ast.Pred("p", x, ast.Pred("b"))
	right := ast.Pred("p", ast.Pred("a"), y)

	if err := Unify(left, right, &tr); err != nil {
		t.Fatalf("Unify failed: %v", err)
	}
	walked := func(term ast.Term) ast.Term {
		p := term.(ast.Predicate)
		args := p.Args.Slice()
		walkedArgs := make([]ast.Term, len(args))
		for i, a := range args {
			walkedArgs[i] = ast.Walk(a)
		}
		return ast.Predicate{Name: p.Name, Args: ast.NewList(walkedArgs...)}
	}
	if diff := cmp.Diff(walked(left).String(), walked(right).String()); diff != "" {
		t.Errorf("walked terms differ (-left +right):\n%s", diff)
	}
}

func TestUnifyNoOccursCheck(t *testing.T) {
	// eq(Y, Y). ?- eq(X, f(X)) unifies without an occurs check, by
	// design (spec.md's documented trade-off): this only demonstrates
	// that Unify itself does not reject a self-referential binding.
	var tr Trail
	x := ast.NewVariable("X")
	if err := Unify(x, ast.Pred("f", x), &tr); err != nil {
		t.Fatalf("Unify(X, f(X)) failed unexpectedly (occurs-check is not implemented): %v", err)
	}
}
