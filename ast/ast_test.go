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

package ast

import (
	"testing"
)

func TestVariableIdentityUnique(t *testing.T) {
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		v := NewVariable("X")
		if seen[v.ID] {
			t.Fatalf("duplicate variable id %d", v.ID)
		}
		seen[v.ID] = true
	}
}

func TestWalkUnbound(t *testing.T) {
	v := NewVariable("X")
	if got := Walk(v); got != Term(v) {
		t.Errorf("Walk(unbound) = %v, want %v", got, v)
	}
}

func TestWalkChain(t *testing.T) {
	a := NewVariable("A")
	b := NewVariable("B")
	c := Pred("foo")
	a.Bind(b)
	b.Bind(c)
	if got := Walk(a); got != Term(c) {
		t.Errorf("Walk(a) = %v, want %v", got, c)
	}
}

func TestWalkStopsAtUnboundTail(t *testing.T) {
	a := NewVariable("A")
	b := NewVariable("B")
	a.Bind(b)
	if got := Walk(a); got != Term(b) {
		t.Errorf("Walk(a) = %v, want unbound tail %v", got, b)
	}
}

func TestCompressCollapsesChain(t *testing.T) {
	a := NewVariable("A")
	b := NewVariable("B")
	c := Pred("foo")
	a.Bind(b)
	b.Bind(c)
	Compress(a)
	if got := a.Binding(); got != Term(c) {
		t.Errorf("after Compress, a.Binding() = %v, want %v", got, c)
	}
}

func TestCompressStopsAtUnboundTail(t *testing.T) {
	a := NewVariable("A")
	b := NewVariable("B")
	a.Bind(b)
	Compress(a)
	if got := a.Binding(); got != Term(b) {
		t.Errorf("after Compress, a.Binding() = %v, want %v (unchanged)", got, b)
	}
}

func TestInstantiatePreservesSharing(t *testing.T) {
	x := NewVariable("X")
	// p(X, X)
	clause := Clause{Head: Pred("p", x, x)}
	renamed := Instantiate(clause)

	args := renamed.Head.Args.Slice()
	v0, ok0 := args[0].(Variable)
	v1, ok1 := args[1].(Variable)
	if !ok0 || !ok1 {
		t.Fatalf("renamed args are not variables: %v", args)
	}
	if !v0.Equal(v1) {
		t.Errorf("instantiate did not preserve sharing: got %v and %v", v0, v1)
	}
	if v0.Equal(x) {
		t.Errorf("instantiate reused the original variable identity %v", x)
	}
}

func TestInstantiateIsFreshEachTime(t *testing.T) {
	x := NewVariable("X")
	clause := Clause{Head: Pred("p", x)}
	first := Instantiate(clause)
	second := Instantiate(clause)

	v1 := first.Head.Args.Head().(Variable)
	v2 := second.Head.Args.Head().(Variable)
	if v1.Equal(v2) {
		t.Errorf("two Instantiate calls produced the same variable identity %v", v1)
	}
}

func TestFreeVarsOrderAndDedup(t *testing.T) {
	x := NewVariable("X")
	y := NewVariable("Y")
	goal := Pred("grandparent", x, y, x)
	vars := FreeVars(goal)
	if len(vars) != 2 {
		t.Fatalf("FreeVars = %v, want 2 distinct variables", vars)
	}
	if !vars[0].Equal(x) || !vars[1].Equal(y) {
		t.Errorf("FreeVars = %v, want [%v %v] in first-occurrence order", vars, x, y)
	}
}

func TestPredicateStringConstant(t *testing.T) {
	if got, want := Pred("tom").String(), "tom"; got != want {
		t.Errorf("Pred(\"tom\").String() = %q, want %q", got, want)
	}
}

func TestPredicateStringWithArgs(t *testing.T) {
	got := Pred("parent", Pred("tom"), Pred("bob")).String()
	want := "parent(tom, bob)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestClauseStringFact(t *testing.T) {
	c := Clause{Head: Pred("parent", Pred("tom"), Pred("bob"))}
	if got, want := c.String(), "parent(tom, bob)."; got != want {
		t.Errorf("Clause.String() = %q, want %q", got, want)
	}
}

func TestClauseStringRule(t *testing.T) {
	x := NewVariable("X")
	y := NewVariable("Y")
	z := NewVariable("Z")
	c := Clause{
		Head: Pred("grandparent", x, z),
		Body: NewList(Pred("parent", x, y), Pred("parent", y, z)),
	}
	want := "grandparent(" + x.String() + ", " + z.String() + ") :- parent(" +
		x.String() + ", " + y.String() + "), parent(" + y.String() + ", " + z.String() + ")."
	if got := c.String(); got != want {
		t.Errorf("Clause.String() = %q, want %q", got, want)
	}
}
