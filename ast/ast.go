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

// Package ast contains the term model of the logic language: atoms,
// variables with their shared binding cells, predicates, lists and
// clauses, plus the walk/rename operations the rest of the engine is
// built on.
package ast

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// nextVarID is the process-wide monotonic source of Variable identifiers.
// Ids start at 1; 0 is never issued, so only a zero-valued Variable
// has id 0.
var nextVarID uint64

// freshID returns the next globally unique variable id.
func freshID() uint64 {
	return atomic.AddUint64(&nextVarID, 1)
}

// Term is the building block of clauses: a variable, a predicate
// (possibly 0-ary, i.e. a constant), or a list.
type Term interface {
	// Marker method, restricts implementations to this package's types.
	isTerm()

	String() string
}

// Atom is an interned, immutable predicate/constant name. Two atoms are
// equal iff their Name fields are equal.
type Atom struct {
	Name string
}

// cell is the mutable binding slot a Variable shares by reference with
// every copy of its handle. A nil Term means unbound.
type cell struct {
	bound Term
}

// Variable is a named, identity-stamped placeholder. Equality is by
// (Name, ID), never by the current binding. Cloning a Variable value
// copies the handle, not the cell: both handles observe the same
// binding.
type Variable struct {
	Name string
	ID   uint64
	c    *cell
}

// NewVariable constructs a fresh, unbound Variable with the given
// source name and a newly minted globally unique id.
func NewVariable(name string) Variable {
	return Variable{Name: name, ID: freshID(), c: &cell{}}
}

func (Variable) isTerm() {}

// Equal reports whether two Variables denote the same identity (not
// whether they are bound to the same value).
func (v Variable) Equal(w Variable) bool {
	return v.ID == w.ID && v.Name == w.Name
}

// IsBound reports whether v's cell currently holds a value.
func (v Variable) IsBound() bool {
	return v.c != nil && v.c.bound != nil
}

// Bind sets v's cell to t. It does not check whether v was already
// bound; callers (the unifier) are responsible for only binding
// unbound variables and for recording the write on a trail so it can
// be undone on backtracking.
func (v Variable) Bind(t Term) {
	v.c.bound = t
}

// Unbind clears v's cell. Used to roll back a binding made during a
// failed derivation attempt.
func (v Variable) Unbind() {
	v.c.bound = nil
}

// Binding returns the term v's cell currently holds, or nil if unbound.
func (v Variable) Binding() Term {
	if v.c == nil {
		return nil
	}
	return v.c.bound
}

// String renders the variable using its source name and id, e.g. "X#3".
// This is the debug form; the pretty-printer walks a variable before
// printing it for user-facing output.
func (v Variable) String() string {
	return fmt.Sprintf("%s#%d", v.Name, v.ID)
}

// Predicate is an applied predicate symbol: a name plus an argument
// list. Zero arguments (Args == Nil) represents a constant.
type Predicate struct {
	Name Atom
	Args List
}

func (Predicate) isTerm() {}

func (p Predicate) String() string {
	if p.Args.IsNil() {
		return p.Name.Name
	}
	var sb strings.Builder
	sb.WriteString(p.Name.Name)
	sb.WriteByte('(')
	sb.WriteString(p.Args.String())
	sb.WriteByte(')')
	return sb.String()
}

// Pred is a convenience constructor for a Predicate term.
func Pred(name string, args ...Term) Predicate {
	return Predicate{Name: Atom{Name: name}, Args: NewList(args...)}
}

type listTag int

const (
	nilTag listTag = iota
	consTag
)

// List is an ordered, finite sequence of Terms, represented as the
// usual Nil/Cons spine. Predicate arguments are always a List; List is
// the only compound-argument carrier in this language.
type List struct {
	tag  listTag
	head Term
	tail *List
}

// Nil is the empty list.
var Nil = List{tag: nilTag}

func (List) isTerm() {}

// IsNil reports whether l is the empty list.
func (l List) IsNil() bool {
	return l.tag == nilTag
}

// Head returns the first element of a non-nil list.
func (l List) Head() Term {
	return l.head
}

// Tail returns the rest of a non-nil list.
func (l List) Tail() List {
	return *l.tail
}

// Cons prepends head to tail.
func Cons(head Term, tail List) List {
	t := tail
	return List{tag: consTag, head: head, tail: &t}
}

// NewList builds a List from a slice of Terms, in order.
func NewList(terms ...Term) List {
	l := Nil
	for i := len(terms) - 1; i >= 0; i-- {
		l = Cons(terms[i], l)
	}
	return l
}

// Slice flattens l into a Go slice, in order. It does not walk
// elements; callers that need resolved values should Walk each element
// themselves.
func (l List) Slice() []Term {
	var out []Term
	for cur := l; !cur.IsNil(); cur = cur.Tail() {
		out = append(out, cur.Head())
	}
	return out
}

func (l List) String() string {
	if l.IsNil() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(l.head.String())
	if !l.tail.IsNil() {
		sb.WriteString(", ")
		sb.WriteString(l.tail.String())
	}
	return sb.String()
}

// Clause is a head predicate plus an ordered conjunction of body goals.
// A fact is a Clause with an empty Body.
type Clause struct {
	Head Predicate
	Body List
}

// IsFact reports whether c has no body.
func (c Clause) IsFact() bool {
	return c.Body.IsNil()
}

func (c Clause) String() string {
	if c.IsFact() {
		return c.Head.String() + "."
	}
	return fmt.Sprintf("%s :- %s.", c.Head, c.Body)
}
