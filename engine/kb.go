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

// Package engine implements SLD-style backtracking proof search: an
// ordered knowledge base of clauses and the Derive algorithm that
// proves goals against it, using package unify for the underlying
// unification and package ast for the term model.
package engine

import (
	"bitbucket.org/creachadair/stringset"
	"github.com/logicbase/prolog/ast"
)

// KnowledgeBase holds an ordered sequence of clauses. Clauses are
// grouped by head predicate symbol; within a group, insertion order is
// preserved exactly. This is equivalent to keeping one flat
// insertion-ordered list: a goal for predicate P can only ever unify
// with a clause whose head predicate is P (rule 4 of unification fails
// fast on a name mismatch), so the relative order of clauses with
// different head predicates can never be observed by a derivation.
type KnowledgeBase struct {
	byPredicate map[predicateKey][]ast.Clause
	// predicates tracks every predicate symbol that has at least one
	// clause, so the "no matching clause" diagnostic can distinguish
	// "undefined predicate" from "defined, but none of its clauses
	// unified" — matching the discoverability the teacher's interpreter
	// gives callers of ast.PredicateSym via its decl registry, adapted
	// here to a plain name set since this language has no declarations.
	predicates stringset.Set
}

type predicateKey struct {
	name  string
	arity int
}

// NewKnowledgeBase returns an empty knowledge base.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		byPredicate: make(map[predicateKey][]ast.Clause),
		predicates:  stringset.New(),
	}
}

func keyOf(p ast.Predicate) predicateKey {
	return predicateKey{name: p.Name.Name, arity: len(p.Args.Slice())}
}

// Assert appends c to the knowledge base. Clauses are never mutated or
// removed by the engine once inserted; c is stored as given (including
// its original Variable identities — renaming apart happens per
// candidate activation, not at insertion time).
func (kb *KnowledgeBase) Assert(c ast.Clause) {
	key := keyOf(c.Head)
	kb.byPredicate[key] = append(kb.byPredicate[key], c)
	kb.predicates.Add(c.Head.Name.Name)
}

// Reset discards every clause, returning the knowledge base to empty.
func (kb *KnowledgeBase) Reset() {
	kb.byPredicate = make(map[predicateKey][]ast.Clause)
	kb.predicates = stringset.New()
}

// Clauses returns the clauses whose head matches p's predicate name and
// arity, in insertion order.
func (kb *KnowledgeBase) Clauses(p ast.Predicate) []ast.Clause {
	return kb.byPredicate[keyOf(p)]
}

// KnowsPredicate reports whether any clause has been asserted for the
// given predicate name since the knowledge base was created or last
// Reset, regardless of arity.
func (kb *KnowledgeBase) KnowsPredicate(name string) bool {
	return kb.predicates.Contains(name)
}

// Len returns the total number of clauses across all predicates.
func (kb *KnowledgeBase) Len() int {
	n := 0
	for _, cs := range kb.byPredicate {
		n += len(cs)
	}
	return n
}
