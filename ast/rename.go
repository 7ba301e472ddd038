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

// RenameDict maps a Variable identity (by id) encountered during a
// single Instantiate walk to the fresh Variable standing in for it.
// A new, empty RenameDict must be used per candidate clause so that
// each activation of a clause gets variables distinct from every other
// activation, while two occurrences of the same source Variable within
// one activation still share a fresh Variable.
type RenameDict map[uint64]Variable

// instantiate produces a structural copy of t in which every Variable
// has been replaced by a fresh Variable (same Name, new ID), consistent
// per original identity via dict.
func instantiate(t Term, dict RenameDict) Term {
	switch x := t.(type) {
	case Variable:
		if fresh, ok := dict[x.ID]; ok {
			return fresh
		}
		fresh := NewVariable(x.Name)
		dict[x.ID] = fresh
		return fresh
	case Predicate:
		return Predicate{Name: x.Name, Args: instantiateList(x.Args, dict)}
	case List:
		return instantiateList(x, dict)
	default:
		return t
	}
}

func instantiateList(l List, dict RenameDict) List {
	if l.IsNil() {
		return Nil
	}
	return Cons(instantiate(l.Head(), dict), instantiateList(l.Tail(), dict))
}

// Instantiate renames the Clause c apart: it returns a new Clause
// whose Variables all carry fresh ids, with internal variable sharing
// preserved (two occurrences of X in c become two occurrences of the
// same fresh variable). Call this once per candidate-clause activation,
// never once per knowledge-base insertion, or recursive predicates
// would alias variables across activation frames.
func Instantiate(c Clause) Clause {
	dict := RenameDict{}
	head := instantiate(c.Head, dict).(Predicate)
	body := instantiateList(c.Body, dict)
	return Clause{Head: head, Body: body}
}
