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

// Walk dereferences t through variable binding cells until it reaches a
// non-Variable term or an unbound Variable. It never descends into the
// arguments of a Predicate or the elements of a List: those are walked
// on demand by the unifier and the pretty-printer, never eagerly
// substituted in place.
func Walk(t Term) Term {
	for {
		v, ok := t.(Variable)
		if !ok {
			return t
		}
		bound := v.Binding()
		if bound == nil {
			return v
		}
		t = bound
	}
}

// Compress collapses a chain V1 -> V2 -> ... -> Vn -> T by rebinding
// V1 directly to T, where T is not a Variable. It is a pure
// optimization: correctness never depends on calling it. Compress never rewrites an unbound tail — per spec, a
// chain that terminates in an unbound variable stops there, and
// leaving v bound to the next variable in the chain (rather than to
// that variable's own unbound self) is already as short a chain as is
// safe to produce.
func Compress(v Variable) {
	bound := v.Binding()
	if bound == nil {
		return
	}
	next, ok := bound.(Variable)
	if !ok {
		return
	}
	target := Walk(next)
	if _, unbound := target.(Variable); unbound {
		return
	}
	if target != bound {
		v.Bind(target)
	}
}

// FreeVars returns the set of distinct Variable identities appearing
// (unwalked) in t, in first-occurrence order. Used by the derivation
// engine to collect the answer set of a question before it is proved
// (the question itself is never renamed, per spec.md's documented
// open question).
func FreeVars(t Term) []Variable {
	var out []Variable
	seen := map[uint64]bool{}
	var walk func(Term)
	walk = func(t Term) {
		switch x := t.(type) {
		case Variable:
			if !seen[x.ID] {
				seen[x.ID] = true
				out = append(out, x)
			}
		case Predicate:
			for _, a := range x.Args.Slice() {
				walk(a)
			}
		case List:
			for cur := x; !cur.IsNil(); cur = cur.Tail() {
				walk(cur.Head())
			}
		}
	}
	walk(t)
	return out
}

// Resolve walks t and, recursively, every Variable reachable inside
// its Predicate arguments or List elements, producing a fully
// dereferenced copy for display. This is the operation the
// pretty-printer uses; it never writes to a binding cell, only reads.
func Resolve(t Term) Term {
	switch x := Walk(t).(type) {
	case Predicate:
		return Predicate{Name: x.Name, Args: resolveList(x.Args)}
	case List:
		return resolveList(x)
	default:
		return x
	}
}

func resolveList(l List) List {
	if l.IsNil() {
		return Nil
	}
	return Cons(Resolve(l.Head()), resolveList(l.Tail()))
}
