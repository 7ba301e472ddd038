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
	"github.com/logicbase/prolog/ast"
	"github.com/logicbase/prolog/unify"
)

// Answer is a binding produced for one variable that appeared in a
// question, reported after a successful derivation.
type Answer struct {
	Var   ast.Variable
	Value ast.Term
}

// Ask proves goal against kb and reports the bindings of goal's own
// free variables. Per spec.md's documented open question, the question
// term itself is never renamed apart — only knowledge-base clauses are,
// once per candidate activation — so the returned Answers refer to the
// exact Variable identities the caller passed in.
//
// On failure, ok is false and err explains why the last candidate
// tried did not complete the proof. Any bindings made during a failed
// derivation have already been rolled back before Ask returns.
func Ask(goal ast.Term, kb *KnowledgeBase) (ok bool, answers []Answer, err error) {
	vars := ast.FreeVars(goal)
	var tr unify.Trail
	mark := tr.Mark()

	if err := Derive(goal, kb, &tr); err != nil {
		tr.Undo(mark)
		return false, nil, err
	}

	for _, v := range vars {
		answers = append(answers, Answer{Var: v, Value: ast.Resolve(v)})
	}
	return true, answers, nil
}
