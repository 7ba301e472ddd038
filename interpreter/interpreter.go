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

// Package interpreter provides the interactive REPL: it reads lines,
// dispatches assertions into a knowledge base and questions through
// the derivation engine, and prints results the way spec.md section 6
// describes.
package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/multierr"

	"github.com/logicbase/prolog/ast"
	"github.com/logicbase/prolog/engine"
	"github.com/logicbase/prolog/parse"
	"github.com/logicbase/prolog/pp"
)

const prompt = "?- "

// Interpreter drives one knowledge base through a sequence of
// assertions and questions, reporting each to out.
type Interpreter struct {
	out io.Writer
	kb  *engine.KnowledgeBase
}

// New returns a new Interpreter with an empty knowledge base.
func New(out io.Writer) *Interpreter {
	return &Interpreter{out: out, kb: engine.NewKnowledgeBase()}
}

// KnowledgeBase exposes the underlying store, mainly for tests and for
// commands like -exec that want to query without going through Define.
func (i *Interpreter) KnowledgeBase() *engine.KnowledgeBase {
	return i.kb
}

// Reset discards every asserted clause.
func (i *Interpreter) Reset() {
	i.kb.Reset()
}

// Define parses and processes a single line, printing its outcome to
// out. A parse error is reported and otherwise ignored: it never stops
// the interpreter, per spec.md section 7.
func (i *Interpreter) Define(line string) {
	cmd, err := parse.Line(line)
	if err != nil {
		fmt.Fprintf(i.out, "skipped: %v\n", err)
		return
	}
	switch c := cmd.(type) {
	case parse.Assertion:
		i.kb.Assert(c.Clause)
		fmt.Fprintf(i.out, "accepted: %s\n", pp.Clause(c.Clause))
	case parse.Question:
		i.ask(c.Goal)
	}
}

func (i *Interpreter) ask(goal ast.Term) {
	fmt.Fprintf(i.out, "asked: %s\n", pp.Term(goal))
	ok, answers, err := engine.Ask(goal, i.kb)
	if !ok {
		fmt.Fprintf(i.out, "false: %v\n", err)
		return
	}
	fmt.Fprintln(i.out, "true")
	for _, a := range answers {
		fmt.Fprintf(i.out, "  %s => %s\n", a.Var.Name, pp.Term(a.Value))
	}
}

// Load reads path one line at a time and processes every non-blank
// line that does not start with '#' as if it had been typed at the
// prompt. Parse failures across
// the batch are combined and returned as a single error so the caller
// can report how many lines failed without that failure interrupting
// the lines that did parse.
func (i *Interpreter) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var errs error
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := parse.Line(line)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", line, err))
			continue
		}
		switch c := cmd.(type) {
		case parse.Assertion:
			i.kb.Assert(c.Clause)
			fmt.Fprintf(i.out, "accepted: %s\n", pp.Clause(c.Clause))
		case parse.Question:
			i.ask(c.Goal)
		}
	}
	if err := scanner.Err(); err != nil {
		return multierr.Append(errs, err)
	}
	return errs
}

// ShowHelp prints the REPL's built-in commands.
func (i *Interpreter) ShowHelp() {
	fmt.Fprintln(i.out, `
<clause>.          asserts a fact or rule
?- <goal>.         asks a question
::load <path>      loads and processes a file of assertions/questions
::reset            discards the knowledge base
::count            report how many clauses are currently asserted
::help             display this help text
<Ctrl-D>           quit`)
}

// Loop reads lines from stdin via a readline prompt until EOF,
// dispatching each to Define or a "::" command.
func (i *Interpreter) Loop() error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "::help":
			i.ShowHelp()
		case line == "::reset":
			i.Reset()
			fmt.Fprintln(i.out, "knowledge base reset.")
		case line == "::count":
			fmt.Fprintf(i.out, "%d clause(s) asserted.\n", i.kb.Len())
		case strings.HasPrefix(line, "::load "):
			path := strings.TrimSpace(strings.TrimPrefix(line, "::load "))
			if err := i.Load(path); err != nil {
				fmt.Fprintf(i.out, "load failed: %v\n", err)
			}
		default:
			i.Define(line)
		}
	}
}
