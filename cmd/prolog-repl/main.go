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

// Binary prolog-repl is a shell for the interactive interpreter.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/golang/glog"

	"github.com/logicbase/prolog/engine"
	"github.com/logicbase/prolog/interpreter"
	"github.com/logicbase/prolog/parse"
	"github.com/logicbase/prolog/pp"
)

var (
	load  = flag.String("load", "", "comma-separated list of source files to consult before starting")
	exec  = flag.String("exec", "", "if non-empty, runs a single question (without the leading \"?-\") and exits 0/1 on success/failure instead of starting the REPL")
	debug = flag.Bool("debug", false, "enable indented unify/derive trace output")
	out   = flag.String("out", "", "if non-empty, write REPL output to this file instead of stdout")
)

func main() {
	flag.Parse()

	writer := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Exit(err)
		}
		defer f.Close()
		writer = f
	}

	if *debug {
		engine.SetDebug(true)
		// Trace lines are logged at glog verbosity 1; raise it here so
		// -debug alone is enough, without also requiring -v=1.
		flag.Set("v", "1")
	}

	i := interpreter.New(writer)
	for _, path := range strings.Split(*load, ",") {
		if path == "" {
			continue
		}
		if err := i.Load(path); err != nil {
			log.Exitf("error loading %s: %v", path, err)
		}
	}

	if *exec != "" {
		cmd, err := parse.Line("?- " + *exec + ".")
		if err != nil {
			log.Exitf("error parsing query %q: %v", *exec, err)
		}
		q, ok := cmd.(parse.Question)
		if !ok {
			log.Exitf("%q is not a question", *exec)
		}
		ok2, answers, err := engine.Ask(q.Goal, i.KnowledgeBase())
		if !ok2 {
			fmt.Fprintf(writer, "false: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(writer, "true")
		for _, a := range answers {
			fmt.Fprintf(writer, "  %s => %s\n", a.Var.Name, pp.Term(a.Value))
		}
		os.Exit(0)
	}

	if err := i.Loop(); err != io.EOF {
		log.Exit(err)
	}
	os.Exit(0)
}
