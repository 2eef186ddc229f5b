/*
File    : lumen/cmd/lumen/main.go
*/

// Command lumen is the entry point for the interpreter: with no
// arguments it starts the REPL; with a path argument it executes that
// file, forwarding any further arguments as the script's `arg` table.
// There are no flags.
package main

import (
	"os"

	"github.com/akashmaji946/lumen/eval"
	"github.com/akashmaji946/lumen/repl"
	"github.com/fatih/color"
)

const (
	version = "v0.1.0"
	author  = "lumen"
	license = "MIT"
	prompt  = "lumen >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   ____       __  __ ____  _  __
  / __ \___  /  \/  / __ \| |/ /
 / / / / _ \/ /\/ / / / /|   /
/ /_/ /  __/ /  / / /_/ /   |
\____/\___/_/  /_/\____/_/|_|
`
)

var (
	redColor = color.New(color.FgRed)
)

func main() {
	if len(os.Args) > 1 {
		runFile(os.Args[1], os.Args[2:])
		return
	}
	r := repl.NewRepl(banner, version, author, line, license, prompt)
	r.Start(os.Stdin, os.Stdout)
}

// runFile executes path to completion, exiting 0 on success and
// non-zero on any lex/parse/runtime error.
func runFile(path string, rest []string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[file error] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	e := eval.New()
	e.SetArgs(path, rest)

	if _, err := e.Run(string(source)); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
