/*
File    : lumen/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop for the
// Lumen interpreter: one line of source in, one evaluation against a
// persistent Evaluator out, with readline-backed history/editing and
// colored diagnostics.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/lumen/eval"
	"github.com/akashmaji946/lumen/value"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner/version/prompt configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a line of source and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against reader/writer until the user
// exits (`.exit`) or EOF is reached (Ctrl+D). State persists across
// lines in a single *eval.Evaluator — globals set in one line remain
// visible in the next.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)
	evaluator.SetReader(reader)
	evaluator.SetArgs("", nil)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.evalWithRecovery(writer, line, evaluator)
	}
}

// evalWithRecovery runs one line through the evaluator, converting any
// lex/parse/runtime error or unexpected panic into a red diagnostic
// instead of aborting the session (unlike file-mode execution).
func (r *Repl) evalWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", recovered)
		}
	}()

	results, err := evaluator.Run(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if len(results) > 0 {
		yellowColor.Fprintf(writer, "%s\n", value.Pack(results).String())
	}
}
