/*
File    : lumen/eval/evaluator.go
*/

// Package eval is the tree-walking evaluator: statement execution and
// expression evaluation dispatched over the ast package's closed
// variants, plus the function call protocol and prelude built-ins.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/ctx"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/value"
)

// Evaluator bundles the scoped environment with the I/O streams the
// prelude built-ins write to and read from. Tests substitute buffers for
// Writer/Reader to assert on program output without touching the real
// console.
type Evaluator struct {
	Ctx    *ctx.Context
	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an Evaluator wired to the real console and installs the
// prelude built-ins into a fresh Context.
func New() *Evaluator {
	e := &Evaluator{
		Ctx:    ctx.New(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
	installPrelude(e)
	return e
}

// SetWriter redirects built-in output, primarily for tests.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects io.read's input source, primarily for tests.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// SetArgs installs the `arg` global table per the added script-arguments
// contract: arg[0] is the script path, arg[1..] the trailing CLI args.
func (e *Evaluator) SetArgs(path string, rest []string) {
	t := value.NewTable()
	_ = t.Set(value.Number(0), value.String(path))
	for i, a := range rest {
		_ = t.Set(value.Number(i+1), value.String(a))
	}
	e.Ctx.NewGlobal("arg", t)
}

// Run parses source and walks the resulting block to completion,
// returning any values left in the top-level return slot (a top-level
// `return` is legal and simply ends the run early).
func (e *Evaluator) Run(source string) ([]value.Value, error) {
	block, err := parseSource(source)
	if err != nil {
		return nil, err
	}
	if err := e.execBlock(block); err != nil {
		return nil, err
	}
	if e.Ctx.HasReturn() {
		return e.Ctx.TakeReturn(), nil
	}
	return nil, nil
}

// parseSource drives the parser and reclassifies its error, if any, into
// a LexError or ParseError depending on whether the offending token is an
// INVALID token from the lexer; the parser package itself only raises
// SyntaxError.
func parseSource(source string) (*ast.Block, error) {
	block, err := parser.Parse(source)
	if err != nil {
		se, ok := err.(*parser.SyntaxError)
		if !ok {
			return nil, err
		}
		if se.Tok.Type == lexer.INVALID {
			return nil, &LexError{Pos: se.Tok.Pos, Msg: "unrecognized token " + se.Tok.Literal}
		}
		return nil, &ParseError{Tok: se.Tok, Msg: se.Msg}
	}
	return block, nil
}
