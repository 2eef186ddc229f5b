/*
File    : lumen/eval/errors.go
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lumen/lexer"
)

// LexError reports an unrecognized prefix at the lexer cursor. The
// evaluator surfaces this when the parser is unable to make progress
// because the lexer halted.
type LexError struct {
	Pos lexer.Position
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", e.Pos, e.Msg)
}

// ParseError wraps a syntax error with the offending token, surfaced
// up through cmd/lumen and the REPL as "parse error at <pos>: <msg>".
type ParseError struct {
	Tok lexer.Token
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Tok.Pos, e.Msg)
}

// RuntimeError covers type errors, name errors, and internal errors
// raised while executing a parsed program; Pos is the zero value when no
// token position is available (e.g. errors raised deep inside a builtin).
type RuntimeError struct {
	Pos lexer.Position
	Msg string
}

func (e *RuntimeError) Error() string {
	if e.Pos == (lexer.Position{}) {
		return fmt.Sprintf("runtime error: %s", e.Msg)
	}
	return fmt.Sprintf("runtime error at %s: %s", e.Pos, e.Msg)
}

func runtimeErrorf(pos lexer.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
