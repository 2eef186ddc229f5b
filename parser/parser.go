/*
File    : lumen/parser/parser.go
*/

// Package parser turns a lexer.Lexer token stream into an ast.Block. It
// combines a recursive-descent statement parser with a shunting-yard
// expression parser, rewinding the lexer cursor between failed statement
// alternatives.
package parser

import (
	"fmt"

	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/lexer"
)

// SyntaxError reports a parse failure with the offending token.
type SyntaxError struct {
	Tok lexer.Token
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s (%q): %s", e.Tok.Pos, e.Tok.Literal, e.Msg)
}

// Parser drives a Lexer one token of lookahead at a time.
type Parser struct {
	lex      *lexer.Lexer
	cur      lexer.Token
	warnings []string
}

// New creates a Parser over source text.
func New(source string) *Parser {
	p := &Parser{lex: lexer.New(source)}
	p.cur = p.lex.NextToken()
	return p
}

// checkpoint is a rewind point covering both the lexer cursor and the
// one-token lookahead buffer.
type checkpoint struct {
	lex lexer.Checkpoint
	cur lexer.Token
}

func (p *Parser) mark() checkpoint {
	return checkpoint{lex: p.lex.Checkpoint(), cur: p.cur}
}

func (p *Parser) reset(c checkpoint) {
	p.lex.Restore(c.lex)
	p.cur = c.cur
}

// advance returns the current token and moves the lookahead forward.
func (p *Parser) advance() lexer.Token {
	tok := p.cur
	p.cur = p.lex.NextToken()
	return tok
}

func (p *Parser) at(t lexer.TokenType) bool {
	return p.cur.Type == t
}

// expect consumes the current token if it has type t, else returns a
// SyntaxError.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	if !p.at(t) {
		return p.cur, &SyntaxError{Tok: p.cur, Msg: fmt.Sprintf("expected %s", t)}
	}
	return p.advance(), nil
}

// Parse parses source into a root Block. Tokens left over after the block
// is consumed are recorded as warnings, not errors, on the Parser that
// Parse creates internally; that Parser is not returned, so callers of
// Parse do not see the warnings. A leftover INVALID token (an unknown
// prefix the lexer halted on) is a SyntaxError instead.
func Parse(source string) (*ast.Block, error) {
	p := New(source)
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if block == nil {
		block = &ast.Block{}
	}
	for !p.at(lexer.EOF) {
		if p.at(lexer.INVALID) {
			// The halted lexer keeps returning the same INVALID token, so
			// it cannot be skipped like other leftovers.
			return nil, &SyntaxError{Tok: p.cur, Msg: "unrecognized token"}
		}
		p.warnings = append(p.warnings, fmt.Sprintf("unconsumed token %s", p.cur))
		p.advance()
	}
	return block, nil
}

// Warnings returns the leftover-token warnings recorded on p. Only the
// package function Parse records them, on its own internal Parser, so
// for a Parser obtained from New the list is empty.
func (p *Parser) Warnings() []string { return p.warnings }

// parseBlock is a maximal sequence of statements; it returns (nil, nil)
// when the first statement attempt fails (an empty block).
func (p *Parser) parseBlock() (*ast.Block, error) {
	block := &ast.Block{}
	for {
		stmt, matched, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if !matched {
			break
		}
		block.Statements = append(block.Statements, stmt)
	}
	if len(block.Statements) == 0 {
		return nil, nil
	}
	return block, nil
}

// blockTerminator reports whether the current token ends an enclosing
// block (used by parseBlock callers that parse a nested block up to
// `end`/`elseif`/`else`/`until`).
func (p *Parser) blockTerminator() bool {
	switch p.cur.Type {
	case lexer.KW_END, lexer.KW_ELSE, lexer.KW_ELSEIF, lexer.KW_UNTIL, lexer.EOF:
		return true
	}
	return false
}

// parseNestedBlock parses statements until a block terminator keyword or
// EOF is reached; used for `then`/`else`/function bodies.
func (p *Parser) parseNestedBlock() (*ast.Block, error) {
	block := &ast.Block{}
	for !p.blockTerminator() {
		stmt, matched, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if !matched {
			break
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}
