/*
File    : lumen/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTypes(src string) []TokenType {
	lex := New(src)
	var types []TokenType
	for {
		tok := lex.NextToken()
		if tok.Type == EOF {
			break
		}
		types = append(types, tok.Type)
	}
	return types
}

func TestNextToken_OperatorsAndLiterals(t *testing.T) {
	types := tokenTypes(`local x = 1 + 2 * 3 - 4 / 5`)
	assert.Equal(t, []TokenType{
		KW_LOCAL, IDENTIFIER, ASSIGN, NUMBER_LIT, OP_PLUS, NUMBER_LIT,
		OP_STAR, NUMBER_LIT, OP_MINUS, NUMBER_LIT, OP_SLASH, NUMBER_LIT,
	}, types)
}

func TestNextToken_TwoCharOperatorsNotMisSplit(t *testing.T) {
	types := tokenTypes(`a == b ~= c <= d >= e // f`)
	assert.Equal(t, []TokenType{
		IDENTIFIER, OP_EQ, IDENTIFIER, OP_NE, IDENTIFIER, OP_LE, IDENTIFIER,
		OP_GE, IDENTIFIER, OP_IDIV, IDENTIFIER,
	}, types)
}

func TestNextToken_KeywordsNotIdentifiers(t *testing.T) {
	types := tokenTypes(`if andy then end`)
	// "andy" must lex as an identifier, not as "and" + "y".
	assert.Equal(t, []TokenType{KW_IF, IDENTIFIER, KW_THEN, KW_END}, types)
}

func TestNextToken_ShortStringEscapes(t *testing.T) {
	lex := New(`"a\nb\tc"`)
	tok := lex.NextToken()
	assert.Equal(t, STRING_LIT, tok.Type)
	assert.Equal(t, "a\nb\tc", tok.Literal)
}

func TestNextToken_LongBracketString(t *testing.T) {
	lex := New("[[hello\nworld]]")
	tok := lex.NextToken()
	assert.Equal(t, STRING_LIT, tok.Type)
	assert.Equal(t, LongString, tok.StringKind)
	assert.Equal(t, "hello\nworld", tok.Literal)
}

func TestNextToken_LineComment(t *testing.T) {
	types := tokenTypes("1 -- trailing comment\n+ 2")
	assert.Equal(t, []TokenType{NUMBER_LIT, OP_PLUS, NUMBER_LIT}, types)
}

func TestNextToken_BlockComment(t *testing.T) {
	types := tokenTypes("1 --[[ spans\nmultiple lines ]] + 2")
	assert.Equal(t, []TokenType{NUMBER_LIT, OP_PLUS, NUMBER_LIT}, types)
}

func TestNextToken_HexNumber(t *testing.T) {
	lex := New("0x1F")
	tok := lex.NextToken()
	assert.Equal(t, NUMBER_LIT, tok.Type)
	assert.Equal(t, "0x1F", tok.Literal)
}

func TestNextToken_ShebangStripped(t *testing.T) {
	types := tokenTypes("#!/usr/bin/env lumen\nprint(1)")
	assert.Equal(t, []TokenType{IDENTIFIER, SEP_LPAREN, NUMBER_LIT, SEP_RPAREN}, types)
}

func TestNextToken_UnknownPrefixIsInvalid(t *testing.T) {
	lex := New("@")
	tok := lex.NextToken()
	assert.Equal(t, INVALID, tok.Type)
}

func TestCheckpointRestore(t *testing.T) {
	lex := New("abc def")
	first := lex.NextToken()
	assert.Equal(t, "abc", first.Literal)

	cp := lex.Checkpoint()
	second := lex.NextToken()
	assert.Equal(t, "def", second.Literal)

	lex.Restore(cp)
	again := lex.NextToken()
	assert.Equal(t, "def", again.Literal)
}
