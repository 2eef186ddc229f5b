/*
File    : lumen/parser/statements.go
*/
package parser

import (
	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/lexer"
)

// parseStatement tries the eight statement alternatives in order,
// rewinding the lexer cursor between failed attempts. It
// returns matched=false (no error) once every alternative has failed to
// even begin, which is how the caller knows the enclosing block is done.
func (p *Parser) parseStatement() (ast.Statement, bool, error) {
	mark := p.mark()

	if p.at(lexer.KW_LOCAL) {
		return p.parseLocal()
	}

	if stmt, ok, err := p.tryAssignment(); ok || err != nil {
		return stmt, ok, err
	}
	p.reset(mark)

	if p.at(lexer.KW_IF) {
		return p.parseConditional()
	}

	if p.at(lexer.KW_DO) {
		return p.parseDoBlock()
	}

	if stmt, ok, err := p.tryFunctionCallStatement(); ok || err != nil {
		return stmt, ok, err
	}
	p.reset(mark)

	if stmt, ok, err := p.tryMethodCallStatement(); ok || err != nil {
		return stmt, ok, err
	}
	p.reset(mark)

	if p.at(lexer.KW_FUNCTION) {
		return p.parseFunctionDef()
	}

	if p.at(lexer.KW_RETURN) {
		return p.parseReturn()
	}

	return nil, false, nil
}

// parseDoBlock parses `do <block> end`, a bare anonymous block that
// introduces a fresh scope with no other binding or control-flow form.
func (p *Parser) parseDoBlock() (ast.Statement, bool, error) {
	p.advance() // do
	body, err := p.parseNestedBlock()
	if err != nil {
		return nil, true, err
	}
	if _, err := p.expect(lexer.KW_END); err != nil {
		return nil, true, err
	}
	return &ast.Do{Body: body}, true, nil
}

// parseLocal consumes `local`, recursively parses the next statement, and
// requires the result to be an Assignment.
func (p *Parser) parseLocal() (ast.Statement, bool, error) {
	p.advance() // local
	inner, matched, err := p.parseStatement()
	if err != nil {
		return nil, true, err
	}
	if !matched {
		return nil, true, &SyntaxError{Tok: p.cur, Msg: "expected a statement after 'local'"}
	}
	assign, ok := inner.(*ast.Assignment)
	if !ok {
		return nil, true, &SyntaxError{Tok: p.cur, Msg: "'local' may only prefix an assignment"}
	}
	assign.Local = true
	return assign, true, nil
}

// tryAssignment attempts "Identifier {',' Identifier} '=' Expr {',' Expr}".
// It reports matched=false without error if no identifier-list-then-'='
// shape is present, so the caller can try the next alternative.
func (p *Parser) tryAssignment() (ast.Statement, bool, error) {
	save := p.mark()
	var targets []string
	for {
		if !p.at(lexer.IDENTIFIER) {
			p.reset(save)
			return nil, false, nil
		}
		targets = append(targets, p.advance().Literal)
		if p.at(lexer.SEP_COMMA) {
			p.advance()
			continue
		}
		break
	}
	if !p.at(lexer.ASSIGN) {
		p.reset(save)
		return nil, false, nil
	}
	p.advance() // '='

	var values []ast.Expression
	for {
		v, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		values = append(values, v)
		if p.at(lexer.SEP_COMMA) {
			p.advance()
			continue
		}
		break
	}
	return &ast.Assignment{Targets: targets, Values: values}, true, nil
}

// parseConditional parses `if <expr> then <block> (elseif ...)* (else
// ...)? end`.
func (p *Parser) parseConditional() (ast.Statement, bool, error) {
	p.advance() // if
	cond := &ast.Conditional{}

	test, err := p.parseExpression()
	if err != nil {
		return nil, true, err
	}
	if _, err := p.expect(lexer.KW_THEN); err != nil {
		return nil, true, err
	}
	body, err := p.parseNestedBlock()
	if err != nil {
		return nil, true, err
	}
	cond.Arms = append(cond.Arms, ast.Arm{Test: test, Body: body})

	for p.at(lexer.KW_ELSEIF) {
		p.advance()
		t, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		if _, err := p.expect(lexer.KW_THEN); err != nil {
			return nil, true, err
		}
		b, err := p.parseNestedBlock()
		if err != nil {
			return nil, true, err
		}
		cond.Arms = append(cond.Arms, ast.Arm{Test: t, Body: b})
	}

	if p.at(lexer.KW_ELSE) {
		p.advance()
		b, err := p.parseNestedBlock()
		if err != nil {
			return nil, true, err
		}
		cond.Else = b
	}

	if _, err := p.expect(lexer.KW_END); err != nil {
		return nil, true, err
	}
	return cond, true, nil
}

// tryFunctionCallStatement attempts "Identifier '(' ExprList ')'".
func (p *Parser) tryFunctionCallStatement() (ast.Statement, bool, error) {
	save := p.mark()
	if !p.at(lexer.IDENTIFIER) {
		return nil, false, nil
	}
	tok := p.advance()
	if !p.at(lexer.SEP_LPAREN) {
		p.reset(save)
		return nil, false, nil
	}
	p.advance()
	args, err := p.parseExprList(lexer.SEP_RPAREN)
	if err != nil {
		return nil, true, err
	}
	if _, err := p.expect(lexer.SEP_RPAREN); err != nil {
		return nil, true, err
	}
	return &ast.FunctionCall{Name: tok.Literal, Args: args, Tok: tok}, true, nil
}

// tryMethodCallStatement attempts the three method-call shapes:
// "Identifier.Identifier(...)", "<expr>.Identifier(...)", and
// "<expr>:Identifier(...)".
func (p *Parser) tryMethodCallStatement() (ast.Statement, bool, error) {
	save := p.mark()
	recv, ok := p.parseReceiver()
	if !ok {
		return nil, false, nil
	}
	colon := false
	switch {
	case p.at(lexer.SEP_DOT):
		p.advance()
	case p.at(lexer.SEP_COLON):
		p.advance()
		colon = true
	default:
		p.reset(save)
		return nil, false, nil
	}
	if !p.at(lexer.IDENTIFIER) {
		p.reset(save)
		return nil, false, nil
	}
	methodTok := p.advance()
	if !p.at(lexer.SEP_LPAREN) {
		p.reset(save)
		return nil, false, nil
	}
	p.advance()
	args, err := p.parseExprList(lexer.SEP_RPAREN)
	if err != nil {
		return nil, true, err
	}
	if _, err := p.expect(lexer.SEP_RPAREN); err != nil {
		return nil, true, err
	}
	return &ast.MethodCall{Receiver: recv, Method: methodTok.Literal, Args: args, Colon: colon, Tok: methodTok}, true, nil
}

// parseReceiver parses a method-call receiver: a bare identifier or a
// parenthesized expression. Full binary expressions are not valid
// receivers at statement level, matching the prefixexp production the
// reference grammar restricts method-call targets to.
func (p *Parser) parseReceiver() (ast.Expression, bool) {
	if p.at(lexer.IDENTIFIER) {
		tok := p.advance()
		return &ast.Identifier{Name: tok.Literal, Tok: tok}, true
	}
	if p.at(lexer.SEP_LPAREN) {
		save := p.mark()
		p.advance()
		e, err := p.parseExpression()
		if err != nil {
			p.reset(save)
			return nil, false
		}
		if _, err := p.expect(lexer.SEP_RPAREN); err != nil {
			p.reset(save)
			return nil, false
		}
		return e, true
	}
	return nil, false
}

// parseFunctionDef parses `function Identifier '(' ParamList ')' <block> end`.
func (p *Parser) parseFunctionDef() (ast.Statement, bool, error) {
	p.advance() // function
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, true, err
	}
	if _, err := p.expect(lexer.SEP_LPAREN); err != nil {
		return nil, true, err
	}
	params, err := p.parseIdentifierList(lexer.SEP_RPAREN)
	if err != nil {
		return nil, true, err
	}
	if _, err := p.expect(lexer.SEP_RPAREN); err != nil {
		return nil, true, err
	}
	body, err := p.parseNestedBlock()
	if err != nil {
		return nil, true, err
	}
	if _, err := p.expect(lexer.KW_END); err != nil {
		return nil, true, err
	}
	return &ast.FunctionDef{Name: nameTok.Literal, Params: params, Body: body}, true, nil
}

func (p *Parser) parseIdentifierList(closer lexer.TokenType) ([]string, error) {
	var names []string
	if p.at(closer) {
		return names, nil
	}
	for {
		tok, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		names = append(names, tok.Literal)
		if p.at(lexer.SEP_COMMA) {
			p.advance()
			continue
		}
		break
	}
	return names, nil
}

// parseReturn parses `return <expr-list>?`.
func (p *Parser) parseReturn() (ast.Statement, bool, error) {
	p.advance() // return
	ret := &ast.Return{}
	if p.at(lexer.SEP_SEMICOLON) {
		p.advance()
		return ret, true, nil
	}
	if p.blockTerminator() {
		return ret, true, nil
	}
	for {
		v, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		ret.Values = append(ret.Values, v)
		if p.at(lexer.SEP_COMMA) {
			p.advance()
			continue
		}
		break
	}
	if p.at(lexer.SEP_SEMICOLON) {
		p.advance()
	}
	return ret, true, nil
}
