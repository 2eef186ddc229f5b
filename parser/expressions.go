/*
File    : lumen/parser/expressions.go
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/lexer"
)

// stackEntry is one pending operator on the shunting-yard operator
// stack: either a unary prefix operator or a binary infix operator.
type stackEntry struct {
	isUnary    bool
	unop       ast.UnOp
	binop      ast.BinOp
	prec       int
	rightAssoc bool
	tok        lexer.Token
}

// binOpInfo is the operator precedence table, ranked lowest (0) to
// highest (7); unary `not`/`-` occupy rank 6 and are handled separately
// since they are prefix, not infix.
func binOpInfo(t lexer.TokenType) (ast.BinOp, int, bool, bool) {
	switch t {
	case lexer.KW_OR:
		return ast.OpOr, 0, false, true
	case lexer.KW_AND:
		return ast.OpAnd, 1, false, true
	case lexer.OP_LT:
		return ast.OpLt, 2, false, true
	case lexer.OP_GT:
		return ast.OpGt, 2, false, true
	case lexer.OP_LE:
		return ast.OpLe, 2, false, true
	case lexer.OP_GE:
		return ast.OpGe, 2, false, true
	case lexer.OP_EQ:
		return ast.OpEq, 2, false, true
	case lexer.OP_NE:
		return ast.OpNe, 2, false, true
	case lexer.OP_CONCAT:
		return ast.OpConcat, 3, true, true
	case lexer.OP_PLUS:
		return ast.OpAdd, 4, false, true
	case lexer.OP_MINUS:
		return ast.OpSub, 4, false, true
	case lexer.OP_STAR:
		return ast.OpMul, 5, false, true
	case lexer.OP_SLASH:
		return ast.OpDiv, 5, false, true
	case lexer.OP_IDIV:
		return ast.OpIDiv, 5, false, true
	case lexer.OP_POW:
		return ast.OpPow, 7, true, true
	}
	return "", 0, false, false
}

// parseExpression runs a shunting-yard algorithm over two stacks
// (operands, operators), folding on precedence as each new operator
// arrives, folding everything once no further operator continues the
// expression. Parenthesized sub-expressions are handled by recursion
// inside parseOperand rather than an explicit '(' sentinel — both
// render the same trees, and recursion is the idiomatic Go shape — and
// the loop stops (without error) at a ')'/','/keyword it does not own;
// the caller is responsible for consuming that closing token.
func (p *Parser) parseExpression() (ast.Expression, error) {
	var operands []ast.Expression
	var operators []stackEntry
	expectOperand := true

	fold := func() error {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.isUnary {
			if len(operands) < 1 {
				return &SyntaxError{Tok: top.tok, Msg: "operator with no operand"}
			}
			arg := operands[len(operands)-1]
			operands = operands[:len(operands)-1]
			operands = append(operands, &ast.Unary{Op: top.unop, Arg: arg, Tok: top.tok})
			return nil
		}
		if len(operands) < 2 {
			return &SyntaxError{Tok: top.tok, Msg: "operator missing an operand"}
		}
		rhs := operands[len(operands)-1]
		lhs := operands[len(operands)-2]
		operands = operands[:len(operands)-2]
		operands = append(operands, &ast.Binary{Op: top.binop, LHS: lhs, RHS: rhs, Tok: top.tok})
		return nil
	}

	for {
		if expectOperand {
			// Unary minus/not: disambiguated by being exactly where an
			// operand is expected (start of expression, after '(', or
			// right after another operator), tracked via expectOperand.
			if p.at(lexer.OP_MINUS) || p.at(lexer.KW_NOT) {
				tok := p.advance()
				op := ast.OpNeg
				if tok.Type == lexer.KW_NOT {
					op = ast.OpNot
				}
				operators = append(operators, stackEntry{isUnary: true, unop: op, prec: 6, rightAssoc: true, tok: tok})
				continue
			}
			operand, err := p.parseOperand()
			if err != nil {
				return nil, err
			}
			operands = append(operands, operand)
			expectOperand = false
			continue
		}

		binop, prec, rightAssoc, ok := binOpInfo(p.cur.Type)
		if !ok {
			break
		}
		tok := p.advance()
		for len(operators) > 0 {
			top := operators[len(operators)-1]
			fires := top.prec >= prec
			if rightAssoc {
				fires = top.prec > prec
			}
			if !fires {
				break
			}
			if err := fold(); err != nil {
				return nil, err
			}
		}
		operators = append(operators, stackEntry{binop: binop, prec: prec, rightAssoc: rightAssoc, tok: tok})
		expectOperand = true
	}

	if expectOperand {
		return nil, &SyntaxError{Tok: p.cur, Msg: "expected an expression"}
	}
	for len(operators) > 0 {
		if err := fold(); err != nil {
			return nil, err
		}
	}
	if len(operands) != 1 {
		return nil, &SyntaxError{Tok: p.cur, Msg: "malformed expression"}
	}
	return operands[0], nil
}

// parseOperand parses one of: numeric literal, string literal, identifier,
// function call, method call (dot or colon form, possibly chained), or a
// parenthesized sub-expression.
func (p *Parser) parseOperand() (ast.Expression, error) {
	switch {
	case p.at(lexer.NUMBER_LIT):
		tok := p.advance()
		n, err := parseNumber(tok.Literal)
		if err != nil {
			return nil, &SyntaxError{Tok: tok, Msg: err.Error()}
		}
		return &ast.Number{Value: n, Tok: tok}, nil

	case p.at(lexer.STRING_LIT):
		tok := p.advance()
		return &ast.String{Value: tok.Literal, Tok: tok}, nil

	case p.at(lexer.IDENTIFIER):
		tok := p.advance()
		var base ast.Expression
		if p.at(lexer.SEP_LPAREN) {
			p.advance()
			args, err := p.parseExprList(lexer.SEP_RPAREN)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.SEP_RPAREN); err != nil {
				return nil, err
			}
			base = &ast.FunctionCall{Name: tok.Literal, Args: args, Tok: tok}
		} else {
			base = &ast.Identifier{Name: tok.Literal, Tok: tok}
		}
		return p.parsePostfixCalls(base)

	case p.at(lexer.SEP_LPAREN):
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEP_RPAREN); err != nil {
			return nil, err
		}
		return p.parsePostfixCalls(inner)

	default:
		return nil, &SyntaxError{Tok: p.cur, Msg: "expected an expression"}
	}
}

// parsePostfixCalls folds zero or more trailing `.method(args)` /
// `:method(args)` method-call forms onto base, letting MethodCall
// participate in the expression grammar as a postfix operand.
func (p *Parser) parsePostfixCalls(base ast.Expression) (ast.Expression, error) {
	for p.at(lexer.SEP_DOT) || p.at(lexer.SEP_COLON) {
		colon := p.at(lexer.SEP_COLON)
		p.advance()
		methodTok, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEP_LPAREN); err != nil {
			return nil, err
		}
		args, err := p.parseExprList(lexer.SEP_RPAREN)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEP_RPAREN); err != nil {
			return nil, err
		}
		base = &ast.MethodCall{Receiver: base, Method: methodTok.Literal, Args: args, Colon: colon, Tok: methodTok}
	}
	return base, nil
}

// parseExprList parses a comma-separated expression list up to (but not
// consuming) closer, returning an empty slice if closer comes first.
func (p *Parser) parseExprList(closer lexer.TokenType) ([]ast.Expression, error) {
	var exprs []ast.Expression
	if p.at(closer) {
		return exprs, nil
	}
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.at(lexer.SEP_COMMA) {
			p.advance()
			continue
		}
		break
	}
	return exprs, nil
}

// parseNumber converts a lexer numeric-literal span (decimal or hex) to
// a float64.
func parseNumber(lit string) (float64, error) {
	if len(lit) > 1 && lit[0] == '0' && (lit[1] == 'x' || lit[1] == 'X') {
		return parseHexNumber(lit)
	}
	return strconv.ParseFloat(lit, 64)
}

// parseHexNumber handles 0x[hex](.[hex])?([pP][+-]?[0-9]+)? hexadecimal
// float literals. Go's strconv.ParseFloat accepts the same "0x1.8p3"
// syntax for floats but requires a 'p' exponent to treat it as a float
// literal and rejects bare hex integers like "0x1F"; we special-case the
// pure-integer form and defer to strconv for anything with a fraction or
// exponent.
func parseHexNumber(lit string) (float64, error) {
	if !strings.ContainsAny(lit, ".pP") {
		n, err := strconv.ParseUint(lit[2:], 16, 64)
		if err != nil {
			return 0, err
		}
		return float64(n), nil
	}
	body := lit
	if !strings.ContainsAny(body, "pP") {
		body += "p0"
	}
	return strconv.ParseFloat(body, 64)
}
