/*
File    : lumen/ast/expression.go
*/
package ast

import "github.com/akashmaji946/lumen/lexer"

// Number is a numeric literal, already parsed to a float64 by the lexer's
// numeric-literal sub-scanner.
type Number struct {
	Value float64
	Tok   lexer.Token
}

func (*Number) expressionNode() {}

// String is a string literal (short or long form); escapes were already
// resolved by the lexer.
type String struct {
	Value string
	Tok   lexer.Token
}

func (*String) expressionNode() {}

// Identifier is a bare name reference, resolved against Ctx at eval time.
type Identifier struct {
	Name string
	Tok  lexer.Token
}

func (*Identifier) expressionNode() {}

// BinOp is the closed set of binary operators the expression parser can
// produce, spanning the full operator precedence table.
type BinOp string

const (
	OpOr     BinOp = "or"
	OpAnd    BinOp = "and"
	OpLt     BinOp = "<"
	OpGt     BinOp = ">"
	OpLe     BinOp = "<="
	OpGe     BinOp = ">="
	OpEq     BinOp = "=="
	OpNe     BinOp = "~="
	OpConcat BinOp = ".."
	OpAdd    BinOp = "+"
	OpSub    BinOp = "-"
	OpMul    BinOp = "*"
	OpDiv    BinOp = "/"
	OpIDiv   BinOp = "//"
	OpPow    BinOp = "^"
)

// UnOp is the closed set of unary operators: numeric negation and
// logical not.
type UnOp string

const (
	OpNeg UnOp = "-"
	OpNot UnOp = "not"
)

// Binary is a binary operator expression: `lhs op rhs`.
type Binary struct {
	Op  BinOp
	LHS Expression
	RHS Expression
	Tok lexer.Token
}

func (*Binary) expressionNode() {}

// Unary is a unary operator expression: `op arg`.
type Unary struct {
	Op  UnOp
	Arg Expression
	Tok lexer.Token
}

func (*Unary) expressionNode() {}
