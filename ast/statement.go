/*
File    : lumen/ast/statement.go
*/
package ast

import "github.com/akashmaji946/lumen/lexer"

// Assignment covers both `local x = e` and `x = e` forms, and their
// multi-target variants. Local is set when the statement was prefixed by
// the `local` keyword.
type Assignment struct {
	Targets []string
	Values  []Expression
	Local   bool
}

func (*Assignment) statementNode() {}

// Arm is one `<expr> then <block>` branch of a Conditional.
type Arm struct {
	Test Expression
	Body *Block
}

// Conditional is `if ... then ... (elseif ... then ...)* (else ...)? end`.
type Conditional struct {
	Arms []Arm
	Else *Block // nil if no else clause
}

func (*Conditional) statementNode() {}

// FunctionDef binds Name to a new user function in globals.
type FunctionDef struct {
	Name   string
	Params []string
	Body   *Block
}

func (*FunctionDef) statementNode() {}

// FunctionCall as a statement: the call is made for effect and its
// result discarded.
type FunctionCall struct {
	Name string
	Args []Expression
	Tok  lexer.Token // the identifier token, for runtime error reporting
}

func (*FunctionCall) statementNode() {}
func (*FunctionCall) expressionNode() {}

// MethodCall as a statement or expression: `receiver.method(args)` or
// `receiver:method(args)`. Colon indicates the colon-call form, which
// implicitly prepends Receiver to Args at call time.
type MethodCall struct {
	Receiver Expression
	Method   string
	Args     []Expression
	Colon    bool
	Tok      lexer.Token // the method-name token, for runtime error reporting
}

func (*MethodCall) statementNode() {}
func (*MethodCall) expressionNode() {}

// Return evaluates Values and stores them in the enclosing function's
// return slot.
type Return struct {
	Values []Expression
}

func (*Return) statementNode() {}

// Do is a bare `do ... end` anonymous block: it introduces a fresh
// scope without any of the control-flow or binding forms that also
// carry a nested block (Conditional, FunctionDef).
type Do struct {
	Body *Block
}

func (*Do) statementNode() {}
