/*
File    : lumen/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/lumen/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := New(src)
	e, err := p.parseExpression()
	require.NoError(t, err)
	return e
}

func TestPrecedence_AddBeforeMul(t *testing.T) {
	e := parseExpr(t, "1 + 2 * 3")
	bin, ok := e.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
	rhs, ok := bin.RHS.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, rhs.Op)
}

func TestPrecedence_PowIsRightAssociative(t *testing.T) {
	e := parseExpr(t, "2 ^ 3 ^ 2")
	bin, ok := e.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, bin.Op)
	lhs, ok := bin.LHS.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 2.0, lhs.Value)
	rhs, ok := bin.RHS.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpPow, rhs.Op)
}

func TestPrecedence_UnaryMinusBindsTighterThanAddButNotPow(t *testing.T) {
	e := parseExpr(t, "-2^2")
	un, ok := e.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, ast.OpNeg, un.Op)
	_, ok = un.Arg.(*ast.Binary)
	require.True(t, ok, "-2^2 must parse as -(2^2)")
}

func TestPrecedence_SubtractionIsLeftAssociative(t *testing.T) {
	e := parseExpr(t, "1 - 2 - 3")
	outer, ok := e.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpSub, outer.Op)
	inner, ok := outer.LHS.(*ast.Binary)
	require.True(t, ok, "1-2-3 must parse as (1-2)-3")
	assert.Equal(t, ast.OpSub, inner.Op)
}

func TestParse_Assignment(t *testing.T) {
	block, err := Parse("local a, b = 1, 2")
	require.NoError(t, err)
	require.Len(t, block.Statements, 1)
	assign, ok := block.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	assert.True(t, assign.Local)
	assert.Equal(t, []string{"a", "b"}, assign.Targets)
	assert.Len(t, assign.Values, 2)
}

func TestParse_Conditional(t *testing.T) {
	block, err := Parse(`if 1 < 2 then print("yes") else print("no") end`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 1)
	cond, ok := block.Statements[0].(*ast.Conditional)
	require.True(t, ok)
	require.Len(t, cond.Arms, 1)
	require.NotNil(t, cond.Else)
}

func TestParse_FunctionDefAndCall(t *testing.T) {
	block, err := Parse(`function f(x) return x * x end print(f(4))`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 2)
	def, ok := block.Statements[0].(*ast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "f", def.Name)
	assert.Equal(t, []string{"x"}, def.Params)
	call, ok := block.Statements[1].(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "print", call.Name)
}

func TestParse_MethodCallDotForm(t *testing.T) {
	block, err := Parse(`io.write("x")`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 1)
	mc, ok := block.Statements[0].(*ast.MethodCall)
	require.True(t, ok)
	assert.Equal(t, "write", mc.Method)
	assert.False(t, mc.Colon)
}

func TestParse_MethodCallColonForm(t *testing.T) {
	block, err := Parse(`obj:method(1, 2)`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 1)
	mc, ok := block.Statements[0].(*ast.MethodCall)
	require.True(t, ok)
	assert.Equal(t, "method", mc.Method)
	assert.True(t, mc.Colon)
	assert.Len(t, mc.Args, 2)
}

func TestParse_DoBlock(t *testing.T) {
	block, err := Parse(`local x = 1
do
  local x = 2
end
print(x)`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 3)
	do, ok := block.Statements[1].(*ast.Do)
	require.True(t, ok)
	require.Len(t, do.Body.Statements, 1)
	_, ok = block.Statements[2].(*ast.FunctionCall)
	require.True(t, ok, "print(x) after the do-block must still parse")
}

func TestParse_Return(t *testing.T) {
	block, err := Parse(`function f() return 1, 2, 3 end`)
	require.NoError(t, err)
	def := block.Statements[0].(*ast.FunctionDef)
	require.Len(t, def.Body.Statements, 1)
	ret, ok := def.Body.Statements[0].(*ast.Return)
	require.True(t, ok)
	assert.Len(t, ret.Values, 3)
}

func TestParse_ErrorOnUnmatchedEnd(t *testing.T) {
	_, err := Parse(`if 1 < 2 then print("x")`)
	assert.Error(t, err)
}
