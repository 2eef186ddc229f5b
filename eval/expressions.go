/*
File    : lumen/eval/expressions.go
*/
package eval

import (
	"math"

	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/value"
)

var zeroPos lexer.Position

// evalExpression dispatches on the closed Expression variant set.
func (e *Evaluator) evalExpression(expr ast.Expression) (value.Value, error) {
	switch x := expr.(type) {
	case *ast.Number:
		return value.Number(x.Value), nil
	case *ast.String:
		return value.String(x.Value), nil
	case *ast.Identifier:
		return e.Ctx.Get(x.Name), nil
	case *ast.Binary:
		return e.evalBinary(x)
	case *ast.Unary:
		return e.evalUnary(x)
	case *ast.FunctionCall:
		return e.evalCallExpr(x)
	case *ast.MethodCall:
		return e.evalMethodCallExpr(x)
	default:
		return nil, runtimeErrorf(zeroPos, "unsupported expression type %T", expr)
	}
}

func (e *Evaluator) evalBinary(b *ast.Binary) (value.Value, error) {
	// Logical operators short-circuit and must not evaluate rhs eagerly.
	switch b.Op {
	case ast.OpOr:
		lhs, err := e.evalExpression(b.LHS)
		if err != nil {
			return nil, err
		}
		if value.Truthy(lhs) {
			return lhs, nil
		}
		return e.evalExpression(b.RHS)
	case ast.OpAnd:
		lhs, err := e.evalExpression(b.LHS)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(lhs) {
			return lhs, nil
		}
		return e.evalExpression(b.RHS)
	}

	lhs, err := e.evalExpression(b.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := e.evalExpression(b.RHS)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case ast.OpEq:
		return value.Bool(value.Equal(lhs, rhs)), nil
	case ast.OpNe:
		return value.Bool(!value.Equal(lhs, rhs)), nil
	case ast.OpConcat:
		ls, ok := value.AsString(lhs)
		if !ok {
			return nil, runtimeErrorf(b.Tok.Pos, "cannot concatenate a %s value", lhs.Kind())
		}
		rs, ok := value.AsString(rhs)
		if !ok {
			return nil, runtimeErrorf(b.Tok.Pos, "cannot concatenate a %s value", rhs.Kind())
		}
		return value.String(ls + rs), nil
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		ln, ok := value.AsNumber(lhs)
		if !ok {
			return nil, runtimeErrorf(b.Tok.Pos, "attempt to compare a %s value", lhs.Kind())
		}
		rn, ok := value.AsNumber(rhs)
		if !ok {
			return nil, runtimeErrorf(b.Tok.Pos, "attempt to compare a %s value", rhs.Kind())
		}
		switch b.Op {
		case ast.OpLt:
			return value.Bool(ln < rn), nil
		case ast.OpGt:
			return value.Bool(ln > rn), nil
		case ast.OpLe:
			return value.Bool(ln <= rn), nil
		default:
			return value.Bool(ln >= rn), nil
		}
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpIDiv, ast.OpPow:
		ln, ok := value.AsNumber(lhs)
		if !ok {
			return nil, runtimeErrorf(b.Tok.Pos, "attempt to perform arithmetic on a %s value", lhs.Kind())
		}
		rn, ok := value.AsNumber(rhs)
		if !ok {
			return nil, runtimeErrorf(b.Tok.Pos, "attempt to perform arithmetic on a %s value", rhs.Kind())
		}
		switch b.Op {
		case ast.OpAdd:
			return value.Number(ln + rn), nil
		case ast.OpSub:
			return value.Number(ln - rn), nil
		case ast.OpMul:
			return value.Number(ln * rn), nil
		case ast.OpDiv:
			return value.Number(ln / rn), nil
		case ast.OpIDiv:
			return value.Number(math.Floor(ln / rn)), nil
		default: // OpPow
			return value.Number(math.Pow(ln, rn)), nil
		}
	default:
		return nil, runtimeErrorf(b.Tok.Pos, "unsupported operator %s", b.Op)
	}
}

func (e *Evaluator) evalUnary(u *ast.Unary) (value.Value, error) {
	arg, err := e.evalExpression(u.Arg)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case ast.OpNot:
		return value.Bool(!value.Truthy(arg)), nil
	case ast.OpNeg:
		n, ok := value.AsNumber(arg)
		if !ok {
			return nil, runtimeErrorf(u.Tok.Pos, "attempt to perform arithmetic on a %s value", arg.Kind())
		}
		return value.Number(-n), nil
	default:
		return nil, runtimeErrorf(u.Tok.Pos, "unsupported operator %s", u.Op)
	}
}

// firstValue collapses a RetVals down to its first element (or Nil if
// empty); every other Value passes through unchanged. Used for all but
// the last position of an expression list, per the Lua rule that only
// the final expression in a list expands to multiple values.
func firstValue(v value.Value) value.Value {
	if rv, ok := v.(value.RetVals); ok {
		if len(rv) == 0 {
			return value.Nil{}
		}
		return rv[0]
	}
	return v
}

// evalExprListMulti evaluates exprs left to right, truncating every
// position but the last to a single value and flattening RetVals out of
// the last position. This single helper realizes the "last position
// expands, others don't" rule shared by assignment RHS lists, return
// value lists, and call argument lists.
func (e *Evaluator) evalExprListMulti(exprs []ast.Expression) ([]value.Value, error) {
	var out []value.Value
	for i, expr := range exprs {
		v, err := e.evalExpression(expr)
		if err != nil {
			return nil, err
		}
		if i == len(exprs)-1 {
			if rv, ok := v.(value.RetVals); ok {
				out = append(out, value.Flatten(rv)...)
				continue
			}
		}
		out = append(out, firstValue(v))
	}
	return out, nil
}
