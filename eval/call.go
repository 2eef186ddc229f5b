/*
File    : lumen/eval/call.go
*/
package eval

import (
	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/value"
)

// evalCallExpr resolves a bare FunctionCall `name(args)`, used both as a
// statement (result discarded) and as an expression operand.
func (e *Evaluator) evalCallExpr(c *ast.FunctionCall) (value.Value, error) {
	callee := e.Ctx.Get(c.Name)
	fn, ok := callee.(*value.Function)
	if !ok {
		return nil, runtimeErrorf(c.Tok.Pos, "attempt to call a %s value (global %q)", callee.Kind(), c.Name)
	}
	args, err := e.evalExprListMulti(c.Args)
	if err != nil {
		return nil, err
	}
	return e.callFunction(fn, args)
}

// evalMethodCallExpr dispatches table-method calls: the receiver must
// evaluate to a Table, the named field must be a Function.
// Colon-form calls prepend the receiver value itself to the argument
// list; dot-form calls do not.
func (e *Evaluator) evalMethodCallExpr(m *ast.MethodCall) (value.Value, error) {
	recv, err := e.evalExpression(m.Receiver)
	if err != nil {
		return nil, err
	}
	table, ok := recv.(*value.Table)
	if !ok {
		return nil, runtimeErrorf(m.Tok.Pos, "attempt to index a %s value", recv.Kind())
	}
	method := table.Get(value.String(m.Method))
	fn, ok := method.(*value.Function)
	if !ok {
		return nil, runtimeErrorf(m.Tok.Pos, "attempt to call a %s value (method %q)", method.Kind(), m.Method)
	}
	args, err := e.evalExprListMulti(m.Args)
	if err != nil {
		return nil, err
	}
	if m.Colon {
		args = append([]value.Value{recv}, args...)
	}
	return e.callFunction(fn, args)
}

// callFunction binds arguments to parameters, runs the body (or invokes
// the host callback for a builtin), and packages the result.
func (e *Evaluator) callFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	if fn.IsBuiltin() {
		results, err := fn.Builtin(args)
		if err != nil {
			return nil, err
		}
		return value.Pack(results), nil
	}

	savedLocals, savedLevel := e.Ctx.BeginFunction()
	defer e.Ctx.EndFunction(savedLocals, savedLevel)

	e.Ctx.EnterBlock()
	for i, name := range fn.Params {
		var v value.Value = value.Nil{}
		if i < len(args) {
			v = args[i]
		}
		e.Ctx.NewLocal(name, v)
	}
	err := e.execBlock(fn.Body)
	ret := e.Ctx.TakeReturn()
	e.Ctx.LeaveBlock()
	if err != nil {
		return nil, err
	}
	return value.Pack(ret), nil
}
