/*
File    : lumen/eval/statements.go
*/
package eval

import (
	"github.com/akashmaji946/lumen/ast"
	"github.com/akashmaji946/lumen/value"
)

// execBlock enters a fresh scope, walks each statement in order, stops
// early once the return slot is set, then leaves the scope. Leaving
// does not consume the return slot — propagating it upward is the
// caller's job.
func (e *Evaluator) execBlock(b *ast.Block) error {
	e.Ctx.EnterBlock()
	defer e.Ctx.LeaveBlock()

	for _, stmt := range b.Statements {
		if err := e.execStatement(stmt); err != nil {
			return err
		}
		if e.Ctx.HasReturn() {
			return nil
		}
	}
	return nil
}

// execStatement dispatches on the closed Statement variant set.
func (e *Evaluator) execStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.Assignment:
		return e.execAssignment(s)
	case *ast.Conditional:
		return e.execConditional(s)
	case *ast.FunctionDef:
		return e.execFunctionDef(s)
	case *ast.FunctionCall:
		_, err := e.evalCallExpr(s)
		return err
	case *ast.MethodCall:
		_, err := e.evalMethodCallExpr(s)
		return err
	case *ast.Return:
		return e.execReturn(s)
	case *ast.Do:
		return e.execBlock(s.Body)
	default:
		return runtimeErrorf(zeroPos, "unsupported statement type %T", stmt)
	}
}

func (e *Evaluator) execAssignment(s *ast.Assignment) error {
	values, err := e.evalExprListMulti(s.Values)
	if err != nil {
		return err
	}
	for i, name := range s.Targets {
		var v value.Value = value.Nil{}
		if i < len(values) {
			v = values[i]
		}
		if s.Local {
			e.Ctx.NewLocal(name, v)
		} else {
			e.Ctx.AssignExisting(name, v)
		}
	}
	return nil
}

func (e *Evaluator) execConditional(s *ast.Conditional) error {
	for _, arm := range s.Arms {
		test, err := e.evalExpression(arm.Test)
		if err != nil {
			return err
		}
		if value.Truthy(test) {
			return e.execBlock(arm.Body)
		}
	}
	if s.Else != nil {
		return e.execBlock(s.Else)
	}
	return nil
}

// execFunctionDef binds Name to a new user function as a global.
// Functions are always global (there is no local-function form);
// inside the body only the parameters and globals are visible, so the
// function reaches itself by name through its global binding.
func (e *Evaluator) execFunctionDef(s *ast.FunctionDef) error {
	fn := &value.Function{Function: &ast.Function{Params: s.Params, Body: s.Body}}
	e.Ctx.NewGlobal(s.Name, fn)
	return nil
}

func (e *Evaluator) execReturn(s *ast.Return) error {
	values, err := e.evalExprListMulti(s.Values)
	if err != nil {
		return err
	}
	e.Ctx.SetReturn(values)
	return nil
}
