/*
File    : lumen/ctx/ctx.go
*/

// Package ctx implements the evaluator's scoped environment: a global
// table, a per-identifier stack of (value, scope level) locals, and a
// return slot consumed at function exit. Scoping is a single flat level
// counter with stale entries pruned on block exit, rather than a linked
// chain of child scopes.
package ctx

import "github.com/akashmaji946/lumen/value"

type localBinding struct {
	val   value.Value
	level int
}

// Context holds all interpreter state threaded through a single
// evaluation run. Multiple Contexts are independent and may be driven
// from separate goroutines provided no Value crosses between them.
type Context struct {
	globals map[string]value.Value
	locals  map[string][]localBinding
	level   int
	retSlot []value.Value
	hasRet  bool
}

// New creates a Context at scope level 0 with empty globals and locals.
func New() *Context {
	return &Context{
		globals: make(map[string]value.Value),
		locals:  make(map[string][]localBinding),
	}
}

// Get resolves name: the top of its local stack if present, else the
// global binding, else Nil.
func (c *Context) Get(name string) value.Value {
	if stack, ok := c.locals[name]; ok && len(stack) > 0 {
		return stack[len(stack)-1].val
	}
	if v, ok := c.globals[name]; ok {
		return v
	}
	return value.Nil{}
}

// NewLocal pushes a fresh local binding for name at the current scope
// level, shadowing any outer binding of the same name.
func (c *Context) NewLocal(name string, v value.Value) {
	c.locals[name] = append(c.locals[name], localBinding{val: v, level: c.level})
}

// NewGlobal overwrites the global binding for name.
func (c *Context) NewGlobal(name string, v value.Value) {
	c.globals[name] = v
}

// AssignExisting rebinds the nearest existing local for name if one
// exists, otherwise sets a global — the `x = e` (non-local) assignment
// rule.
func (c *Context) AssignExisting(name string, v value.Value) {
	if stack, ok := c.locals[name]; ok && len(stack) > 0 {
		stack[len(stack)-1].val = v
		return
	}
	c.globals[name] = v
}

// EnterBlock increments the scope level on block entry.
func (c *Context) EnterBlock() {
	c.level++
}

// LeaveBlock decrements the scope level and discards every local entry
// whose level is above the new (lower) level, i.e. the locals declared at
// the level of the block being left or deeper. It does not touch the
// return slot — reading it is the caller's responsibility.
func (c *Context) LeaveBlock() {
	c.level--
	for name, stack := range c.locals {
		kept := make([]localBinding, 0, len(stack))
		for _, b := range stack {
			if b.level <= c.level {
				kept = append(kept, b)
			}
		}
		if len(kept) == 0 {
			delete(c.locals, name)
		} else {
			c.locals[name] = kept
		}
	}
}

// Level reports the current scope level: 0 before any EnterBlock, so the
// evaluator's top-level block runs at level 1.
func (c *Context) Level() int { return c.level }

// BeginFunction isolates a fresh call frame: it swaps in an empty locals
// map and resets the level counter, returning the previous state for
// EndFunction to restore. A callee sees only its own parameters plus
// globals, never the caller's locals — without this swap, a single
// shared locals map would leave every outer local visible by name
// unless shadowed.
func (c *Context) BeginFunction() (savedLocals map[string][]localBinding, savedLevel int) {
	savedLocals, savedLevel = c.locals, c.level
	c.locals = make(map[string][]localBinding)
	c.level = 0
	return
}

// EndFunction restores the caller's locals and level after a call frame
// isolated by BeginFunction completes.
func (c *Context) EndFunction(savedLocals map[string][]localBinding, savedLevel int) {
	c.locals = savedLocals
	c.level = savedLevel
}

// SetReturn stores values in the return slot, overwriting any prior
// value.
func (c *Context) SetReturn(values []value.Value) {
	c.retSlot = values
	c.hasRet = true
}

// HasReturn reports whether a Return statement has set the return slot
// during the current (innermost still-open) function call.
func (c *Context) HasReturn() bool { return c.hasRet }

// TakeReturn consumes and clears the return slot, used at function exit.
func (c *Context) TakeReturn() []value.Value {
	v := c.retSlot
	c.retSlot = nil
	c.hasRet = false
	return v
}
