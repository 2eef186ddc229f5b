/*
File    : lumen/ctx/ctx_test.go
*/
package ctx

import (
	"testing"

	"github.com/akashmaji946/lumen/value"
	"github.com/stretchr/testify/assert"
)

func TestGet_LocalShadowsGlobal(t *testing.T) {
	c := New()
	c.NewGlobal("x", value.Number(1))
	c.EnterBlock()
	c.NewLocal("x", value.Number(2))
	assert.Equal(t, value.Value(value.Number(2)), c.Get("x"))
	c.LeaveBlock()
	assert.Equal(t, value.Value(value.Number(1)), c.Get("x"))
}

func TestLeaveBlock_DiscardsLocalsAtOrAboveLevel(t *testing.T) {
	c := New()
	c.EnterBlock() // level 1
	c.NewLocal("a", value.Number(1))
	c.EnterBlock() // level 2
	c.NewLocal("b", value.Number(2))
	c.LeaveBlock() // back to level 1, b discarded
	assert.Equal(t, value.Value(value.Nil{}), c.Get("b"))
	assert.Equal(t, value.Value(value.Number(1)), c.Get("a"))
}

func TestAssignExisting_RebindsNearestLocalElseGlobal(t *testing.T) {
	c := New()
	c.EnterBlock()
	c.NewLocal("x", value.Number(1))
	c.AssignExisting("x", value.Number(9))
	assert.Equal(t, value.Value(value.Number(9)), c.Get("x"))

	c.AssignExisting("y", value.String("global"))
	assert.Equal(t, value.Value(value.String("global")), c.Get("y"))
	c.LeaveBlock()
	assert.Equal(t, value.Value(value.String("global")), c.Get("y"))
}

func TestReturnSlot(t *testing.T) {
	c := New()
	assert.False(t, c.HasReturn())
	c.SetReturn([]value.Value{value.Number(1), value.Number(2)})
	assert.True(t, c.HasReturn())
	got := c.TakeReturn()
	assert.Equal(t, []value.Value{value.Number(1), value.Number(2)}, got)
	assert.False(t, c.HasReturn())
}

func TestBeginFunction_IsolatesLocals(t *testing.T) {
	c := New()
	c.EnterBlock()
	c.NewLocal("outer", value.Number(1))

	saved, savedLevel := c.BeginFunction()
	assert.Equal(t, value.Value(value.Nil{}), c.Get("outer"), "callee must not see caller locals")
	c.NewLocal("param", value.Number(5))
	assert.Equal(t, value.Value(value.Number(5)), c.Get("param"))
	c.EndFunction(saved, savedLevel)

	assert.Equal(t, value.Value(value.Number(1)), c.Get("outer"))
	assert.Equal(t, value.Value(value.Nil{}), c.Get("param"))
}
