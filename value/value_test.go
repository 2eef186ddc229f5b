/*
File    : lumen/value/value_test.go
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil{}))
	assert.False(t, Truthy(Bool(false)))
	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestNumberStringCanonical(t *testing.T) {
	assert.Equal(t, "3", Number(3).String())
	assert.Equal(t, "3.5", Number(3.5).String())
	assert.Equal(t, "-2", Number(-2).String())
}

func TestAsNumber(t *testing.T) {
	n, ok := AsNumber(Number(4))
	assert.True(t, ok)
	assert.Equal(t, 4.0, n)

	n, ok = AsNumber(String(" 4.5 "))
	assert.True(t, ok)
	assert.Equal(t, 4.5, n)

	_, ok = AsNumber(Bool(true))
	assert.False(t, ok)
}

func TestAsString(t *testing.T) {
	s, ok := AsString(String("hi"))
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	s, ok = AsString(Number(7))
	assert.True(t, ok)
	assert.Equal(t, "7", s)

	_, ok = AsString(Bool(true))
	assert.False(t, ok)
}

func TestEqual_StructuralAndReferenceIdentity(t *testing.T) {
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), String("1")))
	assert.True(t, Equal(String("a"), String("a")))

	t1 := NewTable()
	t2 := NewTable()
	assert.False(t, Equal(t1, t2), "two distinct table literals must not be equal")
	assert.True(t, Equal(t1, t1), "a table compared with itself is equal")
}

func TestFlatten(t *testing.T) {
	in := []Value{Number(1), RetVals{Number(2), Number(3)}}
	out := Flatten(in)
	assert.Equal(t, []Value{Number(1), Number(2), Number(3)}, out)
}

func TestPack(t *testing.T) {
	assert.Equal(t, Nil{}, Pack(nil))
	assert.Equal(t, Number(1), Pack([]Value{Number(1)}))
	assert.Equal(t, RetVals{Number(1), Number(2)}, Pack([]Value{Number(1), Number(2)}))
}
