/*
File    : lumen/value/table_test.go
*/
package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_SetGet(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Set(String("x"), Number(1)))
	assert.Equal(t, Value(Number(1)), tbl.Get(String("x")))
	assert.Equal(t, Value(Nil{}), tbl.Get(String("missing")))
}

func TestTable_SetNilDeletes(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Set(String("x"), Number(1)))
	require.NoError(t, tbl.Set(String("x"), Nil{}))
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, Value(Nil{}), tbl.Get(String("x")))
}

func TestTable_NilKeyErrors(t *testing.T) {
	tbl := NewTable()
	err := tbl.Set(Nil{}, Number(1))
	assert.Error(t, err)
}

func TestTable_NaNKeyErrors(t *testing.T) {
	tbl := NewTable()
	err := tbl.Set(Number(nan()), Number(1))
	assert.Error(t, err)
}

func TestTable_ReferenceIdentityAsKey(t *testing.T) {
	inner := NewTable()
	outer := NewTable()
	require.NoError(t, outer.Set(inner, String("nested")))
	assert.Equal(t, Value(String("nested")), outer.Get(inner))
	assert.Equal(t, Value(Nil{}), outer.Get(NewTable()))
}

func TestTable_KeysInsertionOrder(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Set(String("b"), Number(2)))
	require.NoError(t, tbl.Set(String("a"), Number(1)))
	require.NoError(t, tbl.Set(String("c"), Number(3)))
	keys := tbl.Keys()
	want := []Value{String("b"), String("a"), String("c")}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("Keys() insertion order mismatch (-want +got):\n%s", diff)
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
