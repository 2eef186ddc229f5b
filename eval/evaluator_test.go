/*
File    : lumen/eval/evaluator_test.go
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, source string) string {
	t.Helper()
	var buf bytes.Buffer
	e := New()
	e.SetWriter(&buf)
	_, err := e.Run(source)
	require.NoError(t, err)
	return buf.String()
}

func TestEndToEnd_ArithmeticPrecedence(t *testing.T) {
	assert.Equal(t, "7\n", run(t, `print(1 + 2 * 3)`))
}

func TestEndToEnd_FunctionCall(t *testing.T) {
	assert.Equal(t, "16\n", run(t, `function f(x) return x * x end print(f(4))`))
}

func TestEndToEnd_Conditional(t *testing.T) {
	assert.Equal(t, "yes\n", run(t, `if 1 < 2 then print("yes") else print("no") end`))
}

func TestEndToEnd_Concat(t *testing.T) {
	assert.Equal(t, "abc\n", run(t, `local s = "a" .. "b" .. "c" print(s)`))
}

func TestEndToEnd_StringFormat(t *testing.T) {
	assert.Equal(t, "42 3.14\n", run(t, `print(string.format("%d %.2f", 42, 3.14159))`))
}

func TestEndToEnd_MultiReturn(t *testing.T) {
	assert.Equal(t, "1\t2\t3\n", run(t, `function f() return 1, 2, 3 end local a,b,c = f() print(a,b,c)`))
}

func TestScope_InnerLocalDoesNotLeak(t *testing.T) {
	assert.Equal(t, "1\n", run(t, `local x = 1
do
  local x = 2
end
print(x)`))
}

func TestShortCircuit_AndOr(t *testing.T) {
	out := run(t, `
function boom() print("boom") return 1 end
if 1 > 2 and boom() > 0 then end
if 1 < 2 or boom() > 0 then end
print("done")
`)
	assert.Equal(t, "done\n", out, "boom() must never run")
}

func TestAssignmentCountMismatch_ExtraTargetsBecomeNil(t *testing.T) {
	assert.Equal(t, "1\tnil\n", run(t, `local a, b = 1 print(a, b)`))
}

func TestAssignmentCountMismatch_ExtraValuesDiscarded(t *testing.T) {
	assert.Equal(t, "1\n", run(t, `local a = 1, 2 print(a)`))
}

func TestReferenceIdentity_SameTableEqualDistinctTableNot(t *testing.T) {
	assert.Equal(t, "true\tfalse\n", run(t, `
local t1 = io
local t2 = io
print(t1 == t2, t1 == math)
`))
}

func TestCallProtocol_DotFormMethodCallDoesNotPrependReceiver(t *testing.T) {
	assert.Equal(t, "hi there\n", run(t, `io.write("hi there") print()`))
}

func TestMathAbs(t *testing.T) {
	assert.Equal(t, "5\n", run(t, `print(math.abs(-5))`))
}

func TestFunctionIsolation_CalleeDoesNotSeeCallerLocals(t *testing.T) {
	out := run(t, `
local secret = 99
function f() return secret end
print(f())
`)
	assert.Equal(t, "nil\n", out, "user functions see only params and globals, not caller locals")
}
