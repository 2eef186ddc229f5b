/*
File    : lumen/value/value.go
*/

// Package value defines the runtime value model for Lumen: a closed
// tagged variant of Nil, Bool, Number, String, Function, Table, and the
// transient multi-return wrapper RetVals, plus equality, truthiness, and
// the as_number/as_string coercions. Userdata and Thread exist as
// placeholder kinds that need not be inhabited.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/lumen/ast"
)

// Kind is the discriminant of a Value, used where a type switch would be
// noisier than a direct comparison (error messages, builtins).
type Kind string

const (
	KindNil      Kind = "nil"
	KindBool     Kind = "boolean"
	KindNumber   Kind = "number"
	KindString   Kind = "string"
	KindFunction Kind = "function"
	KindTable    Kind = "table"
	KindRetVals  Kind = "retvals"
	KindUserdata Kind = "userdata"
	KindThread   Kind = "thread"
)

// Value is the closed interface every runtime value implements. The
// concrete types below (Nil, Bool, Number, String, *Function, *Table,
// RetVals, Userdata, Thread) are the only permitted implementors; callers
// dispatch on Kind() or a type switch rather than virtual methods.
type Value interface {
	Kind() Kind
	String() string
}

// Nil is the absence of a value. The zero value of Nil is the only
// instance ever needed.
type Nil struct{}

func (Nil) Kind() Kind      { return KindNil }
func (Nil) String() string  { return "nil" }

// Bool wraps a boolean value.
type Bool bool

func (b Bool) Kind() Kind     { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Number wraps a 64-bit float. NaN is a valid Number but is never a valid
// table key (hashing NaN is a runtime error).
type Number float64

func (n Number) Kind() Kind { return KindNumber }

// String renders a Number in its canonical decimal form: integral values
// print without a fractional part, matching Lua's %.14g-ish convention
// closely enough for this interpreter's purposes.
func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) && !strings.ContainsAny(fmt.Sprintf("%g", f), "eE") {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is a Lumen string value.
type String string

func (s String) Kind() Kind     { return KindString }
func (s String) String() string { return string(s) }

// RetVals is a transient wrapper used only at call boundaries and
// multi-assignment; Flatten below removes it before any use that
// expects a single value.
type RetVals []Value

func (r RetVals) Kind() Kind { return KindRetVals }
func (r RetVals) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = v.String()
	}
	return strings.Join(parts, "\t")
}

// Userdata and Thread are placeholder kinds this interpreter never
// constructs; they exist only so Kind()/type-switch exhaustiveness
// checks have somewhere to point.
type Userdata struct{}

func (Userdata) Kind() Kind     { return KindUserdata }
func (Userdata) String() string { return "userdata" }

type Thread struct{}

func (Thread) Kind() Kind     { return KindThread }
func (Thread) String() string { return "thread" }

// Function is either a user-defined closure, wrapping the ast.Function
// code the parser produced, or a host-provided builtin. Exactly one of
// the embedded *ast.Function or Builtin is set.
type Function struct {
	*ast.Function
	Builtin func(args []Value) ([]Value, error)
}

func (f *Function) Kind() Kind     { return KindFunction }
func (f *Function) String() string { return "function" }

// IsBuiltin reports whether f wraps a host callable rather than user code.
func (f *Function) IsBuiltin() bool { return f.Builtin != nil }

// Truthy reports whether v counts as true in a conditional: Nil and
// Bool(false) are falsy, everything else (including Number(0) and "")
// is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// AsNumber implements the as_number coercion: a Number passes through, a
// String parses as a float after trimming, a RetVals coerces its first
// value (and fails when empty), anything else fails.
func AsNumber(v Value) (float64, bool) {
	switch t := v.(type) {
	case Number:
		return float64(t), true
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case RetVals:
		if len(t) == 0 {
			return 0, false
		}
		return AsNumber(t[0])
	default:
		return 0, false
	}
}

// AsString implements the as_string coercion: a String passes through, a
// Number formats via its canonical decimal form, anything else fails.
func AsString(v Value) (string, bool) {
	switch t := v.(type) {
	case String:
		return string(t), true
	case Number:
		return t.String(), true
	default:
		return "", false
	}
}

// Equal implements structural equality for matching kinds, reference
// identity for Table and Function, and false across differing kinds.
// Backs both `==` and `~=`.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Nil:
		return true
	case Bool:
		return av == b.(Bool)
	case Number:
		return av == b.(Number)
	case String:
		return av == b.(String)
	case *Table:
		return av == b.(*Table)
	case *Function:
		return av == b.(*Function)
	default:
		return false
	}
}

// Flatten removes nested RetVals wrappers from vals, expanding each in
// place. Used at assignment and multi-value call boundaries.
func Flatten(vals []Value) []Value {
	out := make([]Value, 0, len(vals))
	for _, v := range vals {
		if rv, ok := v.(RetVals); ok {
			out = append(out, Flatten(rv)...)
		} else {
			out = append(out, v)
		}
	}
	return out
}

// Pack implements call-result packaging: empty becomes Nil, a single
// value passes through, multiple values become a RetVals.
func Pack(vals []Value) Value {
	switch len(vals) {
	case 0:
		return Nil{}
	case 1:
		return vals[0]
	default:
		return RetVals(vals)
	}
}
