/*
File    : lumen/eval/builtins.go
*/
package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/akashmaji946/lumen/value"
)

// installPrelude wires the prelude globals every program starts with:
// print, the io table (write/read), the math table (abs plus the
// handful of numeric helpers every Lua-derived prelude carries), and
// string.format's printf subset.
func installPrelude(e *Evaluator) {
	e.Ctx.NewGlobal("print", builtin(e.biPrint))

	io := value.NewTable()
	_ = io.Set(value.String("write"), builtin(e.biIOWrite))
	_ = io.Set(value.String("read"), builtin(e.biIORead))
	e.Ctx.NewGlobal("io", io)

	m := value.NewTable()
	_ = m.Set(value.String("abs"), builtin(biMathAbs))
	_ = m.Set(value.String("floor"), builtin(biMathFloor))
	_ = m.Set(value.String("ceil"), builtin(biMathCeil))
	_ = m.Set(value.String("sqrt"), builtin(biMathSqrt))
	_ = m.Set(value.String("max"), builtin(biMathMax))
	_ = m.Set(value.String("min"), builtin(biMathMin))
	_ = m.Set(value.String("pi"), value.Number(math.Pi))
	_ = m.Set(value.String("huge"), value.Number(math.Inf(1)))
	e.Ctx.NewGlobal("math", m)

	str := value.NewTable()
	_ = str.Set(value.String("format"), builtin(biStringFormat))
	e.Ctx.NewGlobal("string", str)
}

// builtin wraps a Go callback as a value.Function whose Builtin field is
// set, the discriminant IsBuiltin relies on.
func builtin(fn func(args []value.Value) ([]value.Value, error)) *value.Function {
	return &value.Function{Builtin: fn}
}

func (e *Evaluator) biPrint(args []value.Value) ([]value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(e.Writer, strings.Join(parts, "\t"))
	return nil, nil
}

// biIOWrite concatenates as_string(arg) for every argument and writes the
// result with no trailing newline.
func (e *Evaluator) biIOWrite(args []value.Value) ([]value.Value, error) {
	var b strings.Builder
	for _, a := range args {
		s, ok := value.AsString(a)
		if !ok {
			return nil, runtimeErrorf(zeroPos, "io.write: cannot coerce a %s value to a string", a.Kind())
		}
		b.WriteString(s)
	}
	fmt.Fprint(e.Writer, b.String())
	return nil, nil
}

// biIORead reads one line from Reader. If the first argument is a string
// beginning with 'n', the line is parsed as a number; otherwise the raw
// line (without its trailing newline) is returned.
func (e *Evaluator) biIORead(args []value.Value) ([]value.Value, error) {
	line, err := e.Reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return []value.Value{value.Nil{}}, nil
	}

	wantNumber := false
	if len(args) > 0 {
		if s, ok := args[0].(value.String); ok && strings.HasPrefix(string(s), "n") {
			wantNumber = true
		}
	}
	if wantNumber {
		n, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if perr != nil {
			return []value.Value{value.Nil{}}, nil
		}
		return []value.Value{value.Number(n)}, nil
	}
	return []value.Value{value.String(line)}, nil
}

func mathArg(args []value.Value, name string) (float64, error) {
	if len(args) < 1 {
		return 0, runtimeErrorf(zeroPos, "math.%s: expected 1 argument, got 0", name)
	}
	n, ok := value.AsNumber(args[0])
	if !ok {
		return 0, runtimeErrorf(zeroPos, "math.%s: expected a number, got a %s value", name, args[0].Kind())
	}
	return n, nil
}

func biMathAbs(args []value.Value) ([]value.Value, error) {
	n, err := mathArg(args, "abs")
	if err != nil {
		return nil, err
	}
	return []value.Value{value.Number(math.Abs(n))}, nil
}

func biMathFloor(args []value.Value) ([]value.Value, error) {
	n, err := mathArg(args, "floor")
	if err != nil {
		return nil, err
	}
	return []value.Value{value.Number(math.Floor(n))}, nil
}

func biMathCeil(args []value.Value) ([]value.Value, error) {
	n, err := mathArg(args, "ceil")
	if err != nil {
		return nil, err
	}
	return []value.Value{value.Number(math.Ceil(n))}, nil
}

func biMathSqrt(args []value.Value) ([]value.Value, error) {
	n, err := mathArg(args, "sqrt")
	if err != nil {
		return nil, err
	}
	return []value.Value{value.Number(math.Sqrt(n))}, nil
}

func biMathMax(args []value.Value) ([]value.Value, error) {
	if len(args) == 0 {
		return nil, runtimeErrorf(zeroPos, "math.max: expected at least 1 argument")
	}
	best, ok := value.AsNumber(args[0])
	if !ok {
		return nil, runtimeErrorf(zeroPos, "math.max: expected a number, got a %s value", args[0].Kind())
	}
	for _, a := range args[1:] {
		n, ok := value.AsNumber(a)
		if !ok {
			return nil, runtimeErrorf(zeroPos, "math.max: expected a number, got a %s value", a.Kind())
		}
		if n > best {
			best = n
		}
	}
	return []value.Value{value.Number(best)}, nil
}

func biMathMin(args []value.Value) ([]value.Value, error) {
	if len(args) == 0 {
		return nil, runtimeErrorf(zeroPos, "math.min: expected at least 1 argument")
	}
	best, ok := value.AsNumber(args[0])
	if !ok {
		return nil, runtimeErrorf(zeroPos, "math.min: expected a number, got a %s value", args[0].Kind())
	}
	for _, a := range args[1:] {
		n, ok := value.AsNumber(a)
		if !ok {
			return nil, runtimeErrorf(zeroPos, "math.min: expected a number, got a %s value", a.Kind())
		}
		if n < best {
			best = n
		}
	}
	return []value.Value{value.Number(best)}, nil
}

func biStringFormat(args []value.Value) ([]value.Value, error) {
	if len(args) < 1 {
		return nil, runtimeErrorf(zeroPos, "string.format: expected at least 1 argument, got 0")
	}
	spec, ok := value.AsString(args[0])
	if !ok {
		return nil, runtimeErrorf(zeroPos, "string.format: format must be a string")
	}
	out, err := formatPrintf(spec, args[1:])
	if err != nil {
		return nil, runtimeErrorf(zeroPos, "%s", err)
	}
	return []value.Value{value.String(out)}, nil
}

// formatPrintf implements a printf subset: directives %d %i %u %o %x %X
// %f %e %E %g %G %c %s, with an optional ".N" precision forwarded
// verbatim into the equivalent Go fmt verb.
func formatPrintf(spec string, args []value.Value) (string, error) {
	var out strings.Builder
	argIdx := 0
	i := 0
	for i < len(spec) {
		if spec[i] != '%' {
			out.WriteByte(spec[i])
			i++
			continue
		}
		j := i + 1
		directive := "%"
		for j < len(spec) && (spec[j] == '.' || (spec[j] >= '0' && spec[j] <= '9')) {
			directive += string(spec[j])
			j++
		}
		if j >= len(spec) {
			return "", fmt.Errorf("string.format: dangling %% directive")
		}
		conv := spec[j]
		j++
		if conv == '%' {
			out.WriteByte('%')
			i = j
			continue
		}
		if argIdx >= len(args) {
			return "", fmt.Errorf("string.format: missing argument for %%%c", conv)
		}
		arg := args[argIdx]
		argIdx++

		switch conv {
		case 'd', 'i', 'u':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%%c expects a number, got a %s value", conv, arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"d", int64(n)))
		case 'o':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%o expects a number, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"o", int64(n)))
		case 'x':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%x expects a number, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"x", int64(n)))
		case 'X':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%X expects a number, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"X", int64(n)))
		case 'f':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%f expects a number, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"f", n))
		case 'e':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%e expects a number, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"e", n))
		case 'E':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%E expects a number, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"E", n))
		case 'g':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%g expects a number, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"g", n))
		case 'G':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%G expects a number, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"G", n))
		case 'c':
			n, ok := value.AsNumber(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%c expects a number, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"c", rune(int64(n))))
		case 's':
			s, ok := value.AsString(arg)
			if !ok {
				return "", fmt.Errorf("string.format: %%s expects a coercible value, got a %s value", arg.Kind())
			}
			out.WriteString(fmt.Sprintf(directive+"s", s))
		default:
			return "", fmt.Errorf("string.format: unknown directive %%%c", conv)
		}
		i = j
	}
	return out.String(), nil
}
