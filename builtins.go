package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

type builtin func(in *Interpreter, ctx context.Context) error

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		// core machinery
		":":     (*Interpreter).bindAction,
		"::":    (*Interpreter).defineAction,
		"#":     (*Interpreter).invokeAction,
		"true":  func(in *Interpreter, _ context.Context) error { in.push(Boolean(true)); return nil },
		"false": func(in *Interpreter, _ context.Context) error { in.push(Boolean(false)); return nil },
		"=":     (*Interpreter).equal,
		"?":     (*Interpreter).choose,
		"|":     boolOp(func(a, b bool) bool { return a || b }),
		"&":     boolOp(func(a, b bool) bool { return a && b }),
		"!":     (*Interpreter).not,
		"while": (*Interpreter).while,

		// integer arithmetic and comparison
		"+":   intOp(func(a, b int) Value { return Integer(a + b) }),
		"-":   intOp(func(a, b int) Value { return Integer(a - b) }),
		"*":   intOp(func(a, b int) Value { return Integer(a * b) }),
		"/":   (*Interpreter).div,
		">":   intOp(func(a, b int) Value { return Boolean(a > b) }),
		"<":   intOp(func(a, b int) Value { return Boolean(a < b) }),
		"neg": unaryIntOp(func(i int) int { return -i }),
		"abs": unaryIntOp(func(i int) int {
			if i < 0 {
				return -i
			}
			return i
		}),

		// arrays
		"[]":      func(in *Interpreter, _ context.Context) error { in.push(newArray(0)); return nil },
		"@":       (*Interpreter).at,
		"length":  (*Interpreter).length,
		"append":  (*Interpreter).append,
		"range":   (*Interpreter).rangeAction,
		"map":     (*Interpreter).mapAction,
		"++":      (*Interpreter).concat,
		"fold":    (*Interpreter).fold,
		"sort":    (*Interpreter).sort,
		"shift":   (*Interpreter).shift,
		"break":   (*Interpreter).breakAction,
		"reverse": (*Interpreter).reverse,

		// strings and characters
		"lines":  splitOp(func(s string) []string { return strings.Split(s, "\n") }),
		"wsplit": splitOp(func(s string) []string { return strings.FieldsFunc(s, isASCIISpaceRune) }),
		"int":    (*Interpreter).parseInt,
		"digit?": (*Interpreter).isDigit,

		// output
		"print":   (*Interpreter).print,
		"println": (*Interpreter).println,
		"debug":   func(in *Interpreter, _ context.Context) error { return in.DebugStack(in.out) },
	}

	// "." through "......" unpack an array of exactly as many items as dots
	for n := 1; n <= 6; n++ {
		builtins[strings.Repeat(".", n)] = unpack(n)
	}
}

//// Core machinery

// ":" pops an unbound binding, then a value, binding the value to the name in
// the innermost frame.
func (in *Interpreter) bindAction(_ context.Context) error {
	name, err := in.popTarget()
	if err != nil {
		return err
	}
	v, err := in.pop()
	if err != nil {
		return err
	}
	in.bind(name, v)
	return nil
}

// "::" pops an unbound binding, then a block, defining a word named after the
// binding that runs the block.
func (in *Interpreter) defineAction(_ context.Context) error {
	name, err := in.popTarget()
	if err != nil {
		return err
	}
	body, err := in.popBlock()
	if err != nil {
		return err
	}
	if _, isBuiltin := builtins[name]; isBuiltin {
		return fmt.Errorf("cannot redefine builtin action `%v`", name)
	}
	if _, defined := in.words[name]; defined {
		return fmt.Errorf("already defined an action named `%v`", name)
	}
	if in.words == nil {
		in.words = make(map[string]*Node)
	}
	in.words[name] = body
	in.logf("::", "define %v", name)
	return nil
}

func (in *Interpreter) popTarget() (string, error) {
	target, err := in.pop()
	if err != nil {
		return "", err
	}
	name, ok := target.(Unbound)
	if !ok {
		return "", fmt.Errorf("bind target `%v` is not a binding; has it already been assigned?", target)
	}
	return string(name), nil
}

// "#" pops and invokes a block.
func (in *Interpreter) invokeAction(ctx context.Context) error {
	body, err := in.popBlock()
	if err != nil {
		return err
	}
	return in.invoke(ctx, body)
}

func (in *Interpreter) equal(_ context.Context) error {
	b, err := in.pop()
	if err != nil {
		return err
	}
	a, err := in.pop()
	if err != nil {
		return err
	}
	in.push(Boolean(Equal(a, b)))
	return nil
}

// "?" pops the value to choose if true, then the one if false, then a
// condition, pushing the chosen value.
func (in *Interpreter) choose(_ context.Context) error {
	ifTrue, err := in.pop()
	if err != nil {
		return err
	}
	ifFalse, err := in.pop()
	if err != nil {
		return err
	}
	cond, err := in.popBoolean()
	if err != nil {
		return err
	}
	if cond {
		in.push(ifTrue)
	} else {
		in.push(ifFalse)
	}
	return nil
}

func (in *Interpreter) not(_ context.Context) error {
	b, err := in.popBoolean()
	if err != nil {
		return err
	}
	in.push(Boolean(!b))
	return nil
}

// "while" pops a condition block and then a body block; it runs the condition,
// and then the body while the condition leaves true.
func (in *Interpreter) while(ctx context.Context) error {
	cond, err := in.popBlock()
	if err != nil {
		return err
	}
	body, err := in.popBlock()
	if err != nil {
		return err
	}
	for {
		if err := in.invoke(ctx, cond); err != nil {
			return err
		}
		more, err := in.popBoolean()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := in.invoke(ctx, body); err != nil {
			return err
		}
	}
}

func boolOp(op func(a, b bool) bool) builtin {
	return func(in *Interpreter, _ context.Context) error {
		b, err := in.popBoolean()
		if err != nil {
			return err
		}
		a, err := in.popBoolean()
		if err != nil {
			return err
		}
		in.push(Boolean(op(a, b)))
		return nil
	}
}

//// Integers

func intOp(op func(a, b int) Value) builtin {
	return func(in *Interpreter, _ context.Context) error {
		b, err := in.popInteger()
		if err != nil {
			return err
		}
		a, err := in.popInteger()
		if err != nil {
			return err
		}
		in.push(op(a, b))
		return nil
	}
}

func unaryIntOp(op func(i int) int) builtin {
	return func(in *Interpreter, _ context.Context) error {
		i, err := in.popInteger()
		if err != nil {
			return err
		}
		in.push(Integer(op(i)))
		return nil
	}
}

func (in *Interpreter) div(_ context.Context) error {
	b, err := in.popInteger()
	if err != nil {
		return err
	}
	a, err := in.popInteger()
	if err != nil {
		return err
	}
	if b == 0 {
		return errDivideByZero
	}
	in.push(Integer(a / b))
	return nil
}

//// Arrays

func unpack(n int) builtin {
	return func(in *Interpreter, _ context.Context) error {
		arr, err := in.popArray()
		if err != nil {
			return err
		}
		if len(arr) != n {
			return fmt.Errorf("unpack action `%v` expected %v items but got %v",
				strings.Repeat(".", n), n, len(arr))
		}
		for _, item := range arr {
			in.push(item)
		}
		return nil
	}
}

// "@" pops an index and an array, pushing only the indexed item.
func (in *Interpreter) at(_ context.Context) error {
	i, err := in.popInteger()
	if err != nil {
		return err
	}
	arr, err := in.popArray()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(arr) {
		return fmt.Errorf("index out of range `%v`", i)
	}
	in.push(arr[i])
	return nil
}

func (in *Interpreter) length(_ context.Context) error {
	arr, err := in.popArray()
	if err != nil {
		return err
	}
	in.push(Integer(len(arr)))
	return nil
}

func (in *Interpreter) append(_ context.Context) error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	arr, err := in.popArray()
	if err != nil {
		return err
	}
	out := newArray(len(arr) + 1)
	out = append(out, arr...)
	in.push(append(out, v))
	return nil
}

// "range" pops an end then a start, pushing the integers from start through
// end inclusive.
func (in *Interpreter) rangeAction(_ context.Context) error {
	end, err := in.popInteger()
	if err != nil {
		return err
	}
	start, err := in.popInteger()
	if err != nil {
		return err
	}
	out := newArray(0)
	if n := end - start; start <= end && 0 <= n && n < 1<<16 {
		out = newArray(n + 1)
	}
	for i := start; i <= end; i++ {
		out = append(out, Integer(i))
		if i == end {
			break // end may be the largest int
		}
	}
	in.push(out)
	return nil
}

// "map" pops a block and an array, running the block once for each item, and
// collecting the one value it leaves each time.
func (in *Interpreter) mapAction(ctx context.Context) error {
	body, err := in.popBlock()
	if err != nil {
		return err
	}
	arr, err := in.popArray()
	if err != nil {
		return err
	}
	out := newArray(len(arr))
	for _, item := range arr {
		in.push(item)
		if err := in.invoke(ctx, body); err != nil {
			return err
		}
		v, err := in.pop()
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	in.push(out)
	return nil
}

func (in *Interpreter) concat(_ context.Context) error {
	b, err := in.popArray()
	if err != nil {
		return err
	}
	a, err := in.popArray()
	if err != nil {
		return err
	}
	out := newArray(len(a) + len(b))
	out = append(out, a...)
	in.push(append(out, b...))
	return nil
}

// "fold" pops a block, an initial accumulator, and an array. For each item,
// the block runs with the accumulator and then the item on the stack, and
// must leave the next accumulator.
func (in *Interpreter) fold(ctx context.Context) error {
	body, err := in.popBlock()
	if err != nil {
		return err
	}
	acc, err := in.pop()
	if err != nil {
		return err
	}
	arr, err := in.popArray()
	if err != nil {
		return err
	}
	for _, item := range arr {
		in.push(acc)
		in.push(item)
		if err := in.invoke(ctx, body); err != nil {
			return err
		}
		if acc, err = in.pop(); err != nil {
			return err
		}
	}
	in.push(acc)
	return nil
}

func (in *Interpreter) sort(_ context.Context) error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	ints, err := asIntegers(v)
	if err != nil {
		return err
	}
	sort.Ints(ints)
	out := newArray(len(ints))
	for _, i := range ints {
		out = append(out, Integer(i))
	}
	in.push(out)
	return nil
}

// "shift" pops an array, pushing its tail and then its first item.
func (in *Interpreter) shift(_ context.Context) error {
	arr, err := in.popArray()
	if err != nil {
		return err
	}
	if len(arr) == 0 {
		return fmt.Errorf("cannot shift an empty array")
	}
	rest := newArray(len(arr) - 1)
	in.push(append(rest, arr[1:]...))
	in.push(arr[0])
	return nil
}

// "break" pops a predicate block and an array, splitting the array into
// partitions before and after each item that the predicate accepts. Accepted
// items are kept as singleton partitions of their own, so that the result can
// be mapped over uniformly.
func (in *Interpreter) breakAction(ctx context.Context) error {
	pred, err := in.popBlock()
	if err != nil {
		return err
	}
	arr, err := in.popArray()
	if err != nil {
		return err
	}
	parts := []Array{newArray(0)}
	for _, item := range arr {
		in.push(item)
		if err := in.invoke(ctx, pred); err != nil {
			return err
		}
		isDelim, err := in.popBoolean()
		if err != nil {
			return err
		}
		if isDelim {
			parts = append(parts, Array{item}, newArray(0))
		} else {
			last := len(parts) - 1
			parts[last] = append(parts[last], item)
		}
	}
	out := newArray(len(parts))
	for _, part := range parts {
		out = append(out, part)
	}
	in.push(out)
	return nil
}

func (in *Interpreter) reverse(_ context.Context) error {
	arr, err := in.popArray()
	if err != nil {
		return err
	}
	out := newArray(len(arr))
	for i := len(arr) - 1; i >= 0; i-- {
		out = append(out, arr[i])
	}
	in.push(out)
	return nil
}

//// Strings and characters

func splitOp(split func(s string) []string) builtin {
	return func(in *Interpreter, _ context.Context) error {
		s, err := in.popString()
		if err != nil {
			return err
		}
		parts := split(s)
		out := newArray(len(parts))
		for _, part := range parts {
			out = append(out, fromString(part))
		}
		in.push(out)
		return nil
	}
}

func isASCIISpaceRune(r rune) bool { return r < 0x80 && isASCIISpace(byte(r)) }

func (in *Interpreter) parseInt(_ context.Context) error {
	s, err := in.popString()
	if err != nil {
		return err
	}
	i, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return fmt.Errorf("not convertible to integer: `%v`", s)
	}
	in.push(Integer(i))
	return nil
}

func (in *Interpreter) isDigit(_ context.Context) error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	c, err := asChar(v)
	if err != nil {
		return err
	}
	in.push(Boolean('0' <= c && c <= '9'))
	return nil
}

//// Output

func (in *Interpreter) print(_ context.Context) error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	_, err = io.WriteString(in.out, v.String())
	return err
}

func (in *Interpreter) println(_ context.Context) error {
	v, err := in.pop()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(in.out, v.String())
	return err
}

//// Typed pops

func (in *Interpreter) popInteger() (int, error) {
	v, err := in.pop()
	if err != nil {
		return 0, err
	}
	return asInteger(v)
}

func (in *Interpreter) popBoolean() (bool, error) {
	v, err := in.pop()
	if err != nil {
		return false, err
	}
	return asBoolean(v)
}

func (in *Interpreter) popArray() (Array, error) {
	v, err := in.pop()
	if err != nil {
		return nil, err
	}
	return asArray(v)
}

func (in *Interpreter) popBlock() (*Node, error) {
	v, err := in.pop()
	if err != nil {
		return nil, err
	}
	return asBlock(v)
}

func (in *Interpreter) popString() (string, error) {
	v, err := in.pop()
	if err != nil {
		return "", err
	}
	return asString(v)
}
