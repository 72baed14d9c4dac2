package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcorbin/gostk/internal/runeio"
)

// Value is anything that may live on the operand stack or in a binding.
// Values are immutable: operations build new values rather than modifying
// ones already on the stack.
type Value interface {
	fmt.Stringer
	value()
}

// Char is a single character; strings are Arrays of Char.
type Char rune

// Integer is a host-sized signed integer.
type Integer int

// Boolean is true or false.
type Boolean bool

// Array is an ordered sequence of values.
type Array []Value

// Unbound is pushed for a binding name that is not yet bound; it exists only
// to be consumed by the ":" and "::" actions.
type Unbound string

// Block is an unevaluated program fragment.
type Block struct{ Body *Node }

func (Char) value()    {}
func (Integer) value() {}
func (Boolean) value() {}
func (Array) value()   {}
func (Unbound) value() {}
func (Block) value()   {}

func (c Char) String() string    { return string(c) }
func (i Integer) String() string { return strconv.Itoa(int(i)) }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (u Unbound) String() string { return fmt.Sprintf("(unbound binding: $%v)", string(u)) }
func (Block) String() string     { return "(block)" }

// String renders a non-empty array of characters as text, and any other
// array as a bracketed list.
func (a Array) String() string {
	if s, err := asString(a); err == nil && len(a) > 0 {
		return s
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func newArray(capacity int) Array { return make(Array, 0, capacity) }

func fromString(s string) Value {
	arr := newArray(len(s))
	for _, r := range s {
		arr = append(arr, Char(r))
	}
	return arr
}

// describe renders a value unambiguously, for diagnostics.
func describe(v Value) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case Char:
		return fmt.Sprintf("Char(%v)", runeio.QuoteChar(rune(v)))
	case Integer:
		return fmt.Sprintf("Integer(%v)", int(v))
	case Boolean:
		return fmt.Sprintf("Boolean(%v)", bool(v))
	case Unbound:
		return fmt.Sprintf("Unbound($%v)", string(v))
	case Block:
		return fmt.Sprintf("Block{%v}", v.Body)
	case Array:
		var sb strings.Builder
		sb.WriteString("Array[")
		for i, item := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(describe(item))
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return fmt.Sprintf("%T(%v)", v, v)
	}
}

// Equal compares two values structurally; blocks are equal when their
// programs have the same shape, regardless of where they were written.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Array:
		b, ok := b.(Array)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case Block:
		b, ok := b.(Block)
		return ok && sameNode(a.Body, b.Body)
	default:
		return a == b
	}
}

func sameNode(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AtomNode:
		ta, tb := a.Atom, b.Atom
		return ta.kind == tb.kind && ta.n == tb.n && ta.r == tb.r && ta.name == tb.name
	case BlockNode:
		return sameNode(a.Body, b.Body)
	default:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !sameNode(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	}
}

//// Narrowing conversions

func asInteger(v Value) (int, error) {
	if i, ok := v.(Integer); ok {
		return int(i), nil
	}
	return 0, &TypeError{"integer", v}
}

func asBoolean(v Value) (bool, error) {
	if b, ok := v.(Boolean); ok {
		return bool(b), nil
	}
	return false, &TypeError{"bool", v}
}

func asChar(v Value) (rune, error) {
	if c, ok := v.(Char); ok {
		return rune(c), nil
	}
	return 0, &TypeError{"character", v}
}

func asArray(v Value) (Array, error) {
	if a, ok := v.(Array); ok {
		return a, nil
	}
	return nil, &TypeError{"array", v}
}

func asBlock(v Value) (*Node, error) {
	if b, ok := v.(Block); ok {
		return b.Body, nil
	}
	return nil, &TypeError{"block", v}
}

func asString(v Value) (string, error) {
	arr, err := asArray(v)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, item := range arr {
		c, ok := item.(Char)
		if !ok {
			return "", &TypeError{"character", item}
		}
		sb.WriteRune(rune(c))
	}
	return sb.String(), nil
}

func asIntegers(v Value) ([]int, error) {
	arr, err := asArray(v)
	if err != nil {
		return nil, err
	}
	ints := make([]int, len(arr))
	for i, item := range arr {
		n, ok := item.(Integer)
		if !ok {
			return nil, &TypeError{"integer", item}
		}
		ints[i] = int(n)
	}
	return ints, nil
}
