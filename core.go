package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jcorbin/gostk/internal/flushio"
)

// Interpreter evaluates parsed programs. It holds all state that persists
// across programs run by it: the operand stack, the binding frames, and the
// table of user defined actions ("words").
type Interpreter struct {
	logging
	out flushio.WriteFlusher

	// The stack holds operands for, and results of, every action.
	stack []Value

	// Binding frames implement dynamic scope: each block invocation pushes a
	// fresh frame, and pops it once the block returns, whether it succeeded
	// or not. Lookup searches from the innermost frame outward. The bottom
	// frame holds top level bindings, and is never popped.
	frames []frame

	// Words may be defined only once, and are never removed.
	words map[string]*Node

	depth      int
	depthLimit int
}

type frame map[string]Value

func (in *Interpreter) push(v Value) {
	in.stack = append(in.stack, v)
}

func (in *Interpreter) pop() (Value, error) {
	i := len(in.stack) - 1
	if i < 0 {
		return nil, errStackUnderflow
	}
	v := in.stack[i]
	in.stack[i] = nil
	in.stack = in.stack[:i]
	return v, nil
}

func (in *Interpreter) lookup(name string) Value {
	for i := len(in.frames) - 1; i >= 0; i-- {
		if v, defined := in.frames[i][name]; defined {
			return v
		}
	}
	return Unbound(name)
}

func (in *Interpreter) bind(name string, v Value) {
	top := &in.frames[len(in.frames)-1]
	if *top == nil {
		*top = make(frame)
	}
	(*top)[name] = v
	in.logf(":", "$%v <- %v", name, describe(v))
}

// exec evaluates node: literals and binding values are pushed, actions are
// dispatched, sequences run item by item until the first error, and blocks
// are pushed as values without running them.
func (in *Interpreter) exec(ctx context.Context, node *Node) error {
	switch node.Kind {
	case AtomNode:
		tok := node.Atom
		switch tok.kind {
		case integerToken:
			in.push(Integer(tok.n))
		case charToken:
			in.push(Char(tok.r))
		case bindingToken:
			in.push(in.lookup(tok.name))
		case actionToken:
			if in.logfn != nil {
				in.logf(">", "%v -- s:%v", tok.name, in.stackString())
			}
			return withLoc(in.dispatch(ctx, tok.name), node.Loc)
		default:
			return fmt.Errorf("invalid atom %v", tok)
		}

	case SequenceNode:
		for _, item := range node.Items {
			if err := in.exec(ctx, item); err != nil {
				return err
			}
		}

	case BlockNode:
		in.push(Block{node.Body})

	default:
		return fmt.Errorf("invalid node kind %v", node.Kind)
	}
	return nil
}

func (in *Interpreter) dispatch(ctx context.Context, name string) error {
	if fn, isBuiltin := builtins[name]; isBuiltin {
		return fn(in, ctx)
	}
	if body, isWord := in.words[name]; isWord {
		return in.invoke(ctx, body)
	}
	return fmt.Errorf("unknown action `%v`", name)
}

// invoke runs body within a new binding frame, which is discarded afterward
// even if body fails. The operand stack is left as-is after a failure.
func (in *Interpreter) invoke(ctx context.Context, body *Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if in.depthLimit > 0 && in.depth >= in.depthLimit {
		return &LimitError{"invocation depth", in.depthLimit}
	}

	n := len(in.frames)
	in.frames = append(in.frames, nil)
	in.depth++
	defer func() {
		in.frames[n] = nil
		in.frames = in.frames[:n]
		in.depth--
	}()

	if in.logfn != nil {
		defer in.withLogPrefix("  ")()
	}
	return in.exec(ctx, body)
}

func (in *Interpreter) stackString() string {
	parts := make([]string, len(in.stack))
	for i, v := range in.stack {
		parts[i] = describe(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark += strings.Repeat(" ", n)
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
