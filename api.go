package main

import (
	"context"
	"strings"

	"github.com/jcorbin/gostk/internal/panicerr"
)

// New creates an interpreter with an empty stack, a single top level binding
// frame, and no user defined words.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{frames: []frame{nil}}
	defaultOptions.apply(in)
	Options(opts...).apply(in)
	return in
}

// Execute runs prog, returning any located *ExecutionError. Any state left by
// a failed program (stack items, words defined before the failure) remains.
func (in *Interpreter) Execute(prog *Node) error {
	return in.ExecuteContext(context.Background(), prog)
}

// ExecuteContext is like Execute, but stops with an error at the next block
// invocation after ctx is done.
func (in *Interpreter) ExecuteContext(ctx context.Context, prog *Node) error {
	err := panicerr.Recover("stk program "+prog.Loc.Src.name(), func() error {
		return in.exec(ctx, prog)
	})
	if ferr := in.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// SetTopLevelBinding binds name in the outermost frame, where it is visible to
// all subsequently executed programs unless shadowed. Any leading "$" is
// ignored.
func (in *Interpreter) SetTopLevelBinding(name string, v Value) {
	name = strings.TrimPrefix(name, "$")
	if in.frames[0] == nil {
		in.frames[0] = make(frame)
	}
	in.frames[0][name] = v
}

// Stack returns a copy of the operand stack, bottom first.
func (in *Interpreter) Stack() []Value {
	return append([]Value(nil), in.stack...)
}

// StringValue converts a Go string into a language string: an array of
// characters.
func StringValue(s string) Value { return fromString(s) }
