package main

import (
	"errors"
	"fmt"
)

// SyntaxError is a lexing or parsing failure; its location is known when it
// is created.
type SyntaxError struct {
	Loc     Loc
	Message string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("error at %v: %v", err.Loc, err.Message)
}

func syntaxErrorf(loc Loc, mess string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Loc: loc, Message: fmt.Sprintf(mess, args...)}
}

// ExecutionError is a failure during evaluation. Loc starts out nil, and is
// set by the first action dispatch that the error propagates through; it is
// never replaced after that.
type ExecutionError struct {
	Loc *Loc
	Err error
}

func (err *ExecutionError) Error() string {
	if err.Loc == nil {
		return fmt.Sprintf("error at unknown position: %v", err.Err)
	}
	return fmt.Sprintf("error at %v: %v", *err.Loc, err.Err)
}

func (err *ExecutionError) Unwrap() error { return err.Err }

// withLoc attaches loc to err, unless err already carries a location.
func withLoc(err error, loc Loc) error {
	if err == nil {
		return nil
	}
	var ee *ExecutionError
	if errors.As(err, &ee) {
		if ee.Loc == nil {
			ee.Loc = &loc
		}
		return err
	}
	return &ExecutionError{Loc: &loc, Err: err}
}

// TypeError is a failed narrowing conversion of a value.
type TypeError struct {
	Want string
	Got  Value
}

func (err *TypeError) Error() string {
	if ub, ok := err.Got.(Unbound); ok {
		return fmt.Sprintf("expected %v, got unbound binding `$%v`", err.Want, string(ub))
	}
	return fmt.Sprintf("expected %v, got `%v`", err.Want, describe(err.Got))
}

// LimitError indicates that evaluation exceeded a configured limit.
type LimitError struct {
	What  string
	Limit int
}

func (lim *LimitError) Error() string {
	return fmt.Sprintf("%v limit of %v exceeded", lim.What, lim.Limit)
}

var (
	errStackUnderflow = errors.New("attempted to pop from empty stack")
	errDivideByZero   = errors.New("division by zero")
)
