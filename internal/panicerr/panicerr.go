// Package panicerr runs a function on its own goroutine, so that a panic or a
// runtime.Goexit inside it comes back as an *Error instead of taking down the
// caller.
package panicerr

import (
	"fmt"
	"runtime/debug"
)

// Error is an abnormal exit recovered by Recover.
type Error struct {
	// Name describes what was running, e.g. "stk program main.stk".
	Name string

	// Exit is set when the goroutine called runtime.Goexit; otherwise Value
	// holds whatever was passed to panic.
	Exit  bool
	Value interface{}

	// Stack is the goroutine stack at the point of recovery.
	Stack []byte
}

// Recover runs f on a new goroutine and waits for it. A normal return passes
// f's error through; a panic or runtime.Goexit returns an *Error named name.
func Recover(name string, f func() error) error {
	result := make(chan error, 1)
	go func() {
		returned := false
		defer func() {
			if returned {
				return
			}
			pe := &Error{Name: name, Stack: debug.Stack()}
			if pe.Value = recover(); pe.Value == nil {
				pe.Exit = true
			}
			result <- pe
		}()
		err := f()
		returned = true
		result <- err
	}()
	return <-result
}

func (pe *Error) Error() string {
	if pe.Exit {
		return fmt.Sprintf("%v exited early via runtime.Goexit", pe.Name)
	}
	return fmt.Sprintf("%v panicked: %v", pe.Name, pe.Value)
}

// Format implements fmt.Formatter; "%+v" appends the recovered stack.
func (pe *Error) Format(f fmt.State, c rune) {
	fmt.Fprint(f, pe.Error())
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\n%s", pe.Stack)
	}
}

// Unwrap returns the panic value when it was an error.
func (pe *Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}
