package main

import (
	_ "embed" // for stdlib.stk
)

//go:embed stdlib.stk
var stdlibSource string

const stdlibName = "(stdlib)"

// LoadStdlib defines the standard words in in.
func LoadStdlib(in *Interpreter) error {
	prog, err := BuildProgram(stdlibSource, stdlibName)
	if err != nil {
		return err
	}
	return in.Execute(prog)
}
