package main

import (
	"fmt"
	"io"
	"sort"
)

// DebugStack writes the stack to w, top first, between header and footer
// lines. The stack is left untouched.
func (in *Interpreter) DebugStack(w io.Writer) error {
	return interpDumper{in: in, out: w}.dumpStack()
}

type interpDumper struct {
	in  *Interpreter
	out io.Writer
}

func (dump interpDumper) dumpStack() (err error) {
	p := dump.printer(&err)
	p("\n=== TOP ===\n")
	for i := len(dump.in.stack) - 1; i >= 0; i-- {
		p("%v\n", dump.in.stack[i])
	}
	p("===========\n")
	return err
}

// dump writes every part of the interpreter's state, in diagnostic form.
func (dump interpDumper) dump() (err error) {
	p := dump.printer(&err)
	p("# Interpreter Dump\n")
	p("  depth: %v\n", dump.in.depth)

	p("# Stack\n")
	for i := len(dump.in.stack) - 1; i >= 0; i-- {
		p("  [%v] %v\n", i, describe(dump.in.stack[i]))
	}

	p("# Frames\n")
	for i, fr := range dump.in.frames {
		for _, name := range sortedKeys(fr) {
			p("  [%v] $%v = %v\n", i, name, describe(fr[name]))
		}
	}

	p("# Words\n")
	names := make([]string, 0, len(dump.in.words))
	for name := range dump.in.words {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p("  %v: %v\n", name, describe(Block{dump.in.words[name]}))
	}
	return err
}

func (dump interpDumper) printer(err *error) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) {
		if *err == nil {
			_, *err = fmt.Fprintf(dump.out, mess, args...)
		}
	}
}

func sortedKeys(fr frame) []string {
	names := make([]string, 0, len(fr))
	for name := range fr {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
