package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_interpDumper(t *testing.T) {
	in := New(WithBinding("$name", StringValue("hi")))
	prog, err := BuildProgram("{ 1 + } $inc :: 7 $x : 1 'a'", "test")
	require.NoError(t, err)
	require.NoError(t, in.Execute(prog))

	var out strings.Builder
	require.NoError(t, interpDumper{in: in, out: &out}.dump())
	assert.Equal(t, strings.Join([]string{
		"# Interpreter Dump",
		"  depth: 0",
		"# Stack",
		"  [1] Char('a')",
		"  [0] Integer(1)",
		"# Frames",
		"  [0] $name = Array[Char('h'), Char('i')]",
		"  [0] $x = Integer(7)",
		"# Words",
		"  inc: Block{1 +}",
		"",
	}, "\n"), out.String())

	out.Reset()
	require.NoError(t, in.DebugStack(&out))
	assert.Equal(t, "\n=== TOP ===\na\n1\n===========\n", out.String())
	assert.Equal(t, []Value{Integer(1), Char('a')}, in.Stack(), "expected stack to be left untouched")
}
