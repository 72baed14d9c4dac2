package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_replLine(t *testing.T) {
	in := New()
	ctx := context.Background()

	for _, step := range []struct {
		line string
		out  string
		quit bool
	}{
		{line: "1 2 +", out: "\n=== TOP ===\n3\n===========\n\n"},
		{line: "{ 2 * } $double :: $x", out: "\n=== TOP ===\n(unbound binding: $x)\n3\n===========\n\n"},
		{line: ":", out: "\n=== TOP ===\n===========\n\n"},
		{line: "$x double", out: "\n=== TOP ===\n6\n===========\n\n"},
		{line: "foo", out: "Execution error: error at `foo` ((repl):1:1): unknown action `foo`\n"},
		{line: "  {", out: "Parse error: error at `{` ((repl):1:3): ran out of tokens while inside block\n"},
		{line: " :dump ", out: strings.Join([]string{
			"# Interpreter Dump",
			"  depth: 0",
			"# Stack",
			"  [0] Integer(6)",
			"# Frames",
			"  [0] $x = Integer(3)",
			"# Words",
			"  double: Block{2 *}",
			"",
		}, "\n")},
		{line: ":quit", quit: true},
	} {
		var out strings.Builder
		quit := replLine(ctx, in, &out, step.line, 0)
		assert.Equal(t, step.quit, quit, "expected quit after %q", step.line)
		assert.Equal(t, step.out, out.String(), "expected output after %q", step.line)
	}
}

func Test_replLine_timeout(t *testing.T) {
	in := New()
	ctx := context.Background()
	const timeout = 20 * time.Millisecond

	var out strings.Builder
	replLine(ctx, in, &out, "{ } { true } while", timeout)
	assert.Equal(t,
		"Execution error: error at `while` ((repl):1:14): context deadline exceeded\n",
		out.String(), "expected a runaway line to time out")

	time.Sleep(2 * timeout)
	out.Reset()
	replLine(ctx, in, &out, "1 2 +", timeout)
	assert.Equal(t, "\n=== TOP ===\n3\n===========\n\n", out.String(),
		"expected each line to get a fresh time limit")
}
