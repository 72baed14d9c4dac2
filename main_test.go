package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gostk/internal/logio"
	"github.com/jcorbin/gostk/internal/panicerr"
)

func Test_runFile(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	prog := writeFile("sum.stk", strings.Join([]string{
		"// sum each line of input",
		"$input lines { int } map sum println",
	}, "\n"))
	input := writeFile("input.txt", "1\n2\n39")

	t.Run("with input", func(t *testing.T) {
		var out strings.Builder
		err := runFile(context.Background(), New(WithOutput(&out)), true, prog, input)
		require.NoError(t, err)
		assert.Equal(t, "42\n", out.String())
	})

	t.Run("without stdlib", func(t *testing.T) {
		err := runFile(context.Background(), New(), false, prog, input)
		assert.EqualError(t, err, "error at `sum` ("+prog+":2:26): unknown action `sum`")
	})

	t.Run("without input", func(t *testing.T) {
		err := runFile(context.Background(), New(), true, prog)
		assert.EqualError(t, err, "error at `lines` ("+prog+":2:8): expected array, got unbound binding `$input`")
	})

	t.Run("missing program", func(t *testing.T) {
		err := runFile(context.Background(), New(), true, filepath.Join(dir, "nope.stk"))
		assert.True(t, os.IsNotExist(err), "expected not exist error, got %v", err)
	})

	t.Run("syntax error", func(t *testing.T) {
		bad := writeFile("bad.stk", "1 }")
		err := runFile(context.Background(), New(), true, bad)
		assert.EqualError(t, err, "error at `}` ("+bad+":1:3): unexpected end of block while not inside a block")
	})
}

func Test_reportError(t *testing.T) {
	var out strings.Builder
	logger := logio.NewLogger(&out)

	reportError(logger, nil)
	assert.Equal(t, 0, logger.ExitCode())
	assert.Equal(t, "", out.String())

	reportError(logger, errors.New("plain failure"))
	assert.Equal(t, 1, logger.ExitCode())
	assert.Equal(t, "ERROR: plain failure\n", out.String())

	out.Reset()
	reportError(logger, panicerr.Recover("stk program p", func() error { panic("boom") }))
	assert.True(t, strings.HasPrefix(out.String(), "ERROR: stk program p panicked: boom\ngoroutine "),
		"expected panic to be logged with its stack, got %q", out.String())

	out.Reset()
	reportError(logger, panicerr.Recover("stk program q", func() error { runtime.Goexit(); return nil }))
	assert.Equal(t, "ERROR: stk program q exited early via runtime.Goexit\n", out.String(),
		"expected goexit to be logged without a stack")
}
