package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
)

const (
	replName    = "(repl)"
	replPrompt  = "> "
	historyFile = ".gostk_history"
)

// repl reads and runs one line at a time against a single interpreter, so
// that bindings and words persist from line to line. Errors are reported, and
// do not end the session. A non-zero timeout limits each line separately.
func repl(ctx context.Context, in *Interpreter, stdlib bool, timeout time.Duration) error {
	if stdlib {
		if err := LoadStdlib(in); err != nil {
			return fmt.Errorf("unable to load standard words: %w", err)
		}
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if home, err := os.UserHomeDir(); err == nil {
		histPath := filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := replLine(ctx, in, os.Stdout, line, timeout); quit {
			return nil
		}
	}
}

// replLine handles one line of REPL input, returning true if the session
// should end.
func replLine(ctx context.Context, in *Interpreter, out io.Writer, line string, timeout time.Duration) (quit bool) {
	switch strings.TrimSpace(line) {
	case ":quit":
		return true
	case ":dump":
		interpDumper{in: in, out: out}.dump()
		return false
	}

	prog, err := BuildProgram(line, replName)
	if err != nil {
		fmt.Fprintf(out, "Parse error: %v\n", err)
		return false
	}
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := in.ExecuteContext(ctx, prog); err != nil {
		fmt.Fprintf(out, "Execution error: %v\n", err)
		return false
	}
	in.DebugStack(out)
	fmt.Fprintln(out)
	return false
}
