package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jcorbin/gostk/internal/fileinput"
	"github.com/jcorbin/gostk/internal/logio"
	"github.com/jcorbin/gostk/internal/panicerr"
)

func main() {
	ctx := context.Background()

	var timeout time.Duration
	var trace bool
	var depthLimit int
	var noStdlib bool
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit; applies to each line in interactive mode")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&depthLimit, "depth-limit", defaultDepthLimit, "limit nested block invocation depth; 0 for no limit")
	flag.BoolVar(&noStdlib, "no-stdlib", false, "do not load the standard words")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] [program.stk [input]]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logio.NewLogger(os.Stderr)

	var opts = []Option{
		WithOutput(os.Stdout),
		WithDepthLimit(depthLimit),
	}
	if trace {
		opts = append(opts, WithLogf(logger.Leveledf("TRACE")))
	}

	switch args := flag.Args(); {
	case len(args) == 0:
		reportError(logger, repl(ctx, New(opts...), !noStdlib, timeout))
	case len(args) > 2:
		flag.Usage()
		os.Exit(2)
	default:
		if timeout != 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		reportError(logger, runFile(ctx, New(opts...), !noStdlib, args[0], args[1:]...))
	}
	os.Exit(logger.ExitCode())
}

// runFile runs the program at path, after binding $input to the contents of
// the optional input file.
func runFile(ctx context.Context, in *Interpreter, stdlib bool, path string, inputPath ...string) error {
	code, err := fileinput.ReadFile(path)
	if err != nil {
		return err
	}
	prog, err := BuildProgram(code, path)
	if err != nil {
		return err
	}

	for _, inPath := range inputPath {
		input, err := fileinput.ReadFile(inPath)
		if err != nil {
			return err
		}
		in.SetTopLevelBinding("input", StringValue(input))
	}

	if stdlib {
		if err := LoadStdlib(in); err != nil {
			return fmt.Errorf("unable to load standard words: %w", err)
		}
	}
	return in.ExecuteContext(ctx, prog)
}

// reportError logs err; an interpreter panic is logged with its stack.
func reportError(logger *logio.Logger, err error) {
	var pe *panicerr.Error
	switch {
	case !errors.As(err, &pe):
		logger.ErrorIf(err)
	case pe.Exit:
		logger.Errorf("%v", pe)
	default:
		logger.Errorf("%+v", pe)
	}
}
