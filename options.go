package main

import (
	"io"

	"github.com/jcorbin/gostk/internal/flushio"
)

// Option configures an Interpreter.
type Option interface{ apply(in *Interpreter) }

const defaultDepthLimit = 10000

var defaultOptions = Options(
	withOutput(io.Discard),
	withDepthLimit(defaultDepthLimit),
)

// Options combines any number of options into one, applied in order.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

// WithOutput sets where print, println, and debug write.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee adds another destination for output, in addition to any prior.
func WithTee(w io.Writer) Option { return withTee(w) }

// WithDepthLimit bounds how deeply block invocations may nest; 0 disables the
// limit, leaving only the host stack as a bound.
func WithDepthLimit(limit int) Option { return withDepthLimit(limit) }

// WithBinding seeds a top level binding.
func WithBinding(name string, v Value) Option { return bindingOption{name, v} }

// WithLogf enables trace logging of every action dispatch.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type options []Option

func (opts options) apply(in *Interpreter) {
	for _, opt := range opts {
		opt.apply(in)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(in *Interpreter) {
	in.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type depthLimitOption int

type bindingOption struct {
	name string
	v    Value
}

func withOutput(w io.Writer) outputOption      { return outputOption{w} }
func withTee(w io.Writer) teeOption            { return teeOption{w} }
func withDepthLimit(limit int) depthLimitOption { return depthLimitOption(limit) }

// Options only apply within New, before any program has run, so a replaced
// writer never holds unflushed output.
func (o outputOption) apply(in *Interpreter) {
	in.out = flushio.New(o.Writer)
}

func (o teeOption) apply(in *Interpreter) {
	in.out = flushio.Tee(in.out, flushio.New(o.Writer))
}

func (lim depthLimitOption) apply(in *Interpreter) {
	in.depthLimit = int(lim)
}

func (b bindingOption) apply(in *Interpreter) {
	in.SetTopLevelBinding(b.name, b.v)
}
