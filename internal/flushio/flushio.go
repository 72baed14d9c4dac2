// Package flushio turns output destinations into writers that are flushed
// explicitly, so that a program's output reaches slow destinations (files,
// terminals) once per run rather than once per print.
package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteFlusher is an io.Writer whose writes may be held until Flush.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard accepts and drops all output.
var Discard WriteFlusher = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Flush() error                { return nil }

// New adapts w for buffered output. Nil and io.Discard become Discard, and
// a WriteFlusher is used as-is. In-memory buffers are written directly, since
// holding their writes back gains nothing; anything else gets a bufio.Writer.
func New(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case nil:
		return Discard
	case WriteFlusher:
		return impl
	case *bytes.Buffer, *strings.Builder:
		return direct{w}
	}
	if w == io.Discard {
		return Discard
	}
	return bufio.NewWriter(w)
}

type direct struct{ io.Writer }

func (direct) Flush() error { return nil }

// Tee combines destinations into one that writes to, and flushes, each of
// them. Nil and Discard destinations are skipped, and nested tees are
// flattened.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			all = append(all, impl...)
		default:
			if wf != Discard {
				all = append(all, wf)
			}
		}
	}
	switch len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	}
	return all
}

// tee keeps writing to later destinations after an earlier one fails, so that
// one broken destination does not starve the rest; the first error wins.
type tee []WriteFlusher

func (t tee) Write(p []byte) (int, error) {
	var first error
	for _, wf := range t {
		n, err := wf.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if first == nil {
			first = err
		}
	}
	if first != nil {
		return 0, first
	}
	return len(p), nil
}

func (t tee) Flush() error {
	var first error
	for _, wf := range t {
		if err := wf.Flush(); first == nil {
			first = err
		}
	}
	return first
}
