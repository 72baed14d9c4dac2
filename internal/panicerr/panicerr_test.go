package panicerr

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	bang := errors.New("bang")
	for _, tc := range []struct {
		name   string
		fun    func() error
		err    string
		wraps  error
		exit   bool
		caught bool
	}{
		{
			name: "return nil",
			fun:  func() error { return nil },
		},
		{
			name: "return error",
			fun:  func() error { return bang },
			err:  "bang",
		},
		{
			name:   "panic error",
			fun:    func() error { panic(bang) },
			err:    "panic error panicked: bang",
			wraps:  bang,
			caught: true,
		},
		{
			name:   "panic string",
			fun:    func() error { panic("hello") },
			err:    "panic string panicked: hello",
			caught: true,
		},
		{
			name:   "runtime panic",
			fun:    func() error { var m map[string]int; m["x"]++; return nil },
			err:    "runtime panic panicked: assignment to entry in nil map",
			caught: true,
		},
		{
			name:   "goexit",
			fun:    func() error { runtime.Goexit(); return nil },
			err:    "goexit exited early via runtime.Goexit",
			exit:   true,
			caught: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.err)

			var pe *Error
			require.Equal(t, tc.caught, errors.As(err, &pe), "expected recovered error")
			if !tc.caught {
				return
			}
			assert.Equal(t, tc.name, pe.Name)
			assert.Equal(t, tc.exit, pe.Exit)
			assert.NotEmpty(t, pe.Stack, "expected a stack trace")
			if tc.wraps != nil {
				assert.True(t, errors.Is(err, tc.wraps), "expected panic value to be unwrapped")
			}
		})
	}
}

func TestError_Format(t *testing.T) {
	err := Recover("stk program test", func() error { panic("nope") })
	var pe *Error
	require.True(t, errors.As(err, &pe))

	assert.Equal(t, "stk program test panicked: nope", fmt.Sprintf("%v", err))
	verbose := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(verbose, "stk program test panicked: nope\n"))
	assert.True(t, strings.HasSuffix(verbose, string(pe.Stack)), "expected verbose form to end with the stack")
}
