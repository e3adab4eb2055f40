package panicerr_test

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/jcorbin/tapevm/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recover(t *testing.T) {
	for _, tc := range []struct {
		name    string
		err     string
		wraps   error
		isPanic bool
		isExit  bool
		fun     func() error
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			err:  "bang",
			fun:  func() error { return errors.New("bang") },
		},
		{
			name: "halt",
			fun:  func() error { panicerr.Halt(nil); return errors.New("unreachable") },
		},
		{
			name:  "halt err",
			err:   "EOF",
			wraps: io.EOF,
			fun:   func() error { panicerr.Halt(io.EOF); return nil },
		},
		{
			name:  "halt wrapped",
			err:   "reading: EOF",
			wraps: io.EOF,
			fun: func() error {
				func() { panicerr.Halt(fmt.Errorf("reading: %w", io.EOF)) }()
				return nil
			},
		},
		{
			name:    "",
			err:     "paniced: shrug",
			wraps:   errShrug,
			isPanic: true,
			fun:     func() error { panic(errShrug) },
		},
		{
			name:    "hello panic",
			err:     "hello panic paniced: hello",
			isPanic: true,
			fun:     func() error { panic("hello") },
		},
		{
			name:    "index panic",
			err:     "index panic paniced: runtime error: index out of range [1] with length 0",
			isPanic: true,
			fun:     func() error { _ = ([]int)(nil)[1]; return nil },
		},
		{
			name:   "exit",
			err:    "exit called runtime.Goexit",
			isExit: true,
			fun:    func() error { runtime.Goexit(); return nil },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.err)
			}
			if tc.wraps != nil {
				assert.True(t, errors.Is(err, tc.wraps), "expected %v to wrap %v", err, tc.wraps)
			}
			assert.Equal(t, tc.isPanic, panicerr.IsPanic(err), "expected IsPanic")
			assert.Equal(t, tc.isExit, panicerr.IsExit(err), "expected IsExit")
			stack := panicerr.PanicStack(err)
			if tc.isPanic {
				assert.NotEqual(t, "", stack, "expected a stack trace")
			} else {
				assert.Equal(t, "", stack, "expected no stack trace")
			}
		})
	}
}

var errShrug = errors.New("shrug")

func Test_Recover_stacktrace(t *testing.T) {
	err := panicerr.Recover("", func() error {
		panic("nope")
	})
	require.Error(t, err, "must have a recovered error")

	assert.True(t,
		strings.HasSuffix(fmt.Sprintf("%+v", err), panicerr.PanicStack(err)),
		"expected verbose format to end with a stack trace")
}
