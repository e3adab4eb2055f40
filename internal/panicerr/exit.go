package panicerr

import "errors"

// exitError reports that the function run under Recover called
// runtime.Goexit, as testing.T.FailNow does, instead of returning.
type exitError struct{ name string }

func (ee exitError) Error() string {
	if ee.name == "" {
		return "runtime.Goexit called"
	}
	return ee.name + " called runtime.Goexit"
}

// IsExit returns true if err indicates a recovered goroutine exit.
func IsExit(err error) bool {
	return errors.As(err, new(exitError))
}
