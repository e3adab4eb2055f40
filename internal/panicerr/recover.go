package panicerr

// Recover runs f in a new goroutine wrapped in defer logic that turns any
// abnormal exit into an error return:
//   - a Halt(err) panic returns err, which may be nil for a normal halt
//   - runtime.Goexit returns an error matched by IsExit
//   - any other panic returns an error matched by IsPanic, carrying a stack
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			// errch is still empty only if f called runtime.Goexit
			select {
			case errch <- exitError{name}:
			default:
			}
		}()
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
