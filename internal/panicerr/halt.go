package panicerr

import "fmt"

// Halt stops any function running under Recover, causing it to return err.
// Halt never returns.
func Halt(err error) {
	panic(haltError{err})
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }
