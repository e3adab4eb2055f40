package tape

import (
	"errors"
	"fmt"
)

// DefaultSize is the conventional number of cells on a tape.
const DefaultSize = 30000

// ErrOutOfBounds is matched by any BoundsError under errors.Is.
var ErrOutOfBounds = errors.New("data pointer out of bounds")

// Tape implements a fixed length memory of byte cells along with a data
// pointer selecting the current cell.
// Cell arithmetic wraps modulo 256.
type Tape struct {
	cells []byte
	ptr   int
}

// New returns a zeroed tape of the given size, or of DefaultSize if size is
// not positive.
func New(size int) *Tape {
	if size <= 0 {
		size = DefaultSize
	}
	return &Tape{cells: make([]byte, size)}
}

// BoundsError indicates that a pointer move would leave the tape.
type BoundsError struct {
	Ptr   int
	Delta int
	Size  int
}

func (be BoundsError) Error() string {
	return fmt.Sprintf("data pointer moved out of bounds by %+d @%v (tape size %v)", be.Delta, be.Ptr, be.Size)
}

// Is returns true for ErrOutOfBounds.
func (be BoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// Size returns the number of cells.
func (t *Tape) Size() int { return len(t.cells) }

// Ptr returns the data pointer.
func (t *Tape) Ptr() int { return t.ptr }

// Move adds delta to the data pointer.
// Returns a BoundsError, leaving the pointer unchanged, if the result would
// fall outside the tape.
func (t *Tape) Move(delta int) error {
	to := t.ptr + delta
	if to < 0 || to >= len(t.cells) {
		return BoundsError{t.ptr, delta, len(t.cells)}
	}
	t.ptr = to
	return nil
}

// Load returns the current cell value.
func (t *Tape) Load() byte { return t.cells[t.ptr] }

// Stor sets the current cell value.
func (t *Tape) Stor(b byte) { t.cells[t.ptr] = b }

// Add adds n, which may be negative, to the current cell modulo 256.
func (t *Tape) Add(n int) { t.cells[t.ptr] += byte(n) }

// At returns the value of any cell, or 0 if addr is outside the tape.
func (t *Tape) At(addr int) byte {
	if addr < 0 || addr >= len(t.cells) {
		return 0
	}
	return t.cells[addr]
}

// Extent returns the smallest half-open address range that covers every
// non-zero cell and the data pointer.
func (t *Tape) Extent() (lo, hi int) {
	lo, hi = t.ptr, t.ptr+1
	for i := 0; i < lo; i++ {
		if t.cells[i] != 0 {
			lo = i
			break
		}
	}
	for i := len(t.cells) - 1; i >= hi; i-- {
		if t.cells[i] != 0 {
			hi = i + 1
			break
		}
	}
	return lo, hi
}
