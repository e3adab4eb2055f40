package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/jcorbin/tapevm/internal/byteio"
	"github.com/jcorbin/tapevm/internal/tape"
)

// VM executes compacted tape programs.
//
// The program text and its bracket pairings are fixed when the VM is built;
// the tape, data pointer, and cursor change only while running.
type VM struct {
	ioCore

	tapeSize int
	tape     *tape.Tape

	text     string     // compacted program
	brackets bracketMap // bracket pairings within text
	cursor   int        // next instruction within text
	at       int        // start of the executing instruction

	output bytes.Buffer
	ran    bool
}

// load sets the program text that the VM will run, without further
// compaction, and pairs up its brackets.
func (vm *VM) load(text string) error {
	brackets, err := indexBrackets(text)
	if err != nil {
		return err
	}
	vm.text = text
	vm.brackets = brackets
	vm.cursor = 0
	return nil
}

func (vm *VM) init() {
	if vm.tape == nil {
		vm.tape = tape.New(vm.tapeSize)
	}
	vm.ioCore.init()
}

func (vm *VM) run(ctx context.Context) error {
	if vm.ran {
		return errRan
	}
	vm.ran = true
	vm.exec(ctx)
	return vm.flush()
}

func (vm *VM) exec(ctx context.Context) {
	if vm.logfn != nil {
		defer vm.withLogPrefix("	")()
	}
	for vm.step() {
		vm.haltif(ctx.Err())
	}
	vm.logf("#", "halt @%v", vm.cursor)
}

// step decodes and executes one instruction, returning false once the end
// of the program has been reached.
func (vm *VM) step() bool {
	vm.at = vm.cursor
	in := decode(vm.text, vm.cursor)
	if in.op == opEnd {
		return false
	}
	vm.cursor = in.next

	if vm.logfn != nil {
		vm.logf(">", "@%v %v -- ptr:%v cell:%v", vm.at, in, vm.tape.Ptr(), vm.tape.Load())
	}

	switch in.op {
	case opInc:
		vm.tape.Add(in.n())
	case opDec:
		vm.tape.Add(-in.n())
	case opRight:
		vm.move(in.n())
	case opLeft:
		vm.move(-in.n())
	case opZero:
		vm.tape.Stor(0)
	case opOut:
		vm.writeByte(vm.tape.Load())
	case opIn:
		for i := 0; i < in.n(); i++ {
			vm.tape.Stor(vm.readByte())
		}
	case opOpen:
		if vm.tape.Load() == 0 {
			vm.jump()
		}
	case opClose:
		if vm.tape.Load() != 0 {
			vm.jump()
		}
	}
	return true
}

func (vm *VM) move(delta int) {
	if err := vm.tape.Move(delta); err != nil {
		vm.fault(err)
	}
}

// jump moves the cursor just past the partner of the bracket being executed.
// Decoding has already advanced the cursor beyond that bracket, so the
// bracket itself is at cursor-1.
func (vm *VM) jump() {
	at := vm.cursor - 1
	to, ok := vm.brackets.partner(at)
	if !ok {
		vm.fault(bracketError{pos: at, char: vm.text[at]})
	}
	vm.logf("^", "jump @%v -> @%v", at, to+1)
	vm.cursor = to + 1
}

// fault halts the VM with err annotated by the position of the executing
// instruction.
func (vm *VM) fault(err error) {
	vm.halt(cursorError{vm.at, err})
}

var (
	errRan            = errors.New("vm already ran")
	errInputExhausted = errors.New("input exhausted")
)

// cursorError carries the program text position of the instruction that
// caused a runtime error.
type cursorError struct {
	cursor int
	err    error
}

func (ce cursorError) Error() string { return fmt.Sprintf("@%v: %v", ce.cursor, ce.err) }
func (ce cursorError) Unwrap() error { return ce.err }

// errorCursor returns the program text position recorded in err, if any.
func errorCursor(err error) (int, bool) {
	var ce cursorError
	if errors.As(err, &ce) {
		return ce.cursor, true
	}
	return 0, false
}

func (vm *VM) readByte() byte {
	b, err := vm.ioCore.readByte()
	if err != nil {
		vm.fault(err)
	}
	if vm.logfn != nil {
		vm.logf(",", "in %v", byteio.Name(b))
	}
	return b
}

func (vm *VM) writeByte(b byte) {
	vm.output.WriteByte(b)
	if vm.logfn != nil {
		vm.logf(".", "out %v", byteio.Name(b))
	}
	if err := vm.ioCore.writeByte(b); err != nil {
		vm.fault(err)
	}
}
