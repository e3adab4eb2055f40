package main

import (
	"context"
	"io"

	"github.com/jcorbin/tapevm/internal/panicerr"
)

// New compacts the given program source and builds a VM ready to run it.
// Returns an error, and no VM, if the program has unbalanced brackets.
func New(source string, opts ...VMOption) (*VM, error) {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	if err := vm.load(Compact(source)); err != nil {
		return nil, err
	}
	vm.init()
	return &vm, nil
}

// Run executes the program to its end, returning all output that it
// produced.
// Any runtime error, like moving the data pointer off the tape or running
// out of input, stops the program; any output produced until then is still
// returned alongside the error.
// The context is checked after every instruction.
func (vm *VM) Run(ctx context.Context) (string, error) {
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
	return vm.output.String(), err
}

// Encoded returns the compacted program text that the VM executes.
func (vm *VM) Encoded() string { return vm.text }

func WithInput(r io.Reader) VMOption   { return withInput(r) }
func WithTee(w io.Writer) VMOption     { return withTee(w) }
func WithTapeSize(size int) VMOption   { return withTapeSize(size) }
func WithFoldInput(fold bool) VMOption { return withFoldInput(fold) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
