package main

import (
	"io"

	"github.com/jcorbin/tapevm/internal/byteio"
	"github.com/jcorbin/tapevm/internal/flushio"
	"github.com/jcorbin/tapevm/internal/tape"
)

// VMOption configures a VM under New.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines any number of options into one, applied in order;
// nil options are skipped.
func VMOptions(opts ...VMOption) VMOption {
	var res vmOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case vmOptions:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = VMOptions(
	withTapeSize(tape.DefaultSize),
	withFoldInput(true),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type teeOption struct{ io.Writer }
type tapeSizeOption int
type foldInputOption bool

func withInput(r io.Reader) inputOption       { return inputOption{r} }
func withTee(w io.Writer) teeOption           { return teeOption{w} }
func withTapeSize(size int) tapeSizeOption    { return tapeSizeOption(size) }
func withFoldInput(fold bool) foldInputOption { return foldInputOption(fold) }

func (i inputOption) apply(vm *VM) {
	vm.in = byteio.NewReader(i.Reader)
}

func (o teeOption) apply(vm *VM) {
	vm.tee = flushio.WriteFlushers(vm.tee, flushio.NewWriteFlusher(o.Writer))
}

func (size tapeSizeOption) apply(vm *VM) {
	vm.tapeSize = int(size)
}

func (fold foldInputOption) apply(vm *VM) {
	vm.fold = bool(fold)
}
