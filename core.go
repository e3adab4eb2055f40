package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/tapevm/internal/byteio"
	"github.com/jcorbin/tapevm/internal/flushio"
	"github.com/jcorbin/tapevm/internal/panicerr"
)

type ioCore struct {
	logging
	in   byteio.Reader
	fold bool
	tee  flushio.WriteFlusher
}

func (ioc *ioCore) init() {
	if ioc.in == nil {
		ioc.in = byteio.NewReader(strings.NewReader(""))
	}
	if _, folded := ioc.in.(byteio.FoldReader); ioc.fold && !folded {
		ioc.in = byteio.FoldReader{Reader: ioc.in}
	}
}

func (ioc *ioCore) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if ferr := ioc.flush(); err == nil {
			err = ferr
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		if err != nil {
			ioc.logf("#", "halt error: %v", err)
		} else {
			ioc.logf("#", "halt")
		}
	}()

	panicerr.Halt(err)
}

func (ioc *ioCore) haltif(err error) {
	if err != nil {
		ioc.halt(err)
	}
}

func (ioc *ioCore) flush() error {
	if ioc.tee != nil {
		return ioc.tee.Flush()
	}
	return nil
}

func (ioc *ioCore) writeByte(b byte) error {
	if ioc.tee != nil {
		return flushio.WriteByte(ioc.tee, b)
	}
	return nil
}

// readByte flushes any tee output, so that a prompt is visible before
// blocking, and then reads one byte.
// Running out of input results in errInputExhausted; any other read failure
// is wrapped by it.
func (ioc *ioCore) readByte() (byte, error) {
	if err := ioc.flush(); err != nil {
		return 0, err
	}
	b, err := ioc.in.ReadByte()
	switch {
	case err == io.EOF:
		err = errInputExhausted
	case err != nil:
		err = fmt.Errorf("%w: %v", errInputExhausted, err)
	}
	return b, err
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
