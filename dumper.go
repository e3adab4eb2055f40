package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	textWidth int // program bytes per line
	cellWidth int // tape cells per line
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  cursor: %v\n", dump.vm.cursor)
	fmt.Fprintf(dump.out, "  at: %v\n", dump.vm.at)
	if t := dump.vm.tape; t != nil {
		fmt.Fprintf(dump.out, "  ptr: %v\n", t.Ptr())
	}
	dump.dumpText()
	dump.dumpTape()
}

// dumpText prints the program text, marking the start of the last executed
// instruction with a caret.
func (dump vmDumper) dumpText() {
	const defaultTextWidth = 64
	width := dump.textWidth
	if width <= 0 {
		width = defaultTextWidth
	}

	text, at := dump.vm.text, dump.vm.at
	addrWidth := len(strconv.Itoa(len(text)))
	fmt.Fprintf(dump.out, "# Program (%v bytes)\n", len(text))
	for base := 0; base < len(text); base += width {
		end := min(base+width, len(text))
		fmt.Fprintf(dump.out, "  @%*d %s\n", addrWidth, base, text[base:end])
		if base <= at && at < end {
			fmt.Fprintf(dump.out, "%s^\n", strings.Repeat(" ", addrWidth+4+at-base))
		}
	}
}

// dumpTape prints every row of cells that contains a non-zero value or the
// data pointer; the current cell is marked with a leading '>'.
func (dump vmDumper) dumpTape() {
	const defaultCellWidth = 16
	width := dump.cellWidth
	if width <= 0 {
		width = defaultCellWidth
	}

	t := dump.vm.tape
	if t == nil {
		return
	}
	lo, hi := t.Extent()
	lo = lo / width * width
	hi = min((hi+width-1)/width*width, t.Size())

	addrWidth := len(strconv.Itoa(t.Size()))
	fmt.Fprintf(dump.out, "# Tape (%v cells)\n", t.Size())
	var sb strings.Builder
	for base := lo; base < hi; base += width {
		sb.Reset()
		fmt.Fprintf(&sb, "  @%*d", addrWidth, base)
		for addr := base; addr < base+width && addr < hi; addr++ {
			mark := ' '
			if addr == t.Ptr() {
				mark = '>'
			}
			fmt.Fprintf(&sb, " %c%02x", mark, t.At(addr))
		}
		sb.WriteByte('\n')
		io.WriteString(dump.out, sb.String())
	}
}
