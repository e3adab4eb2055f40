package main

import (
	"strconv"
)

//// Section 3: Instructions

type opCode uint8

const (
	opNop opCode = iota
	opRight
	opLeft
	opInc
	opDec
	opOpen
	opClose
	opOut
	opIn
	opZero
	opEnd
)

var opCodeChars = [...]byte{
	opNop:   0,
	opRight: '>',
	opLeft:  '<',
	opInc:   '+',
	opDec:   '-',
	opOpen:  '[',
	opClose: ']',
	opOut:   '.',
	opIn:    ',',
	opZero:  '|',
	opEnd:   0,
}

var opCodeNames = [...]string{
	opNop:   "nop",
	opRight: "right",
	opLeft:  "left",
	opInc:   "inc",
	opDec:   "dec",
	opOpen:  "open",
	opClose: "close",
	opOut:   "out",
	opIn:    "in",
	opZero:  "zero",
	opEnd:   "end",
}

var charOpCodes [256]opCode

func init() {
	for op, c := range opCodeChars {
		if c != 0 {
			charOpCodes[c] = opCode(op)
		}
	}
}

func opFor(c byte) opCode { return charOpCodes[c] }

func (op opCode) char() byte { return opCodeChars[op] }

func (op opCode) String() string {
	if int(op) < len(opCodeNames) {
		return opCodeNames[op]
	}
	return "op" + strconv.Itoa(int(op))
}

// repeatable returns true for operators that may carry a count.
func (op opCode) repeatable() bool {
	switch op {
	case opRight, opLeft, opInc, opDec, opIn:
		return true
	}
	return false
}

// instr is a single decoded instruction: bare when count is 0, counted
// otherwise, or the end of the stream when op is opEnd.
// next is the cursor position just past the decoded text.
type instr struct {
	op    opCode
	count int
	next  int
}

func (in instr) counted() bool { return in.count > 0 }

// n returns the number of times the instruction applies.
func (in instr) n() int {
	if in.count > 0 {
		return in.count
	}
	return 1
}

func (in instr) String() string {
	switch {
	case in.op == opEnd:
		return "<end>"
	case in.counted():
		return strconv.Itoa(in.count) + in.op.String()
	default:
		return in.op.String()
	}
}

// decode reads one instruction from text at cursor: any decimal count,
// followed by one operator character.
// A count only applies to a repeatable operator; otherwise the digits are
// skipped and the operator decodes bare.
// Digits with nothing after them decode as the end of the stream.
func decode(text string, cursor int) instr {
	if cursor >= len(text) {
		return instr{op: opEnd}
	}

	i := cursor
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i >= len(text) {
		return instr{op: opEnd}
	}

	op := opFor(text[i])
	if i > cursor && op.repeatable() {
		if n, err := strconv.Atoi(text[cursor:i]); err == nil && n > 0 {
			return instr{op: op, count: n, next: i + 1}
		}
	}
	return instr{op: op, next: i + 1}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
