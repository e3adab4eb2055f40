// Package main: tapevm -- a compacting tape machine
//
// The tape language has eight operators working on a row of byte cells and a
// data pointer into them:
//
//	>  move the data pointer right
//	<  move the data pointer left
//	+  increment the current cell
//	-  decrement the current cell
//	.  output the current cell
//	,  input a byte into the current cell
//	[  if the current cell is zero, jump past the matching ]
//	]  if the current cell is non-zero, jump back past the matching [
//
// Cell arithmetic wraps modulo 256.  The character | is reserved: it is the
// compacted form of the clear idiom below, so it zeroes the current cell even
// when written directly in a program.  Decimal digits are reserved too, as
// run counts.  Every other character is a no-op.
//
// Rather than expanding programs into an instruction array, tapevm compacts the
// program text and then decodes it on the fly:
//
// Section 1: see encode.go
//
// Runs of three or more identical repeatable operators (+ - < > ,) are written
// as a decimal count followed by the operator, so "+++++" becomes "5+".
// Brackets are never counted: every bracket keeps its own position so that it
// can be paired with its partner.
//
// The common clear idiom "[-]" is then replaced by the single reserved
// operator "|" that zeroes the current cell.
//
// Section 2: see brackets.go
//
// The compacted text is scanned once, pairing each [ with its ] through a
// symmetric table of text positions.  Unbalanced brackets are rejected here,
// before anything runs.
//
// Section 3: see decode.go and vm.go
//
// The machine keeps a cursor into the compacted text.  Each step decodes one
// instruction, either bare like "+" or counted like "5+", advancing the cursor
// past it, and then executes it.  Since decoding has already stepped past a
// bracket when it executes, jump targets are found from the position just
// before the cursor.
package main
