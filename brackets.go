package main

import (
	"errors"
	"fmt"
)

//// Section 2: Bracket pairing

var errUnbalanced = errors.New("malformed program: unbalanced brackets")

// bracketMap pairs each bracket position in a program text with that of its
// partner, in both directions; it is never modified once built.
type bracketMap map[int]int

// indexBrackets builds the bracketMap for text, returning a bracketError if
// any bracket has no partner.
func indexBrackets(text string) (bracketMap, error) {
	bm := make(bracketMap)
	var open []int
	for i := 0; i < len(text); i++ {
		switch opFor(text[i]) {
		case opOpen:
			open = append(open, i)
		case opClose:
			j := len(open) - 1
			if j < 0 {
				return nil, bracketError{pos: i, char: text[i]}
			}
			bm[open[j]] = i
			bm[i] = open[j]
			open = open[:j]
		}
	}
	if j := len(open) - 1; j >= 0 {
		return nil, bracketError{pos: open[j], char: text[open[j]]}
	}
	return bm, nil
}

func (bm bracketMap) partner(pos int) (int, bool) {
	to, ok := bm[pos]
	return to, ok
}

type bracketError struct {
	pos  int
	char byte
}

func (be bracketError) Error() string {
	return fmt.Sprintf("%v: unmatched %q @%v", errUnbalanced, be.char, be.pos)
}

func (be bracketError) Unwrap() error { return errUnbalanced }
