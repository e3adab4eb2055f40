package main

import (
	"strconv"
	"strings"
)

//// Section 1: Compaction

// minRun is the shortest run of a repeatable operator that gets counted;
// shorter runs are cheaper to leave literal.
const minRun = 3

// clearIdiom is the loop that decrements the current cell until it is zero.
const clearIdiom = "[-]"

// Encode compresses every run of minRun or more identical repeatable operators
// into a decimal count followed by the operator.
// Brackets are never counted, and all other characters pass through as-is.
func Encode(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		j := i + 1
		for j < len(raw) && raw[j] == c {
			j++
		}
		if n := j - i; n >= minRun && opFor(c).repeatable() {
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte(c)
		} else {
			sb.WriteString(raw[i:j])
		}
		i = j
	}
	return sb.String()
}

// ClearLoops replaces every clear idiom with the single zero operator.
func ClearLoops(s string) string {
	return strings.ReplaceAll(s, clearIdiom, string(opZero.char()))
}

// Compact runs all compaction passes over raw program text, producing the
// form that the VM executes.
func Compact(raw string) string {
	return ClearLoops(Encode(raw))
}
