// Package parse provides small input helpers for splitting puzzle text
// into lines, fields, and the numbers buried inside it.
//
// What
//
//   - Lines: split on newlines, tolerant of \r\n and a trailing newline.
//   - Fields: whitespace-separated tokens (strings.Fields, re-exported
//     for discoverability next to the other helpers).
//   - Ints: every signed decimal integer embedded in a string, in order.
//   - Digits: each decimal digit of a string as its own int.
//
// Why
//
//	Puzzle input rarely deserves a grammar. These helpers cover the
//	common extraction patterns so solution code can start at the
//	interesting part.
//
// No algorithmic content lives here; the package never allocates state
// and every function is pure.
package parse
