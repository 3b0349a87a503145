package parse

import (
	"strconv"
	"strings"
)

// Lines splits s into lines, dropping \r line endings and a final empty
// line left by a trailing newline. Interior empty lines are preserved —
// they often delimit blocks in puzzle input.
func Lines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}

// Fields splits s around runs of whitespace.
func Fields(s string) []string { return strings.Fields(s) }

// Ints extracts every signed decimal integer embedded in s, in order of
// appearance. A '-' immediately preceding digits is taken as a sign;
// anything else is a separator. "x=-3, y=14" yields [-3, 14].
func Ints(s string) []int64 {
	var out []int64
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			continue
		}
		start := i
		if start > 0 && s[start-1] == '-' {
			start--
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		// The token is all digits with an optional sign; ParseInt cannot
		// fail on it short of overflow, which callers opted into.
		v, err := strconv.ParseInt(s[start:i], 10, 64)
		if err == nil {
			out = append(out, v)
		}
	}

	return out
}

// Digits returns each decimal digit of s as its own int, skipping every
// non-digit byte. "17a04" yields [1, 7, 0, 4].
func Digits(s string) []int {
	var out []int
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			out = append(out, int(s[i]-'0'))
		}
	}

	return out
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
