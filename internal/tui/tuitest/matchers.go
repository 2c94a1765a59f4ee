package tuitest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ContainsInOrder reports whether output contains every expected string, in order.
func ContainsInOrder(output string, expected ...string) bool {
	rest := output
	for _, exp := range expected {
		i := strings.Index(rest, exp)
		if i == -1 {
			return false
		}
		rest = rest[i+len(exp):]
	}
	return true
}

// NormalizeWhitespace collapses whitespace runs to single spaces and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MaxLineWidth returns the widest line of s in cells, ignoring ANSI codes.
func MaxLineWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}
