package search

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and splits it into words on whitespace and
// punctuation. Joining marks inside a word ('.', '-', '+', '#', '/') are
// dropped, so "Node.js" and "nodejs" normalize alike.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(s))
	lastWasSpace := true

	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			lastWasSpace = false
		case r == '.' || r == '-' || r == '+' || r == '#' || r == '/':
			// joining mark
		default:
			if !lastWasSpace {
				b.WriteByte(' ')
				lastWasSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}
