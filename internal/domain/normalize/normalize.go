// Package normalize turns raw lines into the form used for vocabulary lookup.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Func normalizes one line.
type Func func(line string) string

// Strip trims surrounding whitespace, including line terminators.
func Strip(line string) string {
	return strings.TrimFunc(line, isSpace)
}

// isSpace is unicode.IsSpace plus the ASCII information separators
// U+001C..U+001F, which text-mode line handling also treats as blanks.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// For returns the normalizer for the given mode. Case-insensitive mode
// lowercases with the language-neutral Unicode rules of x/text/cases
// rather than a per-rune mapping.
//
// The returned Func holds a cases.Caser and must not be shared between
// goroutines.
func For(ignoreCase bool) Func {
	if !ignoreCase {
		return Strip
	}
	lower := cases.Lower(language.Und)
	return func(line string) string {
		return lower.String(Strip(line))
	}
}
