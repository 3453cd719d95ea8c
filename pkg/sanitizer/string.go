package sanitizer

import (
	"regexp"
	"strings"
)

var (
	nonDigitRegex   = regexp.MustCompile(`[^0-9]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ExtractDigits returns the digit-only projection of a string, with
// every non-digit character stripped. Used for length and repetition
// checks on punctuated identifiers such as CPF and phone numbers.
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// TrimLine strips a single trailing LF or CRLF from a line read from a
// terminal or pipe. Unlike Trim it leaves interior and other trailing
// whitespace intact, so validators still see what the user typed.
func TrimLine(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// NormalizeWhitespace collapses runs of whitespace into single spaces
// and trims the ends.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}
