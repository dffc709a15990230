package sanitizer

import (
	"strings"
	"unicode"
)

// MaxPlainTextLen is the hard cap applied by SanitizePlainText. Longer
// input is truncated, never rejected.
const MaxPlainTextLen = 10000

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// LimitLength truncates input to at most maxLength runes. Rune-based so
// multi-byte characters are never split.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength])
}

// RemoveNullBytes removes null bytes that could confuse downstream
// C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// RemoveControlSequences removes control characters except newline,
// carriage return and tab.
func RemoveControlSequences(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SanitizePlainText cleans a plain-text field: markup and quoting
// characters (< > " ' ` and backslash) are stripped together with null
// bytes and control sequences, surrounding whitespace is trimmed, and
// the result is capped at MaxPlainTextLen runes.
func SanitizePlainText(s string) string {
	result := RemoveNullBytes(s)
	result = RemoveControlSequences(result)
	result = plainTextStripRegex.ReplaceAllString(result, "")
	result = strings.TrimSpace(result)
	return LimitLength(result, MaxPlainTextLen)
}
