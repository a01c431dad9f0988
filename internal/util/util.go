// Package util holds small shared helpers for name and email normalization.
package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune and lower-cases the rest.
// Registration stores display names in this form.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)

	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(unicode.ToUpper(first))
	b.WriteString(strings.ToLower(s[size:]))

	return b.String()
}

// NormalizeEmail lower-cases an email address so lookups are
// case-insensitive. Uniqueness is enforced on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
