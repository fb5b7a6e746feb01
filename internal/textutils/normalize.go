// Package textutils provides text normalization utilities used for keyword
// matching and merchant grouping.
package textutils

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a merchant description for keyword matching:
// lowercase, punctuation replaced by spaces, whitespace runs collapsed,
// trimmed. Digits are preserved so "costco #1234" still matches "costco".
func Normalize(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return collapseWhitespace(b.String())
}

// NormalizeMerchant canonicalizes a merchant description for recurring
// detection: lowercase with digits stripped before non-letter characters are
// replaced, so varying invoice or reference numbers ("PAYPAL *ACME 00391",
// "PAYPAL *ACME 00472") collapse to the same key.
func NormalizeMerchant(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case unicode.IsDigit(r):
			// dropped entirely
		case unicode.IsLetter(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return collapseWhitespace(b.String())
}

// GroupKey returns the recurring-profile normalization of a description, or
// the lowercased trimmed original when normalization leaves nothing. A
// description must never group under the empty key.
func GroupKey(text string) string {
	if key := NormalizeMerchant(text); key != "" {
		return key
	}
	return strings.TrimSpace(strings.ToLower(text))
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
