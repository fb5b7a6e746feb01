package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Blue Bottle Coffee, Inc.",
			expected: "blue bottle coffee inc",
		},
		{
			name:     "digits are preserved",
			input:    "COSTCO #1234",
			expected: "costco 1234",
		},
		{
			name:     "whitespace runs collapse",
			input:    "  PAYPAL   *ACME  ",
			expected: "paypal acme",
		},
		{
			name:     "symbols become spaces",
			input:    "AT&T/WIRELESS",
			expected: "at t wireless",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeMerchant(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "reference numbers are stripped",
			input:    "PAYPAL *ACME 00391",
			expected: "paypal acme",
		},
		{
			name:     "digits embedded in tokens are stripped",
			input:    "Netflix.com 4029357733",
			expected: "netflix com",
		},
		{
			name:     "only digits leaves nothing",
			input:    "12345",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMerchant(tt.input))
		})
	}
}

func TestNormalizeMerchant_VaryingReferencesShareKey(t *testing.T) {
	a := NormalizeMerchant("PAYPAL *ACME 00391")
	b := NormalizeMerchant("PAYPAL *ACME 00472")
	assert.Equal(t, a, b)
	assert.Equal(t, "paypal acme", a)
}

func TestGroupKey_FallsBackToRawDescription(t *testing.T) {
	// A digits-only description normalizes to nothing; grouping must fall
	// back to the raw text rather than the empty key.
	assert.Equal(t, "12345", GroupKey("12345"))
	assert.Equal(t, "paypal acme", GroupKey("PAYPAL *ACME 00391"))
}
