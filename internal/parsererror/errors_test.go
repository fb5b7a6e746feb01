package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "basic parse error",
			err: &ParseError{
				File:  "statement.csv",
				Field: "amount",
				Value: "12,34.56",
				Err:   errors.New("invalid decimal"),
			},
			expected: "statement.csv: failed to parse amount='12,34.56': invalid decimal",
		},
		{
			name: "parse error with empty value",
			err: &ParseError{
				File:  "statement.csv",
				Field: "date",
				Value: "",
				Err:   errors.New("empty date"),
			},
			expected: "statement.csv: failed to parse date='': empty date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{
		File:  "statement.csv",
		Field: "amount",
		Value: "invalid",
		Err:   originalErr,
	}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		FilePath: "/path/to/empty.csv",
		Reason:   "no transaction rows found",
	}
	assert.Equal(t, "validation failed for /path/to/empty.csv: no transaction rows found", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath: "/path/to/file.csv",
		Msg:      "no date column detected in header",
	}
	assert.Equal(t, "invalid format in file '/path/to/file.csv': no date column detected in header", err.Error())
}
