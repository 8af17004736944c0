package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMarketCapToValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{
			name:     "both segments",
			input:    "33조 1,287억원",
			expected: 33*1_000_000_000_000 + 1287*100_000_000,
		},
		{
			name:     "jo only",
			input:    "5조원",
			expected: 5 * 1_000_000_000_000,
		},
		{
			name:     "ok only",
			input:    "9,500억원",
			expected: 9500 * 100_000_000,
		},
		{
			name:     "empty string",
			input:    "",
			expected: 0,
		},
		{
			name:     "garbage input",
			input:    "N/A",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMarketCapToValue(tt.input))
		})
	}
}

func TestFormatMarketCapShort(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "both segments", input: "33조 1,287억원", expected: "33.1조"},
		{name: "empty string", input: "", expected: "-"},
		{name: "jo only", input: "12조원", expected: "12.0조"},
		{name: "ok only", input: "5,000억원", expected: "0.5조"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMarketCapShort(tt.input))
		})
	}
}

func TestParseMarketCap(t *testing.T) {
	t.Run("both segments", func(t *testing.T) {
		parts := ParseMarketCap("33조 1,287억원")
		assert.NotNil(t, parts)
		assert.Equal(t, "33", parts.Jo)
		assert.Equal(t, "1287", parts.Ok)
	})

	t.Run("empty string returns nil", func(t *testing.T) {
		assert.Nil(t, ParseMarketCap(""))
	})

	t.Run("whitespace only returns nil", func(t *testing.T) {
		assert.Nil(t, ParseMarketCap("   "))
	})

	t.Run("jo only", func(t *testing.T) {
		parts := ParseMarketCap("7조원")
		assert.NotNil(t, parts)
		assert.Equal(t, "7", parts.Jo)
		assert.Equal(t, "", parts.Ok)
	})
}
