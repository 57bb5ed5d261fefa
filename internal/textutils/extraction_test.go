package textutils_test

import (
	"strconv"
	"testing"

	"fjacquet/co-early-votes/internal/textutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "non-breaking space", input: "VOTER\u00a0PARTY", expected: "VOTER PARTY"},
		{name: "surrounding whitespace", input: "  Adams\t", expected: "Adams"},
		{name: "only nbsp", input: "\u00a0", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textutils.NormalizeCell(tt.input))
		})
	}
}

func TestContainsToken(t *testing.T) {
	assert.True(t, textutils.ContainsToken("VOTER\u00a0PARTY", "VOTER PARTY"))
	assert.True(t, textutils.ContainsToken("COUNTY", "COUNTY"))
	assert.False(t, textutils.ContainsToken("County", "COUNTY"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutils.ContainsFold("Adams Total", "TOTAL"))
	assert.True(t, textutils.ContainsFold("GRAND TOTAL", "total"))
	assert.False(t, textutils.ContainsFold("Adams", "TOTAL"))
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1,234", 1234},
		{"0", 0},
		{"12,345,678", 12345678},
		{" 42 ", 42},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := textutils.ParseCount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCount_Invalid(t *testing.T) {
	for _, input := range []string{"", "n/a", "1.5", "12a"} {
		t.Run(input, func(t *testing.T) {
			_, err := textutils.ParseCount(input)
			assert.ErrorIs(t, err, strconv.ErrSyntax)
		})
	}

	_, err := textutils.ParseCount("-3")
	assert.ErrorIs(t, err, textutils.ErrNegativeCount)
}
