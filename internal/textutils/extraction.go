// Package textutils provides the cell-level text helpers shared by the PDF
// table extractor and the votes parser.
package textutils

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNegativeCount is returned by ParseCount for values below zero.
var ErrNegativeCount = errors.New("count must not be negative")

// NormalizeCell replaces non-breaking spaces with plain spaces and trims
// surrounding whitespace. Report sub-headers such as "VOTER PARTY" separate
// their words with non-breaking spaces.
func NormalizeCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\u00a0", " "))
}

// ContainsToken reports whether the normalized cell contains token.
func ContainsToken(cell, token string) bool {
	return strings.Contains(NormalizeCell(cell), token)
}

// ContainsFold is ContainsToken ignoring case.
func ContainsFold(cell, token string) bool {
	return strings.Contains(strings.ToUpper(NormalizeCell(cell)), strings.ToUpper(token))
}

// StripThousands removes "," thousands separators.
func StripThousands(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// ParseCount parses a vote count such as "1,234" as a non-negative base-10
// integer.
func ParseCount(cell string) (int, error) {
	n, err := strconv.Atoi(StripThousands(NormalizeCell(cell)))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrNegativeCount
	}
	return n, nil
}
