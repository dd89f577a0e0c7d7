package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText trims surrounding whitespace and normalises s to NFC so visually
// identical names compare and sort the same.
func CleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// CleanOptional applies CleanText to an optional value.
func CleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := CleanText(*s)
	return &v
}
