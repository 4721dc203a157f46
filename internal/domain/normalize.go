package domain

import (
	"strings"
)

// NormalizeQuery prepares a search term for a provider request:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved; providers match case-insensitively.
func NormalizeQuery(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeBarcode strips spaces and dashes from a scanned code.
// Returns "" if anything other than digits remains.
func NormalizeBarcode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		switch {
		case r == ' ' || r == '-':
			continue
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			return ""
		}
	}
	return b.String()
}
