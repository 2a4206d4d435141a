package utils

import "strings"

// Truncate is a simple string truncate
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Slugify reduces a string to its alphanumeric lowercase form. Anything
// after the first dot is dropped, so "acme-corp.com" becomes "acmecorp".
func Slugify(input string) string {
	input, _, _ = strings.Cut(input, ".")
	input = strings.ToLower(input)

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeQuery trims, lowercases, and collapses internal whitespace
// to single spaces.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
