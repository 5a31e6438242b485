package domain

import (
	"strings"
)

// NormalizeName returns the natural key of a name: its CleanName form in
// lower case.
func NormalizeName(text string) string {
	return strings.ToLower(CleanName(text))
}

// CleanName trims and compresses whitespace but keeps the original case.
// Used for display names before storage.
func CleanName(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
