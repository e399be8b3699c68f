package utils

import "strings"

// NormalizeSpace trims the string and collapses repeated whitespace
// into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
