package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Initials derives profile initials from a full name: the first rune of each
// space-separated word, upper-cased. "amina def kab" -> "ADK".
func Initials(fullName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(fullName) {
		runes := []rune(word)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	return b.String()
}
