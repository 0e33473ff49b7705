// Package slug builds URL- and object-key-safe slugs for upload paths.
package slug

import (
	"strings"
	"unicode"
)

// Make lowercases the input and collapses every run of non-alphanumeric
// characters into a single dash. Leading and trailing dashes are trimmed so
// the slug can be joined with other path segments safely.
func Make(s string) string {
	var b strings.Builder

	lastDash := true

	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)

			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')

				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
