package models

import (
	"strings"
	"unicode"
)

// TableNameFromType derives the table name from a Go type name by inserting an
// underscore before every non-leading uppercase letter and lowercasing the
// result. "GameSession" becomes "game_session", "ABTest" becomes "a_b_test".
func TableNameFromType(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}
