package text

import (
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Fold maps full-width and wide forms to their narrow equivalents, so a
// label typed as "＠" or "＜ＥＳＣ＞" measures and renders like "@" or "<ESC>".
// Narrow input is returned unchanged.
func Fold(s string) string {
	return width.Narrow.String(s)
}

// Len returns the number of runes in s after folding.
func Len(s string) int {
	return utf8.RuneCountInString(Fold(s))
}
