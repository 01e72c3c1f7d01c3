package synth

import (
	"strings"
	"unicode"
)

// TitleCase upper-cases every cased letter that follows an uncased character and
// lower-cases the rest, so "ayam goreng 2x" becomes "Ayam Goreng 2X".
func TitleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevCased := false
	for _, r := range s {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && prevCased:
			sb.WriteRune(unicode.ToLower(r))
		case cased:
			sb.WriteRune(unicode.ToTitle(r))
		default:
			sb.WriteRune(r)
		}
		prevCased = cased
	}
	return sb.String()
}
