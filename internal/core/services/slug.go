package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes to NFD, drops combining marks, recomposes.
// "Liège" becomes "Liege".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify normalizes a display name into a stable identifier: lowercase,
// diacritics stripped, punctuation and whitespace collapsed into single
// hyphens. It is the single normalization used by both the matcher and
// slug derivation so the two can never disagree.
func Slugify(name string) string {
	if stripped, _, err := transform.String(deaccent, name); err == nil {
		name = stripped
	}
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
