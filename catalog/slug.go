package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify turns a tab title into a URL-safe identifier: "Side Effects" -> "side-effects".
// Accents are folded to their base letter, everything else outside [a-z0-9] becomes a dash.
func Slugify(title string) string {
	// transformers keep state, build one per call
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, title)
	if err != nil {
		folded = title
	}
	folded = cases.Lower(language.Und).String(folded)

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
			continue
		}
		pendingDash = true
	}
	return b.String()
}
