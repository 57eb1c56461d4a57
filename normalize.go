package dupex

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes characters and drops combining marks
// (e.g. "Élodie" -> "Elodie")
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Clean normalizes a raw response into a token: lowercase, accents and
// punctuation stripped, interior whitespace collapsed to single spaces,
// leading/trailing whitespace trimmed.
//
// EXAMPLE:
//
//	Clean("  Brand   1!! ") -> "brand 1"
//	Clean("Élodie's")       -> "elodies"
func Clean(s string) string {
	lowered := strings.ToLower(s)
	flattened, _, err := transform.String(stripAccents, lowered)
	if err != nil {
		// transform only fails on malformed input, keep the lowered form
		flattened = lowered
	}

	var sb strings.Builder
	sb.Grow(len(flattened))
	space := false
	for _, r := range flattened {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && sb.Len() > 0 {
				sb.WriteRune(' ')
			}
			space = false
			sb.WriteRune(r)
		}
		// everything else (punctuation, symbols) is dropped
	}
	return sb.String()
}

// Tokenize cleans s and splits it into word tokens.
func Tokenize(s string) []string {
	cleaned := Clean(s)
	if cleaned == "" {
		return nil
	}
	return strings.Fields(cleaned)
}
