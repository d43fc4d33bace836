package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes unicode and drops combining marks, so "Café" folds
// to "Cafe" before the ASCII pass.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a title or name into a lowercase, ASCII, hyphen-separated
// URL path segment. It is deterministic and idempotent: slugifying a slug
// returns the same slug.
func Slugify(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	var out []rune
	lastDash := false

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]

		switch {
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if 'A' <= r && r <= 'Z' {
				r = r + ('a' - 'A')
			}
			out = append(out, r)
			lastDash = false
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			if !lastDash && len(out) > 0 {
				out = append(out, '-')
				lastDash = true
			}
		default:
			// Punctuation and untransliterated runes are dropped.
		}
	}

	return strings.Trim(string(out), "-")
}
