package album

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics strips diacritical marks from a string (e.g., "Jiří" -> "Jiri").
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// Slugify turns an album title into a URL-safe slug: diacritics removed,
// lowercased, runs of non-alphanumerics collapsed into single dashes.
// An empty or fully non-alphanumeric title slugs to "album".
func Slugify(title string) string {
	title = removeDiacritics(title)
	title = strings.ToLower(title)

	var b strings.Builder
	lastDash := true // no leading dash
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "album"
	}
	return slug
}
