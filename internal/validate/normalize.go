package validate

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/govasco/go-trip-backend/internal/domain"
)

// accentStripper decomposes characters and removes combining marks, so
// "Vie nocturne" and "gastronomie" survive round-trips through accented UI
// labels ("é" -> "e").
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeInterest folds a display label into canonical interest form:
// lowercase, accents stripped, whitespace collapsed to underscores, anything
// else dropped. Example: "Vie nocturne" -> "vie_nocturne".
func NormalizeInterest(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	if folded, _, err := transform.String(accentStripper, s); err == nil {
		s = folded
	}
	s = strings.Join(strings.Fields(s), "_")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidInterest reports whether s is one of the twelve canonical interests.
func IsValidInterest(s string) bool {
	for _, in := range domain.Interests {
		if string(in) == s {
			return true
		}
	}
	return false
}
