package models

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	punctuationRegex = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	spaceRegex       = regexp.MustCompile(`\s+`)
)

// NormalizeSearchTerm canonicalizes free-text queries so "Reaver Vandal" and
// "reaver  vandal" match the same skins
func NormalizeSearchTerm(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	s = punctuationRegex.ReplaceAllString(s, " ")
	s = removeDiacritics(s)
	s = spaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// removeDiacritics strips combining marks so accented names remain searchable
// with plain ASCII input
func removeDiacritics(s string) string {
	t := norm.NFD.String(s)
	var result strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
