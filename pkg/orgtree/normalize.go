package orgtree

import (
	"strings"

	"golang.org/x/text/runes"
)

// corporatePrefixes are stripped from company names before display-name
// lookup, so that "株式会社NSD" and "NSD" group together.
var corporatePrefixes = []string{"株式会社", "㈱"}

// fullwidthOffset is the distance between a full-width alphanumeric and its
// ASCII form (e.g. Ａ U+FF21 → A U+0041).
const fullwidthOffset = 0xFEE0

// foldAlnum folds full-width alphanumerics to ASCII. Only alphanumerics are
// folded: the ideographic space U+3000 appears inside configured display
// names ("SCSK　Minoriソリューションズ") and must survive normalization.
var foldAlnum = runes.Map(func(r rune) rune {
	switch {
	case '０' <= r && r <= '９', 'Ａ' <= r && r <= 'Ｚ', 'ａ' <= r && r <= 'ｚ':
		return r - fullwidthOffset
	default:
		return r
	}
})

// NormalizeName canonicalizes a company name for map lookup and grouping:
// corporate prefixes are removed, full-width alphanumerics become ASCII, and
// surrounding whitespace is trimmed.
func NormalizeName(name string) string {
	for _, p := range corporatePrefixes {
		name = strings.ReplaceAll(name, p, "")
	}
	return strings.TrimSpace(foldAlnum.String(name))
}

// displayName normalizes name and applies the display-name mapping, falling
// back to the normalized name when unmapped.
func displayName(name string, mapping map[string]string) string {
	normalized := NormalizeName(name)
	if display, ok := mapping[normalized]; ok {
		return display
	}
	return normalized
}
