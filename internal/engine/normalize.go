package engine

import "strings"

// colorEscape introduces a two-rune Minecraft formatting sequence: the
// section sign followed by one color or style code.
const colorEscape = '§'

// decorativeGlyphs are cosmetic affixes sellers stack onto display names
// (dungeon stars, master stars, reforge sparkles). They never change item
// identity, so they are trimmed from both ends along with whitespace.
const decorativeGlyphs = "✪➊➋➌➍➎✦✿⚚ \t"

// Normalize canonicalizes a raw display name into the grouping key used for
// all auction-side aggregation. It is a pure function: two names differing
// only in formatting codes or decorative affixes map to the same key, and
// names of genuinely different items never merge.
func Normalize(rawName string) string {
	var b strings.Builder
	b.Grow(len(rawName))

	skipNext := false
	for _, r := range rawName {
		if skipNext {
			skipNext = false
			continue
		}
		if r == colorEscape {
			skipNext = true
			continue
		}
		b.WriteRune(r)
	}

	return strings.Trim(b.String(), decorativeGlyphs)
}
