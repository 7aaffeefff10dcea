package hyphenate

import "unicode"

// foldLower produces the form of word used for pattern matching.
//
// Design note (spec Open Question): folding is a simple, 1:1 per-rune
// unicode.ToLower. This keeps rune counts identical between the folded and
// normalized word, which is what lets the byte-offset remapping in
// hyphenate.go reuse the normalized word's rune boundaries unchanged. It is
// deliberately not locale-aware: languages with multi-scalar case mappings
// (Turkish dotted/dotless I, German ß expanding to "ss") are out of scope
// for this pass. A caller hyphenating such a language should pre-fold the
// word itself before calling Hyphenate, or the dictionary's patterns
// should already be keyed on the caller's preferred casing convention.
func foldLower(word string) []rune {
	runes := []rune(word)
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return out
}
