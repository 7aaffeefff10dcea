package hyphenate

import "unicode/utf8"

// Hyphenate splits word at legal hyphenation positions.
//
// Example:
//
//	dict.Hyphenate("table").Segments() => [ "ta", "ble" ]
//
// Hyphenate is infallible: words shorter than LeftMin+RightMin simply yield
// a Hyphenated with no breaks. A word containing a rune absent from the
// dictionary's alphabet also yields no breaks with the hash backend; with
// the dat backend that rune only stops pattern matching where it occurs
// (see alphabetCovers).
func (dict *Dictionary) Hyphenate(word string) *Hyphenated {
	if offsets, ok := softHyphenBreaks(word); ok {
		return &Hyphenated{text: word, offsets: offsets, patches: make([]*Patch, len(offsets))}
	}
	if dict == nil || dict.patterns == nil || dict.patternsV == nil {
		return &Hyphenated{text: word}
	}
	// normalized is the form whose rune boundaries every break index below
	// is computed against: normalization (unlike case folding) can change
	// rune count, so offsets must be mapped onto normalized, never onto the
	// caller's original word directly.
	normalized := dict.Normalization.normalize(word)
	folded := foldLower(normalized)
	runeCount := len(folded)
	tooShort := runeCount < dict.LeftMin+dict.RightMin
	if text, positions, ok := dict.exceptionPositions(word, normalized, folded); ok {
		if utf8.RuneCountInString(text) < dict.LeftMin+dict.RightMin {
			return &Hyphenated{text: normalized}
		}
		return dict.hyphenatedFromPositions(text, positions)
	}
	if !alphabetCovers(dict, folded) {
		return &Hyphenated{text: normalized}
	}
	if tooShort {
		return &Hyphenated{text: normalized}
	}

	if dict.extended {
		sites := extendedBreakSites(dict, folded)
		return dict.hyphenatedFromSites(normalized, sites)
	}

	positions := standardScores(dict, folded)
	return dict.hyphenatedFromScores(normalized, positions)
}

// softHyphen is U+00AD, SOFT HYPHEN.
const softHyphen = '\u00AD'

// softHyphenBreaks reports the byte offsets of every soft hyphen already
// present in word. An author-placed soft hyphen marks a preferred break and
// takes priority over both exceptions and pattern matching: if word
// contains any, those positions become the only breaks returned, before
// margins, the alphabet gate, or exceptions are ever consulted.
func softHyphenBreaks(word string) ([]int, bool) {
	var offsets []int
	for i, r := range word {
		if r == softHyphen {
			offsets = append(offsets, i)
		}
	}
	return offsets, len(offsets) > 0
}

// exceptionPositions looks up word (and its normalized/folded form) in the
// exception table. It returns, on a hit, the text the returned positions
// are indexed against -- word itself for an exact match, or normalized
// (case-preserved, rune-count-matching folded) for a match on the folded
// key -- since positions are only meaningful relative to whichever text
// variant was actually registered under.
func (dict *Dictionary) exceptionPositions(word, normalized string, folded []rune) (text string, positions []int, ok bool) {
	if dict.exceptions == nil {
		return "", nil, false
	}
	if pp, ok := dict.exceptions.get(word); ok {
		return word, pp, true
	}
	if pp, ok := dict.exceptions.get(string(folded)); ok {
		return normalized, pp, true
	}
	return "", nil, false
}

// alphabetCovers reports whether dict's trie backend accepts every rune in
// folded. With the hash backend a rune outside the pattern alphabet fails
// the check, and Hyphenate returns no breaks. The dat backend, once frozen,
// encodes an unknown rune as 0 instead of failing, so with it the check
// always passes: each suffix walk stops at the unknown rune, and patterns
// elsewhere in the word still score.
func alphabetCovers(dict *Dictionary, folded []rune) bool {
	for _, r := range folded {
		if _, ok := dict.patterns.EncodeKey(string(r)); !ok {
			return false
		}
	}
	return true
}

// standardScores runs the teacher's original per-suffix competitive match:
// for every starting position in the anchored word, walk the trie over
// each suffix's prefixes and merge the matched pattern's score vector
// (maximum-of-all-matches) into a shared position array.
func standardScores(dict *Dictionary, folded []rune) []int {
	dotted := dottedWord(folded)
	positions := make([]int, len(dotted))
	for i := range dotted {
		positions = mergePrefixScores(string(dotted[i:]), dict, i, positions)
	}
	return trimAnchors(positions)
}

func mergePrefixScores(fragment string, dict *Dictionary, at int, positions []int) []int {
	key, ok := dict.patterns.EncodeKey(fragment)
	if !ok {
		return positions
	}
	it := dict.patterns.Iterator()
	for _, c := range key {
		patternID := it.Next(c)
		if patternID == 0 {
			break
		}
		positions = dict.patternsV.MergeInto(patternID, at, positions)
	}
	return positions
}

func dottedWord(folded []rune) []rune {
	dotted := make([]rune, 0, len(folded)+2)
	dotted = append(dotted, '.')
	dotted = append(dotted, folded...)
	dotted = append(dotted, '.')
	return dotted
}

// trimAnchors drops the leading/trailing anchor slots so that index i in
// the result aligns with "break before the i-th rune of the original word".
func trimAnchors(positions []int) []int {
	for len(positions) < 2 {
		positions = append(positions, 0)
	}
	return positions[1 : len(positions)-1]
}

// hyphenatedFromScores converts a Knuth-Liang score array (odd = break)
// into a Hyphenated, applying margins and mapping rune indices to byte
// offsets in text -- the normalized, case-preserved form the scores were
// actually computed against, not necessarily the caller's original word.
func (dict *Dictionary) hyphenatedFromScores(text string, scores []int) *Hyphenated {
	offsets := runeByteOffsets(text)
	runeCount := len(offsets) - 1
	res := &Hyphenated{text: text}
	rightCutoff := max(0, runeCount-dict.RightMin+1)
	for i, v := range scores {
		if i <= 0 || i >= runeCount {
			continue
		}
		if i < dict.LeftMin || i >= rightCutoff {
			continue
		}
		if v > 0 && v%2 != 0 {
			res.offsets = append(res.offsets, offsets[i])
			res.patches = append(res.patches, nil)
		}
	}
	return res
}

// hyphenatedFromPositions builds a Hyphenated from an explicit exception
// positions array (see texexceptions), which uses the same "break before
// rune i" encoding as the pattern-derived score array but never carries a
// patch, even for extended dictionaries. text must be the exact string the
// positions were registered against (see exceptionPositions).
func (dict *Dictionary) hyphenatedFromPositions(text string, positions []int) *Hyphenated {
	offsets := runeByteOffsets(text)
	runeCount := len(offsets) - 1
	res := &Hyphenated{text: text}
	for i, v := range positions {
		if i <= 0 || i >= runeCount {
			continue
		}
		if v > 0 && v%2 != 0 {
			res.offsets = append(res.offsets, offsets[i])
			res.patches = append(res.patches, nil)
		}
	}
	return res
}

// HyphenationString returns word with discretionary hyphens inserted, e.g.
// "table" => "ta-ble". Equivalent to dict.Hyphenate(word).String().
func (dict *Dictionary) HyphenationString(word string) string {
	return dict.Hyphenate(word).String()
}

func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return offsets
}
