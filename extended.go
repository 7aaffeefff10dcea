package hyphenate

// breakSite is one candidate inter-character position in a folded word,
// carrying the winning Liang score together with whichever pattern's patch
// (if any) produced that score. It is the extended-hyphenation counterpart
// of the plain int entries used by standardScores.
type breakSite struct {
	score   int
	patch   *Patch
	keyLen  int
	seq     uint32
	present bool
}

// extendedBreakSites runs the same per-suffix competitive match as
// standardScores, but additionally tracks, at each position, which
// pattern's patch (if any) is currently winning. Ties are broken first by
// the length of the matched pattern key (longer wins), then by insertion
// order (later wins) -- matching the precedence patterns use for plain
// score ties.
func extendedBreakSites(dict *Dictionary, folded []rune) []breakSite {
	dotted := dottedWord(folded)
	sites := make([]breakSite, len(dotted))
	for i := range dotted {
		mergeExtendedPrefix(string(dotted[i:]), dict, i, sites)
	}
	return trimSiteAnchors(sites)
}

func mergeExtendedPrefix(fragment string, dict *Dictionary, at int, sites []breakSite) {
	key, ok := dict.patterns.EncodeKey(fragment)
	if !ok {
		return
	}
	it := dict.patterns.Iterator()
	for _, c := range key {
		patternID := it.Next(c)
		if patternID == 0 {
			break
		}
		packed, ok := dict.patternsV.Packed(patternID)
		if !ok {
			continue
		}
		patch, keyLen, seq, _ := dict.patches.Lookup(patternID)
		for _, b := range packed {
			rel := int(b >> 4)
			val := int(b & 0x0F)
			abs := at + rel
			if abs < 0 || abs >= len(sites) {
				continue
			}
			mergeSite(&sites[abs], val, patch, keyLen, seq)
		}
	}
}

func mergeSite(site *breakSite, val int, patch *Patch, keyLen int, seq uint32) {
	if !site.present {
		*site = breakSite{score: val, patch: patch, keyLen: keyLen, seq: seq, present: true}
		return
	}
	switch {
	case val > site.score:
	case val == site.score && keyLen > site.keyLen:
	case val == site.score && keyLen == site.keyLen && seq > site.seq:
	default:
		return
	}
	site.score, site.patch, site.keyLen, site.seq = val, patch, keyLen, seq
}

func trimSiteAnchors(sites []breakSite) []breakSite {
	for len(sites) < 2 {
		sites = append(sites, breakSite{})
	}
	return sites[1 : len(sites)-1]
}

// hyphenatedFromSites converts the per-position winning sites into a
// Hyphenated, applying margins, dropping the later of any two overlapping
// patched breaks, and mapping rune indices to byte offsets in text -- the
// normalized form the sites were actually computed against.
func (dict *Dictionary) hyphenatedFromSites(text string, sites []breakSite) *Hyphenated {
	offsets := runeByteOffsets(text)
	runeCount := len(offsets) - 1
	rightCutoff := max(0, runeCount-dict.RightMin+1)

	type candidate struct {
		runeIdx int
		byteOff int
		patch   *Patch
	}
	var cands []candidate
	for i, s := range sites {
		if i <= 0 || i >= runeCount {
			continue
		}
		if i < dict.LeftMin || i >= rightCutoff {
			continue
		}
		if s.present && s.score > 0 && s.score%2 != 0 {
			cands = append(cands, candidate{runeIdx: i, byteOff: offsets[i], patch: s.patch})
		}
	}

	res := &Hyphenated{text: text}
	lastExtent := -1
	for _, c := range cands {
		if c.patch != nil {
			start := c.runeIdx - c.patch.DropBefore
			if start < lastExtent {
				continue // drop the later of two overlapping patched breaks
			}
			lastExtent = c.runeIdx + c.patch.DropAfter
		}
		res.offsets = append(res.offsets, c.byteOff)
		res.patches = append(res.patches, c.patch)
	}
	return res
}
