package hyphenate

import (
	"github.com/anaphora/hyphenate/trie"
)

// hashCategoryLimit bounds how many distinct runes a hash-backed dictionary
// can index (TinyHashTrie reserves category 0, so useful categories run
// 1..hashCategoryLimit). Comfortable for a single lowercase Latin-derived
// alphabet plus a handful of diacritics and the anchor symbol; dictionaries
// with richer alphabets should use the dat backend instead.
const hashCategoryLimit = 84

// hashBackend adapts trie.TinyHashTrie to the patternTrie interface. Unlike
// datBackend, positions handed out during construction are already final:
// TinyHashTrie writes directly into its permanent slots, so ResolvePosition
// is the identity function.
type hashBackend struct {
	frozen    bool
	tt        *trie.TinyHashTrie
	runeToCat map[rune]uint16
	nextCat   uint16
}

func newHashBackend(tableSize uint16) (*hashBackend, error) {
	tt, err := trie.NewTinyHashTrie(tableSize, hashCategoryLimit)
	if err != nil {
		return nil, err
	}
	hb := &hashBackend{
		tt:        tt,
		runeToCat: make(map[rune]uint16),
		nextCat:   1,
	}
	hb.runeToCat['.'] = 1
	hb.nextCat = 2
	return hb, nil
}

// mustNewHashBackend builds a hash backend sized for a small single-language
// pattern set. It never fails for the fixed table size used here.
func mustNewHashBackend() (patternTrie, error) {
	return newHashBackend(4099)
}

func (hb *hashBackend) EncodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, len(s))
	for _, r := range s {
		cat, ok := hb.runeToCat[r]
		if !ok {
			if hb.frozen {
				return nil, false
			}
			if hb.nextCat > hashCategoryLimit {
				return nil, false
			}
			cat = hb.nextCat
			hb.nextCat++
			hb.runeToCat[r] = cat
		}
		key = append(key, cat)
	}
	return key, true
}

func (hb *hashBackend) AllocPositionForWord(key []uint16) int {
	if len(key) == 0 {
		return 0
	}
	buf := make([]byte, len(key))
	for i, c := range key {
		if c == 0 || c > hashCategoryLimit {
			return 0
		}
		buf[i] = byte(c)
	}
	return hb.tt.AllocPositionForWord(buf)
}

// ResolvePosition is the identity: TinyHashTrie never relocates a slot
// between insertion and freeze.
func (hb *hashBackend) ResolvePosition(pos int) int { return pos }

func (hb *hashBackend) Freeze() {
	if hb.frozen {
		return
	}
	hb.tt.Freeze()
	hb.frozen = true
}

type hashIterator struct {
	it *trie.Iterator
}

func (it *hashIterator) Next(symbol uint16) int {
	if it.it == nil || symbol == 0 || symbol > hashCategoryLimit {
		return 0
	}
	return it.it.Next(int8(symbol))
}

func (hb *hashBackend) Iterator() patternIterator {
	return &hashIterator{it: hb.tt.Iterator()}
}

func (hb *hashBackend) Stats() patternTrieStats {
	used, total := hb.tt.Occupancy()
	return patternTrieStats{
		Backend:    "hash",
		UsedSlots:  used,
		TotalSlots: total,
		MaxStateID: total,
	}
}
