package hyphenate

import (
	dtrie "github.com/derekparker/trie"
)

// exceptionStore holds explicit hyphenation overrides (from a TeX
// \hyphenation{} block, or programmatically added). It is backed by a real
// prefix trie rather than a bare map so that a future PrefixSearch over
// known exceptions is a small addition rather than a data-structure change.
type exceptionStore struct {
	t *dtrie.Trie
}

func newExceptionStore() *exceptionStore {
	return &exceptionStore{t: dtrie.New()}
}

func (s *exceptionStore) put(word string, positions []int) {
	pp := make([]int, len(positions))
	copy(pp, positions)
	s.t.Add(word, pp)
}

func (s *exceptionStore) get(word string) ([]int, bool) {
	node, ok := s.t.Find(word)
	if !ok {
		return nil, false
	}
	positions, ok := node.Meta().([]int)
	return positions, ok
}
