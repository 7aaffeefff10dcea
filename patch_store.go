package hyphenate

import "fmt"

const noPatch = 0

// patchStore associates trie positions with a Patch record, plus the
// bookkeeping needed to resolve ties between patterns that score equally
// at the same inter-character position: the length of the matched key and
// the order in which the pattern was inserted into the dictionary.
//
// Like patternStore, it is addressed by opaque trie position and knows
// nothing about which backend produced that position.
type patchStore struct {
	patches []Patch  // patches[0] is a dummy; real entries start at index 1
	ref     []uint32 // ref[pos] == 0 means "no patch"; else patches[ref[pos]-1]
	keyLen  []uint16
	seq     []uint32
}

func newPatchStore() *patchStore {
	return &patchStore{
		patches: make([]Patch, 1, 64),
		ref:     make([]uint32, 2),
		keyLen:  make([]uint16, 2),
		seq:     make([]uint32, 2),
	}
}

func (s *patchStore) ensure(pos int) {
	if pos < len(s.ref) {
		return
	}
	grow := pos + 1 - len(s.ref)
	s.ref = append(s.ref, make([]uint32, grow)...)
	s.keyLen = append(s.keyLen, make([]uint16, grow)...)
	s.seq = append(s.seq, make([]uint32, grow)...)
}

// Put records that the pattern occupying trie position pos has key length
// keyLen, was the seq-th pattern inserted, and (optionally) carries patch.
// A nil patch still records keyLen/seq so plain patterns participate in
// score-tie resolution against patched ones.
func (s *patchStore) Put(pos int, keyLen int, seq uint32, patch *Patch) error {
	if pos < 0 {
		return fmt.Errorf("negative trie position: %d", pos)
	}
	s.ensure(pos)
	s.keyLen[pos] = uint16(keyLen)
	s.seq[pos] = seq
	if patch == nil {
		s.ref[pos] = noPatch
		return nil
	}
	s.patches = append(s.patches, *patch)
	s.ref[pos] = uint32(len(s.patches))
	return nil
}

// Lookup returns the metadata recorded for pos, if any.
func (s *patchStore) Lookup(pos int) (patch *Patch, keyLen int, seq uint32, ok bool) {
	if pos < 0 || pos >= len(s.ref) {
		return nil, 0, 0, false
	}
	if s.keyLen[pos] == 0 && s.seq[pos] == 0 && s.ref[pos] == noPatch {
		return nil, 0, 0, false
	}
	keyLen = int(s.keyLen[pos])
	seq = s.seq[pos]
	if r := s.ref[pos]; r != noPatch {
		patch = &s.patches[r-1]
	}
	return patch, keyLen, seq, true
}
