package hyphenate

import (
	"fmt"
	"io"
)

// Backend selects the trie representation a Dictionary is built on.
type Backend uint8

const (
	// BackendDAT is the default: a frozen double-array trie with an
	// unbounded dense alphabet. Appropriate for any pattern set.
	BackendDAT Backend = iota
	// BackendHash uses a compact hash trie (see package trie). It only
	// indexes hashCategoryLimit distinct runes, the '.' anchor included;
	// patterns using runes beyond that limit are skipped at build time.
	BackendHash
)

type dictConfig struct {
	language      string
	leftMin       int
	rightMin      int
	normalization NormalizationForm
	backend       Backend
	hashTableSize uint16
}

func defaultDictConfig() dictConfig {
	return dictConfig{
		leftMin:       2,
		rightMin:      2,
		normalization: NormalizationNone,
		backend:       BackendDAT,
		hashTableSize: 4099,
	}
}

// DictOption configures a Dictionary at build time.
type DictOption func(*dictConfig)

// WithLanguage records an opaque language tag on the dictionary (compared
// later by RequireLanguage).
func WithLanguage(tag string) DictOption {
	return func(c *dictConfig) { c.language = tag }
}

// WithMargins sets the minimum number of characters that must precede the
// first break and follow the last break. The teacher's hardcoded 2/2
// defaults still apply if this option is omitted.
func WithMargins(left, right int) DictOption {
	return func(c *dictConfig) { c.leftMin, c.rightMin = left, right }
}

// WithNormalization fixes the Unicode normalization form applied to both
// patterns (at build time) and words (at hyphenation time).
func WithNormalization(f NormalizationForm) DictOption {
	return func(c *dictConfig) { c.normalization = f }
}

// WithBackend selects the trie backend. BackendHash additionally accepts a
// table-size hint via WithHashTableSize.
func WithBackend(b Backend) DictOption {
	return func(c *dictConfig) { c.backend = b }
}

// WithHashTableSize overrides the default hash-trie table size; only
// meaningful together with WithBackend(BackendHash).
func WithHashTableSize(size uint16) DictOption {
	return func(c *dictConfig) { c.hashTableSize = size }
}

// Dictionary is a loaded hyphenation dictionary: pattern trie, per-pattern
// score vectors, optional exceptions and (for extended dictionaries) a
// patch table. Once built, a Dictionary is immutable and safe for
// concurrent read-only use by any number of goroutines.
type Dictionary struct {
	exceptions *exceptionStore
	patterns   patternTrie
	patternsV  *patternStore
	patches    *patchStore // non-nil only for extended dictionaries
	extended   bool

	Identifier    string
	Language      string
	LeftMin       int
	RightMin      int
	Normalization NormalizationForm
}

// Extended reports whether dict was built to carry non-standard patches.
func (dict *Dictionary) Extended() bool { return dict != nil && dict.extended }

// PatternTrieStats reports density metrics for the underlying pattern trie.
func (dict *Dictionary) PatternTrieStats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if dict == nil || dict.patterns == nil {
		return "", 0, 0, 0, 0
	}
	stats := dict.patterns.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}

func newBackend(cfg dictConfig) (patternTrie, error) {
	switch cfg.backend {
	case BackendHash:
		return mustNewHashBackendSized(cfg.hashTableSize)
	default:
		return mustNewDATBackend(), nil
	}
}

func mustNewHashBackendSized(size uint16) (patternTrie, error) {
	if size == 0 {
		size = 4099
	}
	return newHashBackend(size)
}

// LoadPatternReader compiles a standard (Knuth-Liang) dictionary from a
// streaming, format-agnostic source. File-format parsing lives outside this
// package; see texpatterns and tex for TeX-format adapters.
func LoadPatternReader(name string, reader PatternReader, opts ...DictOption) (*Dictionary, error) {
	return buildDictionary(name, asExtendedReader{reader}, false, opts...)
}

// LoadExtendedPatternReader compiles a non-standard (Németh) dictionary,
// where individual patterns may carry a Patch rewriting the characters
// around a break.
func LoadExtendedPatternReader(name string, reader ExtendedPatternReader, opts ...DictOption) (*Dictionary, error) {
	return buildDictionary(name, reader, true, opts...)
}

type pendingPayload struct {
	pos    int
	packed []byte
	keyLen int
	patch  *Patch
}

func buildDictionary(name string, reader ExtendedPatternReader, extended bool, opts ...DictOption) (dict *Dictionary, err error) {
	cfg := defaultDictConfig()
	for _, o := range opts {
		o(&cfg)
	}
	backend, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}
	pending := make([]pendingPayload, 0, 1024)
	maxPacked := 0
	dict = &Dictionary{
		exceptions:    newExceptionStore(),
		patterns:      backend,
		extended:      extended,
		Identifier:    fmt.Sprintf("patterns: %s", name),
		Language:      cfg.language,
		LeftMin:       cfg.leftMin,
		RightMin:      cfg.rightMin,
		Normalization: cfg.normalization,
	}
	var seq uint32
	for {
		sequence, weights, patch, rerr := reader.Next()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, rerr
		}
		text := cfg.normalization.normalize(string(sequence))
		key, ok := dict.patterns.EncodeKey(text)
		if !ok {
			continue // simply skip patterns outside the backend's alphabet
		}
		pos := dict.patterns.AllocPositionForWord(key)
		if pos == 0 {
			return nil, fmt.Errorf("could not allocate trie position for pattern %q", text)
		}
		packed, perr := packPositions(weights)
		if perr != nil {
			return nil, perr
		}
		if len(packed) > maxPacked {
			maxPacked = len(packed)
		}
		pending = append(pending, pendingPayload{pos: pos, packed: packed, keyLen: len([]rune(text)), patch: patch})
		seq++
	}
	dict.patterns.Freeze()
	dict.patternsV = newPatternStore(uint8(maxPacked))
	if extended {
		dict.patches = newPatchStore()
	}
	for i, p := range pending {
		patternID := dict.patterns.ResolvePosition(p.pos)
		if patternID == 0 {
			return nil, fmt.Errorf("could not resolve trie position after freeze for temporary position %d", p.pos)
		}
		if err = dict.patternsV.PutPacked(patternID, p.packed); err != nil {
			return nil, err
		}
		if extended {
			if err = dict.patches.Put(patternID, p.keyLen, uint32(i), p.patch); err != nil {
				return nil, err
			}
		}
	}
	backendName, used, total, maxStateID, fill := dict.PatternTrieStats()
	tracer().Infof("pattern trie stats backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		backendName, used, total, fill, maxStateID)
	return dict, nil
}

// LoadPatterns is a convenience wrapper kept for symmetry with the older,
// name-first call shape; equivalent to LoadPatternReader.
func LoadPatterns(name string, reader PatternReader, opts ...DictOption) (*Dictionary, error) {
	return LoadPatternReader(name, reader, opts...)
}

// LoadExceptions loads exception entries from a streaming source.
func (dict *Dictionary) LoadExceptions(reader ExceptionReader) (err error) {
	return dict.LoadExceptionReader(reader)
}

// LoadExceptionReader loads exception entries from a streaming source.
func (dict *Dictionary) LoadExceptionReader(reader ExceptionReader) (err error) {
	for {
		word, positions, rerr := reader.Next()
		if rerr == io.EOF {
			return nil
		} else if rerr != nil {
			return rerr
		}
		dict.AddException(word, positions)
	}
}

// LoadExceptionList loads explicit exception entries from an in-memory map.
func (dict *Dictionary) LoadExceptionList(exceptions map[string][]int) {
	for word, positions := range exceptions {
		dict.AddException(word, positions)
	}
}

// AddException registers one explicit hyphenation exception.
func (dict *Dictionary) AddException(word string, positions []int) {
	if dict.exceptions == nil {
		dict.exceptions = newExceptionStore()
	}
	dict.exceptions.put(word, positions)
}
