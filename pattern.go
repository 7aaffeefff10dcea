package hyphenate

// Pattern is a format-agnostic hyphenation pattern representation.
//
// Sequence is the rune sequence to match (for example: ".ab", "für"). An
// anchor is encoded as a literal '.' at the start and/or end of Sequence.
// Weights stores Liang weights by relative position: Weights[i] is the
// weight before Sequence[i]. It has one entry more than Sequence when the
// source pattern ends in a weight digit, and the same number otherwise (the
// implicit trailing weight 0 is not stored).
type Pattern struct {
	Sequence []rune
	Weights  []int
}

// Patch describes a rewrite applied to the characters surrounding a
// non-standard (Németh-style) hyphenation break, such as German "ck" -> "k-k".
//
// Applying a patch at byte offset p in the original word means: remove
// DropBefore characters ending at p and DropAfter characters starting at p,
// insert Replacement in their place, and treat the hyphen as falling
// between the HyphenAt-th and (HyphenAt+1)-th rune of Replacement.
type Patch struct {
	DropBefore  int
	DropAfter   int
	Replacement string
	HyphenAt    int
}

// PatternReader yields compiled pattern entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type PatternReader interface {
	Next() (sequence []rune, weights []int, err error)
}

// ExtendedPatternReader yields compiled pattern entries that may carry a
// non-standard patch, one-by-one. It should return io.EOF when exhausted.
// A nil patch means the pattern only ever produces a plain break.
type ExtendedPatternReader interface {
	Next() (sequence []rune, weights []int, patch *Patch, err error)
}

// ExceptionReader yields hyphenation exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
type ExceptionReader interface {
	Next() (word string, positions []int, err error)
}

// asExtendedReader adapts a PatternReader to the ExtendedPatternReader shape,
// reporting a nil patch for every entry.
type asExtendedReader struct {
	PatternReader
}

func (a asExtendedReader) Next() ([]rune, []int, *Patch, error) {
	seq, weights, err := a.PatternReader.Next()
	return seq, weights, nil, err
}
