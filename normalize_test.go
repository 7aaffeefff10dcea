package hyphenate

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

// TestHyphenateRemapsBreaksAfterNormalization guards against a normalization
// changing rune count: NFD decomposes "café" from 4 runes into 5 (the "é"
// splits into "e" plus a combining acute accent). Breaks are scored against
// the decomposed form, so they must be reported as offsets into that form,
// not into the caller's original (precomposed) string.
func TestHyphenateRemapsBreaksAfterNormalization(t *testing.T) {
	dict, err := LoadPatternReader("nfd-cafe", &slicePatternReader{
		entries: []Pattern{
			{Sequence: []rune("fe"), Weights: []int{0, 1}},
		},
	}, WithNormalization(NormalizationNFD))
	if err != nil {
		t.Fatal(err)
	}

	h := dict.Hyphenate("café")

	decomposed := norm.NFD.String("café")
	if h.Text() != decomposed {
		t.Fatalf("expected Text() to be the decomposed form %q, got %q", decomposed, h.Text())
	}

	breaks := h.Breaks()
	if len(breaks) != 1 {
		t.Fatalf("expected exactly one break, got %v (text=%q)", breaks, h.Text())
	}
	wantOffset := len("caf") // byte offset of the decomposed 'e', before its combining accent
	if breaks[0] != wantOffset {
		t.Fatalf("break should land on a rune boundary of the decomposed form: got %d, want %d", breaks[0], wantOffset)
	}

	segs := h.Segments()
	wantSegs := []string{decomposed[:wantOffset], decomposed[wantOffset:]}
	if len(segs) != 2 || segs[0] != wantSegs[0] || segs[1] != wantSegs[1] {
		t.Fatalf("segments mismatch: got %v, want %v", segs, wantSegs)
	}
}
