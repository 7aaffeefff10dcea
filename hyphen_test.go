package hyphenate

import (
	"io"
	"testing"
)

type slicePatternReader struct {
	entries []Pattern
	index   int
}

func (r *slicePatternReader) Next() ([]rune, []int, error) {
	if r.index >= len(r.entries) {
		return nil, nil, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.Sequence, entry.Weights, nil
}

type sliceExceptionReader struct {
	entries []struct {
		word      string
		positions []int
	}
	index int
}

func (r *sliceExceptionReader) Next() (string, []int, error) {
	if r.index >= len(r.entries) {
		return "", nil, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.word, entry.positions, nil
}

func TestPatternReaderAPI(t *testing.T) {
	dict, err := LoadPatternReader("stream-patterns", &slicePatternReader{
		entries: []Pattern{{
			Sequence: []rune("für"),
			Weights:  []int{0, 0, 1},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("fürung"); h != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, is %s", h)
	}
}

func TestPatternListAPI(t *testing.T) {
	dict, err := LoadPatternReader("list-patterns", &slicePatternReader{
		entries: []Pattern{{
			Sequence: []rune("für"),
			Weights:  []int{0, 0, 1},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("fürung"); h != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, is %s", h)
	}
}

func TestExceptionReaderAPI(t *testing.T) {
	dict, err := LoadPatternReader("stream-exceptions", &slicePatternReader{})
	if err != nil {
		t.Fatal(err)
	}
	dict.LoadExceptionReader(&sliceExceptionReader{
		entries: []struct {
			word      string
			positions []int
		}{
			{
				word:      "table",
				positions: []int{0, 0, 1, 0, 0},
			},
		},
	})
	if h := dict.HyphenationString("table"); h != "ta-ble" {
		t.Fatalf("table should be ta-ble, is %s", h)
	}
}

// capitalDict mirrors the spec's own worked example: "capital" hyphenates
// to "cap-i-tal" (breaks before rune index 3 and rune index 4).
func capitalDict(t *testing.T) *Dictionary {
	t.Helper()
	dict, err := LoadPatternReader("capital-demo", &slicePatternReader{
		entries: []Pattern{
			{Sequence: []rune("pi"), Weights: []int{0, 1}},
			{Sequence: []rune("it"), Weights: []int{0, 1}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return dict
}

func TestHyphenateIsCaseInsensitive(t *testing.T) {
	dict := capitalDict(t)
	lower := dict.Hyphenate("capital")
	if got := lower.String(); got != "cap-i-tal" {
		t.Fatalf("capital should be cap-i-tal, is %s", got)
	}
	upper := dict.Hyphenate("CAPITAL")
	if got := upper.String(); got != "CAP-I-TAL" {
		t.Fatalf("CAPITAL should be CAP-I-TAL, is %s", got)
	}
	mixed := dict.Hyphenate("CaPiTaL")
	if got := mixed.String(); got != "CaP-i-TaL" {
		t.Fatalf("CaPiTaL should be CaP-i-TaL, is %s", got)
	}
	if lower.Breaks()[0] != upper.Breaks()[0] || lower.Breaks()[1] != upper.Breaks()[1] {
		t.Fatalf("break offsets should be case-independent: lower=%v upper=%v", lower.Breaks(), upper.Breaks())
	}
	if lower.Breaks()[0] != mixed.Breaks()[0] || lower.Breaks()[1] != mixed.Breaks()[1] {
		t.Fatalf("break offsets should be case-independent: lower=%v mixed=%v", lower.Breaks(), mixed.Breaks())
	}
}

func TestBreaksAreStrictlyIncreasingAndUnique(t *testing.T) {
	dict := capitalDict(t)
	breaks := dict.Hyphenate("capital").Breaks()
	if len(breaks) < 2 {
		t.Fatalf("expected at least two breaks to exercise ordering, got %v", breaks)
	}
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			t.Fatalf("breaks not strictly increasing: %v", breaks)
		}
	}
}

func TestShortWordYieldsNoBreaks(t *testing.T) {
	dict := capitalDict(t)
	if got := dict.Hyphenate("it").Breaks(); len(got) != 0 {
		t.Fatalf("word shorter than LeftMin+RightMin should have no breaks, got %v", got)
	}
	if got := dict.Hyphenate("a").Breaks(); len(got) != 0 {
		t.Fatalf("single-character word should have no breaks, got %v", got)
	}
}

func TestHyphenateIsDeterministic(t *testing.T) {
	dict := capitalDict(t)
	first := dict.Hyphenate("capital").String()
	for i := 0; i < 5; i++ {
		if got := dict.Hyphenate("capital").String(); got != first {
			t.Fatalf("repeated calls should be deterministic: got %q, want %q", got, first)
		}
	}
}

func TestSoftHyphenBypassesPatternMatching(t *testing.T) {
	dict := capitalDict(t)
	// "ca­pital" carries an author-placed soft hyphen that does not
	// align with either pattern-derived break; it must win outright.
	word := "ca­pital"
	h := dict.Hyphenate(word)
	breaks := h.Breaks()
	if len(breaks) != 1 {
		t.Fatalf("expected exactly one break from the soft hyphen, got %v", breaks)
	}
	if breaks[0] != 2 {
		t.Fatalf("expected the break at the soft hyphen's byte offset 2, got %d", breaks[0])
	}
	for _, p := range h.Patches() {
		if p != nil {
			t.Fatalf("soft hyphen breaks never carry a patch, got %+v", p)
		}
	}
}

func TestSoftHyphenTakesPriorityOverExceptions(t *testing.T) {
	dict := capitalDict(t)
	dict.AddException("cap­ital", []int{0, 0, 1, 0, 0, 0, 0, 0})
	h := dict.Hyphenate("cap­ital")
	if got := h.Breaks(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("soft hyphen should override the registered exception, got %v", got)
	}
}

func TestPatternTrieStats(t *testing.T) {
	dict, err := LoadPatternReader("stats", &slicePatternReader{
		entries: []Pattern{
			{Sequence: []rune("ab"), Weights: []int{0, 1}},
			{Sequence: []rune("abc"), Weights: []int{0, 1, 0}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	backend, used, total, maxStateID, fill := dict.PatternTrieStats()
	if backend != "dat" {
		t.Fatalf("expected dat backend, got %s", backend)
	}
	if used <= 0 || total <= 0 {
		t.Fatalf("expected positive slot counts, got used=%d total=%d", used, total)
	}
	if maxStateID <= 0 {
		t.Fatalf("expected positive maxStateID, got %d", maxStateID)
	}
	if fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
}
