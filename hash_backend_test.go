package hyphenate

import "testing"

func TestHashBackendHyphenatesLikeDAT(t *testing.T) {
	dict, err := LoadPatternReader("hash-für", &slicePatternReader{
		entries: []Pattern{
			{Sequence: []rune("für"), Weights: []int{0, 0, 1}},
		},
	}, WithBackend(BackendHash))
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("fürung"); h != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, is %s", h)
	}
}

func TestHashBackendReportsBackendName(t *testing.T) {
	dict, err := LoadPatternReader("hash-stats", &slicePatternReader{
		entries: []Pattern{
			{Sequence: []rune("ab"), Weights: []int{0, 1}},
			{Sequence: []rune("abc"), Weights: []int{0, 1, 0}},
		},
	}, WithBackend(BackendHash), WithHashTableSize(257))
	if err != nil {
		t.Fatal(err)
	}
	backend, used, total, maxStateID, fill := dict.PatternTrieStats()
	if backend != "hash" {
		t.Fatalf("expected hash backend, got %s", backend)
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

func TestHashBackendHonorsExceptions(t *testing.T) {
	dict, err := LoadPatternReader("hash-exceptions", &slicePatternReader{}, WithBackend(BackendHash))
	if err != nil {
		t.Fatal(err)
	}
	dict.AddException("table", []int{0, 0, 1, 0, 0})
	if h := dict.HyphenationString("table"); h != "ta-ble" {
		t.Fatalf("table should be ta-ble, is %s", h)
	}
}
