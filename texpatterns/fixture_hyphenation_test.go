package texpatterns

import (
	"strings"
	"testing"

	"github.com/anaphora/hyphenate/texexceptions"
)

func TestPatternsAndExceptionsLoadSeparately(t *testing.T) {
	src := `\hyphenation{
ta-ble
}`
	dict, err := LoadPatterns("split-api-test", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("table"); h != "table" {
		t.Fatalf("without exceptions table should remain table, is %s", h)
	}
	texexceptions.LoadExceptions(dict, strings.NewReader(src))
	if h := dict.HyphenationString("table"); h != "ta-ble" {
		t.Fatalf("with exceptions table should be ta-ble, is %s", h)
	}
}

// synthPatterns mirrors the small hand-verifiable pattern set used by
// package tex's tests: enough patterns to exercise multi-pattern merging
// without depending on a real hyph-*.tex distribution file.
const synthPatterns = `\patterns{
fü1r
m3p
t3e
l3l
}
`

func TestSyntheticPatternsMultiWord(t *testing.T) {
	dict, err := LoadPatterns("synthetic", strings.NewReader(synthPatterns))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		word string
		want string
	}{
		{word: "hello", want: "hel-lo"},
		{word: "computer", want: "com-put-er"},
		{word: "quick", want: "quick"},
	}
	for _, tt := range tests {
		if got := dict.HyphenationString(tt.word); got != tt.want {
			t.Fatalf("hyphenation mismatch for %q: got %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestUnicodePatternPreservesOriginalWord(t *testing.T) {
	dict, err := LoadPatterns("unicode-pattern-test", strings.NewReader(synthPatterns))
	if err != nil {
		t.Fatal(err)
	}
	got := dict.HyphenationString("fürung")
	if got != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, is %s", got)
	}
	if strings.ReplaceAll(got, "-", "") != "fürung" {
		t.Fatalf("hyphenation corrupted original word: %q", got)
	}
}

func TestUnicodeExceptionSplit(t *testing.T) {
	dict, err := LoadPatterns("unicode-test", strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	texexceptions.LoadExceptions(dict, strings.NewReader(`\hyphenation{
fü-rung
schön-heit
}`))
	if h := dict.HyphenationString("fürung"); h != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, is %s", h)
	}
	if h := dict.HyphenationString("schönheit"); h != "schön-heit" {
		t.Fatalf("schönheit should be schön-heit, is %s", h)
	}
}
