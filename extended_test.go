package hyphenate

import (
	"io"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

type sliceExtendedReader struct {
	entries []struct {
		seq     []rune
		weights []int
		patch   *Patch
	}
	index int
}

func (r *sliceExtendedReader) Next() ([]rune, []int, *Patch, error) {
	if r.index >= len(r.entries) {
		return nil, nil, nil, io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.seq, e.weights, e.patch, nil
}

func TestExtendedHyphenationAppliesPatch(t *testing.T) {
	dict, err := LoadExtendedPatternReader("ck-patch", &sliceExtendedReader{
		entries: []struct {
			seq     []rune
			weights []int
			patch   *Patch
		}{
			{
				seq:     []rune("ck"),
				weights: []int{0, 1},
				patch:   &Patch{DropBefore: 1, DropAfter: 1, Replacement: "kk", HyphenAt: 1},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !dict.Extended() {
		t.Fatal("expected an extended dictionary")
	}
	h := dict.Hyphenate("backen")
	if got := h.String(); got != "bak-ken" {
		t.Fatalf("backen should patch to bak-ken, is %s\n%s", got, spew.Sdump(h))
	}
	breaks := h.Breaks()
	patches := h.Patches()
	if len(breaks) != 1 || len(patches) != 1 || patches[0] == nil {
		t.Fatalf("expected exactly one patched break, got %s", spew.Sdump(h))
	}
}

func TestExtendedHyphenationWithoutPatchBehavesLikeStandard(t *testing.T) {
	dict, err := LoadExtendedPatternReader("plain", &sliceExtendedReader{
		entries: []struct {
			seq     []rune
			weights []int
			patch   *Patch
		}{
			{seq: []rune("für"), weights: []int{0, 0, 1}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h := dict.HyphenationString("fürung"); h != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, is %s", h)
	}
}

func TestExtendedHyphenationDropsOverlappingPatch(t *testing.T) {
	dict, err := LoadExtendedPatternReader("overlap", &sliceExtendedReader{
		entries: []struct {
			seq     []rune
			weights []int
			patch   *Patch
		}{
			{
				seq:     []rune("ck"),
				weights: []int{0, 1},
				patch:   &Patch{DropBefore: 1, DropAfter: 1, Replacement: "kk", HyphenAt: 1},
			},
			{
				seq:     []rune("ke"),
				weights: []int{0, 1},
				patch:   &Patch{DropBefore: 1, DropAfter: 1, Replacement: "ke", HyphenAt: 1},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	h := dict.Hyphenate("backen")
	if len(h.Breaks()) != 1 {
		t.Fatalf("expected the later overlapping patched break to be dropped, got %s", spew.Sdump(h))
	}
}
