package hyphenate

import (
	"bytes"
	"testing"
)

func TestSaveLoadRoundTripStandard(t *testing.T) {
	dict, err := LoadPatternReader("roundtrip", &slicePatternReader{
		entries: []Pattern{
			{Sequence: []rune("für"), Weights: []int{0, 0, 1}},
			{Sequence: []rune("le"), Weights: []int{0, 1}},
		},
	}, WithLanguage("de"), WithMargins(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	dict.AddException("table", []int{0, 0, 1, 0, 0})

	var buf bytes.Buffer
	if err := dict.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(&buf, NormalizationNone)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Extended() {
		t.Fatal("expected a standard dictionary after round trip")
	}
	if loaded.Language != "de" {
		t.Fatalf("language mismatch: got %q", loaded.Language)
	}
	if got := loaded.HyphenationString("fürung"); got != "fü-rung" {
		t.Fatalf("fürung should be fü-rung, is %s", got)
	}
	// Exceptions are not part of the serialized format (spec §4.6 does not
	// list them); a loaded dictionary starts with none.
	if got := loaded.HyphenationString("table"); got != "table" {
		t.Fatalf("expected no exception carried over the wire, got %s", got)
	}
}

func TestSaveLoadRoundTripExtended(t *testing.T) {
	dict, err := LoadExtendedPatternReader("roundtrip-ext", &sliceExtendedReader{
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

	var buf bytes.Buffer
	if err := dict.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(&buf, NormalizationNone)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.Extended() {
		t.Fatal("expected an extended dictionary after round trip")
	}
	if got := loaded.Hyphenate("backen").String(); got != "bak-ken" {
		t.Fatalf("backen should patch to bak-ken, is %s", got)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	if _, err := Load(bytes.NewReader([]byte("nope")), NormalizationNone); err != ErrIncompatibleVersion {
		t.Fatalf("expected ErrIncompatibleVersion, got %v", err)
	}
}

func TestLoadRejectsNormalizationMismatch(t *testing.T) {
	dict, err := LoadPatternReader("norm-test", &slicePatternReader{}, WithNormalization(NormalizationNFC))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := dict.Save(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(&buf, NormalizationNFD); err != ErrNormalizationMismatch {
		t.Fatalf("expected ErrNormalizationMismatch, got %v", err)
	}
}
