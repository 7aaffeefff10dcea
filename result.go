package hyphenate

import (
	"strings"
	"unicode/utf8"
)

// Hyphenated is the outcome of hyphenating one word: the word itself, plus
// an ordered, deduplicated, ascending list of legal break byte-offsets. For
// extended dictionaries, Patches() parallels Breaks() with a non-nil entry
// wherever the break rewrites the characters around it.
//
// A Hyphenated owns its data; it does not retain a reference to the
// Dictionary that produced it.
type Hyphenated struct {
	text    string
	offsets []int
	patches []*Patch
}

// Breaks returns the break byte-offsets, in ascending order.
func (h *Hyphenated) Breaks() []int {
	if h == nil {
		return nil
	}
	out := make([]int, len(h.offsets))
	copy(out, h.offsets)
	return out
}

// Patches returns, parallel to Breaks, the patch (if any) attached to each
// break. Entries are nil for plain breaks and for every break in a
// standard (non-extended) result.
func (h *Hyphenated) Patches() []*Patch {
	if h == nil {
		return nil
	}
	out := make([]*Patch, len(h.patches))
	copy(out, h.patches)
	return out
}

// Text returns the word this result was computed for.
func (h *Hyphenated) Text() string {
	if h == nil {
		return ""
	}
	return h.text
}

// Segments returns the substrings between consecutive breaks. For a
// standard result these are literal substrings of Text(); for an extended
// result with patches, the affected window around each patched break is
// replaced per that break's Patch, and the segments split at the patch's
// internal hyphen position.
//
// Concatenating Segments() always reconstructs the (possibly rewritten)
// word.
func (h *Hyphenated) Segments() []string {
	if h == nil {
		return nil
	}
	if len(h.offsets) == 0 {
		return []string{h.text}
	}
	segments := make([]string, 0, len(h.offsets)+1)
	var cur strings.Builder
	cursor := 0
	for i, off := range h.offsets {
		var patch *Patch
		if i < len(h.patches) {
			patch = h.patches[i]
		}
		if patch == nil {
			cur.WriteString(h.text[cursor:off])
			segments = append(segments, cur.String())
			cur.Reset()
			cursor = off
			continue
		}
		start := runeOffsetBefore(h.text, off, patch.DropBefore)
		end := runeOffsetAfter(h.text, off, patch.DropAfter)
		cur.WriteString(h.text[cursor:start])
		repRunes := []rune(patch.Replacement)
		hy := patch.HyphenAt
		if hy < 0 {
			hy = 0
		}
		if hy > len(repRunes) {
			hy = len(repRunes)
		}
		cur.WriteString(string(repRunes[:hy]))
		segments = append(segments, cur.String())
		cur.Reset()
		cur.WriteString(string(repRunes[hy:]))
		cursor = end
	}
	cur.WriteString(h.text[cursor:])
	segments = append(segments, cur.String())
	return segments
}

// String returns the segments joined with '-', e.g. "hy-phen-a-tion". This
// is a convenience form, mainly useful for tests and diagnostics.
func (h *Hyphenated) String() string {
	return strings.Join(h.Segments(), "-")
}

// HyphenationString is an alias for String, kept for readers coming from
// the teacher's original naming ("table" => "ta-ble").
func (h *Hyphenated) HyphenationString() string { return h.String() }

// runeOffsetBefore returns the byte offset n runes before byteOffset in s,
// clamped to 0.
func runeOffsetBefore(s string, byteOffset, n int) int {
	off := byteOffset
	for i := 0; i < n && off > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:off])
		off -= size
	}
	return off
}

// runeOffsetAfter returns the byte offset n runes after byteOffset in s,
// clamped to len(s).
func runeOffsetAfter(s string, byteOffset, n int) int {
	off := byteOffset
	for i := 0; i < n && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
