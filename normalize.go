package hyphenate

import "golang.org/x/text/unicode/norm"

// NormalizationForm names a Unicode normalization form. It is a property of
// a Dictionary (spec design note: fixed per dictionary rather than baked
// into the library at build time), recorded in the dictionary header and
// applied to both patterns at build time and words at hyphenation time.
type NormalizationForm uint8

const (
	// NormalizationNone performs no normalization; patterns and words are
	// matched exactly as given.
	NormalizationNone NormalizationForm = iota
	NormalizationNFC
	NormalizationNFD
	NormalizationNFKC
	NormalizationNFKD
)

func (f NormalizationForm) String() string {
	switch f {
	case NormalizationNFC:
		return "NFC"
	case NormalizationNFD:
		return "NFD"
	case NormalizationNFKC:
		return "NFKC"
	case NormalizationNFKD:
		return "NFKD"
	default:
		return "none"
	}
}

func (f NormalizationForm) normalize(s string) string {
	switch f {
	case NormalizationNFC:
		return norm.NFC.String(s)
	case NormalizationNFD:
		return norm.NFD.String(s)
	case NormalizationNFKC:
		return norm.NFKC.String(s)
	case NormalizationNFKD:
		return norm.NFKD.String(s)
	default:
		return s
	}
}
