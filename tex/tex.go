package tex

import (
	"bytes"
	"io"

	"github.com/anaphora/hyphenate"
	"github.com/anaphora/hyphenate/texexceptions"
	"github.com/anaphora/hyphenate/texpatterns"
)

// LoadDictionary loads a pattern dictionary and an exception list in TeX format.
//
// Please refer to
//
//	https://github.com/hyphenation/tex-hyphen/tree/master/hyph-utf8/tex/generic/hyph-utf8/patterns/tex
//
// for a list of real-world pattern files.
//
// Example usage:
//
//	f, _ := os.Open("path/to/patterns/hyph-en-us.tex")
//	defer f.Close()
//
//	dict, err := tex.LoadDictionary("en-us", f)
//
// This loads the patterns and exceptions into memory as a standard
// (Knuth-Liang) dictionary.
func LoadDictionary(name string, reader io.Reader, opts ...hyphenate.DictOption) (*hyphenate.Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	texreader := texpatterns.NewPatternReader(bytes.NewReader(data))
	dict, err := hyphenate.LoadPatternReader(name, texreader, opts...)
	if err != nil {
		return nil, err
	}
	err = dict.LoadExceptionReader(texexceptions.NewReader(bytes.NewReader(data)))
	return dict, err
}

// LoadExtendedDictionary is the non-standard (Németh) counterpart of
// LoadDictionary: pattern lines may carry a "/replacement,cutBefore,cutLength"
// patch clause (see texpatterns.ExtendedPatternReader).
func LoadExtendedDictionary(name string, reader io.Reader, opts ...hyphenate.DictOption) (*hyphenate.Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	texreader := texpatterns.NewExtendedPatternReader(bytes.NewReader(data))
	dict, err := hyphenate.LoadExtendedPatternReader(name, texreader, opts...)
	if err != nil {
		return nil, err
	}
	err = dict.LoadExceptionReader(texexceptions.NewReader(bytes.NewReader(data)))
	return dict, err
}
