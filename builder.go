//go:build hyphbuild

package hyphenate

import "io"

// BuildConfig configures an offline dictionary build: compile a pattern
// (and optional exception) source into a Dictionary and immediately
// serialize it, ready to be embedded or shipped alongside a program that
// only ever calls Load at runtime.
//
// Build exists to keep Save/Load's binary format decoupled from the
// (potentially large, allocation-heavy) construction path: production
// binaries link against Load only, and never need this file, which is why
// it sits behind the hyphbuild build tag.
type BuildConfig struct {
	Name       string
	Patterns   ExtendedPatternReader
	Extended   bool
	Exceptions ExceptionReader
	Options    []DictOption
}

// Build compiles cfg into a Dictionary.
func Build(cfg BuildConfig) (*Dictionary, error) {
	var dict *Dictionary
	var err error
	if cfg.Extended {
		dict, err = LoadExtendedPatternReader(cfg.Name, cfg.Patterns, cfg.Options...)
	} else {
		dict, err = LoadPatternReader(cfg.Name, asStandardReader{cfg.Patterns}, cfg.Options...)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Exceptions != nil {
		if err = dict.LoadExceptionReader(cfg.Exceptions); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

// BuildAndSave compiles cfg and writes the result to w in Save's format.
func BuildAndSave(cfg BuildConfig, w io.Writer) error {
	dict, err := Build(cfg)
	if err != nil {
		return err
	}
	return dict.Save(w)
}

// asStandardReader discards the patch half of an ExtendedPatternReader, so
// a caller building a standard dictionary can still supply patterns
// through the one reader type BuildConfig accepts.
type asStandardReader struct {
	ExtendedPatternReader
}

func (a asStandardReader) Next() ([]rune, []int, error) {
	seq, weights, _, err := a.ExtendedPatternReader.Next()
	return seq, weights, err
}
