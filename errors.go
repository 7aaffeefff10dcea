package hyphenate

import "errors"

// ErrIncompatibleVersion is returned by Load when a dictionary file's magic
// or format version does not match what this build of the library expects.
var ErrIncompatibleVersion = errors.New("hyphenate: incompatible dictionary version")

// ErrNormalizationMismatch is returned by Load when a dictionary was built
// under a Unicode normalization form other than the one requested by the
// caller.
var ErrNormalizationMismatch = errors.New("hyphenate: normalization form mismatch")

// ErrUnknownLanguage is returned by RequireLanguage when a dictionary's
// declared language tag does not match the tag the caller expected. It is
// a soft check: Load and Hyphenate never return it on their own.
var ErrUnknownLanguage = errors.New("hyphenate: unknown or mismatched language tag")

// RequireLanguage checks dict's declared language tag against want, and
// returns ErrUnknownLanguage if they differ. Callers who don't care about
// the declared language can simply not call this.
func RequireLanguage(dict *Dictionary, want string) error {
	if dict == nil || dict.Language != want {
		return ErrUnknownLanguage
	}
	return nil
}
