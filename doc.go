/*
Package hyphenate implements pattern-based word hyphenation.

It supports both the classic Knuth-Liang algorithm (F.M.Liang
http://www.tug.org/docs/liang/), as used by TeX, and the Németh extension
used for non-standard hyphenation, where a break may rewrite the
characters around it (for example German "Zucker" -> "Zu-k|k-er"). A
Dictionary compiles a stream of patterns into a frozen trie index --
either a double-array trie (the default, unbounded alphabet) or a compact
hash trie for small single-language alphabets -- plus per-pattern score
vectors and, for extended dictionaries, a side table of patches. Explicit
exceptions bypass pattern matching entirely.

The lookup path is Unicode-aware for BMP characters and supports non-ASCII
patterns such as German umlauts.

Further Reading

	https://www.microsoft.com/en-us/Typography/OpenTypeSpecification.aspx
	https://nedbatchelder.com/code/modules/hyphenate.html   (Python implementation)
	http://www.mnn.ch/hyph/hyphenation2.html  / https://github.com/mnater/hyphenator

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package hyphenate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hyphenate'
func tracer() tracing.Trace {
	return tracing.Select("hyphenate")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
