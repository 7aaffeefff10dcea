// Package trie implements TinyHashTrie, a compact write-once hash trie for
// categorical byte sequences, adapted from Frank Liang's original tiny
// hyphenation-trie design. It backs the hash variant of a hyphenation
// pattern trie for dictionaries whose lowercase alphabet fits in a small
// number of categories.
package trie

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hyphenate.trie'
func tracer() tracing.Trace {
	return tracing.Select("hyphenate.trie")
}
