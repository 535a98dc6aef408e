package normalize

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DefaultIgnoreCharacters lists the punctuation and symbols stripped from every chunk.
// Latin and Cyrillic letters and ASCII digits must never appear here.
const DefaultIgnoreCharacters = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	"«»„“”‘’‚‹›" +
	"‐‑‒–—―−" +
	"…·•¡¿§¶©®™°№"

// Normalizer turns a chunk of text into its comparison core.
// It is safe for concurrent use once constructed.
type Normalizer struct {
	ignore map[rune]struct{}
}

// New creates a Normalizer that ignores DefaultIgnoreCharacters plus every rune in extra.
func New(extra string) *Normalizer {
	ignore := make(map[rune]struct{}, len(DefaultIgnoreCharacters)+len(extra))
	for _, r := range DefaultIgnoreCharacters + extra {
		ignore[r] = struct{}{}
	}
	return &Normalizer{ignore: ignore}
}

// Default is the Normalizer built from DefaultIgnoreCharacters only.
var Default = New("")

// Normalize lowercases the chunk and removes every ignorable rune.
// Whitespace is always ignorable, so a whitespace-only chunk has an empty core.
func (n *Normalizer) Normalize(chunk string) string {
	if chunk == "" {
		return ""
	}

	// Transformers keep state between calls and must not be shared.
	t := transform.Chain(cases.Lower(language.Und), runes.Remove(runes.Predicate(n.Ignores)))
	core, _, err := transform.String(t, chunk)
	if err != nil {
		return ""
	}
	return core
}

// Ignores reports whether r is dropped by Normalize.
func (n *Normalizer) Ignores(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	_, ok := n.ignore[r]
	return ok
}

// Normalize normalizes chunk with the Default normalizer.
func Normalize(chunk string) string {
	return Default.Normalize(chunk)
}
