package matcher

import (
	"errors"
	"fmt"
	"strings"

	"textcompare/internal/stopwords"
	"textcompare/internal/tokenizer"
)

// ErrStaleTokens is returned when matching is attempted on tokens that already
// carry highlight or bright state from an earlier pass.
var ErrStaleTokens = errors.New("tokens already carry highlight state")

// Options controls a highlighting pass.
type Options struct {
	// IgnoreStopWords skips tokens whose core is a stop word.
	IgnoreStopWords bool

	// IsStopWord classifies cores. Defaults to stopwords.IsStopWord.
	IsStopWord func(core string) bool
}

func (o Options) isStopWord(core string) bool {
	if o.IsStopWord != nil {
		return o.IsStopWord(core)
	}
	return stopwords.IsStopWord(core)
}

// Highlight marks every token whose core is present in other.
// The slice is mutated in place and returned. Highlight never clears a flag,
// so it should only run on freshly tokenized input (see AssertFresh).
func Highlight(tokens []tokenizer.Token, other tokenizer.CoreSet, opts Options) []tokenizer.Token {
	for i := range tokens {
		core := tokens[i].Core
		if opts.IgnoreStopWords && opts.isStopWord(core) {
			continue
		}
		if strings.TrimSpace(core) != "" && other.Has(core) {
			tokens[i].Highlight = true
		}
	}
	return tokens
}

// AssertFresh returns ErrStaleTokens if any token is highlighted or bright.
func AssertFresh(tokens []tokenizer.Token) error {
	for i, tok := range tokens {
		if tok.Highlight || tok.Bright {
			return fmt.Errorf("token %d (%q): %w", i, tok.Chunk, ErrStaleTokens)
		}
	}
	return nil
}

// Reset clears highlight and bright flags so tokens can be matched again.
func Reset(tokens []tokenizer.Token) {
	for i := range tokens {
		tokens[i].Highlight = false
		tokens[i].Bright = false
	}
}

// Match highlights a against the cores of b and b against the cores of a.
// Both sides must be fresh.
func Match(a, b []tokenizer.Token, opts Options) error {
	if err := AssertFresh(a); err != nil {
		return fmt.Errorf("text a: %w", err)
	}
	if err := AssertFresh(b); err != nil {
		return fmt.Errorf("text b: %w", err)
	}

	coresA := tokenizer.Cores(a)
	coresB := tokenizer.Cores(b)

	Highlight(a, coresB, opts)
	Highlight(b, coresA, opts)
	return nil
}
