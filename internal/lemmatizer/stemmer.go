package lemmatizer

import (
	"context"

	"github.com/surgebase/porter2"

	"textcompare/internal/tokenizer"
)

// Stemmer is an offline stand-in for the remote service. It replaces English
// cores with their Porter2 stems and leaves every other core untouched.
type Stemmer struct{}

// NewStemmer creates a Stemmer.
func NewStemmer() *Stemmer {
	return &Stemmer{}
}

// Lemmatize returns stemmed copies of a and b. It never fails unless ctx is done.
func (s *Stemmer) Lemmatize(ctx context.Context, a, b []tokenizer.Token) ([]tokenizer.Token, []tokenizer.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return stemAll(a), stemAll(b), nil
}

func stemAll(tokens []tokenizer.Token) []tokenizer.Token {
	out := make([]tokenizer.Token, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenizer.Token{Chunk: tok.Chunk, Core: tok.Core, EndOfLine: tok.EndOfLine}
		if isLatinWord(tok.Core) {
			out[i].Core = porter2.Stem(tok.Core)
		}
	}
	return out
}

// isLatinWord reports whether core is non-empty and made of a-z only.
func isLatinWord(core string) bool {
	if core == "" {
		return false
	}
	for i := 0; i < len(core); i++ {
		if core[i] < 'a' || core[i] > 'z' {
			return false
		}
	}
	return true
}
