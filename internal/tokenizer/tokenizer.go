package tokenizer

import (
	"strings"
	"unicode"

	"textcompare/internal/normalize"
)

// Token is one chunk of a text together with its comparison state.
// JSON names match the payload exchanged with the remote lemmatizer.
type Token struct {
	Chunk     string `json:"chunk"`
	Core      string `json:"core"`
	Highlight bool   `json:"highlight"`
	Bright    bool   `json:"bright"`
	EndOfLine bool   `json:"endOfLine"`
}

// Paragraph is the token sequence of a single line of input.
type Paragraph []Token

// CoreSet is the set of distinct non-empty cores of a text.
type CoreSet map[string]struct{}

// Has reports whether core is in the set.
func (s CoreSet) Has(core string) bool {
	_, ok := s[core]
	return ok
}

// Tokenizer splits text into paragraphs and chunks.
type Tokenizer struct {
	normalizer *normalize.Normalizer
}

// New creates a Tokenizer. A nil normalizer means normalize.Default.
func New(normalizer *normalize.Normalizer) *Tokenizer {
	if normalizer == nil {
		normalizer = normalize.Default
	}
	return &Tokenizer{normalizer: normalizer}
}

// Paragraphs splits text on line breaks (LF or CRLF) and tokenizes each line.
// Every paragraph has at least one token and its last token has EndOfLine set.
func (t *Tokenizer) Paragraphs(text string) []Paragraph {
	lines := splitLines(text)
	paragraphs := make([]Paragraph, 0, len(lines))
	for _, line := range lines {
		chunks := splitChunks(line)
		p := make(Paragraph, len(chunks))
		for i, chunk := range chunks {
			p[i] = Token{
				Chunk:     chunk,
				Core:      t.normalizer.Normalize(chunk),
				EndOfLine: i == len(chunks)-1,
			}
		}
		paragraphs = append(paragraphs, p)
	}
	return paragraphs
}

// Tokenize returns the flattened tokens of text and the set of their cores.
func (t *Tokenizer) Tokenize(text string) ([]Token, CoreSet) {
	tokens := Flatten(t.Paragraphs(text))
	return tokens, Cores(tokens)
}

// Flatten concatenates paragraphs into a single token sequence.
func Flatten(paragraphs []Paragraph) []Token {
	n := 0
	for _, p := range paragraphs {
		n += len(p)
	}
	tokens := make([]Token, 0, n)
	for _, p := range paragraphs {
		tokens = append(tokens, p...)
	}
	return tokens
}

// Split regroups a flat token sequence into paragraphs using EndOfLine markers.
// Trailing tokens without a marker form a final paragraph.
func Split(tokens []Token) []Paragraph {
	var paragraphs []Paragraph
	start := 0
	for i, tok := range tokens {
		if tok.EndOfLine {
			paragraphs = append(paragraphs, Paragraph(tokens[start:i+1]))
			start = i + 1
		}
	}
	if start < len(tokens) {
		paragraphs = append(paragraphs, Paragraph(tokens[start:]))
	}
	return paragraphs
}

// Cores collects the distinct non-empty cores of tokens.
func Cores(tokens []Token) CoreSet {
	set := make(CoreSet)
	for _, tok := range tokens {
		if strings.TrimSpace(tok.Core) == "" {
			continue
		}
		set[tok.Core] = struct{}{}
	}
	return set
}

// String reassembles the paragraph's original text.
func (p Paragraph) String() string {
	var b strings.Builder
	for _, tok := range p {
		b.WriteString(tok.Chunk)
	}
	return b.String()
}

// Join reassembles tokens into text, separating paragraphs with "\n".
func Join(tokens []Token) string {
	paragraphs := Split(tokens)
	lines := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

// splitLines splits on "\n", dropping a "\r" immediately before each break.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines)-1; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// splitChunks splits a line into alternating non-space and space runs.
// The result always starts and ends with a non-space run, which may be empty,
// so "" yields [""] and " a" yields ["", " ", "a"].
func splitChunks(line string) []string {
	var chunks []string
	start := 0
	inSpace := false
	for i, r := range line {
		space := isSpace(r)
		if space != inSpace {
			chunks = append(chunks, line[start:i])
			start = i
			inSpace = space
		}
	}
	chunks = append(chunks, line[start:])
	if inSpace {
		chunks = append(chunks, "")
	}
	return chunks
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
