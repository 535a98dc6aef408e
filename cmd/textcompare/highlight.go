package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"textcompare/internal/tokenizer"
)

const (
	ansiReset      = "\x1b[0m"
	ansiYellowBold = "\x1b[1;33m"
)

// renderHighlighted rebuilds a text from its tokens, marking highlighted
// chunks with color on a terminal and with brackets elsewhere.
func renderHighlighted(tokens []tokenizer.Token, colorize bool) string {
	paragraphs := tokenizer.Split(tokens)
	lines := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		var b strings.Builder
		for _, tok := range paragraph {
			switch {
			case !tok.Highlight:
				b.WriteString(tok.Chunk)
			case colorize:
				b.WriteString(ansiYellowBold + tok.Chunk + ansiReset)
			default:
				b.WriteString("[" + tok.Chunk + "]")
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
