package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"textcompare/internal/compare"
	"textcompare/internal/lemmatizer"
	"textcompare/internal/normalize"
	"textcompare/internal/settings"
	"textcompare/internal/tokenizer"
)

// sharedCore is one row of the compare report.
type sharedCore struct {
	Core   string `json:"core"`
	CountA int    `json:"countA"`
	CountB int    `json:"countB"`
}

type compareReport struct {
	ID      string       `json:"id"`
	Shared  []sharedCore `json:"shared"`
	Notices []string     `json:"notices,omitempty"`
}

func newCompareCommand(opts *globalOptions) *cobra.Command {
	var ignoreStopWords bool
	var lemmatize bool
	var lemmatizerURL string
	var stem bool
	var timeout time.Duration
	var show bool

	cmd := &cobra.Command{
		Use:   "compare FILE_A FILE_B",
		Short: "List the words two files have in common",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			plainA, err := readFile(args[0])
			if err != nil {
				return err
			}
			plainB, err := readFile(args[1])
			if err != nil {
				return err
			}

			prefs := settings.New()
			prefs.SetIgnoreStopWords(cmd.Context(), ignoreStopWords)
			prefs.SetLemmatize(cmd.Context(), lemmatize || stem || lemmatizerURL != "")

			var lem compare.Lemmatizer
			switch {
			case stem:
				lem = lemmatizer.NewStemmer()
			case lemmatizerURL != "":
				lem = lemmatizer.NewClient(lemmatizerURL, timeout)
			}

			state := compare.New(tokenizer.New(normalize.New(opts.ignoreCharacters)), prefs, lem)
			if err := state.SetPlain(compare.TextA, plainA); err != nil {
				return err
			}
			if err := state.SetPlain(compare.TextB, plainB); err != nil {
				return err
			}

			res, err := state.Compare(cmd.Context())
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			for _, notice := range res.Notices {
				fmt.Fprintln(cmd.ErrOrStderr(), notice)
			}

			report := compareReport{
				ID:      res.ID.String(),
				Shared:  sharedCores(res.A.Tokenized, res.B.Tokenized),
				Notices: res.Notices,
			}
			if opts.json {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			if len(report.Shared) == 0 {
				fmt.Fprintln(out, "No shared words")
			} else {
				fmt.Fprintln(out, renderSharedCores(report.Shared))
			}
			if show {
				colorize := shouldColorize(out)
				fmt.Fprintf(out, "\n== %s ==\n%s\n", args[0], renderHighlighted(res.A.Tokenized, colorize))
				fmt.Fprintf(out, "\n== %s ==\n%s\n", args[1], renderHighlighted(res.B.Tokenized, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ignoreStopWords, "ignore-stop-words", false, "Do not highlight stop words")
	cmd.Flags().BoolVar(&lemmatize, "lemmatize", false, "Compare dictionary forms of words")
	cmd.Flags().StringVar(&lemmatizerURL, "lemmatizer-url", "", "Base URL of a lemmatization service (implies --lemmatize)")
	cmd.Flags().BoolVar(&stem, "stem", false, "Lemmatize with the built-in English stemmer (implies --lemmatize)")
	cmd.Flags().DurationVar(&timeout, "lemmatizer-timeout", lemmatizer.DefaultTimeout, "Timeout for the lemmatization service")
	cmd.Flags().BoolVar(&show, "show", false, "Also print both texts with shared words marked")
	cmd.MarkFlagsMutuallyExclusive("stem", "lemmatizer-url")

	return cmd
}

// sharedCores counts highlighted tokens per core on each side, sorted by core.
func sharedCores(a, b []tokenizer.Token) []sharedCore {
	counts := make(map[string]*sharedCore)
	count := func(tokens []tokenizer.Token, side func(*sharedCore)) {
		for _, tok := range tokens {
			if !tok.Highlight {
				continue
			}
			row, ok := counts[tok.Core]
			if !ok {
				row = &sharedCore{Core: tok.Core}
				counts[tok.Core] = row
			}
			side(row)
		}
	}
	count(a, func(r *sharedCore) { r.CountA++ })
	count(b, func(r *sharedCore) { r.CountB++ })

	out := make([]sharedCore, 0, len(counts))
	for _, row := range counts {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Core < out[j].Core })
	return out
}

func renderSharedCores(rows []sharedCore) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.Core, strconv.Itoa(row.CountA), strconv.Itoa(row.CountB)})
	}
	return renderTable(
		[]string{"Word", "Text A", "Text B"},
		cells,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}
