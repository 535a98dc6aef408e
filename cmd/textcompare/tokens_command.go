package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"textcompare/internal/normalize"
	"textcompare/internal/tokenizer"
)

type tokenRow struct {
	Paragraph int    `json:"paragraph"`
	Chunk     string `json:"chunk"`
	Core      string `json:"core"`
}

func newTokensCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Show how a file is split into tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, err := readFile(args[0])
			if err != nil {
				return err
			}

			tok := tokenizer.New(normalize.New(opts.ignoreCharacters))
			var rows []tokenRow
			for i, paragraph := range tok.Paragraphs(plain) {
				for _, t := range paragraph {
					rows = append(rows, tokenRow{Paragraph: i + 1, Chunk: t.Chunk, Core: t.Core})
				}
			}

			if opts.json {
				return writeJSON(cmd, rows)
			}

			cells := make([][]string, 0, len(rows))
			for _, row := range rows {
				cells = append(cells, []string{
					strconv.Itoa(row.Paragraph),
					strconv.Quote(row.Chunk),
					row.Core,
				})
			}
			_, err = cmd.OutOrStdout().Write([]byte(renderTable(
				[]string{"Paragraph", "Chunk", "Core"},
				cells,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			) + "\n"))
			return err
		},
	}
}
