package main

import (
	"github.com/spf13/cobra"
)

// globalOptions are flags shared by every subcommand.
type globalOptions struct {
	ignoreCharacters string
	json             bool
}

func newRootCommand() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:           "textcompare",
		Short:         "Highlight the words two texts have in common",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.ignoreCharacters, "ignore-characters", "", "Extra characters to strip from words")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(newCompareCommand(&opts))
	rootCmd.AddCommand(newTokensCommand(&opts))

	return rootCmd
}
