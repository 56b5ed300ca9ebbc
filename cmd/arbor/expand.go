package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand a single seed into its speculative tree",
	Long:  `Applies the grow and cut rules to the first seed of the problem (or --seed) and prints the whole tree, rejected branches included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Expand(cmd.OutOrStdout(), optionsFrom(cmd))
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
	addEvalFlags(expandCmd, cli.FormatText)
	expandCmd.Flags().Int("seed", 0, "Expand this value instead of the problem's first seed")
}
