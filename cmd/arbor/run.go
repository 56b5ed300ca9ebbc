package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every seed of the problem in sequence",
	Long:  `Expands each seed in turn, commits the harvested values and continues the next seed beneath each of them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Run(cmd.OutOrStdout(), optionsFrom(cmd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addEvalFlags(runCmd, cli.FormatText)
}
