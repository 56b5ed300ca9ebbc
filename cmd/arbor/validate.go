package main

import (
	"fmt"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the problem document without evaluating it",
	Long:  `Parses the problem and resolves every rule reference and argument against the built-in registry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.Validate(optionsFrom(cmd)); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Problem is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
