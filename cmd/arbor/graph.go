package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the committed tree as a Mermaid diagram",
	Long:  `Runs the problem and outputs a Mermaid diagram (graph TD); rejected branches are drawn with dotted, labelled edges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o := optionsFrom(cmd)
		o.Format = cli.FormatMermaid
		expand, _ := cmd.Flags().GetBool("expand")
		if expand {
			return cli.Expand(cmd.OutOrStdout(), o)
		}
		return cli.Run(cmd.OutOrStdout(), o)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("expand", false, "Draw the speculative tree of the first seed instead")
}
