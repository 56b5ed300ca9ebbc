package main

import (
	"context"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server, or an MCP server with --mcp",
	Long: `Exposes expand and run over HTTP; problem documents are posted as JSON. Metrics are served on /metrics.

With --mcp the same operations are offered as Model Context Protocol tools
(expand, run, rules) over stdin/stdout, and nothing else is written to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o := optionsFrom(cmd)

		if useMCP, _ := cmd.Flags().GetBool("mcp"); useMCP {
			return cli.ServeMCP(o)
		}

		port, _ := cmd.Flags().GetString("port")
		profile := termenv.Ascii
		if !o.NoColor {
			profile = termenv.NewOutput(cmd.OutOrStdout()).EnvColorProfile()
		}
		tui.PrintBanner(cmd.OutOrStdout(), profile, arbor.Version)

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()
		return cli.Serve(sigCtx, cmd.OutOrStdout(), ":"+port, o)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Bool("mcp", false, "Serve MCP tools over stdio instead of HTTP")
}
