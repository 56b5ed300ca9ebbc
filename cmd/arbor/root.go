package main

import (
	"fmt"
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor grows and prunes constrained generation trees",
	Long: `Arbor evaluates problem documents: seeds are expanded by grow rules,
candidates are vetoed by cut rules, and accepted terminal values are harvested.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "problem.yaml", "Problem document (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level written to stderr (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every grow, cut and commit to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
}

// optionsFrom collects the shared flags of cmd.
func optionsFrom(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	o := cli.Options{Stderr: cmd.ErrOrStderr()}
	o.File, _ = flags.GetString("file")
	o.LogLevel, _ = flags.GetString("log-level")
	o.Debug, _ = flags.GetBool("debug")
	o.NoColor, _ = flags.GetBool("no-color")
	if flags.Lookup("format") != nil {
		o.Format, _ = flags.GetString("format")
	}
	if flags.Lookup("param") != nil {
		o.Params, _ = flags.GetStringToString("param")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetInt("seed")
		o.Seed = &seed
	}
	return o
}

// addEvalFlags registers the flags shared by the evaluating commands.
func addEvalFlags(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringP("format", "o", defaultFormat, "Output format (text, json, mermaid, markdown)")
	cmd.Flags().StringToStringP("param", "p", nil, "Override a problem param (key=value)")
}
