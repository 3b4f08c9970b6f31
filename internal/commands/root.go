// Package commands wires the CLI: analyze a document locally or serve
// the HTTP boundary.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "smefin",
		Short:   "SME financial health analysis from transaction documents",
		Long:    "Ingests SME transaction data (CSV, bank-statement PDF, or GSTR-1 JSON),\nnormalizes it into canonical transactions, and produces categorized\nbookkeeping, forecasts, tax estimates and working-capital analysis.",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to YAML config file")

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("smefin " + Version)
		},
	}
}

// Version is the CLI version string.
const Version = "1.0.0"
