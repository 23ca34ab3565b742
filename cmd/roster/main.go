package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagStore  string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "roster",
	Short:         "In-memory user directory with random identifiers",
	Long:          "Roster creates users with randomly assigned identifiers, stores them in an insertion-ordered collection, and retrieves them by first-match linear scan.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(flagFormat); err != nil {
			return err
		}
		return validateStore(flagStore)
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "memory", "storage backend: memory|sqlite")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(validateCmd)
}
