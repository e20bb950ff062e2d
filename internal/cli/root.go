// Package cli provides the gildedrose command line.
package cli

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Logs go to stderr so the report on
// stdout stays clean.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	logger := log.New(stderr, "[gildedrose] ", log.LstdFlags)

	root := &cobra.Command{
		Use:   "gildedrose",
		Short: "Age the Gilded Rose inventory one day at a time.",
		Long: `gildedrose runs the shop's daily quality update over a stock of ` +
			`items and prints the state of every item for each day.`,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newSimulateCmd(logger), newClassifyCmd())
	return root
}

// Execute runs the root command against the process streams.
func Execute() {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
