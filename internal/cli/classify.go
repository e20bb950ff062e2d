package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/item"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify NAME...",
		Short: "Show which aging rule applies to each item name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := item.DefaultCatalog()
			for _, name := range args {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, cat.Classify(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
