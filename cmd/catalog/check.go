// ABOUTME: Check command validating cards.json in place.
// ABOUTME: Reports the same advisory warnings an import would, writing nothing.

package main

import (
	"fmt"

	"github.com/harper/catalog/internal/catalog"
	"github.com/harper/catalog/internal/convert"
	"github.com/harper/catalog/internal/ui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [cards.json]",
	Short: "Validate the cards data file",
	Long: `Validate every card in the data file against the allowed categories, types
and visibility values and report repeated titles. Row numbers are positions
in the array, starting at 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DataPath
		if len(args) > 0 {
			path = args[0]
		}
		strict, _ := cmd.Flags().GetBool("strict")

		cards, err := catalog.LoadCards(path)
		if err != nil {
			return err
		}

		warnings := convert.Check(cards)

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatWarnings(warnings))
		if len(warnings) > 0 && strict {
			return fmt.Errorf("%d warnings in %s", len(warnings), path)
		}
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Checked %d cards in %s, %d warnings", len(cards), path, len(warnings))))
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "exit with an error when any warning is found")
	rootCmd.AddCommand(checkCmd)
}
