// ABOUTME: List command for browsing the catalog from the terminal.
// ABOUTME: Applies the gallery's hidden, search and facet filters.

package main

import (
	"fmt"

	"github.com/harper/catalog/internal/catalog"
	"github.com/harper/catalog/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cards",
	Long: `List the cards of the data file the way the gallery shows them. Hidden
cards are left out unless --all is given. Repeat --category, --type or
--visibility to match any of several values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		categories, _ := cmd.Flags().GetStringSlice("category")
		types, _ := cmd.Flags().GetStringSlice("type")
		visibility, _ := cmd.Flags().GetStringSlice("visibility")
		all, _ := cmd.Flags().GetBool("all")
		markdown, _ := cmd.Flags().GetBool("markdown")

		cards, err := catalog.LoadCards(cfg.DataPath)
		if err != nil {
			return err
		}
		if !all {
			cards = catalog.Visible(cards)
		}

		filter := catalog.Filter{
			Search:     search,
			Categories: categories,
			Types:      types,
			Visibility: visibility,
		}
		matched := filter.Apply(cards)

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatItemCount(len(matched), len(cards)))
		if len(matched) == 0 {
			fmt.Fprintln(out, "No results match your filters.")
			return nil
		}

		if markdown {
			rendered, _ := ui.RenderMarkdown(ui.CardsMarkdown(matched))
			fmt.Fprint(out, rendered)
			return nil
		}

		fmt.Fprint(out, ui.Separator())
		for _, c := range matched {
			fmt.Fprint(out, ui.FormatCardListItem(c))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "search by title")
	listCmd.Flags().StringSliceP("category", "c", nil, "filter by category")
	listCmd.Flags().StringSliceP("type", "t", nil, "filter by type")
	listCmd.Flags().StringSlice("visibility", nil, "filter by visibility (public|private)")
	listCmd.Flags().BoolP("all", "a", false, "include hidden cards")
	listCmd.Flags().BoolP("markdown", "m", false, "render as markdown")
	rootCmd.AddCommand(listCmd)
}
