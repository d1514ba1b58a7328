// ABOUTME: Export command writing cards.json to an Excel workbook.
// ABOUTME: Always reads the configured data file.

package main

import (
	"fmt"

	"github.com/harper/catalog/internal/convert"
	"github.com/harper/catalog/internal/logging"
	"github.com/harper/catalog/internal/sheet"
	"github.com/harper/catalog/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output.xlsx]",
	Short: "Export cards.json to an Excel file",
	Long: `Export the cards data file to a single-sheet Excel workbook named "Cards".
Categories and types are written as comma separated lists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := cfg.ExportPath
		if len(args) > 0 {
			output = args[0]
		}

		exporter := convert.NewExporter(sheet.NewExcel(), logging.ForRun("export"))

		res, err := exporter.Run(cmd.Context(), cfg.DataPath, output)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %d cards to %s", res.Cards, res.Path)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
