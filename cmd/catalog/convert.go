// ABOUTME: Convert command turning an Excel workbook into cards.json.
// ABOUTME: Prints advisory warnings and a summary; fatal problems write nothing.

package main

import (
	"errors"
	"fmt"

	"github.com/harper/catalog/internal/convert"
	"github.com/harper/catalog/internal/logging"
	"github.com/harper/catalog/internal/sheet"
	"github.com/harper/catalog/internal/ui"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.xlsx> [output.json]",
	Short: "Convert an Excel file to cards.json",
	Long: `Convert the first sheet of an Excel (.xlsx) file into the cards.json format.

Arguments:
  input.xlsx   Path to the Excel file to convert (required)
  output.json  Path for output JSON file (default: the configured data file)

The header row must contain title, description, categories, types,
visibility and link in any order. At most 1000 data rows are accepted.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Usage()
			return errors.New("missing input file")
		}
		return cobra.MaximumNArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output := cfg.DataPath
		if len(args) > 1 {
			output = args[1]
		}

		importer := convert.NewImporter(sheet.NewExcel(), logging.ForRun("convert"))
		res, err := importer.Run(cmd.Context(), input, output)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.FormatDataRows(res.DataRows))
		if res.Empty {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Notice("Excel file contains no data rows"))
		}
		if len(res.Warnings) > 0 {
			fmt.Fprint(out, ui.FormatWarnings(res.Warnings))
			fmt.Fprint(out, ui.FormatImportSummary(len(res.Cards), len(res.Warnings), res.Duplicates))
		}
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Converted %d cards to %s", len(res.Cards), output)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
