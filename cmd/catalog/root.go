// ABOUTME: Root command wiring shared flags, config and logging.
// ABOUTME: Fatal errors are printed once here and turned into exit status 1.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/harper/catalog/internal/config"
	"github.com/harper/catalog/internal/convert"
	"github.com/harper/catalog/internal/logging"
	"github.com/harper/catalog/internal/ui"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Convert the solution catalog between cards.json and Excel",
	Long: `catalog keeps the solution catalog's cards.json data file editable by
non-technical editors. Export the cards to a spreadsheet, edit it, and convert
it back; conversion normalizes values, drops repeated titles and reports
anything outside the allowed categories, types and visibility values.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if f := cmd.Flags().Lookup("data"); f != nil && f.Changed {
			loaded.DataPath = f.Value.String()
		}
		if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
			loaded.LogLevel = f.Value.String()
		}
		if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
			loaded.LogFormat = f.Value.String()
		}

		logging.Setup(loaded.LogLevel, loaded.LogFormat, os.Stderr)
		cfg = loaded
		return nil
	},
}

// Execute runs the root command and prints any fatal error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	return err
}

func reportError(err error) {
	fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))

	var missing *convert.MissingColumnsError
	if errors.As(err, &missing) {
		fmt.Fprintf(os.Stderr, "Required columns: %s\n", strings.Join(convert.RequiredColumns, ", "))
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/catalog/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "cards.json data file (default src/data/cards.json)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text|json)")
}
