// Package cmd: index command.
// Builds the search index from an export directory.
package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/search"
	"github.com/spf13/cobra"
)

var (
	flagIdxInput  string
	flagIdxOutput string
	flagIdxSQLite string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the search index from an export directory",
	Long: `Index flattens every article into a search entry and writes the JSON array
used by the site's search box, optionally mirrored into a SQLite table.

Examples:
  helpsite index --input ./export --output ./site/search-index.json
  helpsite index --input ./export --output ./index.json --sqlite ./index.db`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVar(&flagIdxInput, "input", "", "Export directory holding the JSON records")
	indexCmd.Flags().StringVar(&flagIdxOutput, "output", "", "Search index JSON file")
	indexCmd.Flags().StringVar(&flagIdxSQLite, "sqlite", "", "Also write the entries to this SQLite database")
	_ = indexCmd.MarkFlagRequired("input")
	_ = indexCmd.MarkFlagRequired("output")
}

func runIndex(cmd *cobra.Command, _ []string) error {
	ds, err := core.LoadDataset(flagIdxInput, logger)
	if err != nil {
		return err
	}

	entries := search.Build(ds, cfg.Search.ExcerptLength)
	if err := search.WriteJSON(flagIdxOutput, entries); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Indexed %d articles into %s\n", len(entries), flagIdxOutput)

	if flagIdxSQLite != "" {
		if err := search.WriteSQLite(cmd.Context(), flagIdxSQLite, entries); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", flagIdxSQLite)
	}
	return nil
}
