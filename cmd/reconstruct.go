// Package cmd: reconstruct command.
// Runs the reverse pipeline: discover pages → parse anchors → save dataset.
package cmd

import (
	"fmt"
	"time"

	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/fetch"
	"github.com/gaurav-prasanna/helpsite/core/reconstruct"
	"github.com/gaurav-prasanna/helpsite/crawl"
	"github.com/spf13/cobra"
)

var (
	flagRecInput    string
	flagRecURL      string
	flagRecOutput   string
	flagRecMaxPages int
)

var reconstructCmd = &cobra.Command{
	Use:   "reconstruct",
	Short: "Rebuild the JSON export from a generated help center",
	Long: `Reconstruct parses the category, section and article pages of a generated
site, either a local directory or a published URL, and writes categories.json,
sections.json, articles.json and manifest.json.

Examples:
  helpsite reconstruct --input ./offline_help_center --output ./export
  helpsite reconstruct --url https://help.example.com/hc/ --output ./export`,
	Args: cobra.NoArgs,
	RunE: runReconstruct,
}

func init() {
	rootCmd.AddCommand(reconstructCmd)

	reconstructCmd.Flags().StringVar(&flagRecInput, "input", "", "Generated site directory")
	reconstructCmd.Flags().StringVar(&flagRecURL, "url", "", "Published site URL to crawl")
	reconstructCmd.Flags().StringVar(&flagRecOutput, "output", "", "Directory for the reconstructed JSON files")
	reconstructCmd.Flags().IntVar(&flagRecMaxPages, "max-pages", crawl.DefaultMaxPages, "Maximum pages to visit with --url")
	reconstructCmd.MarkFlagsMutuallyExclusive("input", "url")
	reconstructCmd.MarkFlagsOneRequired("input", "url")
	_ = reconstructCmd.MarkFlagRequired("output")
}

func runReconstruct(cmd *cobra.Command, _ []string) error {
	source, err := newSource(flagRecInput, flagRecURL, flagRecMaxPages)
	if err != nil {
		return err
	}

	r := reconstruct.New(cfg, source, logger)
	ds, err := r.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("reconstructing dataset: %w", err)
	}

	if err := core.SaveDataset(flagRecOutput, ds, time.Now()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Reconstructed %d categories, %d sections, %d articles into %s\n",
		len(ds.Categories), len(ds.Sections), len(ds.Articles), flagRecOutput)
	return nil
}

// newSource selects the page source for a reconstruction.
func newSource(dir, siteURL string, maxPages int) (crawl.Source, error) {
	if siteURL == "" {
		return crawl.NewDirSource(dir), nil
	}
	remote, err := crawl.NewRemoteSource(siteURL, fetch.New(), logger)
	if err != nil {
		return nil, err
	}
	remote.SetMaxPages(maxPages)
	return remote, nil
}
