// Package cmd: export command.
// Orchestrates the export pipeline for every article:
// load dataset → normalize body to Markdown → render → write.
//
// It handles flag validation and renderer selection.
package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/content"
	"github.com/gaurav-prasanna/helpsite/core/normalize"
	"github.com/gaurav-prasanna/helpsite/core/output"
	"github.com/gaurav-prasanna/helpsite/core/page"
	"github.com/gaurav-prasanna/helpsite/core/render"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagExpInput    string
	flagExpOutput   string
	flagExpPDF      bool
	flagExpMarkdown bool
	flagExpJSON     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every article as Markdown, JSON, or PDF",
	Long: `Export converts each article body to Markdown and renders it to the chosen
output format, one article_<id> file per article.

Examples:
  helpsite export --input ./export --output ./md --markdown
  helpsite export --input ./export --output ./json --json
  helpsite export --input ./export --output ./pdf --pdf`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&flagExpInput, "input", "", "Export directory holding the JSON records")
	exportCmd.Flags().StringVar(&flagExpOutput, "output", "", "Output directory (default: current directory)")

	// Output format flags (mutually exclusive).
	exportCmd.Flags().BoolVar(&flagExpPDF, "pdf", false, "Output PDF")
	exportCmd.Flags().BoolVar(&flagExpMarkdown, "markdown", false, "Output Markdown")
	exportCmd.Flags().BoolVar(&flagExpJSON, "json", false, "Output structured JSON")
	_ = exportCmd.MarkFlagRequired("input")
}

func runExport(cmd *cobra.Command, _ []string) error {
	// --- Validate flags ---
	if err := validateFormat(flagExpPDF, flagExpMarkdown, flagExpJSON); err != nil {
		return err
	}

	renderer, err := selectRenderer(flagExpPDF, flagExpMarkdown, flagExpJSON)
	if err != nil {
		return err
	}

	ds, err := core.LoadDataset(flagExpInput, logger)
	if err != nil {
		return err
	}

	writer, err := output.New(flagExpOutput)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	if _, err := writer.CopyDir(filepath.Join(flagExpInput, content.AttachmentDir), content.AttachmentDir); err != nil {
		return fmt.Errorf("copying attachments: %w", err)
	}

	cat := core.NewCatalog(ds)
	normalizer := normalize.New(content.NewRewriter(cfg.Attachments), cat.Attachments())

	written, failed := exportArticles(cat, normalizer, renderer, writer, logger)
	if failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%d/%d articles failed\n", failed, len(ds.Articles))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d articles to %s\n", written, writer.OutputDir)
	return nil
}

// exportArticles runs every article through the pipeline. A failing
// article is logged and counted; the rest continue.
func exportArticles(
	cat *core.Catalog,
	normalizer core.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
	logger *slog.Logger,
) (written, failed int) {
	for i := range cat.Articles {
		a := &cat.Articles[i]

		data, err := exportArticle(cat, a, normalizer, renderer)
		if err != nil {
			logger.Warn("export failed", "article_id", a.ID, "title", core.ShortTitle(a.Title), "error", err)
			failed++
			continue
		}

		path, err := writer.Write(output.FilenameFor(a.ID, renderer.Extension()), data)
		if err != nil {
			logger.Warn("write failed", "article_id", a.ID, "error", err)
			failed++
			continue
		}
		logger.Debug("exported article", "article_id", a.ID, "path", path)
		written++
	}
	return written, failed
}

// exportArticle runs a single article through normalize and render.
func exportArticle(cat *core.Catalog, a *core.Article, normalizer core.Normalizer, renderer core.Renderer) ([]byte, error) {
	markdown, err := normalizer.Normalize(a.Body)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	data, err := renderer.Render(markdown, articleMeta(cat, a))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// articleMeta builds the export metadata, naming unresolved parents
// "Unknown" as the site does.
func articleMeta(cat *core.Catalog, a *core.Article) core.ArticleMeta {
	meta := core.ArticleMeta{
		ID:        a.ID,
		Title:     a.Title,
		Section:   "Unknown",
		Category:  "Unknown",
		UpdatedAt: a.UpdatedDate(),
		Path:      page.KindArticle.Path(a.ID),
	}
	section, category := cat.Parents(a)
	if section != nil {
		meta.Section = section.Name
	}
	if category != nil {
		meta.Category = category.Name
	}
	return meta
}

// validateFormat checks that exactly one output format is chosen.
func validateFormat(pdf, markdown, json bool) error {
	formatCount := 0
	for _, set := range []bool{pdf, markdown, json} {
		if set {
			formatCount++
		}
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --pdf, --markdown, or --json")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer(pdf, markdown, json bool) (core.Renderer, error) {
	switch {
	case markdown:
		return render.NewMarkdownRenderer(), nil
	case json:
		return render.NewJSONRenderer(), nil
	case pdf:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
