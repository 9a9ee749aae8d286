// Package site orchestrates the forward pipeline: it renders every record
// of a dataset into the static help center tree.
package site

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gaurav-prasanna/helpsite/config"
	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/content"
	"github.com/gaurav-prasanna/helpsite/core/output"
	"github.com/gaurav-prasanna/helpsite/core/page"
	"github.com/gaurav-prasanna/helpsite/core/search"
)

//go:embed assets/style.css assets/main.js
var assets embed.FS

// assetFiles maps embedded assets to their site-relative paths.
var assetFiles = map[string]string{
	"assets/style.css": "css/style.css",
	"assets/main.js":   "js/main.js",
}

// Options configures a Generator.
type Options struct {
	// InputDir is the export directory; its attachments/ subdirectory is
	// copied into the site.
	InputDir string
	// OutputDir is the site root.
	OutputDir string
	// Fetcher downloads attachments. Nil generates offline.
	Fetcher core.Fetcher
	Logger  *slog.Logger
}

// Result summarizes a generation run.
type Result struct {
	Pages       int
	Copied      int
	Downloaded  int
	SearchIndex string
}

// Generator renders a dataset into a site tree.
type Generator struct {
	cfg       *config.Config
	opts      Options
	renderer  *page.Renderer
	writer    *output.Writer
	extractor *content.AttachmentExtractor
	logger    *slog.Logger
}

// New creates a Generator and bootstraps the output directory layout.
func New(cfg *config.Config, opts Options) (*Generator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	writer, err := output.NewSite(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output writer: %w", err)
	}

	return &Generator{
		cfg:      cfg,
		opts:     opts,
		renderer: page.New(cfg),
		writer:   writer,
		extractor: content.NewAttachmentExtractor(
			cfg.Attachments.URLPrefix,
			writer.Path(content.AttachmentDir),
			opts.Fetcher,
			logger,
		),
		logger: logger,
	}, nil
}

// Generate writes the complete site for ds. Pages are produced in a fixed
// order: assets, home, categories, sections, articles, then the index
// pages. Attachments are copied and downloaded before any article page is
// written. Downloaded attachments are recorded on ds.Articles.
func (g *Generator) Generate(ctx context.Context, ds *core.Dataset) (*Result, error) {
	res := &Result{}
	cat := core.NewCatalog(ds)

	if err := g.writeAssets(res); err != nil {
		return nil, err
	}

	if err := g.writePage(res, page.HomeFile, func() ([]byte, error) { return g.renderer.Home(cat) }); err != nil {
		return nil, err
	}

	for i := range ds.Categories {
		c := &ds.Categories[i]
		if err := g.writePage(res, page.KindCategory.Path(c.ID), func() ([]byte, error) {
			return g.renderer.Category(cat, c)
		}); err != nil {
			return nil, err
		}
	}

	for i := range ds.Sections {
		s := &ds.Sections[i]
		if err := g.writePage(res, page.KindSection.Path(s.ID), func() ([]byte, error) {
			return g.renderer.Section(cat, s)
		}); err != nil {
			return nil, err
		}
	}

	if err := g.collectAttachments(ctx, ds, res); err != nil {
		return nil, err
	}
	attachments := cat.Attachments()

	for i := range ds.Articles {
		a := &ds.Articles[i]
		if err := g.writePage(res, page.KindArticle.Path(a.ID), func() ([]byte, error) {
			return g.renderer.Article(cat, a, attachments)
		}); err != nil {
			return nil, err
		}
		g.logger.Debug("wrote article", "article_id", a.ID, "title", core.ShortTitle(a.Title))
	}

	indexes := []struct {
		name   string
		render func(*core.Catalog) ([]byte, error)
	}{
		{page.TopicIndexFile, g.renderer.TopicIndex},
		{page.ArticleIndexFile, g.renderer.ArticleIndex},
		{page.VideoIndexFile, g.renderer.VideoIndex},
	}
	for _, idx := range indexes {
		if err := g.writePage(res, idx.name, func() ([]byte, error) { return idx.render(cat) }); err != nil {
			return nil, err
		}
	}

	res.SearchIndex = g.writer.Path(search.IndexFile)
	if err := search.WriteJSON(res.SearchIndex, search.Build(ds, g.cfg.Search.ExcerptLength)); err != nil {
		return nil, err
	}

	g.logger.Info("site generated",
		"pages", res.Pages,
		"attachments_copied", res.Copied,
		"attachments_downloaded", res.Downloaded,
		"path", g.writer.OutputDir)
	return res, nil
}

func (g *Generator) writeAssets(res *Result) error {
	for src, dst := range assetFiles {
		data, err := assets.ReadFile(src)
		if err != nil {
			return fmt.Errorf("reading embedded asset %s: %w", src, err)
		}
		if _, err := g.writer.Write(dst, data); err != nil {
			return err
		}
	}
	return nil
}

// collectAttachments copies the export's attachment files into the site
// and then extracts every article's remote attachments.
func (g *Generator) collectAttachments(ctx context.Context, ds *core.Dataset, res *Result) error {
	if g.opts.InputDir != "" {
		n, err := g.writer.CopyDir(filepath.Join(g.opts.InputDir, content.AttachmentDir), content.AttachmentDir)
		if err != nil {
			return fmt.Errorf("copying attachments: %w", err)
		}
		res.Copied = n
	}

	for i := range ds.Articles {
		a := &ds.Articles[i]
		if a.Body == "" {
			continue
		}
		known := make(map[string]bool, len(a.DownloadedAttachments))
		for _, att := range a.DownloadedAttachments {
			known[att.AttachmentID] = true
		}

		found := g.extractor.Extract(ctx, a.Body, a.ID, known)
		a.DownloadedAttachments = append(a.DownloadedAttachments, found...)
		res.Downloaded += len(found)
	}
	return nil
}

func (g *Generator) writePage(res *Result, rel string, render func() ([]byte, error)) error {
	data, err := render()
	if err != nil {
		return fmt.Errorf("rendering %s: %w", rel, err)
	}
	path, err := g.writer.Write(rel, data)
	if err != nil {
		return err
	}
	res.Pages++
	g.logger.Debug("wrote page", "path", path)
	return nil
}
