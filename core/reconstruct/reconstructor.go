// Package reconstruct rebuilds the category, section and article records
// from a generated help center. It is a lossy inverse of package site: only
// fields rendered into the pages can be recovered.
package reconstruct

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/gaurav-prasanna/helpsite/config"
	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/extract"
	"github.com/gaurav-prasanna/helpsite/core/page"
	"github.com/gaurav-prasanna/helpsite/crawl"
	"golang.org/x/text/cases"
)

// unknownName is used when a page has no heading.
const unknownName = "Unknown"

// Stats counts what a run read and skipped.
type Stats struct {
	Pages           int
	Skipped         int
	DroppedArticles int
	Mismatched      int
}

// Reconstructor reads pages from a Source and rebuilds a Dataset.
type Reconstructor struct {
	cfg       config.ReconstructConfig
	source    crawl.Source
	extractor *extract.Extractor
	logger    *slog.Logger

	fold  cases.Caser
	names map[string]string

	stats Stats
}

// New creates a Reconstructor. A nil logger uses slog.Default().
func New(cfg *config.Config, source crawl.Source, logger *slog.Logger) *Reconstructor {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reconstructor{
		cfg:       cfg.Reconstruct,
		source:    source,
		extractor: extract.New(),
		logger:    logger,
		fold:      cases.Fold(),
		names:     make(map[string]string, len(cfg.Reconstruct.SectionNames)),
	}
	for k, v := range cfg.Reconstruct.SectionNames {
		r.names[r.fold.String(k)] = v
	}
	return r
}

// Stats returns the counters of the last Run.
func (r *Reconstructor) Stats() Stats {
	return r.stats
}

// NormalizeSectionName maps a case variant of a known section name to its
// canonical form. Unknown names are returned unchanged.
func (r *Reconstructor) NormalizeSectionName(name string) string {
	if canonical, ok := r.names[r.fold.String(name)]; ok {
		return canonical
	}
	return name
}

// Run parses categories, then sections, then articles. Records in each
// list are ordered by id.
func (r *Reconstructor) Run(ctx context.Context) (*core.Dataset, error) {
	r.stats = Stats{}
	ds := &core.Dataset{}

	categories, err := r.categories(ctx)
	if err != nil {
		return nil, err
	}
	ds.Categories = categories

	sections, err := r.sections(ctx)
	if err != nil {
		return nil, err
	}
	ds.Sections = sections

	known := make(map[int64]bool, len(sections))
	for _, s := range sections {
		known[s.ID] = true
	}
	articles, err := r.articles(ctx, known)
	if err != nil {
		return nil, err
	}
	ds.Articles = articles

	r.logger.Info("reconstruction finished",
		"categories", len(ds.Categories),
		"sections", len(ds.Sections),
		"articles", len(ds.Articles),
		"dropped_articles", r.stats.DroppedArticles,
		"skipped_pages", r.stats.Skipped)
	return ds, nil
}

func (r *Reconstructor) categories(ctx context.Context) ([]core.Category, error) {
	var out []core.Category
	err := r.each(ctx, page.KindCategory, "", func(ref crawl.PageRef, p *extract.Page) {
		c := core.Category{ID: ref.ID, Name: nameOr(p.Title), Description: p.Description}
		out = append(out, c)
		r.logger.Debug("parsed category", "category_id", c.ID, "name", c.Name)
	})
	if errors.Is(err, crawl.ErrNotFound) {
		r.logger.Warn("no category pages, using configured defaults", "error", err)
		for _, d := range r.cfg.DefaultCategories {
			out = append(out, core.Category{ID: d.ID, Name: d.Name, Description: d.Description})
		}
		err = nil
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Reconstructor) sections(ctx context.Context) ([]core.Section, error) {
	var out []core.Section
	err := r.each(ctx, page.KindSection, page.KindCategory, func(ref crawl.PageRef, p *extract.Page) {
		s := core.Section{
			ID:          ref.ID,
			Name:        r.NormalizeSectionName(nameOr(p.Title)),
			CategoryID:  r.cfg.DefaultCategoryID,
			Description: p.Description,
		}
		if p.HasParent {
			s.CategoryID = p.ParentID
		}
		out = append(out, s)
		r.logger.Debug("parsed section", "section_id", s.ID, "name", s.Name, "category_id", s.CategoryID)
	})
	if errors.Is(err, crawl.ErrNotFound) {
		r.logger.Warn("no section pages, using configured defaults", "error", err)
		for _, d := range r.cfg.DefaultSections {
			categoryID := d.CategoryID
			if categoryID == 0 {
				categoryID = r.cfg.DefaultCategoryID
			}
			out = append(out, core.Section{ID: d.ID, Name: d.Name, CategoryID: categoryID, Description: d.Description})
		}
		err = nil
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// articles drops any article whose page has no link to a known section.
func (r *Reconstructor) articles(ctx context.Context, sections map[int64]bool) ([]core.Article, error) {
	var out []core.Article
	err := r.each(ctx, page.KindArticle, page.KindSection, func(ref crawl.PageRef, p *extract.Page) {
		if !p.HasParent || !sections[p.ParentID] {
			r.stats.DroppedArticles++
			r.logger.Debug("dropping article without section", "article_id", ref.ID, "section_id", p.ParentID)
			return
		}
		a := core.Article{
			ID:        ref.ID,
			Title:     nameOr(p.Title),
			Body:      p.Body,
			SectionID: p.ParentID,
			UpdatedAt: p.Updated,
		}
		if a.UpdatedAt == "" {
			a.UpdatedAt = r.cfg.DefaultUpdatedAt
		}
		out = append(out, a)
		r.logger.Debug("parsed article", "article_id", a.ID, "title", core.ShortTitle(a.Title))
	})
	if errors.Is(err, crawl.ErrNotFound) {
		r.logger.Warn("no article pages", "error", err)
		err = nil
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// each parses every page of a kind. Pages that cannot be read are logged
// and skipped; listing errors are returned.
func (r *Reconstructor) each(ctx context.Context, kind, parent page.Kind, fn func(crawl.PageRef, *extract.Page)) error {
	refs, err := r.source.Pages(ctx, kind)
	if err != nil {
		return fmt.Errorf("listing %s pages: %w", kind, err)
	}

	mismatched := 0
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := r.parse(ctx, ref, parent)
		if err != nil {
			r.stats.Skipped++
			r.logger.Warn("skipping page", "kind", kind, "id", ref.ID, "error", err)
			continue
		}
		r.stats.Pages++
		if p.Generator != page.ContractVersion {
			mismatched++
		}
		fn(ref, p)
	}

	if mismatched > 0 {
		r.stats.Mismatched += mismatched
		r.logger.Warn("pages were not produced by this page contract; fields may be missing",
			"kind", kind, "pages", mismatched, "expected", page.ContractVersion)
	}
	return nil
}

func (r *Reconstructor) parse(ctx context.Context, ref crawl.PageRef, parent page.Kind) (*extract.Page, error) {
	rc, err := r.source.Open(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return r.extractor.Extract(rc, parent)
}

func nameOr(s string) string {
	if s == "" {
		return unknownName
	}
	return s
}
