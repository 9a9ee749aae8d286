package reconstruct

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/helpsite/config"
	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/site"
	"github.com/gaurav-prasanna/helpsite/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, root, rel, html string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))
}

func TestNormalizeSectionName(t *testing.T) {
	r := New(config.Default(), crawl.NewDirSource(t.TempDir()), nil)

	assert.Equal(t, "Study Setup", r.NormalizeSectionName("study setup"))
	assert.Equal(t, "Study Setup", r.NormalizeSectionName("STUDY SETUP"))
	assert.Equal(t, "Results and Reports", r.NormalizeSectionName("Results And Reports"))
	assert.Equal(t, "Foo Bar", r.NormalizeSectionName("Foo Bar"))
}

func TestRoundTrip(t *testing.T) {
	cfg := config.Default()
	in := &core.Dataset{
		Categories: []core.Category{
			{ID: 1, Name: "C", Description: "Category one"},
			{ID: 2, Name: "Second"},
		},
		Sections: []core.Section{
			{ID: 10, Name: "S", CategoryID: 1, Description: "Section ten"},
			{ID: 11, Name: "Study Setup", CategoryID: 2},
		},
		Articles: []core.Article{
			{ID: 102, Title: "Later", Body: "<p>Second</p>", SectionID: 10, UpdatedAt: "2025-02-02T08:00:00Z"},
			{ID: 100, Title: "T", Body: "<p>Body</p>", SectionID: 10, UpdatedAt: "2025-01-01"},
			{ID: 101, Title: "Setup & more", Body: "<p>Setup</p>", SectionID: 11, UpdatedAt: "2025-03-03"},
		},
	}

	dir := t.TempDir()
	gen, err := site.New(cfg, site.Options{OutputDir: dir})
	require.NoError(t, err)
	_, err = gen.Generate(context.Background(), in)
	require.NoError(t, err)

	r := New(cfg, crawl.NewDirSource(dir), nil)
	out, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Categories, 2)
	assert.Equal(t, core.Category{ID: 1, Name: "C", Description: "Category one"}, out.Categories[0])
	assert.Equal(t, "Second", out.Categories[1].Name)

	require.Len(t, out.Sections, 2)
	assert.Equal(t, core.Section{ID: 10, Name: "S", CategoryID: 1, Description: "Section ten"}, out.Sections[0])
	assert.Equal(t, core.Section{ID: 11, Name: "Study Setup", CategoryID: 2}, out.Sections[1])

	require.Len(t, out.Articles, 3)
	want := map[int64]core.Article{}
	for _, a := range in.Articles {
		want[a.ID] = a
	}
	for i, a := range out.Articles {
		if i > 0 {
			assert.Less(t, out.Articles[i-1].ID, a.ID)
		}
		orig := want[a.ID]
		assert.Equal(t, orig.Title, a.Title)
		assert.Equal(t, orig.SectionID, a.SectionID)
		assert.Equal(t, orig.UpdatedDate(), a.UpdatedAt)
		assert.Equal(t, orig.Body, a.Body)
	}

	assert.Zero(t, r.Stats().DroppedArticles)
	assert.Zero(t, r.Stats().Mismatched)
}

func TestDropsArticlesWithoutKnownSection(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "sections/section_10.html", `<div class="content"><h1>launch</h1></div>`)
	writePage(t, root, "articles/article_1.html",
		`<aside class="sidebar"><a href="../sections/section_10.html">s</a></aside><div class="content"><h1>Kept</h1></div>`)
	writePage(t, root, "articles/article_2.html",
		`<aside class="sidebar"><a href="../sections/section_99.html">s</a></aside><div class="content"><h1>Unknown section</h1></div>`)
	writePage(t, root, "articles/article_3.html",
		`<div class="content"><h1>No sidebar</h1></div>`)

	cfg := config.Default()
	r := New(cfg, crawl.NewDirSource(root), nil)
	ds, err := r.Run(context.Background())
	require.NoError(t, err)

	// Categories are absent, so the configured defaults stand in.
	require.Len(t, ds.Categories, 1)
	assert.Equal(t, config.DefaultCategoryID, ds.Categories[0].ID)

	require.Len(t, ds.Sections, 1)
	assert.Equal(t, "Launch", ds.Sections[0].Name)
	assert.Equal(t, config.DefaultCategoryID, ds.Sections[0].CategoryID)

	require.Len(t, ds.Articles, 1)
	assert.Equal(t, int64(1), ds.Articles[0].ID)
	assert.Equal(t, cfg.Reconstruct.DefaultUpdatedAt, ds.Articles[0].UpdatedAt)
	assert.Equal(t, 2, r.Stats().DroppedArticles)
	assert.Equal(t, 4, r.Stats().Mismatched)
}

func TestEmptySiteUsesDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Reconstruct.DefaultSections = []config.NamedRecord{{ID: 5, Name: "General"}}

	ds, err := New(cfg, crawl.NewDirSource(t.TempDir()), nil).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Categories, 1)
	assert.Equal(t, "General", ds.Categories[0].Name)
	require.Len(t, ds.Sections, 1)
	assert.Equal(t, cfg.Reconstruct.DefaultCategoryID, ds.Sections[0].CategoryID)
	assert.Empty(t, ds.Articles)
}

func TestMissingHeadingBecomesUnknown(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "categories/category_7.html", `<div class="content"><p>no heading</p></div>`)

	ds, err := New(config.Default(), crawl.NewDirSource(root), nil).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Categories, 1)
	assert.Equal(t, "Unknown", ds.Categories[0].Name)
}

func TestEmptyKindDirectoryYieldsNoRecords(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "categories"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sections"), 0o755))

	ds, err := New(config.Default(), crawl.NewDirSource(root), nil).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ds.Categories)
	assert.Empty(t, ds.Sections)
	assert.Empty(t, ds.Articles)
}

func TestConfiguredNamesReplaceBuiltins(t *testing.T) {
	cfg := config.Default()
	cfg.Reconstruct.SectionNames = map[string]string{"foo bar": "Foo Bar"}
	r := New(cfg, crawl.NewDirSource(t.TempDir()), nil)

	assert.Equal(t, "Foo Bar", r.NormalizeSectionName("FOO BAR"))
	assert.Equal(t, "launch", r.NormalizeSectionName("launch"))
}
