package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	require.NoError(t, rootCmd.Execute(), errOut.String())
	return out.String()
}

func writeExport(t *testing.T, dir string) {
	t.Helper()
	ds := &core.Dataset{
		Categories: []core.Category{{ID: 1, Name: "General"}},
		Sections:   []core.Section{{ID: 10, CategoryID: 1, Name: "Launch"}},
		Articles: []core.Article{
			{ID: 100, SectionID: 10, Title: "Previewing your study", Body: "<h2>Preview</h2><p>Open the study.</p>", UpdatedAt: "2025-01-01T09:00:00Z"},
			{ID: 101, SectionID: 10, Title: "Recruiting", Body: "<p>Invite people.</p>", UpdatedAt: "2025-02-01"},
		},
	}
	require.NoError(t, core.SaveDataset(dir, ds, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPipelineCommands(t *testing.T) {
	root := t.TempDir()
	export := filepath.Join(root, "export")
	siteDir := filepath.Join(root, "site")
	rebuilt := filepath.Join(root, "rebuilt")
	writeExport(t, export)

	out := run(t, "generate", "--input", export, "--output", siteDir, "--offline")
	assert.Contains(t, out, "Generated")
	assert.FileExists(t, filepath.Join(siteDir, "articles", "article_101.html"))

	out = run(t, "reconstruct", "--input", siteDir, "--output", rebuilt)
	assert.Contains(t, out, "1 categories, 1 sections, 2 articles")

	ds, err := core.LoadDataset(rebuilt, nil)
	require.NoError(t, err)
	require.Len(t, ds.Articles, 2)
	assert.Equal(t, "Previewing your study", ds.Articles[0].Title)
	assert.Equal(t, "2025-01-01", ds.Articles[0].UpdatedAt)
	assert.Equal(t, 2, ds.Manifest.ArticlesCount)

	indexFile := filepath.Join(root, "index.json")
	dbFile := filepath.Join(root, "index.db")
	run(t, "index", "--input", rebuilt, "--output", indexFile, "--sqlite", dbFile)
	data, err := os.ReadFile(indexFile)
	require.NoError(t, err)
	var entries []search.Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Launch", entries[0].Section)
	assert.FileExists(t, dbFile)

	mdDir := filepath.Join(root, "md")
	out = run(t, "export", "--input", rebuilt, "--output", mdDir, "--markdown")
	assert.Contains(t, out, "Exported 2 articles")
	md, err := os.ReadFile(filepath.Join(mdDir, "article_100.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Previewing your study")
	assert.Contains(t, string(md), "## Preview")
	assert.Contains(t, string(md), "section: Launch")
}

func TestValidateFormat(t *testing.T) {
	require.Error(t, validateFormat(false, false, false))
	require.Error(t, validateFormat(true, true, false))
	require.NoError(t, validateFormat(false, false, true))
}

func TestSelectRenderer(t *testing.T) {
	for _, tt := range []struct {
		pdf, md, js bool
		ext         string
	}{
		{md: true, ext: ".md"},
		{js: true, ext: ".json"},
		{pdf: true, ext: ".pdf"},
	} {
		r, err := selectRenderer(tt.pdf, tt.md, tt.js)
		require.NoError(t, err)
		assert.Equal(t, tt.ext, r.Extension())
	}
	_, err := selectRenderer(false, false, false)
	require.Error(t, err)
}

func TestArticleMetaUnknownParents(t *testing.T) {
	cat := core.NewCatalog(&core.Dataset{Articles: []core.Article{{ID: 5, Title: "Lonely", UpdatedAt: "2025-04-04T00:00:00Z"}}})
	meta := articleMeta(cat, &cat.Articles[0])
	assert.Equal(t, "Unknown", meta.Section)
	assert.Equal(t, "Unknown", meta.Category)
	assert.Equal(t, "2025-04-04", meta.UpdatedAt)
	assert.Equal(t, "articles/article_5.html", meta.Path)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&buf, "warn", "json")
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", "article_id", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"article_id":1`)

	_, err = newLogger(&buf, "loud", "text")
	require.Error(t, err)
	_, err = newLogger(&buf, "info", "xml")
	require.Error(t, err)
}
