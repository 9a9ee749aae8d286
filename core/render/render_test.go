package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var meta = core.ArticleMeta{
	ID:        100,
	Title:     "Creating your study",
	Section:   "Study Setup",
	Category:  "General",
	UpdatedAt: "2025-01-01",
	Path:      "articles/article_100.html",
}

const sample = "## Steps\n\n1. Open the [dashboard](https://app.test/d)\n2. Click **New**\n\n![shot](attachments/1.png)\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n```\ncode\n```\n"

func TestMarkdownRendererFrontMatter(t *testing.T) {
	out, err := NewMarkdownRenderer().Render(sample, meta)
	require.NoError(t, err)

	parts := strings.SplitN(string(out), "---\n", 3)
	require.Len(t, parts, 3)
	var got core.ArticleMeta
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &got))
	assert.Equal(t, meta, got)

	assert.True(t, strings.HasPrefix(parts[2], "\n# Creating your study\n"))
	assert.Contains(t, parts[2], sample)
	assert.Equal(t, ".md", NewMarkdownRenderer().Extension())
}

func TestJSONRendererStructure(t *testing.T) {
	out, err := NewJSONRenderer().Render(sample, meta)
	require.NoError(t, err)

	var doc core.ArticleJSON
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, meta, doc.Metadata)
	assert.Equal(t, sample, doc.Content.Markdown)
	assert.Equal(t, []core.Heading{{Level: 2, Text: "Steps"}}, doc.Structure.Headings)
	assert.Equal(t, []core.Link{{Text: "dashboard", Href: "https://app.test/d"}}, doc.Structure.Links)
	assert.Equal(t, 1, doc.Structure.CodeBlocks)
	assert.Equal(t, 1, doc.Structure.Tables)
	assert.Equal(t, 2, doc.Structure.Lists)

	assert.Contains(t, doc.Content.Text, "Open the dashboard")
	assert.Contains(t, doc.Content.Text, "Click New")
	assert.NotContains(t, doc.Content.Text, "## ")
}

func TestPDFRendererProducesDocument(t *testing.T) {
	out, err := NewPDFRenderer().Render(sample+"\n- café → next\n", meta)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, ".pdf", NewPDFRenderer().Extension())
}

func TestCleanInlineMarkdown(t *testing.T) {
	assert.Equal(t, "Click New now", cleanInlineMarkdown("Click **New** now"))
	assert.Equal(t, "see docs", cleanInlineMarkdown("see [docs](https://x.test)"))
	assert.Equal(t, "", cleanInlineMarkdown("![img](a.png)"))
}
