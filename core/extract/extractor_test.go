package extract

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/helpsite/core/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sectionPage = `<!DOCTYPE html>
<html><head><meta name="generator" content="helpsite page/v1"></head>
<body>
<header class="header"><h1>Site Title</h1></header>
<main class="main">
  <aside class="sidebar">
    <ul class="sidebar-articles"><li><a href="../articles/article_100.html">A</a></li></ul>
    <ul class="sidebar-parent"><li><a href="../categories/category_1.html">← Cat</a></li></ul>
  </aside>
  <div class="content">
    <h1> Study Setup </h1>
    <p class="description">How to set up</p>
  </div>
</main>
</body></html>`

const articlePage = `<!DOCTYPE html>
<html><head><meta name="generator" content="helpsite page/v1"></head>
<body>
<aside class="sidebar"><ul>
  <li><a href="../index.html">← Back to Home</a></li>
  <li><a href="../categories/category_1.html">← Cat</a></li>
  <li><a href="../sections/section_10.html">← Sec</a></li>
</ul></aside>
<div class="content">
  <h1>Hello</h1>
  <div class="article-meta">Cat → Sec | Updated: 2025-01-01</div>
  <div class="article-content">
<p>Body <b>bold</b></p>
  </div>
</div>
</body></html>`

func TestExtractSectionPage(t *testing.T) {
	p, err := New().Extract(strings.NewReader(sectionPage), page.KindCategory)
	require.NoError(t, err)

	assert.Equal(t, page.ContractVersion, p.Generator)
	assert.Equal(t, "Study Setup", p.Title)
	assert.Equal(t, "How to set up", p.Description)
	assert.True(t, p.HasParent)
	assert.Equal(t, int64(1), p.ParentID)
	assert.False(t, p.HasBody)
	assert.Empty(t, p.Updated)
}

func TestExtractArticlePage(t *testing.T) {
	p, err := New().Extract(strings.NewReader(articlePage), page.KindSection)
	require.NoError(t, err)

	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "2025-01-01", p.Updated)
	assert.True(t, p.HasParent)
	assert.Equal(t, int64(10), p.ParentID)
	assert.True(t, p.HasBody)
	assert.Equal(t, "<p>Body <b>bold</b></p>", p.Body)
}

func TestExtractWithoutParentKind(t *testing.T) {
	p, err := New().Extract(strings.NewReader(sectionPage), "")
	require.NoError(t, err)
	assert.False(t, p.HasParent)
}

func TestExtractMissingAnchors(t *testing.T) {
	p, err := New().Extract(strings.NewReader(`<html><body><h1>Only</h1></body></html>`), page.KindSection)
	require.NoError(t, err)

	assert.Equal(t, "Only", p.Title)
	assert.Empty(t, p.Generator)
	assert.False(t, p.HasParent)
	assert.False(t, p.HasBody)
}

func TestExtractNoHeading(t *testing.T) {
	p, err := New().Extract(strings.NewReader(`<html><body><p>nothing</p></body></html>`), page.KindCategory)
	require.NoError(t, err)
	assert.Empty(t, p.Title)
	assert.Empty(t, p.Description)
}

func TestExtractUnknownParentKind(t *testing.T) {
	p, err := New().Extract(strings.NewReader(articlePage), page.Kind("video"))
	require.NoError(t, err)
	assert.False(t, p.HasParent)
	assert.Equal(t, "Hello", p.Title)
}
