// Package render provides the export renderers for help center articles.
// This file implements the Markdown renderer: YAML front matter followed by
// the article's Markdown.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/helpsite/core"
	"gopkg.in/yaml.v3"
)

// MarkdownRenderer writes the article Markdown under a front matter block
// carrying the article metadata.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns front matter, a title heading and the Markdown body.
func (r *MarkdownRenderer) Render(markdown string, meta core.ArticleMeta) ([]byte, error) {
	front, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(front)
	buf.WriteString("---\n\n")
	fmt.Fprintf(&buf, "# %s\n", meta.Title)
	if markdown != "" {
		buf.WriteString("\n")
		buf.WriteString(markdown)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
