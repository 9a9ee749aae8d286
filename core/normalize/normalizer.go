// Package normalize implements the Normalizer interface.
// It converts article bodies into Markdown, which serves as the
// canonical intermediate format for all export renderers.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/content"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
// When built with a Rewriter, remote attachment URLs are first pointed at
// the local attachment files.
type MarkdownNormalizer struct {
	rewriter    *content.Rewriter
	attachments map[string]core.Attachment
}

// New creates a MarkdownNormalizer. rewriter may be nil.
func New(rewriter *content.Rewriter, attachments map[string]core.Attachment) *MarkdownNormalizer {
	return &MarkdownNormalizer{rewriter: rewriter, attachments: attachments}
}

// Normalize converts an article body into Markdown ending in one newline.
// An empty body yields an empty string.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	if n.rewriter != nil {
		html = n.rewriter.Rewrite(html, n.attachments)
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown) + "\n", nil
}
