// Package render: JSON renderer.
// Builds the structured JSON export from Markdown and article metadata.
// Parses the Markdown to extract structural information (headings, links,
// code blocks, tables, lists).
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/helpsite/core"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts Markdown and metadata into an ArticleJSON document.
func (r *JSONRenderer) Render(markdown string, meta core.ArticleMeta) ([]byte, error) {
	doc := core.ArticleJSON{
		Metadata: meta,
		Content: core.ExportContent{
			Text:     stripMarkdown(markdown),
			Markdown: markdown,
		},
		Structure: core.ExportStructure{
			Headings:   extractHeadings(markdown),
			Links:      extractLinks(markdown),
			CodeBlocks: countCodeBlocks(markdown),
			Tables:     countTables(markdown),
			Lists:      countLists(markdown),
		},
	}

	data, err := core.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// linkRegex matches Markdown links [text](url); image links are skipped by
// the caller.
var linkRegex = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)]+)\)`)

func extractLinks(md string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		if m[1] == "!" {
			continue
		}
		links = append(links, core.Link{
			Text: m[2],
			Href: m[3],
		})
	}
	return links
}

// countCodeBlocks counts fenced code blocks (``` delimited).
func countCodeBlocks(md string) int {
	return strings.Count(md, "```") / 2
}

// countTables counts Markdown tables by looking for separator rows (|---|).
var tableRowRegex = regexp.MustCompile(`(?m)^\|[-:| ]+\|$`)

func countTables(md string) int {
	return len(tableRowRegex.FindAllString(md, -1))
}

// countLists counts list items (lines starting with - or * or 1.).
var listItemRegex = regexp.MustCompile(`(?m)^[ \t]*(?:[-*]|\d+\.)\s`)

func countLists(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

var (
	emphasisRegex   = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	blankRunRegex   = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes common Markdown formatting to produce plain text.
func stripMarkdown(md string) string {
	text := headingRegex.ReplaceAllString(md, "$2")
	text = emphasisRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllString(text, "$2")
	text = strings.ReplaceAll(text, "```", "")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = blankRunRegex.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
