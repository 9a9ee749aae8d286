package core

import (
	"context"
	"mime"
)

// FetchResult holds a fetched resource and its response metadata.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsHTML reports whether the response is an HTML document. A missing
// Content-Type is treated as HTML.
func (r *FetchResult) IsHTML() bool {
	if r.ContentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// HTML returns the body as a string.
func (r *FetchResult) HTML() string {
	return string(r.Body)
}

// ArticleMeta is the metadata attached to an exported article.
type ArticleMeta struct {
	ID        int64  `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Section   string `json:"section" yaml:"section"`
	Category  string `json:"category" yaml:"category"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
	Path      string `json:"path" yaml:"path"`
}

// Heading represents a single heading found in exported content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in exported content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// ExportContent holds the text forms of an exported article.
type ExportContent struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown"`
}

// ExportStructure holds structural metadata parsed from the content.
type ExportStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	CodeBlocks int       `json:"code_blocks"`
	Tables     int       `json:"tables"`
	Lists      int       `json:"lists"`
}

// ArticleJSON is the complete JSON export of a single article.
type ArticleJSON struct {
	Metadata  ArticleMeta     `json:"metadata"`
	Content   ExportContent   `json:"content"`
	Structure ExportStructure `json:"structure"`
}

// Fetcher retrieves a remote resource.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Normalizer converts an article body into Markdown (the export format).
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts Markdown (and metadata) into a final export format.
type Renderer interface {
	Render(markdown string, meta ArticleMeta) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
