// Package search builds the flattened article index consumed by the
// site's client-side search box.
package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/content"
	"github.com/gaurav-prasanna/helpsite/core/page"
)

// IndexFile is the index file name inside a generated site.
const IndexFile = "search-index.json"

// Entry is one article in the search index.
type Entry struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Section    string `json:"section"`
	SectionID  int64  `json:"section_id"`
	URL        string `json:"url"`
	Content    string `json:"content"`
	Updated    string `json:"updated"`
	SearchText string `json:"searchText"`
}

// Build flattens every article of ds into an index entry, in dataset
// order. Content holds the first excerptLen characters of the plain-text
// body; SearchText is the lower-cased title, section name and full body.
func Build(ds *core.Dataset, excerptLen int) []Entry {
	sectionNames := make(map[int64]string, len(ds.Sections))
	for _, s := range ds.Sections {
		sectionNames[s.ID] = s.Name
	}

	entries := make([]Entry, 0, len(ds.Articles))
	for _, a := range ds.Articles {
		text := content.StripHTML(a.Body)
		name, ok := sectionNames[a.SectionID]
		section := name
		if !ok {
			section = "Unknown"
		}

		entries = append(entries, Entry{
			ID:         a.ID,
			Title:      a.Title,
			Section:    section,
			SectionID:  a.SectionID,
			URL:        page.KindArticle.Path(a.ID),
			Content:    content.Excerpt(text, excerptLen),
			Updated:    a.UpdatedAt,
			SearchText: strings.ToLower(a.Title + " " + name + " " + text),
		})
	}
	return entries
}

// WriteJSON writes entries to path as an indented JSON array.
func WriteJSON(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := core.MarshalJSON(entries)
	if err != nil {
		return fmt.Errorf("encoding search index: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
