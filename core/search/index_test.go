package search

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *core.Dataset {
	return &core.Dataset{
		Sections: []core.Section{{ID: 10, Name: "Study Setup", CategoryID: 1}},
		Articles: []core.Article{
			{ID: 100, Title: "Create A Study", Body: "<p>Hello <b>World</b></p>", SectionID: 10, UpdatedAt: "2025-01-01T00:00:00Z"},
			{ID: 200, Title: "Lost", Body: "<p>" + strings.Repeat("x", 600) + "</p>", SectionID: 99, UpdatedAt: "2025-02-02"},
		},
	}
}

func TestBuild(t *testing.T) {
	entries := Build(sampleDataset(), 500)
	require.Len(t, entries, 2)

	e := entries[0]
	assert.Equal(t, int64(100), e.ID)
	assert.Equal(t, "Study Setup", e.Section)
	assert.Equal(t, int64(10), e.SectionID)
	assert.Equal(t, "articles/article_100.html", e.URL)
	assert.Equal(t, "Hello World", e.Content)
	assert.Equal(t, "2025-01-01T00:00:00Z", e.Updated)
	assert.Equal(t, "create a study study setup hello world", e.SearchText)

	lost := entries[1]
	assert.Equal(t, "Unknown", lost.Section)
	assert.Len(t, lost.Content, 500)
	assert.True(t, strings.HasPrefix(lost.SearchText, "lost  x"), "unknown section contributes an empty name")
}

func TestWriteJSONUsesClientFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", IndexFile)
	require.NoError(t, WriteJSON(path, Build(sampleDataset(), 500)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)
	assert.Contains(t, decoded[0], "searchText")
	assert.Contains(t, decoded[0], "updated")
}

func TestWriteSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "index.db")
	entries := Build(sampleDataset(), 500)
	require.NoError(t, WriteSQLite(context.Background(), dbPath, entries))
	// Rewriting replaces the previous contents.
	require.NoError(t, WriteSQLite(context.Background(), dbPath, entries[:1]))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM search_entries").Scan(&count))
	assert.Equal(t, 1, count)

	var title, section string
	require.NoError(t, db.QueryRow("SELECT title, section FROM search_entries WHERE id = ?", 100).Scan(&title, &section))
	assert.Equal(t, "Create A Study", title)
	assert.Equal(t, "Study Setup", section)
}
