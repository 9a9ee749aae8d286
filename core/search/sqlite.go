package search

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
DROP TABLE IF EXISTS search_entries;
CREATE TABLE search_entries (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	section TEXT NOT NULL,
	section_id INTEGER NOT NULL,
	url TEXT NOT NULL,
	content TEXT NOT NULL,
	updated TEXT NOT NULL,
	search_text TEXT NOT NULL
);
CREATE INDEX idx_search_entries_section ON search_entries(section_id);
`

// WriteSQLite stores entries in the search_entries table of the SQLite
// database at dbPath, replacing any previous contents.
func WriteSQLite(ctx context.Context, dbPath string, entries []Entry) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initialize schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO search_entries (id, title, section, section_id, url, content, updated, search_text) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Title, e.Section, e.SectionID, e.URL, e.Content, e.Updated, e.SearchText); err != nil {
			return fmt.Errorf("insert entry %d: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
