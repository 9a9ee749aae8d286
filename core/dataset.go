package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Dataset file names inside an export directory.
const (
	CategoriesFile = "categories.json"
	SectionsFile   = "sections.json"
	ArticlesFile   = "articles.json"
	ManifestFile   = "manifest.json"
)

// LoadDataset reads the four export files from dir. A missing file is
// logged and leaves that part of the dataset empty; malformed JSON is an error.
func LoadDataset(dir string, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ds := &Dataset{}
	files := []struct {
		name string
		dst  any
	}{
		{CategoriesFile, &ds.Categories},
		{SectionsFile, &ds.Sections},
		{ArticlesFile, &ds.Articles},
		{ManifestFile, &ds.Manifest},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("dataset file not found, skipping", "path", path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := json.Unmarshal(data, f.dst); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	logger.Info("loaded dataset",
		"categories", len(ds.Categories),
		"sections", len(ds.Sections),
		"articles", len(ds.Articles))
	return ds, nil
}

// SaveDataset writes the dataset as the four export files, creating dir if
// needed. The manifest is regenerated from the record counts.
func SaveDataset(dir string, ds *Dataset, now time.Time) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating dataset directory: %w", err)
	}

	ds.Manifest = Manifest{
		ExportDate:      now.Format("2006-01-02T15:04:05.000000"),
		CategoriesCount: len(ds.Categories),
		SectionsCount:   len(ds.Sections),
		ArticlesCount:   len(ds.Articles),
	}

	files := []struct {
		name string
		src  any
	}{
		{CategoriesFile, nonNil(ds.Categories)},
		{SectionsFile, nonNil(ds.Sections)},
		{ArticlesFile, nonNil(ds.Articles)},
		{ManifestFile, ds.Manifest},
	}
	for _, f := range files {
		data, err := MarshalJSON(f.src)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing file %s: %w", path, err)
		}
	}
	return nil
}

// MarshalJSON encodes v indented by two spaces without escaping HTML
// characters, so article bodies stay readable in the export files.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// nonNil keeps empty record lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
