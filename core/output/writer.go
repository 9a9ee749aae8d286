// Package output handles the generated site tree on disk: creating the
// directory layout, writing pages, and copying attachment files.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SiteDirs are the subdirectories created under the site root before any
// page is written.
var SiteDirs = []string{"css", "js", "attachments", "categories", "sections", "articles", "videos"}

// Writer writes generated files under a root directory.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// NewSite creates a Writer and the full site directory layout under outputDir.
func NewSite(outputDir string) (*Writer, error) {
	w, err := New(outputDir)
	if err != nil {
		return nil, err
	}
	for _, dir := range SiteDirs {
		if err := os.MkdirAll(filepath.Join(w.OutputDir, dir), 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return w, nil
}

// Path returns the absolute location of a site-relative path.
func (w *Writer) Path(rel string) string {
	return filepath.Join(w.OutputDir, filepath.FromSlash(rel))
}

// Write stores data at the site-relative path rel, creating parent
// directories as needed, and returns the written path.
func (w *Writer) Write(rel string, data []byte) (string, error) {
	if strings.HasPrefix(filepath.Clean(filepath.FromSlash(rel)), "..") {
		return "", fmt.Errorf("path %s escapes the output directory", rel)
	}
	fullPath := w.Path(rel)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// CopyDir copies the regular files directly inside src into the
// site-relative directory rel. A missing src copies nothing.
func (w *Writer) CopyDir(src, rel string) (int, error) {
	entries, err := os.ReadDir(src)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading directory %s: %w", src, err)
	}

	if err := os.MkdirAll(w.Path(rel), 0755); err != nil {
		return 0, fmt.Errorf("creating directory %s: %w", rel, err)
	}

	copied := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := copyFile(filepath.Join(src, e.Name()), w.Path(rel+"/"+e.Name())); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}

// FilenameFor returns the flat export file name for an article id.
// Example: 100, ".md" → article_100.md
func FilenameFor(id int64, ext string) string {
	return fmt.Sprintf("article_%d%s", id, ext)
}
