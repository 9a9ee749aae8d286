// Package crawl locates the generated pages a reconstruction reads, either
// in a local site directory or on a published site.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/gaurav-prasanna/helpsite/core/page"
)

// ErrNotFound reports that a source has no pages of the requested kind.
var ErrNotFound = errors.New("no pages found")

// PageRef identifies one record page in a source.
type PageRef struct {
	Kind     page.Kind
	ID       int64
	Location string
}

// Source yields the record pages of a generated site.
type Source interface {
	// Pages lists the pages of a kind ordered by id. It returns an error
	// wrapping ErrNotFound when the kind is absent from the source.
	Pages(ctx context.Context, kind page.Kind) ([]PageRef, error)
	// Open returns the page's HTML.
	Open(ctx context.Context, ref PageRef) (io.ReadCloser, error)
}

// DirSource reads pages from a site directory on disk.
type DirSource struct {
	Root string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Root: dir}
}

// Pages lists <root>/<kind>s/<kind>_<id>.html files. Only a missing
// directory is ErrNotFound; an existing directory without pages yields an
// empty list.
func (d *DirSource) Pages(_ context.Context, kind page.Kind) ([]PageRef, error) {
	dir := filepath.Join(d.Root, kind.Dir())
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var refs []PageRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ref, ok := Classify(kind.Dir() + "/" + e.Name())
		if !ok || ref.Kind != kind {
			continue
		}
		ref.Location = filepath.Join(dir, e.Name())
		refs = append(refs, ref)
	}
	sortRefs(refs)
	return refs, nil
}

// Open opens the page file.
func (d *DirSource) Open(_ context.Context, ref PageRef) (io.ReadCloser, error) {
	f, err := os.Open(ref.Location)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	return f, nil
}

func sortRefs(refs []PageRef) {
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].ID < refs[j].ID
	})
}
