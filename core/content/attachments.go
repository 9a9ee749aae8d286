package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/helpsite/core"
)

var forbiddenFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// errOffline reports that an attachment is not on disk and no fetcher is set.
var errOffline = errors.New("downloads disabled")

// AttachmentExtractor finds remote attachments in article bodies and stores
// them under Dir.
type AttachmentExtractor struct {
	Prefix  string
	Dir     string
	Fetcher core.Fetcher // nil disables downloads
	Logger  *slog.Logger

	pattern *regexp.Regexp
}

// NewAttachmentExtractor creates an extractor for URLs under prefix that
// stores files in dir. A nil fetcher only records files already in dir.
func NewAttachmentExtractor(prefix, dir string, fetcher core.Fetcher, logger *slog.Logger) *AttachmentExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttachmentExtractor{
		Prefix:  prefix,
		Dir:     dir,
		Fetcher: fetcher,
		Logger:  logger,
		pattern: AttachmentPattern(prefix),
	}
}

// Extract scans body for attachment URLs and returns a record for each
// attachment newly stored for the article. Ids in known (already recorded
// for the article) and repeated ids are skipped. A failed download is
// logged and omitted from the result.
func (e *AttachmentExtractor) Extract(ctx context.Context, body string, articleID int64, known map[string]bool) []core.Attachment {
	matches := e.pattern.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		e.Logger.Warn("parsing article body for attachment names", "article_id", articleID, "error", err)
		doc = nil
	}

	var out []core.Attachment
	seen := make(map[string]bool)
	for i, m := range matches {
		id := m[1]
		if seen[id] {
			continue
		}
		seen[id] = true
		if known[id] {
			continue
		}

		remote := e.Prefix + id
		original := originalFilename(doc, remote, id)
		filename := fmt.Sprintf("%d_%d_%s", articleID, i+1, original)
		path := filepath.Join(e.Dir, filename)

		if err := e.store(ctx, remote, path); errors.Is(err, errOffline) {
			e.Logger.Debug("attachment not stored offline", "article_id", articleID, "url", remote)
			continue
		} else if err != nil {
			e.Logger.Warn("failed to download attachment", "article_id", articleID, "url", remote, "error", err)
			continue
		}
		e.Logger.Info("stored attachment", "article_id", articleID, "filename", filename)

		out = append(out, core.Attachment{
			AttachmentID:     id,
			OriginalURL:      remote,
			LocalPath:        path,
			Filename:         filename,
			OriginalFilename: original,
		})
	}
	return out
}

// store makes sure path holds the attachment, downloading it if needed.
func (e *AttachmentExtractor) store(ctx context.Context, remote, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if e.Fetcher == nil {
		return errOffline
	}

	res, err := e.Fetcher.Fetch(ctx, remote)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, res.Body, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// originalFilename derives a file name from the alt text, then the title,
// of the image pointing at remote. It falls back to attachment_<id>.
func originalFilename(doc *goquery.Document, remote, id string) string {
	fallback := "attachment_" + id
	if doc == nil {
		return fallback
	}

	var name string
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if src != remote && !strings.HasPrefix(src, remote+"/") {
			return true
		}
		if alt := strings.TrimSpace(s.AttrOr("alt", "")); alt != "" {
			name = alt
		} else {
			name = strings.TrimSpace(s.AttrOr("title", ""))
		}
		return false
	})

	name = forbiddenFilenameChars.ReplaceAllString(name, "_")
	if name == "" || name == "Image" {
		return fallback
	}
	return name
}
