// Package crawl: remote site discovery.
// Walks a published help center breadth-first from its home page and
// classifies every reachable record page.
package crawl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/page"
)

// DefaultMaxPages bounds a remote crawl.
const DefaultMaxPages = 1000

var anchors = cascadia.MustCompile("a[href]")

// RemoteSource discovers pages by crawling a published site. Page bodies
// fetched during discovery are kept so each page is downloaded once.
type RemoteSource struct {
	base     *url.URL
	fetcher  core.Fetcher
	logger   *slog.Logger
	maxPages int

	crawled bool
	refs    map[page.Kind][]PageRef
	bodies  map[string][]byte
}

// NewRemoteSource creates a RemoteSource rooted at baseURL. A URL ending in
// "/" is crawled starting from its index.html.
func NewRemoteSource(baseURL string, fetcher core.Fetcher, logger *slog.Logger) (*RemoteSource, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid site URL: %s (must include scheme, e.g. https://example.com/help/)", baseURL)
	}
	if strings.HasSuffix(parsed.Path, "/") || parsed.Path == "" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/" + page.HomeFile
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RemoteSource{
		base:     parsed,
		fetcher:  fetcher,
		logger:   logger,
		maxPages: DefaultMaxPages,
		refs:     make(map[page.Kind][]PageRef),
		bodies:   make(map[string][]byte),
	}, nil
}

// SetMaxPages changes the crawl limit. Values below 1 are ignored.
func (r *RemoteSource) SetMaxPages(n int) {
	if n > 0 {
		r.maxPages = n
	}
}

// Pages crawls the site on first use and returns the pages of a kind.
func (r *RemoteSource) Pages(ctx context.Context, kind page.Kind) ([]PageRef, error) {
	if !r.crawled {
		if err := r.crawl(ctx); err != nil {
			return nil, err
		}
		r.crawled = true
	}

	refs := r.refs[kind]
	if len(refs) == 0 {
		return nil, fmt.Errorf("%s under %s: %w", kind.Dir(), r.base, ErrNotFound)
	}
	return refs, nil
}

// Open returns the cached body of a crawled page, fetching it otherwise.
func (r *RemoteSource) Open(ctx context.Context, ref PageRef) (io.ReadCloser, error) {
	if body, ok := r.bodies[ref.Location]; ok {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	result, err := r.fetcher.Fetch(ctx, ref.Location)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	return io.NopCloser(bytes.NewReader(result.Body)), nil
}

// crawl performs the BFS walk. Only the home page is required to load;
// other failures are logged and skipped.
func (r *RemoteSource) crawl(ctx context.Context) error {
	queue := NewQueue(NormalizeURL(r.base.String()))

	for queue.HasNext() && queue.Processed() < r.maxPages {
		if err := ctx.Err(); err != nil {
			return err
		}
		currentURL := queue.Next()

		result, err := r.fetcher.Fetch(ctx, currentURL)
		if err != nil {
			if queue.Processed() == 1 {
				return fmt.Errorf("fetching site home: %w", err)
			}
			r.logger.Warn("skipping page", "url", currentURL, "error", err)
			continue
		}

		if !result.IsHTML() {
			r.logger.Debug("skipping non-HTML response", "url", currentURL, "content_type", result.ContentType)
			continue
		}

		if ref, ok := Classify(currentURL); ok {
			ref.Location = currentURL
			r.refs[ref.Kind] = append(r.refs[ref.Kind], ref)
			r.bodies[currentURL] = result.Body
		}

		links, err := extractLinks(result.HTML(), currentURL)
		if err != nil {
			r.logger.Warn("skipping links", "url", currentURL, "error", err)
			continue
		}
		for _, link := range links {
			if IsWithin(link, r.base) && !IsStaticAsset(link) {
				queue.Add(NormalizeURL(link))
			}
		}
	}

	if queue.HasNext() {
		r.logger.Warn("crawl limit reached", "max_pages", r.maxPages, "unvisited", queue.Seen()-queue.Processed())
	}
	for _, refs := range r.refs {
		sortRefs(refs)
	}
	r.logger.Debug("crawl finished", "pages", queue.Processed())
	return nil
}

// extractLinks extracts all href values from <a> tags, resolving relative URLs.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	var links []string

	doc.FindMatcher(anchors).Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveURL(href, base)
		if resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	// Skip mailto, javascript, etc.
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
