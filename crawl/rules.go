// Package crawl: URL filtering rules.
// Provides helpers to filter, normalize, and classify URLs while walking a
// published help center.
package crawl

import (
	"net/url"
	"path"
	"strings"

	"github.com/gaurav-prasanna/helpsite/core/page"
)

// staticExtensions are file extensions to skip during crawling.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true, ".json": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// IsSameDomain checks if the given URL belongs to the specified domain.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == domain
}

// IsStaticAsset checks if a URL points to a static asset (image, CSS, JS, etc.).
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}

// IsWithin reports whether rawURL lives under the base URL's directory.
func IsWithin(rawURL string, base *url.URL) bool {
	if !IsSameDomain(rawURL, base.Host) {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasPrefix(parsed.Path, baseDir(base.Path))
}

// NormalizeURL strips fragments and query strings for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""
	parsed.RawQuery = ""

	// Remove trailing slash (but keep root "/").
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}

// Classify reports which record page a URL or file path names, if any.
// A record page is <kind>s/<kind>_<id>.html.
func Classify(p string) (PageRef, bool) {
	if parsed, err := url.Parse(p); err == nil && parsed.Scheme != "" {
		p = parsed.Path
	}
	dir, file := path.Split(strings.ReplaceAll(p, "\\", "/"))
	dir = path.Base(strings.TrimSuffix(dir, "/"))

	for _, kind := range page.Kinds {
		if dir != kind.Dir() {
			continue
		}
		id, ok := kind.ParseID(file)
		if !ok || file != kind.FileName(id) {
			return PageRef{}, false
		}
		return PageRef{Kind: kind, ID: id}, true
	}
	return PageRef{}, false
}

// baseDir returns the directory part of a URL path, with a trailing slash.
func baseDir(p string) string {
	if p == "" {
		return "/"
	}
	if strings.HasSuffix(p, "/") {
		return p
	}
	return path.Dir(p) + "/"
}
