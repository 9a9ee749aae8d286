// Package page renders help center records into complete HTML documents.
//
// The markup produced here is read back by package extract. The structural
// anchors below are the shared contract between the two; changing any of
// them means bumping ContractVersion and updating the parser together.
package page

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ContractVersion is written into every page's generator meta tag.
const ContractVersion = "helpsite page/v1"

// Structural anchors shared with the reverse pipeline.
const (
	ContentClass        = "content"
	SidebarClass        = "sidebar"
	DescriptionClass    = "description"
	MetaClass           = "article-meta"
	ArticleContentClass = "article-content"
	SidebarListClass    = "sidebar-articles"
	SidebarParentClass  = "sidebar-parent"
	UpdatedLabel        = "Updated:"
	GeneratorMetaName   = "generator"
)

// Root-level page file names.
const (
	HomeFile         = "index.html"
	TopicIndexFile   = "categories.html"
	ArticleIndexFile = "articles.html"
	VideoIndexFile   = "videos.html"
)

// Kind names a record kind that gets one page per record.
type Kind string

// Page kinds.
const (
	KindCategory Kind = "category"
	KindSection  Kind = "section"
	KindArticle  Kind = "article"
)

// Kinds lists the record kinds in generation order.
var Kinds = []Kind{KindCategory, KindSection, KindArticle}

// Dir returns the site directory holding pages of this kind.
func (k Kind) Dir() string {
	return string(k) + "s"
}

// FileName returns the page file name for a record id, e.g. section_10.html.
func (k Kind) FileName(id int64) string {
	return fmt.Sprintf("%s_%d.html", k, id)
}

// Path returns the site-relative path of a record page.
func (k Kind) Path(id int64) string {
	return k.Dir() + "/" + k.FileName(id)
}

// Href returns the link to a record page from a page whose path prefix is
// prefix ("" at the root, "../" one level down).
func (k Kind) Href(prefix string, id int64) string {
	return prefix + k.Path(id)
}

var linkPatterns = map[Kind]*regexp.Regexp{
	KindCategory: regexp.MustCompile(`category_(\d+)\.html`),
	KindSection:  regexp.MustCompile(`section_(\d+)\.html`),
	KindArticle:  regexp.MustCompile(`article_(\d+)\.html`),
}

// LinkPattern matches a link to a page of this kind and captures its id.
// It is nil for a kind outside Kinds.
func (k Kind) LinkPattern() *regexp.Regexp {
	return linkPatterns[k]
}

// ParseID extracts the record id from a page file name or link.
func (k Kind) ParseID(s string) (int64, bool) {
	re := k.LinkPattern()
	if re == nil {
		return 0, false
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Prefix returns the relative path prefix for a page at the given depth.
func Prefix(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("../", depth)
}
