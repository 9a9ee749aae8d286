// Package extract reads the structural anchors of a generated help center
// page back into record fields. It is the inverse of package page and
// relies on the anchors declared there:
//  1. the first <h1> inside the content region is the record name/title
//  2. the first following <p> is the description
//  3. the article-meta line carries "Updated: YYYY-MM-DD"
//  4. a sidebar link to the parent page carries the foreign key
//  5. the article-content region's inner markup is the body
package extract

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/gaurav-prasanna/helpsite/core/page"
)

var (
	contentHeading = cascadia.MustCompile("div." + page.ContentClass + " h1")
	anyHeading     = cascadia.MustCompile("h1")
	sidebarLinks   = cascadia.MustCompile("aside." + page.SidebarClass + " a[href]")
	metaLine       = cascadia.MustCompile("div." + page.ContentClass + " div." + page.MetaClass)
	articleContent = cascadia.MustCompile("div." + page.ArticleContentClass)
	generatorMeta  = cascadia.MustCompile(`meta[name="` + page.GeneratorMetaName + `"]`)

	updatedDate = regexp.MustCompile(regexp.QuoteMeta(page.UpdatedLabel) + `\s*(\d{4}-\d{2}-\d{2})`)
)

// Page holds the fields read back from one generated page. Zero values
// mean the anchor was absent.
type Page struct {
	Generator   string
	Title       string
	Description string
	Updated     string
	ParentID    int64
	HasParent   bool
	Body        string
	HasBody     bool
}

// Extractor parses generated pages.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses a page. When parent is a page kind the first sidebar link
// to a page of that kind supplies ParentID.
func (e *Extractor) Extract(r io.Reader, parent page.Kind) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	p := &Page{
		Generator: doc.FindMatcher(generatorMeta).First().AttrOr("content", ""),
	}

	// The site header carries its own <h1>; prefer the content region's.
	h1 := doc.FindMatcher(contentHeading).First()
	if h1.Length() == 0 {
		h1 = doc.FindMatcher(anyHeading).First()
	}
	if h1.Length() > 0 {
		p.Title = strings.TrimSpace(h1.Text())
		p.Description = strings.TrimSpace(h1.NextAllFiltered("p").First().Text())
	}

	if m := updatedDate.FindStringSubmatch(doc.FindMatcher(metaLine).First().Text()); m != nil {
		p.Updated = m[1]
	}

	if pattern := parent.LinkPattern(); pattern != nil {
		doc.FindMatcher(sidebarLinks).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			href, _ := s.Attr("href")
			if !pattern.MatchString(href) {
				return true
			}
			p.ParentID, p.HasParent = parent.ParseID(href)
			return !p.HasParent
		})
	}

	if region := doc.FindMatcher(articleContent).First(); region.Length() > 0 {
		inner, err := region.Html()
		if err != nil {
			return nil, fmt.Errorf("serializing article content: %w", err)
		}
		p.Body = strings.TrimSpace(inner)
		p.HasBody = true
	}

	return p, nil
}
