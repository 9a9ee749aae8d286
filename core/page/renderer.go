package page

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"

	"github.com/gaurav-prasanna/helpsite/config"
	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/gaurav-prasanna/helpsite/core/content"
)

var templates = template.Must(template.New("pages").Parse(pageTemplates))

// frame is the data for the shared header and footer.
type frame struct {
	Site        config.SiteConfig
	Generator   string
	Title       string
	Description string
	Prefix      string
}

// link is a titled anchor.
type link struct {
	Href string
	Name string
}

// card is one entry in an article grid or list.
type card struct {
	Href  string
	Title string
	Meta  string
}

// topicCard is one tile in the topic grid.
type topicCard struct {
	Href        string
	Icon        string
	Name        string
	Description string
	Count       string
}

// sectionItem is a section listed on its category page.
type sectionItem struct {
	Href  string
	Name  string
	Count string
}

// relatedCard is one card in an article's Related Articles block.
type relatedCard struct {
	Href  string
	Topic string
	Title string
}

// Renderer produces complete HTML documents from catalog records.
type Renderer struct {
	cfg      *config.Config
	rewriter *content.Rewriter
}

// New creates a Renderer for the given deployment configuration.
func New(cfg *config.Config) *Renderer {
	return &Renderer{
		cfg:      cfg,
		rewriter: content.NewRewriter(cfg.Attachments),
	}
}

// Rewriter returns the body rewriter used for article pages.
func (r *Renderer) Rewriter() *content.Rewriter {
	return r.rewriter
}

func (r *Renderer) frame(title, description string, depth int) frame {
	return frame{
		Site:        r.cfg.Site,
		Generator:   ContractVersion,
		Title:       title,
		Description: description,
		Prefix:      Prefix(depth),
	}
}

// Home renders index.html: the topic grid and the most recently updated articles.
func (r *Renderer) Home(cat *core.Catalog) ([]byte, error) {
	recent := make([]*core.Article, len(cat.Articles))
	for i := range cat.Articles {
		recent[i] = &cat.Articles[i]
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].UpdatedAt > recent[j].UpdatedAt
	})
	if n := r.cfg.Home.PopularArticles; len(recent) > n {
		recent = recent[:n]
	}

	articles := make([]card, 0, len(recent))
	for _, a := range recent {
		section := "Unknown"
		if s := cat.Section(a.SectionID); s != nil {
			section = s.Name
		}
		articles = append(articles, card{Href: KindArticle.Href("", a.ID), Title: a.Title, Meta: section})
	}

	return r.execute("home", struct {
		Frame    frame
		Topics   []topicCard
		Articles []card
	}{
		Frame:    r.frame("Home", r.cfg.Site.Tagline, 0),
		Topics:   r.topics(cat),
		Articles: articles,
	})
}

// TopicIndex renders categories.html: the topic grid on its own.
func (r *Renderer) TopicIndex(cat *core.Catalog) ([]byte, error) {
	return r.execute("topics", struct {
		Frame  frame
		Topics []topicCard
	}{
		Frame:  r.frame("Browse Topics", "Browse help topics organized by category", 0),
		Topics: r.topics(cat),
	})
}

// Category renders categories/category_<id>.html.
func (r *Renderer) Category(cat *core.Catalog, c *core.Category) ([]byte, error) {
	sections := cat.SectionsIn(c.ID)
	items := make([]sectionItem, 0, len(sections))
	for _, s := range sections {
		items = append(items, sectionItem{
			Href:  KindSection.Href("../", s.ID),
			Name:  s.Name,
			Count: countLabel(len(cat.ArticlesIn(s.ID))),
		})
	}

	return r.execute("category", struct {
		Frame       frame
		Name        string
		Description string
		Sections    []sectionItem
	}{
		Frame:       r.frame(c.Name, "Browse help topics organized by category", 1),
		Name:        c.Name,
		Description: c.Description,
		Sections:    items,
	})
}

// Section renders sections/section_<id>.html. The sidebar lists the
// section's articles in dataset order, followed by a link to its category.
func (r *Renderer) Section(cat *core.Catalog, s *core.Section) ([]byte, error) {
	articles := cat.ArticlesIn(s.ID)
	cards := make([]card, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, card{Href: KindArticle.Href("../", a.ID), Title: a.Title, Meta: a.UpdatedDate()})
	}

	var parent *link
	if c := cat.Category(s.CategoryID); c != nil {
		parent = &link{Href: KindCategory.Href("../", c.ID), Name: c.Name}
	}

	return r.execute("section", struct {
		Frame       frame
		Name        string
		Description string
		Parent      *link
		Articles    []card
	}{
		Frame:       r.frame(s.Name, r.cfg.Site.Description, 1),
		Name:        s.Name,
		Description: s.Description,
		Parent:      parent,
		Articles:    cards,
	})
}

// Article renders articles/article_<id>.html. Remote attachment URLs are
// replaced by the local files in attachments.
func (r *Renderer) Article(cat *core.Catalog, a *core.Article, attachments map[string]core.Attachment) ([]byte, error) {
	section, category := cat.Parents(a)

	body := r.rewriter.Rewrite(a.Body, attachments)
	body = content.RelocateAttachments(body, "../")

	trail := [2]string{"Unknown", "Unknown"}
	breadcrumb := []link{
		{Href: "../" + HomeFile, Name: "Home"},
		{Href: "../" + TopicIndexFile, Name: "Browse Topics"},
	}
	var categoryLink, sectionLink *link
	if category != nil {
		trail[0] = category.Name
		categoryLink = &link{Href: KindCategory.Href("../", category.ID), Name: category.Name}
	}
	if section != nil {
		trail[1] = section.Name
		sectionLink = &link{Href: KindSection.Href("../", section.ID), Name: section.Name}
		breadcrumb = append(breadcrumb, *sectionLink)
	}
	breadcrumb = append(breadcrumb, link{Name: a.Title})

	related := r.cfg.RelatedFor(a.ID)
	cards := make([]relatedCard, 0, len(related))
	for _, rel := range related {
		if rel.ArticleID == a.ID {
			continue
		}
		cards = append(cards, relatedCard{Href: KindArticle.FileName(rel.ArticleID), Topic: rel.Topic, Title: rel.Title})
	}

	return r.execute("article", struct {
		Frame      frame
		Title      string
		Trail      string
		Updated    string
		Body       template.HTML
		Category   *link
		Section    *link
		Breadcrumb []link
		Related    []relatedCard
	}{
		Frame:      r.frame(a.Title, r.cfg.Site.Description, 1),
		Title:      a.Title,
		Trail:      trail[0] + " → " + trail[1],
		Updated:    a.UpdatedDate(),
		Body:       template.HTML(body),
		Category:   categoryLink,
		Section:    sectionLink,
		Breadcrumb: breadcrumb,
		Related:    cards,
	})
}

// ArticleIndex renders articles.html: every article sorted by title.
func (r *Renderer) ArticleIndex(cat *core.Catalog) ([]byte, error) {
	return r.listing("All Articles", "Browse all help articles", "Every article in the help center, A to Z.",
		r.sortedCards(cat, func(*core.Article) bool { return true }))
}

// VideoIndex renders videos.html: articles that embed a video.
func (r *Renderer) VideoIndex(cat *core.Catalog) ([]byte, error) {
	return r.listing("Videos", "Video walkthroughs", "Articles with video walkthroughs.",
		r.sortedCards(cat, func(a *core.Article) bool { return r.rewriter.HasVideo(a.Body) }))
}

func (r *Renderer) listing(heading, description, intro string, cards []card) ([]byte, error) {
	return r.execute("listing", struct {
		Frame    frame
		Heading  string
		Intro    string
		Articles []card
	}{
		Frame:    r.frame(heading, description, 0),
		Heading:  heading,
		Intro:    intro,
		Articles: cards,
	})
}

func (r *Renderer) sortedCards(cat *core.Catalog, keep func(*core.Article) bool) []card {
	var articles []*core.Article
	for i := range cat.Articles {
		if keep(&cat.Articles[i]) {
			articles = append(articles, &cat.Articles[i])
		}
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Title < articles[j].Title
	})

	cards := make([]card, 0, len(articles))
	for _, a := range articles {
		section, category := cat.Parents(a)
		trail := [2]string{"Unknown", "Unknown"}
		if category != nil {
			trail[0] = category.Name
		}
		if section != nil {
			trail[1] = section.Name
		}
		cards = append(cards, card{Href: KindArticle.Href("", a.ID), Title: a.Title, Meta: trail[0] + " → " + trail[1]})
	}
	return cards
}

func (r *Renderer) topics(cat *core.Catalog) []topicCard {
	cards := make([]topicCard, 0, len(cat.Sections))
	for _, s := range cat.Sections {
		cards = append(cards, topicCard{
			Href:        KindSection.Href("", s.ID),
			Icon:        r.cfg.TopicIcon(s.Name),
			Name:        s.Name,
			Description: r.cfg.TopicDescription(s.Name, s.Description),
			Count:       countLabel(len(cat.ArticlesIn(s.ID))),
		})
	}
	return cards
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s page: %w", name, err)
	}
	return buf.Bytes(), nil
}

func countLabel(n int) string {
	if n == 1 {
		return "1 article"
	}
	return fmt.Sprintf("%d articles", n)
}
