package core

// Catalog indexes a Dataset for parent/child lookups. Child lists keep the
// order in which records appear in the dataset.
type Catalog struct {
	*Dataset

	categories         map[int64]*Category
	sections           map[int64]*Section
	sectionsByCategory map[int64][]*Section
	articlesBySection  map[int64][]*Article
}

// NewCatalog builds the lookup maps for ds. Articles whose section is unknown
// are kept in ds but belong to no section list.
func NewCatalog(ds *Dataset) *Catalog {
	c := &Catalog{
		Dataset:            ds,
		categories:         make(map[int64]*Category, len(ds.Categories)),
		sections:           make(map[int64]*Section, len(ds.Sections)),
		sectionsByCategory: make(map[int64][]*Section),
		articlesBySection:  make(map[int64][]*Article, len(ds.Sections)),
	}

	for i := range ds.Categories {
		c.categories[ds.Categories[i].ID] = &ds.Categories[i]
	}
	for i := range ds.Sections {
		s := &ds.Sections[i]
		c.sections[s.ID] = s
		c.sectionsByCategory[s.CategoryID] = append(c.sectionsByCategory[s.CategoryID], s)
		c.articlesBySection[s.ID] = nil
	}
	for i := range ds.Articles {
		a := &ds.Articles[i]
		if _, ok := c.articlesBySection[a.SectionID]; ok {
			c.articlesBySection[a.SectionID] = append(c.articlesBySection[a.SectionID], a)
		}
	}
	return c
}

// Category returns the category with the given id, or nil.
func (c *Catalog) Category(id int64) *Category {
	return c.categories[id]
}

// Section returns the section with the given id, or nil.
func (c *Catalog) Section(id int64) *Section {
	return c.sections[id]
}

// SectionsIn returns the sections of a category in dataset order.
func (c *Catalog) SectionsIn(categoryID int64) []*Section {
	return c.sectionsByCategory[categoryID]
}

// ArticlesIn returns the articles of a section in dataset order.
func (c *Catalog) ArticlesIn(sectionID int64) []*Article {
	return c.articlesBySection[sectionID]
}

// Parents returns the section and category an article belongs to. Either
// may be nil when the foreign key does not resolve.
func (c *Catalog) Parents(a *Article) (*Section, *Category) {
	s := c.Section(a.SectionID)
	if s == nil {
		return nil, nil
	}
	return s, c.Category(s.CategoryID)
}

// Attachments returns every downloaded attachment across all articles,
// keyed by attachment id. The first article to list an id wins.
func (c *Catalog) Attachments() map[string]Attachment {
	out := make(map[string]Attachment)
	for _, a := range c.Articles {
		for _, att := range a.DownloadedAttachments {
			if _, seen := out[att.AttachmentID]; !seen {
				out[att.AttachmentID] = att
			}
		}
	}
	return out
}
