// Package core defines the help center record schema shared by both
// pipeline directions, and the interfaces between pipeline stages.
package core

// Category is the top of the hierarchy. It owns zero or more Sections.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Section belongs to exactly one Category and owns zero or more Articles.
type Section struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CategoryID  int64  `json:"category_id"`
	Description string `json:"description,omitempty"`
}

// Article is a single help page. Body is an HTML fragment.
type Article struct {
	ID                    int64        `json:"id"`
	Title                 string       `json:"title"`
	Body                  string       `json:"body"`
	SectionID             int64        `json:"section_id"`
	UpdatedAt             string       `json:"updated_at"`
	DownloadedAttachments []Attachment `json:"downloaded_attachments,omitempty"`
}

// UpdatedDate returns the date prefix (YYYY-MM-DD) of UpdatedAt.
func (a Article) UpdatedDate() string {
	if len(a.UpdatedAt) > 10 {
		return a.UpdatedAt[:10]
	}
	return a.UpdatedAt
}

// Attachment is a remote file referenced by an article body and stored
// locally under the site's attachments directory.
type Attachment struct {
	AttachmentID     string `json:"attachment_id"`
	OriginalURL      string `json:"original_url"`
	LocalPath        string `json:"local_path"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
}

// Manifest summarizes an exported dataset.
type Manifest struct {
	ExportDate      string `json:"export_date"`
	CategoriesCount int    `json:"categories_count"`
	SectionsCount   int    `json:"sections_count"`
	ArticlesCount   int    `json:"articles_count"`
}

// Dataset is the full record set, loaded wholesale and read thereafter.
type Dataset struct {
	Categories []Category
	Sections   []Section
	Articles   []Article
	Manifest   Manifest
}
