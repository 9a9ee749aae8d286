// Package config holds the per-deployment tables that shape the generated
// help center: branding, topic icons and descriptions, the attachment host,
// reconstruction defaults, and related-article links.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingAttachmentPrefix = errors.New("attachments.url_prefix is required")
	ErrMissingVideoPrefix      = errors.New("attachments.video_prefixes must not be empty")
	ErrInvalidExcerptLength    = errors.New("search.excerpt_length must be at least 1")
	ErrInvalidPopularCount     = errors.New("home.popular_articles must be non-negative")
	ErrInvalidDefaultDate      = errors.New("reconstruct.default_updated_at must be YYYY-MM-DD")
)

// Config is the complete deployment configuration.
type Config struct {
	Site        SiteConfig        `yaml:"site"`
	Attachments AttachmentsConfig `yaml:"attachments"`
	Topics      TopicsConfig      `yaml:"topics"`
	Home        HomeConfig        `yaml:"home"`
	Reconstruct ReconstructConfig `yaml:"reconstruct"`
	Related     RelatedConfig     `yaml:"related"`
	Search      SearchConfig      `yaml:"search"`
}

// SiteConfig carries branding shown in the page frame.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Brand       string `yaml:"brand"`
	Tagline     string `yaml:"tagline"`
	Welcome     string `yaml:"welcome"`
	Copyright   string `yaml:"copyright"`
	Logo        string `yaml:"logo"`
	Description string `yaml:"description"`
}

// AttachmentsConfig describes which remote URLs are rewritten to local files.
type AttachmentsConfig struct {
	URLPrefix      string   `yaml:"url_prefix"`
	VideoPrefixes  []string `yaml:"video_prefixes"`
	VideoContainer string   `yaml:"video_container"`
}

// TopicsConfig maps section names to the icon and blurb shown on topic cards.
type TopicsConfig struct {
	Icons        map[string]string `yaml:"icons"`
	Descriptions map[string]string `yaml:"descriptions"`
	DefaultIcon  string            `yaml:"default_icon"`
}

// HomeConfig controls the home page.
type HomeConfig struct {
	PopularArticles int `yaml:"popular_articles"`
}

// ReconstructConfig holds the defaults used when a page lacks a field.
type ReconstructConfig struct {
	DefaultCategoryID int64             `yaml:"default_category_id"`
	DefaultUpdatedAt  string            `yaml:"default_updated_at"`
	SectionNames      map[string]string `yaml:"section_names"`
	DefaultCategories []NamedRecord     `yaml:"default_categories"`
	DefaultSections   []NamedRecord     `yaml:"default_sections"`
}

// NamedRecord is a fallback category or section declared in configuration.
type NamedRecord struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	CategoryID  int64  `yaml:"category_id,omitempty"`
}

// RelatedConfig lists related-article links per article id.
type RelatedConfig struct {
	Articles map[int64][]RelatedLink `yaml:"articles"`
	Default  []RelatedLink           `yaml:"default"`
}

// RelatedLink is one card in an article's Related Articles block.
type RelatedLink struct {
	ArticleID int64  `yaml:"article_id"`
	Topic     string `yaml:"topic"`
	Title     string `yaml:"title"`
}

// SearchConfig controls the search index.
type SearchConfig struct {
	ExcerptLength int `yaml:"excerpt_length"`
}

// Load reads a YAML configuration file over the built-in defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(expanded), &doc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if len(doc.Content) > 0 {
		cfg.clearTables(doc.Content[0])
		if err := doc.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// clearTables drops the built-in lookup tables that the file sets, so a
// table from the file replaces the default instead of merging into it.
func (c *Config) clearTables(root *yaml.Node) {
	tables := []struct {
		section, key string
		clear        func()
	}{
		{"topics", "icons", func() { c.Topics.Icons = nil }},
		{"topics", "descriptions", func() { c.Topics.Descriptions = nil }},
		{"reconstruct", "section_names", func() { c.Reconstruct.SectionNames = nil }},
		{"related", "articles", func() { c.Related.Articles = nil }},
	}
	for _, t := range tables {
		if mappingValue(mappingValue(root, t.section), t.key) != nil {
			t.clear()
		}
	}
}

// mappingValue returns the value node stored under key in a mapping node.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// Validate checks the configuration for values the pipelines cannot use.
func (c *Config) Validate() error {
	if c.Attachments.URLPrefix == "" {
		return ErrMissingAttachmentPrefix
	}
	if len(c.Attachments.VideoPrefixes) == 0 {
		return ErrMissingVideoPrefix
	}
	if c.Search.ExcerptLength < 1 {
		return ErrInvalidExcerptLength
	}
	if c.Home.PopularArticles < 0 {
		return ErrInvalidPopularCount
	}
	if !isDate(c.Reconstruct.DefaultUpdatedAt) {
		return ErrInvalidDefaultDate
	}
	return nil
}

// RelatedFor returns the related links configured for an article, or the
// default list when the article has none.
func (c *Config) RelatedFor(articleID int64) []RelatedLink {
	if links, ok := c.Related.Articles[articleID]; ok && len(links) > 0 {
		return links
	}
	return c.Related.Default
}

// TopicIcon returns the icon for a section name.
func (c *Config) TopicIcon(name string) string {
	if icon, ok := c.Topics.Icons[name]; ok {
		return icon
	}
	return c.Topics.DefaultIcon
}

// TopicDescription returns the configured blurb for a section name, falling
// back to the section's own description.
func (c *Config) TopicDescription(name, fallback string) string {
	if desc, ok := c.Topics.Descriptions[name]; ok {
		return desc
	}
	return fallback
}

func isDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i, ch := range s {
		switch i {
		case 4, 7:
			if ch != '-' {
				return false
			}
		default:
			if ch < '0' || ch > '9' {
				return false
			}
		}
	}
	return true
}
