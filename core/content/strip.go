// Package content holds the text and HTML utilities shared by the site
// generator and the search index: tag stripping, URL rewriting, and
// attachment extraction.
package content

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StripHTML removes all markup from s and joins the remaining text nodes
// with single spaces. Entities are decoded by the tokenizer; script and
// style contents are dropped.
func StripHTML(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var parts []string
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
		case html.StartTagToken:
			if isRawText(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawText(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				parts = append(parts, string(z.Text()))
			}
		}
	}
}

func isRawText(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch atom.Lookup(name) {
	case atom.Script, atom.Style:
		return true
	}
	return false
}

// Excerpt returns the first n characters (runes) of s.
func Excerpt(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
