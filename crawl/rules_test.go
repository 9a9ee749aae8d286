package crawl

import (
	"net/url"
	"testing"

	"github.com/gaurav-prasanna/helpsite/core/page"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		kind page.Kind
		id   int64
		ok   bool
	}{
		{"categories/category_1.html", page.KindCategory, 1, true},
		{"site/sections/section_10.html", page.KindSection, 10, true},
		{"https://help.test/hc/articles/article_100.html", page.KindArticle, 100, true},
		{"articles/section_10.html", "", 0, false},
		{"articles/article_100.html.bak", "", 0, false},
		{"index.html", "", 0, false},
		{"videos/article_5.html", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ref, ok := Classify(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, ref.Kind)
			assert.Equal(t, tt.id, ref.ID)
		})
	}
}

func TestIsWithin(t *testing.T) {
	base, _ := url.Parse("https://help.test/hc/index.html")
	assert.True(t, IsWithin("https://help.test/hc/sections/section_1.html", base))
	assert.False(t, IsWithin("https://help.test/other/page.html", base))
	assert.False(t, IsWithin("https://elsewhere.test/hc/index.html", base))
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://help.test/a", NormalizeURL("https://help.test/a/?q=1#top"))
	assert.Equal(t, "https://help.test/", NormalizeURL("https://help.test/"))
}

func TestIsStaticAsset(t *testing.T) {
	assert.True(t, IsStaticAsset("https://help.test/css/style.css"))
	assert.True(t, IsStaticAsset("https://help.test/search-index.json"))
	assert.False(t, IsStaticAsset("https://help.test/articles/article_1.html"))
}

func TestQueueDeduplicates(t *testing.T) {
	q := NewQueue("a", "b")
	assert.False(t, q.Add("a"))
	assert.True(t, q.Add("c"))
	assert.Equal(t, 3, q.Seen())

	var got []string
	for q.HasNext() {
		got = append(got, q.Next())
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 3, q.Processed())
}
