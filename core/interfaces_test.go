package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchResultIsHTML(t *testing.T) {
	cases := map[string]bool{
		"":                          true,
		"text/html":                 true,
		"text/html; charset=utf-8":  true,
		"application/xhtml+xml":     true,
		"image/png":                 false,
		"text/plain; charset=utf-8": false,
		"not a media type;;":        false,
	}
	for contentType, want := range cases {
		r := &FetchResult{ContentType: contentType}
		assert.Equal(t, want, r.IsHTML(), contentType)
	}
}
