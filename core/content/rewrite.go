package content

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/helpsite/config"
	"github.com/gaurav-prasanna/helpsite/core"
)

// AttachmentDir is the site-relative directory holding attachment files.
const AttachmentDir = "attachments"

var protocolRelativeSrc = regexp.MustCompile(`src="//`)

// Rewriter rewrites remote references in article bodies so the generated
// site works offline.
type Rewriter struct {
	attachments *regexp.Regexp
	videos      *regexp.Regexp
	container   string
}

// NewRewriter builds a Rewriter for the configured attachment host and
// video embed prefixes.
func NewRewriter(cfg config.AttachmentsConfig) *Rewriter {
	prefixes := make([]string, len(cfg.VideoPrefixes))
	for i, p := range cfg.VideoPrefixes {
		prefixes[i] = regexp.QuoteMeta(p)
	}
	container := cfg.VideoContainer
	if container == "" {
		container = "video-container"
	}

	return &Rewriter{
		attachments: AttachmentPattern(cfg.URLPrefix),
		videos: regexp.MustCompile(
			`(?:<div class="` + regexp.QuoteMeta(container) + `">\s*)?` +
				`<iframe[^>]*src="(?:` + strings.Join(prefixes, "|") + `)[^"]*"[^>]*>\s*</iframe>`),
		container: container,
	}
}

// AttachmentPattern matches a remote attachment URL under prefix. The first
// group is the numeric attachment id; a trailing file name segment is
// consumed with the match.
func AttachmentPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(prefix) + `(\d+)(?:/[^"'\s<>]*)?`)
}

// Rewrite applies the offline rewrites to body:
//   - remote attachment URLs whose id appears in local become
//     attachments/<filename>; unknown ids are left untouched
//   - protocol-relative src attributes are upgraded to https
//   - video iframes are wrapped in the fixed-aspect container
//
// Rewrite is idempotent.
func (r *Rewriter) Rewrite(body string, local map[string]core.Attachment) string {
	body = r.attachments.ReplaceAllStringFunc(body, func(match string) string {
		id := r.attachments.FindStringSubmatch(match)[1]
		att, ok := local[id]
		if !ok {
			return match
		}
		return AttachmentDir + "/" + url.PathEscape(att.Filename)
	})

	body = protocolRelativeSrc.ReplaceAllString(body, `src="https://`)

	return r.videos.ReplaceAllStringFunc(body, func(match string) string {
		if strings.HasPrefix(match, "<div") {
			return match
		}
		return `<div class="` + r.container + `">` + match + `</div>`
	})
}

// HasVideo reports whether body embeds a recognised video.
func (r *Rewriter) HasVideo(body string) bool {
	return r.videos.MatchString(protocolRelativeSrc.ReplaceAllString(body, `src="https://`))
}

// RelocateAttachments prefixes site-relative attachment references with
// prefix, for pages that live below the site root.
func RelocateAttachments(body, prefix string) string {
	if prefix == "" {
		return body
	}
	r := strings.NewReplacer(
		`src="`+AttachmentDir+`/`, `src="`+prefix+AttachmentDir+`/`,
		`href="`+AttachmentDir+`/`, `href="`+prefix+AttachmentDir+`/`,
	)
	return r.Replace(body)
}
